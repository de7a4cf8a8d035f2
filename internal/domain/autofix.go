package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Auto-fix correction messages. The cross-part site warning and the
// all-clear reassurance are the only entries without a "Part N" prefix.
const (
	msgAllClear    = "Query looks solid! No obvious errors detected."
	msgMultiSite   = "Warning: Multiple 'site:' operators detected without 'OR'. This usually returns zero results."
	fmtQuoteClosed = "Part %d: Closed an unclosed quotation mark."
	fmtLeadingDot  = "Part %d: Removed leading dot from filetype."
	fmtFiletypeWS  = "Part %d: Removed invalid spaces from filetype."
	fmtColonSpace  = "Part %d: Cleaned up extra colons or spaces."
	fmtRedundantOp = "Part %d: Removed redundant '%s' prefix from value."
	fmtUpperOR     = "Part %d: Standardized 'OR' to uppercase."
	fmtDroppedAND  = "Part %d: Removed redundant 'AND' (Google assumes AND)."
	fmtProtocol    = "Part %d: Removed protocol (http/https) from site operator."
)

var (
	reWhitespace    = regexp.MustCompile(`\s`)
	reRunWhitespace = regexp.MustCompile(`\s+`)
	reColonPadding  = regexp.MustCompile(`\s*:\s*`)
	reColonRun      = regexp.MustCompile(`:+`)
	reDoubleSpace   = regexp.MustCompile(`\s\s+`)
	reORAnyCase     = regexp.MustCompile(`(?i)\s+or\s+`)
	reORUpper       = regexp.MustCompile(`\s+OR\s+`)
	reANDAnyCase    = regexp.MustCompile(`(?i)\s+and\s+`)
)

// redundantPrefixes are the operator keywords users most often retype
// into the value field. The part's own base operator is always checked
// first; only the first match is stripped.
var redundantPrefixes = []string{
	"intitle:", "inurl:", "intext:", "filetype:", "site:", "related:", "cache:", "allintext:",
}

// Fix scans all enabled, non-blank parts and deterministically repairs
// common authoring mistakes, returning the (possibly) rewritten list and
// a human-readable report in part order. Rules run per part in a fixed
// order, each seeing the output of the previous one; parts the rules do
// not touch are carried through unchanged. When nothing fires, the
// input list is returned as-is with a single reassurance message.
func Fix(parts []Part) ([]Part, []string) {
	out := make([]Part, len(parts))
	copy(out, parts)

	var report []string
	changed := false

	// Operators are never rewritten by the rules below, so the OR
	// presence check for the multi-site warning is stable for the scan.
	hasOR := false
	for _, p := range parts {
		if p.Enabled && p.Operator == OpOr {
			hasOR = true
			break
		}
	}

	var seenSites []string

	for i, p := range parts {
		if !p.Enabled || p.Blank() {
			continue
		}

		val := strings.TrimSpace(p.Value)
		orig := val
		n := i + 1

		// 1. Unbalanced quotes: append the missing closer.
		if strings.Count(val, `"`)%2 != 0 {
			val += `"`
			report = append(report, fmt.Sprintf(fmtQuoteClosed, n))
		}

		// 2. Filetype hygiene: extensions carry no dot and no spaces.
		if p.Operator == OpFiletype || p.Operator == OpExt {
			if strings.HasPrefix(val, ".") {
				val = val[1:]
				report = append(report, fmt.Sprintf(fmtLeadingDot, n))
			}
			if reWhitespace.MatchString(val) {
				val = reRunWhitespace.ReplaceAllString(val, "")
				report = append(report, fmt.Sprintf(fmtFiletypeWS, n))
			}
		}

		// 3. Stray colons and double spaces.
		if strings.Contains(val, ":") || strings.Contains(val, "  ") {
			cleaned := reColonPadding.ReplaceAllString(val, ":")
			cleaned = reColonRun.ReplaceAllString(cleaned, ":")
			cleaned = reDoubleSpace.ReplaceAllString(cleaned, " ")
			if cleaned != val {
				val = cleaned
				report = append(report, fmt.Sprintf(fmtColonSpace, n))
			}
		}

		// 4. Redundant operator prefix typed into the value field.
		// The part's own base operator wins over the common list.
		checkOps := append([]string{p.Operator.Base()}, redundantPrefixes...)
		for _, op := range checkOps {
			if op == "" || !strings.HasPrefix(strings.ToLower(val), strings.ToLower(op)) {
				continue
			}
			val = strings.TrimSpace(val[len(op):])
			val = strings.TrimSpace(strings.TrimPrefix(val, ":"))
			report = append(report, fmt.Sprintf(fmtRedundantOp, n, op))
			break
		}

		// 5. Boolean keyword normalization: OR is uppercase, AND is
		// implicit and gets dropped.
		if reORAnyCase.MatchString(val) && !reORUpper.MatchString(val) {
			val = reORAnyCase.ReplaceAllString(val, " OR ")
			report = append(report, fmt.Sprintf(fmtUpperOR, n))
		}
		if reANDAnyCase.MatchString(val) {
			val = reANDAnyCase.ReplaceAllString(val, " ")
			report = append(report, fmt.Sprintf(fmtDroppedAND, n))
		}

		// 6. Site hygiene: warn once per extra site: clause when no OR
		// joins them, and strip URL schemes (site: takes bare hosts).
		if p.Operator.IsSiteFamily() {
			if len(seenSites) > 0 && !hasOR {
				report = append(report, msgMultiSite)
			}
			seenSites = append(seenSites, val)

			if strings.Contains(val, "://") {
				val = strings.Split(val, "://")[1]
				report = append(report, fmt.Sprintf(fmtProtocol, n))
			}
		}

		if val != orig {
			out[i].Value = val
			changed = true
		}
	}

	if len(report) == 0 {
		report = append(report, msgAllClear)
	}
	if !changed {
		return parts, report
	}
	return out, report
}
