package domain

import "time"

// Suggestion is a one-click "quick add" proposal. Activating it appends
// a new enabled part with the given operator and value; existing parts
// are never touched.
type Suggestion struct {
	Label    string   `json:"label"`
	Operator Operator `json:"operator"`
	Value    string   `json:"value"`
	Icon     string   `json:"icon"`
}

// MaxSuggestions caps the suggestion list. The value is a display
// budget, not a hard invariant; tune freely.
const MaxSuggestions = 11

// archiveSearchDate is the fixed cut-off offered by the archive-search
// shortcut.
const archiveSearchDate = "2015-01-01"

// Suggest inspects the current parts and proposes the next operators to
// add, in priority order, capped at MaxSuggestions. A rule only fires
// when no enabled part already covers its operator; the last two
// shortcuts are offered unconditionally.
func Suggest(parts []Part, now time.Time) []Suggestion {
	has := func(match func(Part) bool) bool {
		for _, p := range parts {
			if p.Enabled && match(p) {
				return true
			}
		}
		return false
	}
	hasOp := func(op Operator) bool {
		return has(func(p Part) bool { return p.Operator == op })
	}

	var out []Suggestion

	if !has(func(p Part) bool { return p.Operator.IsSiteFamily() }) {
		out = append(out,
			Suggestion{Label: "Federal (Canada.ca)", Operator: OpSite, Value: "canada.ca", Icon: "fa-flag"},
			Suggestion{Label: "Ontario Gov", Operator: OpSite, Value: "ontario.ca", Icon: "fa-map"},
			Suggestion{Label: "Dark Web (Ahmia)", Operator: OpSite, Value: "ahmia.fi", Icon: "fa-user-secret"},
			Suggestion{Label: "Dark Web Gateway", Operator: OpSite, Value: "onion.ly", Icon: "fa-link"},
		)
	}
	if !hasOp(OpFiletype) {
		out = append(out, Suggestion{Label: "PDF Reports", Operator: OpFiletype, Value: "pdf", Icon: "fa-file-pdf"})
	}
	if !hasOp(OpIntitle) {
		out = append(out, Suggestion{Label: "Audit Search", Operator: OpIntitle, Value: "audit", Icon: "fa-magnifying-glass-chart"})
	}
	if !hasOp(OpAfter) {
		lastYear := now.AddDate(-1, 0, 0).Format(isoDate)
		out = append(out, Suggestion{Label: "Recent Docs", Operator: OpAfter, Value: lastYear, Icon: "fa-calendar-days"})
	}
	if !hasOp(OpBefore) {
		out = append(out, Suggestion{Label: "Archive Search", Operator: OpBefore, Value: archiveSearchDate, Icon: "fa-box-archive"})
	}
	if !hasOp(OpExclude) {
		out = append(out, Suggestion{Label: "Exclude Junk", Operator: OpExclude, Value: "stock", Icon: "fa-filter-circle-xmark"})
	}
	if !hasOp(OpRelated) {
		out = append(out, Suggestion{Label: "Similar Sites", Operator: OpRelated, Value: "cbc.ca", Icon: "fa-diagram-project"})
	}
	if !hasOp(OpWildcard) {
		out = append(out, Suggestion{Label: "Phrase Wildcard", Operator: OpWildcard, Value: " of Canada", Icon: "fa-asterisk"})
	}
	if !hasOp(OpAllintext) {
		out = append(out, Suggestion{Label: "Full Text Search", Operator: OpAllintext, Value: `"confidential report"`, Icon: "fa-file-lines"})
	}

	out = append(out,
		Suggestion{Label: "Exposed S3 Buckets", Operator: OpSite, Value: "s3.amazonaws.com", Icon: "fa-bucket"},
		Suggestion{Label: "Trello Boards", Operator: OpSite, Value: "trello.com", Icon: "fa-trello"},
	)

	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}
