package domain

import "strings"

// geoBase anchors every composed geo scope to the Canadian TLD.
const geoBase = "site:.ca"

// Scope is the source of truth of the geo-scope combinator: the labels
// of selected catalog keywords in toggle order, plus one free-text
// custom location. The composed query value is derived from it, never
// the other way around during editing.
type Scope struct {
	Selected []string `json:"selected"`
	Custom   string   `json:"custom"`
}

// Toggle flips inclusion of a catalog keyword, preserving the toggle
// order of the remaining selections.
func (s *Scope) Toggle(label string) {
	for i, l := range s.Selected {
		if l == label {
			s.Selected = append(s.Selected[:i], s.Selected[i+1:]...)
			return
		}
	}
	s.Selected = append(s.Selected, label)
}

// Compose derives the operator value: the bare "site:.ca" when nothing
// is selected, otherwise "site:.ca (<clause> OR <clause> ...)" with one
// clause per selected catalog keyword (in toggle order) and a final
// quoted clause for the custom location. Selections that no longer
// exist in the catalog are silently dropped.
func (s Scope) Compose(c *Catalog) string {
	var clauses []string
	for _, label := range s.Selected {
		if kw, ok := c.GeoKeyword(label); ok {
			clauses = append(clauses, kw.Value)
		}
	}
	if custom := strings.TrimSpace(s.Custom); custom != "" {
		clauses = append(clauses, `"`+custom+`"`)
	}
	if len(clauses) == 0 {
		return geoBase
	}
	return geoBase + " (" + strings.Join(clauses, " OR ") + ")"
}

// ParseScope reconstructs a Scope from a previously composed value, for
// recalling presets that were persisted as raw strings. Catalog entries
// are recovered by substring-testing their fragment against the stored
// group; whatever OR-segments remain unmatched are treated as the
// custom location. The round-trip is inherently lossy (a custom text
// identical to a catalog fragment reads back as a selection), which is
// why live editing keeps the Scope itself as the source of truth.
func ParseScope(value string, c *Catalog) Scope {
	var s Scope

	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(value), geoBase))
	if rest == "" {
		return s
	}
	rest = strings.TrimPrefix(rest, "(")
	rest = strings.TrimSuffix(rest, ")")

	for _, kw := range c.GeoKeywords {
		if kw.Value != "" && strings.Contains(rest, kw.Value) {
			s.Selected = append(s.Selected, kw.Label)
			rest = strings.Replace(rest, kw.Value, "", 1)
		}
	}

	for _, seg := range strings.Split(rest, " OR ") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		s.Custom = strings.Trim(seg, `"`)
		break
	}
	return s
}
