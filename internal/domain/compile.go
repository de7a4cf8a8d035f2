package domain

import "strings"

// Compile derives the flat query string from an ordered parts list.
//
// Disabled parts, blank parts and parts with an unrecognized operator
// tag are skipped. Each remaining part renders as render-operator
// immediately followed by its value (no separator), and the resulting
// tokens are joined with single spaces. The function is pure and total:
// there is no validation, escaping or deduplication here.
func Compile(parts []Part) string {
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if !p.Enabled || p.Blank() {
			continue
		}
		spec, ok := Spec(p.Operator)
		if !ok {
			continue
		}
		tokens = append(tokens, spec.Render+p.Value)
	}
	return strings.Join(tokens, " ")
}
