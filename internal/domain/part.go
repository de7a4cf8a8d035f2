package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Part is one row of the query workbench: an operator, a free-form or
// preset value, and an enabled flag. Order of parts in a list is
// significant; the ID is only used for addressing, never for ordering.
type Part struct {
	ID       string   `json:"id"`
	Operator Operator `json:"operator"`
	Value    string   `json:"value"`
	Enabled  bool     `json:"enabled"`
}

// NewPart creates an enabled part with a fresh opaque ID.
func NewPart(op Operator, value string) Part {
	return Part{
		ID:       uuid.NewString(),
		Operator: op,
		Value:    value,
		Enabled:  true,
	}
}

// Blank reports whether the part's value is empty after trimming.
// Blank parts never reach the compiled query, enabled or not.
func (p Part) Blank() bool {
	return strings.TrimSpace(p.Value) == ""
}

// DefaultParts is the workbench seed for a fresh session: federal
// documents in PDF form, the most common starting point.
func DefaultParts() []Part {
	return []Part{
		NewPart(OpSite, "gc.ca"),
		NewPart(OpFiletype, "pdf"),
	}
}
