package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDorkDescription is attached to dorks saved straight from the
// workbench without a user-written description.
const DefaultDorkDescription = "Built using DorkBuilder"

// SavedDork is an immutable record of a compiled query, created only by
// an explicit user save and deleted only by an explicit user removal.
type SavedDork struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Query       string    `json:"query"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewSavedDork builds a saved-dork record. An empty description falls
// back to the workbench default.
func NewSavedDork(name, query, description string, now time.Time) SavedDork {
	if description == "" {
		description = DefaultDorkDescription
	}
	return SavedDork{
		ID:          uuid.NewString(),
		Name:        name,
		Query:       query,
		Description: description,
		CreatedAt:   now,
	}
}

// GeoPreset is a user-named saved value of the Geo Scope operator,
// independent of any part's lifecycle.
type GeoPreset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGeoPreset builds a geo-preset record.
func NewGeoPreset(name, value string, now time.Time) GeoPreset {
	return GeoPreset{
		ID:        uuid.NewString(),
		Name:      name,
		Value:     value,
		CreatedAt: now,
	}
}
