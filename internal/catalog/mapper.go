package catalog

import (
	"fmt"

	"github.com/dorkpilot/dorkpilot/internal/domain"
)

// Mapper converts a parsed catalog file into domain catalog tables.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapCatalog validates and converts a CatalogFile to a domain.Catalog.
// Entries missing a label or value are skipped rather than rejected;
// the whole file is rejected only when a table the workbench depends on
// ends up empty.
func (m *Mapper) MapCatalog(file *CatalogFile) (*domain.Catalog, error) {
	c := &domain.Catalog{
		DarkWebEngines: mapChoices(file.DarkWebEngines),
		GovtSites:      mapChoices(file.GovtSites),
		SourceTypes:    mapChoices(file.SourceTypes),
		Resources:      make(map[string][]domain.Resource, len(file.Resources)),
	}

	for _, e := range file.GeoKeywords {
		if e.Label == "" || e.Value == "" {
			continue
		}
		kind := domain.GeoKind(e.Kind)
		switch kind {
		case domain.GeoRegion, domain.GeoProvince, domain.GeoCity:
		default:
			return nil, fmt.Errorf("geo keyword %q has unknown kind %q", e.Label, e.Kind)
		}
		c.GeoKeywords = append(c.GeoKeywords, domain.GeoKeyword{
			Label: e.Label,
			Value: e.Value,
			Kind:  kind,
		})
	}

	for section, entries := range file.Resources {
		for _, e := range entries {
			if e.Name == "" || e.URL == "" {
				continue
			}
			c.Resources[section] = append(c.Resources[section], domain.Resource{
				Name:        e.Name,
				URL:         e.URL,
				Category:    e.Category,
				Description: e.Description,
			})
		}
	}

	for _, e := range file.CommonDorks {
		if e.Label == "" || e.Query == "" {
			continue
		}
		c.CommonDorks = append(c.CommonDorks, domain.CommonDork{Label: e.Label, Query: e.Query})
	}

	switch {
	case len(c.DarkWebEngines) == 0:
		return nil, fmt.Errorf("catalog has no dark web engines")
	case len(c.GovtSites) == 0:
		return nil, fmt.Errorf("catalog has no government sites")
	case len(c.SourceTypes) == 0:
		return nil, fmt.Errorf("catalog has no source type presets")
	case len(c.GeoKeywords) == 0:
		return nil, fmt.Errorf("catalog has no geographic keywords")
	}

	return c, nil
}

func mapChoices(entries []ChoiceEntry) []domain.Choice {
	choices := make([]domain.Choice, 0, len(entries))
	for _, e := range entries {
		if e.Label == "" || e.Value == "" {
			continue
		}
		choices = append(choices, domain.Choice{Label: e.Label, Value: e.Value})
	}
	return choices
}
