package domain

// Choice is one selectable value of a composite operator, presented
// under a human-readable label (dark-web indexers, government domains,
// source-type presets).
type Choice struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// GeoKind classifies a geographic keyword for display grouping.
type GeoKind string

const (
	GeoRegion   GeoKind = "region"
	GeoProvince GeoKind = "province"
	GeoCity     GeoKind = "city"
)

// GeoKeyword is one entry of the geographic catalog. Value is a
// ready-made OR-fragment of quoted aliases, e.g. `"Ontario" OR "ON"`.
type GeoKeyword struct {
	Label string  `json:"label"`
	Value string  `json:"value"`
	Kind  GeoKind `json:"kind"`
}

// Resource is one entry of a curated OSINT directory.
type Resource struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// CommonDork is a ready-to-run example query shown to new users.
type CommonDork struct {
	Label string `json:"label"`
	Query string `json:"query"`
}

// Catalog bundles every static table the workbench consumes. The core
// never mutates a catalog; reloads swap in a fresh instance.
type Catalog struct {
	DarkWebEngines []Choice
	GovtSites      []Choice
	SourceTypes    []Choice
	GeoKeywords    []GeoKeyword
	Resources      map[string][]Resource
	CommonDorks    []CommonDork
}

// Size returns the total number of catalog entries, for diagnostics.
func (c *Catalog) Size() int {
	n := len(c.DarkWebEngines) + len(c.GovtSites) + len(c.SourceTypes) +
		len(c.GeoKeywords) + len(c.CommonDorks)
	for _, rs := range c.Resources {
		n += len(rs)
	}
	return n
}

// GeoKeyword looks up a geographic catalog entry by label.
func (c *Catalog) GeoKeyword(label string) (GeoKeyword, bool) {
	for _, kw := range c.GeoKeywords {
		if kw.Label == label {
			return kw, true
		}
	}
	return GeoKeyword{}, false
}
