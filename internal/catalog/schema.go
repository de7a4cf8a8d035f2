package catalog

// CatalogFile is the top-level structure of catalog.yaml.
type CatalogFile struct {
	DarkWebEngines []ChoiceEntry              `yaml:"dark_web_engines"`
	GovtSites      []ChoiceEntry              `yaml:"govt_sites"`
	SourceTypes    []ChoiceEntry              `yaml:"source_types"`
	GeoKeywords    []GeoEntry                 `yaml:"geo_keywords"`
	Resources      map[string][]ResourceEntry `yaml:"resources"`
	CommonDorks    []DorkEntry                `yaml:"common_dorks"`
}

// ChoiceEntry is a labelled preset value.
type ChoiceEntry struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// GeoEntry is a geographic keyword with its display grouping.
type GeoEntry struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Kind  string `yaml:"kind"`
}

// ResourceEntry is one curated directory item.
type ResourceEntry struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Category    string `yaml:"category"`
	Description string `yaml:"description,omitempty"`
}

// DorkEntry is a ready-made example query.
type DorkEntry struct {
	Label string `yaml:"label"`
	Query string `yaml:"query"`
}
