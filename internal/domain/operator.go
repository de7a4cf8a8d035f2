package domain

import "strings"

// Operator identifies how a query part is rendered and which input
// affordance the UI should offer for its value.
//
// The tag doubles as the display label shown in the operator picker,
// which is why composite and logical tags carry human-readable text
// (e.g. "- (Exclude)"). Rendering never uses the tag directly; it
// always goes through the operator table below.
type Operator string

const (
	// Logic
	OpExclude  Operator = "- (Exclude)"
	OpOr       Operator = "OR"
	OpWildcard Operator = "* (Wildcard)"

	// Standard
	OpSite        Operator = "site:"
	OpExcludeSite Operator = "-site:"
	OpFiletype    Operator = "filetype:"
	OpExt         Operator = "ext:"
	OpIntitle     Operator = "intitle:"
	OpIntext      Operator = "intext:"
	OpInurl       Operator = "inurl:"

	// Quick presets (value is a fully-formed sub-expression)
	OpSiteGovt    Operator = "site: (Canadian Govt)"
	OpSiteDarkWeb Operator = "site: (Dark Web)"
	OpSourceType  Operator = "Source Type:"
	OpGeoScope    Operator = "Geo Scope:"

	// Time & date
	OpDateRange Operator = "daterange:"
	OpBefore    Operator = "before:"
	OpAfter     Operator = "after:"

	// Advanced
	OpCache      Operator = "cache:"
	OpRelated    Operator = "related:"
	OpAllintitle Operator = "allintitle:"
	OpAllinurl   Operator = "allinurl:"
	OpAllintext  Operator = "allintext:"
)

// Class groups operators by how their value is interpreted.
type Class int

const (
	ClassLiteral   Class = iota // rendered as keyword + value
	ClassLogical                // exclude / or / wildcard
	ClassComposite              // value is a preset sub-expression
	ClassDate                   // calendar or julian-range value
)

// Affordance names the input widget the UI shell should present.
type Affordance string

const (
	AffordText      Affordance = "text"
	AffordFiletype  Affordance = "filetype"
	AffordDate      Affordance = "date"
	AffordDateRange Affordance = "daterange"
	AffordDarkWeb   Affordance = "darkweb-select"
	AffordGovt      Affordance = "govt-select"
	AffordSource    Affordance = "source-select"
	AffordGeo       Affordance = "geo-select"
)

// OpSpec describes one operator: its display label, the text actually
// emitted in front of the value when compiling, and UI metadata.
type OpSpec struct {
	Label      string
	Render     string
	Class      Class
	Affordance Affordance
}

var operatorSpecs = map[Operator]OpSpec{
	OpExclude:  {Label: "- (Exclude)", Render: "-", Class: ClassLogical},
	OpOr:       {Label: "OR (Either term)", Render: "OR ", Class: ClassLogical},
	OpWildcard: {Label: "* (Wildcard)", Render: "*", Class: ClassLogical},

	OpSite:        {Label: "site:", Render: "site:", Class: ClassLiteral},
	OpExcludeSite: {Label: "-site: (Exclude site)", Render: "-site:", Class: ClassLiteral},
	OpFiletype:    {Label: "filetype:", Render: "filetype:", Class: ClassLiteral, Affordance: AffordFiletype},
	OpExt:         {Label: "ext:", Render: "ext:", Class: ClassLiteral, Affordance: AffordFiletype},
	OpIntitle:     {Label: "intitle:", Render: "intitle:", Class: ClassLiteral},
	OpIntext:      {Label: "intext:", Render: "intext:", Class: ClassLiteral},
	OpInurl:       {Label: "inurl:", Render: "inurl:", Class: ClassLiteral},

	OpSiteGovt:    {Label: "site: (Canada Govt)", Render: "site:", Class: ClassComposite, Affordance: AffordGovt},
	OpSiteDarkWeb: {Label: "site: (Dark Web)", Render: "site:", Class: ClassComposite, Affordance: AffordDarkWeb},
	OpSourceType:  {Label: "Source Type", Render: "", Class: ClassComposite, Affordance: AffordSource},
	OpGeoScope:    {Label: "Geo Scope (Canada)", Render: "", Class: ClassComposite, Affordance: AffordGeo},

	OpDateRange: {Label: "daterange:", Render: "daterange:", Class: ClassDate, Affordance: AffordDateRange},
	OpBefore:    {Label: "before:", Render: "before:", Class: ClassDate, Affordance: AffordDate},
	OpAfter:     {Label: "after:", Render: "after:", Class: ClassDate, Affordance: AffordDate},

	OpCache:      {Label: "cache:", Render: "cache:", Class: ClassLiteral},
	OpRelated:    {Label: "related:", Render: "related:", Class: ClassLiteral},
	OpAllintitle: {Label: "allintitle:", Render: "allintitle:", Class: ClassLiteral},
	OpAllinurl:   {Label: "allinurl:", Render: "allinurl:", Class: ClassLiteral},
	OpAllintext:  {Label: "allintext:", Render: "allintext:", Class: ClassLiteral},
}

// Spec returns the rendering spec for op. ok is false for tags outside
// the fixed enumeration; such parts contribute nothing to a compiled
// query instead of failing.
func Spec(op Operator) (OpSpec, bool) {
	s, ok := operatorSpecs[op]
	if ok && s.Affordance == "" {
		s.Affordance = AffordText
	}
	return s, ok
}

// Known reports whether op belongs to the fixed enumeration.
func Known(op Operator) bool {
	_, ok := operatorSpecs[op]
	return ok
}

// IsSiteFamily reports whether op constrains results by site (the plain
// site: operator and both site presets). The exclude variant -site: is
// deliberately not part of the family: excluding several sites is fine.
func (op Operator) IsSiteFamily() bool {
	return strings.HasPrefix(string(op), "site:")
}

// Base returns the first space-delimited token of the tag, used when
// checking for a redundant operator prefix typed into the value field.
// Example: "- (Exclude)" -> "-", "site: (Dark Web)" -> "site:".
func (op Operator) Base() string {
	fields := strings.Fields(string(op))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
