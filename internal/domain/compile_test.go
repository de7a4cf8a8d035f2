package domain

import "testing"

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		parts    []Part
		expected string
	}{
		{
			name: "basic site and filetype",
			parts: []Part{
				{ID: "1", Operator: OpSite, Value: "gc.ca", Enabled: true},
				{ID: "2", Operator: OpFiletype, Value: "pdf", Enabled: true},
			},
			expected: "site:gc.ca filetype:pdf",
		},
		{
			name: "disabled parts are excluded",
			parts: []Part{
				{ID: "1", Operator: OpSite, Value: "gc.ca", Enabled: true},
				{ID: "2", Operator: OpFiletype, Value: "pdf", Enabled: false},
			},
			expected: "site:gc.ca",
		},
		{
			name: "blank values are excluded even when enabled",
			parts: []Part{
				{ID: "1", Operator: OpSite, Value: "   ", Enabled: true},
				{ID: "2", Operator: OpIntitle, Value: "audit", Enabled: true},
			},
			expected: "intitle:audit",
		},
		{
			name:     "empty list",
			parts:    nil,
			expected: "",
		},
		{
			name: "all disabled",
			parts: []Part{
				{ID: "1", Operator: OpSite, Value: "gc.ca", Enabled: false},
			},
			expected: "",
		},
		{
			name: "exclude renders without colon",
			parts: []Part{
				{ID: "1", Operator: OpExclude, Value: "stock", Enabled: true},
			},
			expected: "-stock",
		},
		{
			name: "or renders with separating space",
			parts: []Part{
				{ID: "1", Operator: OpIntitle, Value: "audit", Enabled: true},
				{ID: "2", Operator: OpOr, Value: "budget", Enabled: true},
			},
			expected: "intitle:audit OR budget",
		},
		{
			name: "wildcard renders as star",
			parts: []Part{
				{ID: "1", Operator: OpWildcard, Value: " of Canada", Enabled: true},
			},
			expected: "* of Canada",
		},
		{
			name: "site presets render as plain site:",
			parts: []Part{
				{ID: "1", Operator: OpSiteDarkWeb, Value: "ahmia.fi", Enabled: true},
				{ID: "2", Operator: OpSiteGovt, Value: "gc.ca", Enabled: true},
			},
			expected: "site:ahmia.fi site:gc.ca",
		},
		{
			name: "composite values pass through untouched",
			parts: []Part{
				{ID: "1", Operator: OpSourceType, Value: "(site:reddit.com OR site:quora.com)", Enabled: true},
			},
			expected: "(site:reddit.com OR site:quora.com)",
		},
		{
			name: "geo scope value keeps its own site prefix",
			parts: []Part{
				{ID: "1", Operator: OpGeoScope, Value: `site:.ca ("Toronto" OR "Ottawa")`, Enabled: true},
			},
			expected: `site:.ca ("Toronto" OR "Ottawa")`,
		},
		{
			name: "date operators render verbatim",
			parts: []Part{
				{ID: "1", Operator: OpAfter, Value: "2024-01-01", Enabled: true},
				{ID: "2", Operator: OpBefore, Value: "2025-01-01", Enabled: true},
				{ID: "3", Operator: OpDateRange, Value: "2460311-2460676", Enabled: true},
			},
			expected: "after:2024-01-01 before:2025-01-01 daterange:2460311-2460676",
		},
		{
			name: "unrecognized operator contributes nothing",
			parts: []Part{
				{ID: "1", Operator: Operator("bogus:"), Value: "x", Enabled: true},
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compile(tt.parts); got != tt.expected {
				t.Errorf("Compile() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCompileDeterminism(t *testing.T) {
	parts := []Part{
		{ID: "1", Operator: OpSite, Value: "gc.ca", Enabled: true},
		{ID: "2", Operator: OpExclude, Value: "stock", Enabled: true},
		{ID: "3", Operator: OpFiletype, Value: "pdf", Enabled: false},
	}

	first := Compile(parts)
	second := Compile(parts)
	if first != second {
		t.Errorf("Compile() not deterministic: %q != %q", first, second)
	}
}
