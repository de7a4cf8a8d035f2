package index

import (
	"testing"

	"github.com/dorkpilot/dorkpilot/internal/domain"
)

func TestMemoryIndex(t *testing.T) {
	idx := NewMemoryIndex()

	if idx.Count() != 0 {
		t.Errorf("Count() = %d, want 0 before first reload", idx.Count())
	}
	if !idx.GetLastReload().IsZero() {
		t.Errorf("GetLastReload() should be zero before first reload")
	}

	idx.UpdateCatalog(&domain.Catalog{
		GovtSites:   []domain.Choice{{Label: "Federal", Value: "gc.ca"}},
		GeoKeywords: []domain.GeoKeyword{{Label: "Ontario", Value: `"Ontario" OR "ON"`, Kind: domain.GeoProvince}},
	})

	if idx.Count() != 2 {
		t.Errorf("Count() = %d, want 2", idx.Count())
	}
	if idx.GetLastReload().IsZero() {
		t.Errorf("GetLastReload() not set by UpdateCatalog")
	}
	if _, ok := idx.Catalog().GeoKeyword("Ontario"); !ok {
		t.Errorf("snapshot missing Ontario keyword")
	}
}
