package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dorkpilot/dorkpilot/internal/index"
	"github.com/dorkpilot/dorkpilot/internal/logger"
)

const testCatalog = `dark_web_engines:
  - label: "Ahmia"
    value: "ahmia.fi"
govt_sites:
  - label: "All Federal (Canada.ca)"
    value: "canada.ca"
source_types:
  - label: "PDF Documents"
    value: "filetype:pdf"
geo_keywords:
  - label: "Ontario"
    value: "ontario.ca"
    kind: "province"
resources:
  canadian:
    - name: "SEDAR+"
      url: "https://www.sedarplus.ca"
      description: "Canadian securities filings"
common_dorks:
  - label: "Exposed directories"
    query: "intitle:\"index of\" site:gc.ca"
`

func writeTestCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(testCatalog), 0o600); err != nil {
		t.Fatalf("failed to write test catalog: %v", err)
	}
	return path
}

func TestReloadUpdatesIndex(t *testing.T) {
	idx := index.NewMemoryIndex()
	log := logger.New("error", false)

	cr := NewCatalogReloader(writeTestCatalog(t), idx, log, time.Hour, make(chan struct{}))

	if err := cr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	cat := idx.Catalog()
	if cat == nil {
		t.Fatal("index catalog is nil after reload")
	}
	if len(cat.GovtSites) != 1 {
		t.Errorf("GovtSites length = %d, want 1", len(cat.GovtSites))
	}
	if idx.GetLastReload().IsZero() {
		t.Error("last reload timestamp not set")
	}
}

func TestReloadMissingFileKeepsSnapshot(t *testing.T) {
	idx := index.NewMemoryIndex()
	log := logger.New("error", false)

	cr := NewCatalogReloader(writeTestCatalog(t), idx, log, time.Hour, make(chan struct{}))
	if err := cr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	before := idx.Catalog()

	broken := NewCatalogReloader(filepath.Join(t.TempDir(), "missing.yaml"), idx, log, time.Hour, make(chan struct{}))
	if err := broken.Reload(context.Background()); err == nil {
		t.Fatal("Reload() with missing file should fail")
	}

	if idx.Catalog() != before {
		t.Error("failed reload must not replace the catalog snapshot")
	}
}
