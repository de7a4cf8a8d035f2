package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dorkpilot/dorkpilot/internal/domain"
	"github.com/dorkpilot/dorkpilot/internal/httpserver/deps"
)

// CatalogTable serves one of the static catalog tables by name.
func CatalogTable(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := d.MemoryIndex.Catalog()
		if cat.Size() == 0 {
			writeError(w, http.StatusServiceUnavailable, "catalog not loaded")
			return
		}

		name := chi.URLParam(r, "name")
		table, ok := catalogTable(cat, name)
		if !ok {
			writeError(w, http.StatusNotFound, "unknown catalog table: "+name)
			return
		}

		writeJSON(w, http.StatusOK, table)
	}
}

func catalogTable(c *domain.Catalog, name string) (any, bool) {
	switch name {
	case "dark_web_engines":
		return c.DarkWebEngines, true
	case "govt_sites":
		return c.GovtSites, true
	case "source_types":
		return c.SourceTypes, true
	case "geo_keywords":
		return c.GeoKeywords, true
	case "resources":
		return c.Resources, true
	case "common_dorks":
		return c.CommonDorks, true
	default:
		return nil, false
	}
}
