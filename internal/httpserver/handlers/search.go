package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dorkpilot/dorkpilot/internal/httpserver/deps"
	"github.com/dorkpilot/dorkpilot/internal/logger"
)

// Search hands a compiled query off to the configured external search engine.
// An empty query is a client error, there is nothing to search for.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			writeError(w, http.StatusBadRequest, "empty query")
			return
		}

		target := d.SearchEngineURL + "?q=" + url.QueryEscape(query)

		d.Logger.Info("search hand-off",
			logger.String("query", query))

		http.Redirect(w, r, target, http.StatusFound)
	}
}
