package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/dorkpilot/dorkpilot/internal/httpserver/deps"
	"github.com/dorkpilot/dorkpilot/internal/httpserver/handlers"
	"github.com/dorkpilot/dorkpilot/internal/httpserver/mw"
)

func init() { Register(registerCatalog) }

func registerCatalog(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/api/catalog/{name}", handlers.CatalogTable(d))
}
