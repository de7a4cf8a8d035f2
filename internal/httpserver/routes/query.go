package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/dorkpilot/dorkpilot/internal/httpserver/deps"
	"github.com/dorkpilot/dorkpilot/internal/httpserver/handlers"
	"github.com/dorkpilot/dorkpilot/internal/httpserver/mw"
)

func init() { Register(registerQuery) }

func registerQuery(r chi.Router, d deps.Deps) {
	sub := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	sub.Post("/api/query/compile", handlers.Compile(d))
	sub.Post("/api/query/suggest", handlers.Suggest(d))
	sub.Post("/api/query/fix", handlers.Fix(d))
	sub.Get("/api/workbench/default", handlers.DefaultWorkbench(d))
}
