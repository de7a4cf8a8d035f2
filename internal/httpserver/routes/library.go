package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dorkpilot/dorkpilot/internal/httpserver/deps"
	"github.com/dorkpilot/dorkpilot/internal/httpserver/handlers"
	"github.com/dorkpilot/dorkpilot/internal/httpserver/mw"
)

func init() { Register(registerLibrary) }

func registerLibrary(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:         d.RateLimitBurst,
		RefillPerMin:  d.RateLimitPerMin,
		MaxEntries:    d.RateLimitMaxEntries,
		SweepInterval: time.Minute,
		IdleTTL:       15 * time.Minute,
		TrustProxy:    d.TrustProxy,
	})
	sub := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger), limit)

	sub.Get("/api/dorks", handlers.ListDorks(d))
	sub.Post("/api/dorks", handlers.CreateDork(d))
	sub.Delete("/api/dorks/{id}", handlers.DeleteDork(d))

	sub.Get("/api/geo/presets", handlers.ListGeoPresets(d))
	sub.Post("/api/geo/presets", handlers.CreateGeoPreset(d))
	sub.Delete("/api/geo/presets/{id}", handlers.DeleteGeoPreset(d))

	sub.Post("/api/geo/compose", handlers.ComposeGeo(d))
}
