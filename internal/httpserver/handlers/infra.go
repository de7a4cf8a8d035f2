package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/dorkpilot/dorkpilot/internal/httpserver/deps"
)

type componentStatus struct {
	OK            bool   `json:"ok"`
	EntriesLoaded *int   `json:"entries_loaded,omitempty"`
	LastReload    string `json:"last_reload,omitempty"`
	Mode          string `json:"mode,omitempty"`
	Impact        string `json:"impact,omitempty"`
	Error         string `json:"error,omitempty"`
}

type infraResponse struct {
	ServiceMode string                     `json:"service_mode"`
	Components  map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := d.MemoryIndex.Count()
		lastReload := d.MemoryIndex.GetLastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = lastReload.Format("2006-01-02 15:04:05")
		}

		components := map[string]componentStatus{
			"catalog": {
				OK:            entries > 0,
				EntriesLoaded: &entries,
				LastReload:    lastReloadStr,
			},
			"redis": checkRedis(d),
			"builder": {
				OK:   true,
				Mode: "compile+suggest+autofix",
			},
		}

		writeJSON(w, http.StatusOK, infraResponse{
			ServiceMode: determineServiceMode(components),
			Components:  components,
		})
	}
}

func determineServiceMode(components map[string]componentStatus) string {
	// No catalog means suggestions and geo composition cannot work
	if cat, exists := components["catalog"]; exists {
		if !cat.OK || (cat.EntriesLoaded != nil && *cat.EntriesLoaded == 0) {
			return "critical"
		}
	}

	// Redis down only disables the saved library, the builder still works
	if rd, exists := components["redis"]; exists && !rd.OK {
		return "degraded"
	}

	return "full"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "saved-library-disabled",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "saved-library-disabled",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "saved-library-enabled",
		Error:  "none",
	}
}
