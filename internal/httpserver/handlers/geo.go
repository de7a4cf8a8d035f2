package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dorkpilot/dorkpilot/internal/domain"
	"github.com/dorkpilot/dorkpilot/internal/httpserver/deps"
	"github.com/dorkpilot/dorkpilot/internal/logger"
	redisstore "github.com/dorkpilot/dorkpilot/internal/store/redis"
)

type composeRequest struct {
	Selected []string `json:"selected"`
	Custom   string   `json:"custom"`
}

type composeResponse struct {
	Value string `json:"value"`
}

type createPresetRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type presetsResponse struct {
	Presets []*domain.GeoPreset `json:"presets"`
}

// ComposeGeo projects a geo selection state onto a single site-restricted clause.
func ComposeGeo(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req composeRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		cat := d.MemoryIndex.Catalog()
		if cat.Size() == 0 {
			writeError(w, http.StatusServiceUnavailable, "catalog not loaded")
			return
		}

		scope := domain.Scope{Selected: req.Selected, Custom: req.Custom}
		writeJSON(w, http.StatusOK, composeResponse{Value: scope.Compose(cat)})
	}
}

// ListGeoPresets returns saved geo presets, newest first.
func ListGeoPresets(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)
	return func(w http.ResponseWriter, r *http.Request) {
		presets, err := store.GetAllGeoPresets(r.Context())
		if err != nil {
			d.Logger.Error("failed to list geo presets", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to list geo presets")
			return
		}
		writeJSON(w, http.StatusOK, presetsResponse{Presets: presets})
	}
}

// CreateGeoPreset saves a composed geo scope under a user-chosen name.
func CreateGeoPreset(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)
	now := d.TimeNow
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPresetRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}
		value := strings.TrimSpace(req.Value)
		if value == "" {
			writeError(w, http.StatusBadRequest, "value is required")
			return
		}

		preset := domain.NewGeoPreset(name, value, now())
		if err := store.SaveGeoPreset(r.Context(), &preset); err != nil {
			d.Logger.Error("failed to save geo preset", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save geo preset")
			return
		}

		d.Logger.Info("geo preset saved",
			logger.String("id", preset.ID),
			logger.String("name", preset.Name))

		writeJSON(w, http.StatusCreated, preset)
	}
}

// DeleteGeoPreset removes a geo preset by ID.
func DeleteGeoPreset(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "id is required")
			return
		}

		if _, err := store.GetGeoPreset(r.Context(), id); err != nil {
			writeError(w, http.StatusNotFound, "geo preset not found")
			return
		}

		if err := store.DeleteGeoPreset(r.Context(), id); err != nil {
			d.Logger.Error("failed to delete geo preset", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to delete geo preset")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
