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

type createDorkRequest struct {
	Name        string `json:"name"`
	Query       string `json:"query"`
	Description string `json:"description"`
}

type dorksResponse struct {
	Dorks []*domain.SavedDork `json:"dorks"`
}

// ListDorks returns the saved-dork library, newest first.
func ListDorks(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)
	return func(w http.ResponseWriter, r *http.Request) {
		dorks, err := store.GetAllDorks(r.Context())
		if err != nil {
			d.Logger.Error("failed to list dorks", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to list dorks")
			return
		}
		writeJSON(w, http.StatusOK, dorksResponse{Dorks: dorks})
	}
}

// CreateDork saves a named query to the library. The name is the user's
// handle on the entry, so a blank one is rejected.
func CreateDork(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)
	now := d.TimeNow
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDorkRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}
		query := strings.TrimSpace(req.Query)
		if query == "" {
			writeError(w, http.StatusBadRequest, "query is required")
			return
		}

		dork := domain.NewSavedDork(name, query, req.Description, now())
		if err := store.SaveDork(r.Context(), &dork); err != nil {
			d.Logger.Error("failed to save dork", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save dork")
			return
		}

		d.Logger.Info("dork saved",
			logger.String("id", dork.ID),
			logger.String("name", dork.Name))

		writeJSON(w, http.StatusCreated, dork)
	}
}

// DeleteDork removes a saved dork by ID.
func DeleteDork(d deps.Deps) http.HandlerFunc {
	store := redisstore.NewStore(d.RedisClient)
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "id is required")
			return
		}

		if _, err := store.GetDork(r.Context(), id); err != nil {
			writeError(w, http.StatusNotFound, "dork not found")
			return
		}

		if err := store.DeleteDork(r.Context(), id); err != nil {
			d.Logger.Error("failed to delete dork", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to delete dork")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
