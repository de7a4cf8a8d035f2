package handlers

import (
	"net/http"

	"github.com/dorkpilot/dorkpilot/internal/domain"
	"github.com/dorkpilot/dorkpilot/internal/httpserver/deps"
)

type workbenchResponse struct {
	Parts []domain.Part `json:"parts"`
}

// DefaultWorkbench returns the starting parts for a fresh session.
func DefaultWorkbench(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, workbenchResponse{Parts: domain.DefaultParts()})
	}
}
