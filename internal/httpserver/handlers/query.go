package handlers

import (
	"net/http"
	"time"

	"github.com/dorkpilot/dorkpilot/internal/domain"
	"github.com/dorkpilot/dorkpilot/internal/httpserver/deps"
	"github.com/dorkpilot/dorkpilot/internal/logger"
)

type partsRequest struct {
	Parts []domain.Part `json:"parts"`
}

type compileResponse struct {
	Query string `json:"query"`
}

type suggestResponse struct {
	Suggestions []domain.Suggestion `json:"suggestions"`
}

type fixResponse struct {
	Parts          []domain.Part `json:"parts"`
	Report         []string      `json:"report"`
	DismissAfterMS int64         `json:"dismiss_after_ms"`
}

// Compile renders a workbench into its final query string.
func Compile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req partsRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		query := domain.Compile(req.Parts)
		d.Logger.Debug("compiled query",
			logger.Int("parts", len(req.Parts)),
			logger.String("query", query))

		writeJSON(w, http.StatusOK, compileResponse{Query: query})
	}
}

// Suggest returns context-aware next-step suggestions for a workbench.
func Suggest(d deps.Deps) http.HandlerFunc {
	now := d.TimeNow
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req partsRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		suggestions := domain.Suggest(req.Parts, now())
		writeJSON(w, http.StatusOK, suggestResponse{Suggestions: suggestions})
	}
}

// Fix runs the auto-fix rules over a workbench and returns the repaired
// parts with a human-readable report.
func Fix(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req partsRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		fixed, report := domain.Fix(req.Parts)
		d.Logger.Debug("auto-fix applied",
			logger.Int("parts", len(req.Parts)),
			logger.Int("findings", len(report)))

		writeJSON(w, http.StatusOK, fixResponse{
			Parts:          fixed,
			Report:         report,
			DismissAfterMS: d.FixFeedbackTTL.Milliseconds(),
		})
	}
}
