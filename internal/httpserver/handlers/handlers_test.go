package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dorkpilot/dorkpilot/internal/domain"
	"github.com/dorkpilot/dorkpilot/internal/httpserver/deps"
	"github.com/dorkpilot/dorkpilot/internal/index"
	"github.com/dorkpilot/dorkpilot/internal/logger"
)

func testDeps(t *testing.T) deps.Deps {
	t.Helper()

	idx := index.NewMemoryIndex()
	idx.UpdateCatalog(&domain.Catalog{
		DarkWebEngines: []domain.Choice{{Label: "Ahmia", Value: "ahmia.fi"}},
		GovtSites:      []domain.Choice{{Label: "All Federal (Canada.ca)", Value: "canada.ca"}},
		SourceTypes:    []domain.Choice{{Label: "PDF Documents", Value: "filetype:pdf"}},
		GeoKeywords: []domain.GeoKeyword{
			{Label: "Ontario", Value: "ontario.ca", Kind: domain.GeoProvince},
			{Label: "Toronto", Value: `"toronto"`, Kind: domain.GeoCity},
		},
	})

	return deps.Deps{
		Logger:          logger.New("error", false),
		StartTime:       time.Now(),
		TimeNow:         func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) },
		MemoryIndex:     idx,
		SearchEngineURL: "https://www.google.com/search",
		FixFeedbackTTL:  8 * time.Second,
	}
}

func TestCompileHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantQuery  string
	}{
		{
			name:       "two enabled parts",
			body:       `{"parts":[{"id":"1","operator":"site:","value":"gc.ca","enabled":true},{"id":"2","operator":"filetype:","value":"pdf","enabled":true}]}`,
			wantStatus: http.StatusOK,
			wantQuery:  "site:gc.ca filetype:pdf",
		},
		{
			name:       "disabled part skipped",
			body:       `{"parts":[{"id":"1","operator":"site:","value":"gc.ca","enabled":false}]}`,
			wantStatus: http.StatusOK,
			wantQuery:  "",
		},
		{
			name:       "malformed body",
			body:       `{"parts":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/query/compile", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			Compile(testDeps(t))(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp struct {
				Query string `json:"query"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Query != tt.wantQuery {
				t.Errorf("query = %q, want %q", resp.Query, tt.wantQuery)
			}
		})
	}
}

func TestFixHandler(t *testing.T) {
	body := `{"parts":[{"id":"1","operator":"filetype:","value":".pdf","enabled":true}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/query/fix", strings.NewReader(body))
	rec := httptest.NewRecorder()

	Fix(testDeps(t))(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Parts          []domain.Part `json:"parts"`
		Report         []string      `json:"report"`
		DismissAfterMS int64         `json:"dismiss_after_ms"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Parts) != 1 || resp.Parts[0].Value != "pdf" {
		t.Errorf("fixed parts = %+v, want filetype value pdf", resp.Parts)
	}
	if len(resp.Report) != 1 {
		t.Errorf("report = %v, want one finding", resp.Report)
	}
	if resp.DismissAfterMS != 8000 {
		t.Errorf("dismiss_after_ms = %d, want 8000", resp.DismissAfterMS)
	}
}

func TestSuggestHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/query/suggest", strings.NewReader(`{"parts":[]}`))
	rec := httptest.NewRecorder()

	Suggest(testDeps(t))(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Suggestions []domain.Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Suggestions) != domain.MaxSuggestions {
		t.Errorf("suggestion count = %d, want %d", len(resp.Suggestions), domain.MaxSuggestions)
	}
}

func TestSearchHandler(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "query redirects to engine",
			target:       "/api/search?q=" + "site%3Agc.ca+filetype%3Apdf",
			wantStatus:   http.StatusFound,
			wantLocation: "https://www.google.com/search?q=site%3Agc.ca+filetype%3Apdf",
		},
		{
			name:       "empty query rejected",
			target:     "/api/search?q=",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "whitespace query rejected",
			target:     "/api/search?q=%20%20",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			Search(testDeps(t))(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" && rec.Header().Get("Location") != tt.wantLocation {
				t.Errorf("Location = %q, want %q", rec.Header().Get("Location"), tt.wantLocation)
			}
		})
	}
}

func TestCatalogTableHandler(t *testing.T) {
	d := testDeps(t)
	r := chi.NewRouter()
	r.Get("/api/catalog/{name}", CatalogTable(d))

	tests := []struct {
		name       string
		table      string
		wantStatus int
	}{
		{name: "known table", table: "govt_sites", wantStatus: http.StatusOK},
		{name: "geo keywords", table: "geo_keywords", wantStatus: http.StatusOK},
		{name: "unknown table", table: "nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/catalog/"+tt.table, nil)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestComposeGeoHandler(t *testing.T) {
	body := `{"selected":["Ontario","Toronto"],"custom":"Kingston"}`
	req := httptest.NewRequest(http.MethodPost, "/api/geo/compose", strings.NewReader(body))
	rec := httptest.NewRecorder()

	ComposeGeo(testDeps(t))(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := `site:.ca (ontario.ca OR "toronto" OR "Kingston")`
	if resp.Value != want {
		t.Errorf("value = %q, want %q", resp.Value, want)
	}
}

func TestDefaultWorkbenchHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/workbench/default", nil)
	rec := httptest.NewRecorder()

	DefaultWorkbench(testDeps(t))(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Parts []domain.Part `json:"parts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Parts) != 2 {
		t.Fatalf("seed parts = %d, want 2", len(resp.Parts))
	}
	if resp.Parts[0].Operator != domain.OpSite || resp.Parts[0].Value != "gc.ca" {
		t.Errorf("first seed part = %+v, want site:gc.ca", resp.Parts[0])
	}
}
