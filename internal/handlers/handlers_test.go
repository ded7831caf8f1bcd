package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"playcraft-backend/internal/credstore"
	"playcraft-backend/internal/llm"
	"playcraft-backend/internal/models"
)

type stubGenerator struct {
	game *models.Game
	err  error
}

func (s *stubGenerator) Generate(ctx context.Context, topic string, settings *models.GenerationSettings) (*models.Game, error) {
	return s.game, s.err
}

func TestGenerateHandler(t *testing.T) {
	okGame := &models.Game{Title: "Quiz", Content: "<!DOCTYPE html><html></html>"}

	tests := []struct {
		name       string
		body       string
		gen        *stubGenerator
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			body:       `{"topic":"lịch sử"}`,
			gen:        &stubGenerator{game: okGame},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid json",
			body:       `{"topic":`,
			gen:        &stubGenerator{game: okGame},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "blank topic",
			body:       `{"topic":"   "}`,
			gen:        &stubGenerator{game: okGame},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "credential failure",
			body:       `{"topic":"toán"}`,
			gen:        &stubGenerator{err: &llm.AuthError{Backend: "gemini"}},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "CREDENTIAL_ERROR",
		},
		{
			name:       "nil game",
			body:       `{"topic":"toán"}`,
			gen:        &stubGenerator{},
			wantStatus: http.StatusBadGateway,
			wantCode:   "GENERATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewGameHandler(tt.gen)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/games/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Generate(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantCode != "" {
				var resp models.ErrorResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decode error body: %v", err)
				}
				if resp.Error.Code != tt.wantCode {
					t.Errorf("error code = %q, want %q", resp.Error.Code, tt.wantCode)
				}
			}
		})
	}
}

func TestGenerateHandlerReturnsGameJSON(t *testing.T) {
	h := NewGameHandler(&stubGenerator{game: &models.Game{
		Title:   "Đố vui",
		Content: "<!DOCTYPE html><html><body>x</body></html>",
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/games/generate", strings.NewReader(`{"topic":"đố vui"}`))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)

	var game models.Game
	if err := json.Unmarshal(rec.Body.Bytes(), &game); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if game.Title != "Đố vui" || !strings.Contains(game.Content, "<body>") {
		t.Errorf("game = %+v", game)
	}
}

func TestArchetypesHandler(t *testing.T) {
	h := NewGameHandler(&stubGenerator{})
	rec := httptest.NewRecorder()
	h.Archetypes(rec, httptest.NewRequest(http.MethodGet, "/api/v1/games/archetypes", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Archetypes []archetypeDTO `json:"archetypes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Archetypes) < 20 {
		t.Errorf("archetypes = %d, catalog looks truncated", len(resp.Archetypes))
	}
	first := resp.Archetypes[0]
	if first.ID == "" || first.Name == "" || first.DefaultSettings.QuestionCount == 0 {
		t.Errorf("archetype entry incomplete: %+v", first)
	}
}

func credentialRouter(store credstore.Store) http.Handler {
	h := NewCredentialHandler(store, []string{"gemini", "openai"})
	r := chi.NewRouter()
	r.Put("/credentials/{backend}", h.Put)
	r.Get("/credentials", h.List)
	r.Delete("/credentials/{backend}", h.Delete)
	return r
}

func TestCredentialLifecycle(t *testing.T) {
	store := credstore.NewMemory()
	router := credentialRouter(store)

	// Store a key.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/credentials/gemini",
		strings.NewReader(`{"api_key":"sk-secret"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d: %s", rec.Code, rec.Body.String())
	}

	// Listing reports configuration, never the key.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/credentials", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "sk-secret") {
		t.Error("API key leaked in list response")
	}
	var resp struct {
		Backends []struct {
			Backend    string `json:"backend"`
			Configured bool   `json:"configured"`
		} `json:"backends"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	byName := map[string]bool{}
	for _, b := range resp.Backends {
		byName[b.Backend] = b.Configured
	}
	if !byName["gemini"] || byName["openai"] {
		t.Errorf("configured flags = %v", byName)
	}

	// Delete.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/credentials/gemini", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if _, ok, _ := store.Get(context.Background(), "gemini"); ok {
		t.Error("credential still present after delete")
	}
}

func TestCredentialValidation(t *testing.T) {
	router := credentialRouter(credstore.NewMemory())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/credentials/unknown",
		strings.NewReader(`{"api_key":"x"}`)))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown backend status = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/credentials/gemini",
		strings.NewReader(`{"api_key":"  "}`)))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("blank key status = %d, want 422", rec.Code)
	}
}
