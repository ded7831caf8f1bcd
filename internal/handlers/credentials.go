package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"playcraft-backend/internal/credstore"
)

type CredentialHandler struct {
	store    credstore.Store
	backends []string // known backend names, in adapter order
}

func NewCredentialHandler(store credstore.Store, backends []string) *CredentialHandler {
	return &CredentialHandler{store: store, backends: backends}
}

func (h *CredentialHandler) known(backend string) bool {
	for _, b := range h.backends {
		if b == backend {
			return true
		}
	}
	return false
}

func (h *CredentialHandler) Put(w http.ResponseWriter, r *http.Request) {
	backend := chi.URLParam(r, "backend")
	if !h.known(backend) {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Unknown backend", r))
		return
	}

	var req struct {
		APIKey string `json:"api_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if strings.TrimSpace(req.APIKey) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorResp("VALIDATION_ERROR", "api_key is required", r))
		return
	}

	if err := h.store.Put(r.Context(), backend, strings.TrimSpace(req.APIKey)); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to store credential", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"backend": backend, "configured": true})
}

// List reports which backends have a key. Keys themselves never leave
// the store.
func (h *CredentialHandler) List(w http.ResponseWriter, r *http.Request) {
	configured, err := h.store.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to list credentials", r))
		return
	}

	set := make(map[string]bool, len(configured))
	for _, b := range configured {
		set[b] = true
	}

	out := make([]map[string]interface{}, len(h.backends))
	for i, b := range h.backends {
		out[i] = map[string]interface{}{"backend": b, "configured": set[b]}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"backends": out})
}

func (h *CredentialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	backend := chi.URLParam(r, "backend")
	if !h.known(backend) {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Unknown backend", r))
		return
	}

	if err := h.store.Delete(r.Context(), backend); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete credential", r))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
