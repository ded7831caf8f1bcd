package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"playcraft-backend/internal/gametype"
	"playcraft-backend/internal/llm"
	"playcraft-backend/internal/models"
)

// Generator is the slice of the pipeline the handler needs.
type Generator interface {
	Generate(ctx context.Context, topic string, settings *models.GenerationSettings) (*models.Game, error)
}

type GameHandler struct {
	pipeline Generator
}

func NewGameHandler(pipeline Generator) *GameHandler {
	return &GameHandler{pipeline: pipeline}
}

func (h *GameHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorResp("VALIDATION_ERROR", "Topic is required", r))
		return
	}

	game, err := h.pipeline.Generate(r.Context(), topic, req.Settings)
	if err != nil {
		var authErr *llm.AuthError
		if errors.As(err, &authErr) {
			writeJSON(w, http.StatusUnauthorized, errorResp("CREDENTIAL_ERROR",
				"Backend credential missing or rejected. Configure a valid API key.", r))
			return
		}
		log.Error().Err(err).Str("topic", topic).Msg("generation failed")
		writeJSON(w, http.StatusBadGateway, errorResp("GENERATION_FAILED", "Game generation failed", r))
		return
	}
	if game == nil {
		writeJSON(w, http.StatusBadGateway, errorResp("GENERATION_FAILED", "Game generation produced no result", r))
		return
	}

	writeJSON(w, http.StatusOK, game)
}

type archetypeDTO struct {
	ID              string                    `json:"id"`
	Name            string                    `json:"name"`
	Description     string                    `json:"description"`
	Icon            string                    `json:"icon"`
	DefaultSettings models.GenerationSettings `json:"default_settings"`
}

func (h *GameHandler) Archetypes(w http.ResponseWriter, r *http.Request) {
	all := gametype.All()
	out := make([]archetypeDTO, len(all))
	for i, a := range all {
		out[i] = archetypeDTO{
			ID:              a.ID,
			Name:            a.Name,
			Description:     a.Description,
			Icon:            a.Icon,
			DefaultSettings: a.DefaultSettings(),
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"archetypes": out})
}
