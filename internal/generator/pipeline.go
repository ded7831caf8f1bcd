package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"playcraft-backend/internal/credstore"
	"playcraft-backend/internal/enhancer"
	"playcraft-backend/internal/fallback"
	"playcraft-backend/internal/gametype"
	"playcraft-backend/internal/llm"
	"playcraft-backend/internal/models"
	"playcraft-backend/internal/normalizer"
	"playcraft-backend/internal/prompt"
)

// MinRefinementLength guards against a refinement pass that truncated
// the game. Shorter output is discarded and the primary result kept.
const MinRefinementLength = 500

type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	// Concurrent bounds in-flight backend calls across all requests.
	Concurrent int
}

// Pipeline runs one topic through classification, prompting, backend
// invocation, normalization, refinement, and enhancement.
type Pipeline struct {
	adapters []llm.Adapter
	creds    credstore.Store
	cfg      Config
	rateChan chan struct{} // Token bucket
}

func New(adapters []llm.Adapter, creds credstore.Store, cfg Config) *Pipeline {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 3
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 1500 * time.Millisecond
	}
	if cfg.Concurrent < 1 {
		cfg.Concurrent = 4
	}

	rateChan := make(chan struct{}, cfg.Concurrent)
	for i := 0; i < cfg.Concurrent; i++ {
		rateChan <- struct{}{}
	}

	return &Pipeline{adapters: adapters, creds: creds, cfg: cfg, rateChan: rateChan}
}

// acquireRate blocks until a backend slot is available.
func (p *Pipeline) acquireRate(ctx context.Context) error {
	select {
	case <-p.rateChan:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("timeout waiting for generation slot")
	}
}

func (p *Pipeline) releaseRate() {
	p.rateChan <- struct{}{}
}

// Generate produces a playable Game for the topic. The only error it
// surfaces is a credential failure; every other failure mode resolves
// to a valid document, falling back to the offline quiz when the
// backend budget is exhausted.
func (p *Pipeline) Generate(ctx context.Context, topic string, settings *models.GenerationSettings) (*models.Game, error) {
	arch := gametype.Classify(topic)
	req := models.GenerationRequest{
		Topic:       topic,
		ArchetypeID: arch.ID,
		Settings:    mergeSettings(arch.DefaultSettings(), settings),
	}

	primary := p.readyAdapter(ctx, nil)
	if primary == nil {
		return nil, &llm.AuthError{Backend: "none", Err: errors.New("no backend has a credential configured")}
	}

	contract := prompt.ContractFencedBlocks
	if primary.Kind() == llm.BackendSecondary {
		contract = prompt.ContractJSON
	}
	// Built once; every retry of this run sends the identical prompt.
	built := prompt.Build(req.Topic, arch, req.Settings, contract)

	log.Info().Str("archetype", arch.ID).Str("backend", primary.Name()).
		Str("topic", topic).Msg("starting generation")

	if err := p.acquireRate(ctx); err != nil {
		return nil, err
	}
	defer p.releaseRate()

	raw, ok, err := llm.WithRetry(ctx, p.cfg.MaxAttempts, p.cfg.BaseDelay,
		func(ctx context.Context, attempt int) (string, error) {
			return primary.Invoke(ctx, built)
		})
	if err != nil {
		var authErr *llm.AuthError
		if errors.As(err, &authErr) {
			// Stored key is bad; clear it so Ready flips off until a new
			// one is provided.
			if derr := p.creds.Delete(ctx, primary.Name()); derr != nil {
				log.Error().Err(derr).Str("backend", primary.Name()).Msg("failed to clear rejected credential")
			}
			log.Warn().Str("backend", primary.Name()).Msg("credential rejected, cleared from store")
		}
		return nil, err
	}
	if !ok {
		log.Warn().Str("topic", topic).Msg("backend budget exhausted, serving fallback game")
		game := enhancer.Enhance(fallback.Generate(topic))
		return &game, nil
	}

	game := normalizer.Normalize(raw, topic)

	if secondary := p.readyAdapter(ctx, primary); secondary != nil {
		game = p.refine(ctx, secondary, topic, game)
	}

	game = enhancer.Enhance(game)
	return &game, nil
}

// refine asks the secondary backend to polish the document. One
// attempt; any failure or suspect output keeps the original.
func (p *Pipeline) refine(ctx context.Context, secondary llm.Adapter, topic string, game models.Game) models.Game {
	refined, err := secondary.Invoke(ctx, prompt.BuildRefinement(topic, game.Content))
	if err != nil {
		log.Debug().Err(err).Str("backend", secondary.Name()).Msg("refinement failed, keeping original")
		return game
	}

	trimmed := strings.TrimSpace(refined)
	if len(trimmed) < MinRefinementLength ||
		!strings.Contains(strings.ToLower(trimmed), "</body>") ||
		normalizer.DetectFormat(trimmed) != normalizer.FormatFullDocument {
		log.Debug().Str("backend", secondary.Name()).Msg("refinement output rejected, keeping original")
		return game
	}

	refinedGame := normalizer.Normalize(trimmed, topic)
	if refinedGame.Title == "Error" {
		return game
	}
	if refinedGame.Description == "" {
		refinedGame.Description = game.Description
	}
	log.Info().Str("backend", secondary.Name()).Msg("refinement accepted")
	return refinedGame
}

// readyAdapter returns the first configured adapter, skipping one to
// exclude (the primary, when picking a refinement backend).
func (p *Pipeline) readyAdapter(ctx context.Context, skip llm.Adapter) llm.Adapter {
	for _, a := range p.adapters {
		if a == skip {
			continue
		}
		if a.Ready(ctx) {
			return a
		}
	}
	return nil
}

// mergeSettings overlays caller-provided values on the archetype
// defaults. Zero values keep the default; the caller's struct is never
// modified.
func mergeSettings(defaults models.GenerationSettings, override *models.GenerationSettings) models.GenerationSettings {
	merged := defaults
	if override == nil {
		return merged
	}
	if override.Difficulty != "" {
		merged.Difficulty = override.Difficulty
	}
	if override.QuestionCount > 0 {
		merged.QuestionCount = override.QuestionCount
	}
	if override.TimePerQuestion > 0 {
		merged.TimePerQuestion = override.TimePerQuestion
	}
	if override.TotalTime > 0 {
		merged.TotalTime = override.TotalTime
	}
	if override.BonusTime > 0 {
		merged.BonusTime = override.BonusTime
	}
	if override.PenaltyTime > 0 {
		merged.PenaltyTime = override.PenaltyTime
	}
	if override.Category != "" {
		merged.Category = override.Category
	}
	if override.Language != "" {
		merged.Language = override.Language
	}
	if override.Prompt != "" {
		merged.Prompt = override.Prompt
	}
	if override.GridSize > 0 {
		merged.GridSize = override.GridSize
	}
	if override.UseCanvas != nil {
		merged.UseCanvas = override.UseCanvas
	}
	if override.ShuffleItems != nil {
		merged.ShuffleItems = override.ShuffleItems
	}
	if override.ShowHints != nil {
		merged.ShowHints = override.ShowHints
	}
	return merged
}
