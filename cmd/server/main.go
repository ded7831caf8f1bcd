package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"playcraft-backend/internal/config"
	"playcraft-backend/internal/credstore"
	"playcraft-backend/internal/generator"
	"playcraft-backend/internal/handlers"
	"playcraft-backend/internal/llm"
	"playcraft-backend/internal/router"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	log.Info().Msg("✓ Environment variables loaded")

	// ──── Step 2: Open Credential Store ────
	store, err := credstore.NewSQLite(cfg.CredDBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("✗ Credential store initialization failed")
	}
	defer store.Close()
	log.Info().Str("path", cfg.CredDBPath).Msg("✓ Credential store opened")

	// Seed keys supplied through the environment.
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelSeed()
	if cfg.GeminiAPIKey != "" {
		if err := store.Put(seedCtx, "gemini", cfg.GeminiAPIKey); err != nil {
			log.Fatal().Err(err).Msg("✗ Failed to seed gemini credential")
		}
		log.Info().Msg("✓ Gemini credential seeded from environment")
	}
	if cfg.OpenAIAPIKey != "" {
		if err := store.Put(seedCtx, "openai", cfg.OpenAIAPIKey); err != nil {
			log.Fatal().Err(err).Msg("✗ Failed to seed openai credential")
		}
		log.Info().Msg("✓ OpenAI credential seeded from environment")
	}

	// ──── Step 3: Build Backend Adapters ────
	adapters := []llm.Adapter{
		llm.NewGemini(store, cfg.GeminiModel, cfg.RequestTimeout()),
		llm.NewOpenAI(store, cfg.OpenAIModel, cfg.RequestTimeout()),
	}
	log.Info().Str("gemini_model", cfg.GeminiModel).Str("openai_model", cfg.OpenAIModel).
		Msg("✓ Backend adapters ready")

	// ──── Step 4: Build Generation Pipeline ────
	pipeline := generator.New(adapters, store, generator.Config{
		MaxAttempts: cfg.MaxAttempts,
		BaseDelay:   cfg.RetryBaseDelay(),
		Concurrent:  cfg.ConcurrentGenerations,
	})
	log.Info().Int("max_attempts", cfg.MaxAttempts).Int("concurrent", cfg.ConcurrentGenerations).
		Msg("✓ Generation pipeline ready")

	// ──── Step 5: Initialize Handlers ────
	gameHandler := handlers.NewGameHandler(pipeline)
	credentialHandler := handlers.NewCredentialHandler(store, []string{"gemini", "openai"})

	// ──── Step 6: Start HTTP Server ────
	r := router.New(gameHandler, credentialHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Generation holds the connection for the full retry budget.
		WriteTimeout: cfg.RequestTimeout() + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info().Msg("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Info().Msgf("✓ PlayCraft Backend ready on http://localhost:%s", cfg.Port)
	log.Info().Msgf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Server error")
	}
}
