package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"playcraft-backend/internal/handlers"
	"playcraft-backend/internal/middleware"
)

func New(
	gameHandler *handlers.GameHandler,
	credentialHandler *handlers.CredentialHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Generation rate limiter (10 req/min per IP); upstream calls are slow
	// and metered, so abusive clients are cut off early.
	generateLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Game Routes ────
		r.Route("/games", func(r chi.Router) {
			r.Get("/archetypes", gameHandler.Archetypes)

			r.Group(func(r chi.Router) {
				r.Use(generateLimiter.Middleware)
				r.Post("/generate", gameHandler.Generate)
			})
		})

		// ──── Credential Routes ────
		r.Route("/credentials", func(r chi.Router) {
			r.Get("/", credentialHandler.List)
			r.Put("/{backend}", credentialHandler.Put)
			r.Delete("/{backend}", credentialHandler.Delete)
		})
	})

	return r
}
