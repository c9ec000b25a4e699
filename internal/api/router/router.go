package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Romio1310/SaharaAI/internal/http/handlers"
	httpmiddleware "github.com/Romio1310/SaharaAI/internal/http/middleware"
	"github.com/Romio1310/SaharaAI/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	ChatHandler    *handlers.ChatHandler
	MoodHandler    *handlers.MoodHandler
	MetricsHandler http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/healthz", handlers.HealthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/chat", cfg.ChatHandler.HandleChat)
		api.Route("/mood", func(m chi.Router) {
			m.Post("/metrics", cfg.MoodHandler.HandleMetrics)
			m.Post("/insight", cfg.MoodHandler.HandleInsight)
		})
	})

	return r
}
