package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/Romio1310/SaharaAI/internal/api/router"
	"github.com/Romio1310/SaharaAI/internal/chat"
	appconfig "github.com/Romio1310/SaharaAI/internal/config"
	"github.com/Romio1310/SaharaAI/internal/http/handlers"
	"github.com/Romio1310/SaharaAI/internal/observability/metrics"
	"github.com/Romio1310/SaharaAI/pkg/logging"
)

func main() {
	// Load .env file if present; environment variables still apply without it.
	_ = godotenv.Load()

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting sahara API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	reg := prometheus.NewRegistry()
	chatMetrics := metrics.NewChatMetrics(reg)

	sessions := newSessionStore(cfg, logger)
	responder, cleanup := newResponder(cfg, logger)
	defer cleanup()

	engine := chat.NewEngine(chat.EngineOptions{
		Sessions:     sessions,
		Responder:    responder,
		Timeout:      cfg.ResponderTimeout,
		HistoryTurns: cfg.HistoryTurns,
		Metrics:      chatMetrics,
		Logger:       logger,
	})

	// Setup router
	r := router.New(&router.Config{
		Logger:         logger,
		ChatHandler:    handlers.NewChatHandler(engine, logger),
		MoodHandler:    handlers.NewMoodHandler(chatMetrics, logger),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// newSessionStore picks the session backend from config.
func newSessionStore(cfg *appconfig.Config, logger *logging.Logger) chat.SessionStore {
	if cfg.SessionStore == "redis" {
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		logger.Info("using redis session store", "addr", cfg.RedisAddr)
		return chat.NewRedisSessionStore(redis.NewClient(opts), cfg.SessionTTL)
	}
	logger.Info("using in-memory session store",
		"ttl", cfg.SessionTTL.String(),
		"max_sessions", cfg.SessionMax,
	)
	return chat.NewMemorySessionStore(cfg.SessionTTL, cfg.SessionMax)
}

// newResponder picks the generative provider from config. "auto" takes the
// first provider with a key configured; everything local still works when it
// returns the noop responder.
func newResponder(cfg *appconfig.Config, logger *logging.Logger) (chat.Responder, func()) {
	noop := func() {}
	provider := cfg.ResponderProvider
	if provider == "auto" {
		switch {
		case cfg.GeminiAPIKey != "":
			provider = "gemini"
		case cfg.OpenAIAPIKey != "":
			provider = "openai"
		default:
			provider = "none"
		}
	}

	switch provider {
	case "gemini":
		resp, err := chat.NewGeminiResponder(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModelID)
		if err != nil {
			logger.Error("gemini responder unavailable, falling back to local replies", "error", err)
			return chat.NoopResponder{}, noop
		}
		logger.Info("using gemini responder", "model", cfg.GeminiModelID)
		return resp, func() { _ = resp.Close() }
	case "openai":
		resp, err := chat.NewOpenAIResponder(cfg.OpenAIAPIKey, cfg.OpenAIModelID)
		if err != nil {
			logger.Error("openai responder unavailable, falling back to local replies", "error", err)
			return chat.NoopResponder{}, noop
		}
		logger.Info("using openai responder", "model", cfg.OpenAIModelID)
		return resp, noop
	default:
		logger.Info("generative responder disabled, local replies only")
		return chat.NoopResponder{}, noop
	}
}
