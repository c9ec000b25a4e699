package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("RESPONDER_PROVIDER", "")
	t.Setenv("SESSION_STORE", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.ResponderProvider != "auto" {
		t.Fatalf("expected auto responder provider, got %s", cfg.ResponderProvider)
	}
	if cfg.ResponderTimeout != 8*time.Second {
		t.Fatalf("expected default responder timeout, got %s", cfg.ResponderTimeout)
	}
	if cfg.SessionStore != "memory" {
		t.Fatalf("expected memory session store, got %s", cfg.SessionStore)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected default session ttl, got %s", cfg.SessionTTL)
	}
	if cfg.SessionMax != 10000 {
		t.Fatalf("expected default session max, got %d", cfg.SessionMax)
	}
	if cfg.HistoryTurns != 3 {
		t.Fatalf("expected default history turns, got %d", cfg.HistoryTurns)
	}
	if cfg.GeminiModelID != "gemini-1.5-flash" {
		t.Fatalf("expected default gemini model, got %s", cfg.GeminiModelID)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RESPONDER_PROVIDER", "OpenAI")
	t.Setenv("RESPONDER_TIMEOUT", "3s")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SESSION_STORE", "Redis")
	t.Setenv("SESSION_TTL", "45m")
	t.Setenv("SESSION_MAX", "250")
	t.Setenv("HISTORY_TURNS", "5")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("REDIS_TLS", "true")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env override, got %s", cfg.Env)
	}
	if cfg.ResponderProvider != "openai" {
		t.Fatalf("expected lowercased provider, got %s", cfg.ResponderProvider)
	}
	if cfg.ResponderTimeout != 3*time.Second {
		t.Fatalf("expected responder timeout override, got %s", cfg.ResponderTimeout)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Fatalf("expected openai key override, got %s", cfg.OpenAIAPIKey)
	}
	if cfg.SessionStore != "redis" {
		t.Fatalf("expected lowercased session store, got %s", cfg.SessionStore)
	}
	if cfg.SessionTTL != 45*time.Minute {
		t.Fatalf("expected session ttl override, got %s", cfg.SessionTTL)
	}
	if cfg.SessionMax != 250 {
		t.Fatalf("expected session max override, got %d", cfg.SessionMax)
	}
	if cfg.HistoryTurns != 5 {
		t.Fatalf("expected history turns override, got %d", cfg.HistoryTurns)
	}
	if cfg.RedisAddr != "redis.internal:6380" {
		t.Fatalf("expected redis addr override, got %s", cfg.RedisAddr)
	}
	if !cfg.RedisTLS {
		t.Fatalf("expected redis tls enabled")
	}
}
