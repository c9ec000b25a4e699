package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Romio1310/SaharaAI/internal/chat"
	appconfig "github.com/Romio1310/SaharaAI/internal/config"
	"github.com/Romio1310/SaharaAI/pkg/logging"
)

func TestNewSessionStoreMemory(t *testing.T) {
	cfg := &appconfig.Config{
		SessionStore: "memory",
		SessionTTL:   time.Hour,
		SessionMax:   100,
	}
	store := newSessionStore(cfg, logging.New("error"))
	_, ok := store.(*chat.MemorySessionStore)
	assert.True(t, ok, "expected in-memory store")
}

func TestNewResponderNone(t *testing.T) {
	cfg := &appconfig.Config{ResponderProvider: "none"}
	responder, cleanup := newResponder(cfg, logging.New("error"))
	defer cleanup()

	require.NotNil(t, responder)
	assert.Equal(t, "none", responder.Name())
}

func TestNewResponderAutoWithoutKeys(t *testing.T) {
	cfg := &appconfig.Config{ResponderProvider: "auto"}
	responder, cleanup := newResponder(cfg, logging.New("error"))
	defer cleanup()

	assert.Equal(t, "none", responder.Name())
}

func TestNewResponderAutoPrefersGemini(t *testing.T) {
	cfg := &appconfig.Config{
		ResponderProvider: "auto",
		GeminiAPIKey:      "test-key",
		GeminiModelID:     "gemini-1.5-flash",
		OpenAIAPIKey:      "also-set",
	}
	responder, cleanup := newResponder(cfg, logging.New("error"))
	defer cleanup()

	assert.Equal(t, "gemini", responder.Name())
}

func TestNewResponderOpenAIWithoutKeyFallsBack(t *testing.T) {
	cfg := &appconfig.Config{ResponderProvider: "openai"}
	responder, cleanup := newResponder(cfg, logging.New("error"))
	defer cleanup()

	assert.Equal(t, "none", responder.Name())
}
