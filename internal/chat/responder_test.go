package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopResponder(t *testing.T) {
	text, err := NoopResponder{}.Generate(context.Background(), GenerateRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Empty(t, text)
	assert.Equal(t, "none", NoopResponder{}.Name())
}

func TestBuildPromptFirstMessage(t *testing.T) {
	prompt := BuildPrompt(GenerateRequest{
		Message:  "exam stress yaar",
		Analysis: Analysis{Emotion: "stressed"},
	})

	assert.Contains(t, prompt, `"exam stress yaar"`)
	assert.Contains(t, prompt, "feeling: stressed")
	assert.Contains(t, prompt, "This is their first message to you")
	// With no directive supplied, the tone is derived from the message.
	assert.Contains(t, prompt, defaultToneDirective)
}

func TestBuildPromptWithHistory(t *testing.T) {
	prompt := BuildPrompt(GenerateRequest{
		Message:       "still cant sleep",
		Analysis:      Analysis{},
		History:       []string{"exams in two weeks", "slept 4 hours"},
		ToneDirective: "Be calming.",
	})

	assert.Contains(t, prompt, "slept 4 hours")
	assert.NotContains(t, prompt, "first message")
	assert.Contains(t, prompt, "Be calming.")
	assert.Contains(t, prompt, "feeling: neutral")
}

func TestNewGeminiResponderRequiresKey(t *testing.T) {
	_, err := NewGeminiResponder(context.Background(), "  ", "gemini-1.5-flash")
	assert.Error(t, err)
}

func TestNewOpenAIResponderRequiresKey(t *testing.T) {
	_, err := NewOpenAIResponder("", "gpt-4o-mini")
	assert.Error(t, err)
}
