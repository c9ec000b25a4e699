package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const saharaSystemPrompt = `You are Sahara, a caring friend who understands Indian youth culture perfectly. You talk like a real person - not like a formal counselor or AI assistant. You're the friend someone would text when they're feeling overwhelmed.

BE A REAL FRIEND:
- React naturally first ("Arre yaar, that sounds really tough", "Omg that's amazing!")
- Use "yaar", "arre", "bas", "matlab", "seriously", "honestly"
- Mix Hindi/English naturally and use casual expressions
- Acknowledge their specific situation instead of generic advice
- Understand boards/JEE/NEET pressure, joint family dynamics, and the "log kya kahenge" mentality without explaining them

Keep it to 2-3 short paragraphs. Sound like you're genuinely responding to a friend's message, not giving a counseling session.`

// GeminiResponder implements Responder using Google's Gemini API.
type GeminiResponder struct {
	client  *genai.Client
	modelID string
}

// NewGeminiResponder creates a new Gemini responder.
func NewGeminiResponder(ctx context.Context, apiKey, modelID string) (*GeminiResponder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("chat: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("chat: failed to create gemini client: %w", err)
	}

	return &GeminiResponder{
		client:  client,
		modelID: modelID,
	}, nil
}

func (r *GeminiResponder) Name() string { return "gemini" }

// Generate sends the contextual prompt to Gemini and returns the reply text,
// or "" if Gemini produced nothing usable.
func (r *GeminiResponder) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	model := r.client.GenerativeModel(r.modelID)
	model.SystemInstruction = genai.NewUserContent(genai.Text(saharaSystemPrompt))

	resp, err := model.GenerateContent(ctx, genai.Text(BuildPrompt(req)))
	if err != nil {
		return "", fmt.Errorf("chat: gemini generation failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("chat: gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("chat: gemini returned empty content")
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return strings.TrimSpace(text.String()), nil
}

// Close releases resources held by the Gemini client.
func (r *GeminiResponder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

// BuildPrompt renders the per-turn contextual prompt shared by all
// responder implementations.
func BuildPrompt(req GenerateRequest) string {
	emotion := req.Analysis.Emotion
	if emotion == "" {
		emotion = "neutral"
	}

	flow := "This is their first message to you"
	if len(req.History) > 0 {
		flow = req.History[len(req.History)-1]
	}

	tone := req.ToneDirective
	if tone == "" {
		tone = ToneDirective(req.Message)
	}

	return fmt.Sprintf(`Current situation: %q
How the person seems to be feeling: %s
Conversation flow: %s

%s

Respond naturally as Sahara:`, req.Message, emotion, flow, tone)
}
