package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIResponder implements Responder against the OpenAI chat API. It is
// selected by configuration as an alternative to Gemini behind the same
// contract.
type OpenAIResponder struct {
	client *openai.Client
	model  string
}

// NewOpenAIResponder creates a new OpenAI responder.
func NewOpenAIResponder(apiKey, model string) (*OpenAIResponder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("chat: openai api key is required")
	}
	if strings.TrimSpace(model) == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIResponder{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (r *OpenAIResponder) Name() string { return "openai" }

func (r *OpenAIResponder) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: saharaSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(req)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat: openai generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat: openai returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
