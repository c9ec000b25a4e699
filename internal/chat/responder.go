package chat

import (
	"context"
	"strings"
)

// Responder is the external generative collaborator. Implementations must
// return an empty string (with or without an error) when they cannot
// produce a reply; the composer treats any error, panic, or empty result
// as "no response" and falls back to the local handlers.
type Responder interface {
	// Generate produces a reply for the message, or "" if it cannot.
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	// Name identifies the provider in reply sources and metrics.
	Name() string
}

// GenerateRequest carries everything a responder may use to build a prompt.
type GenerateRequest struct {
	Message string
	// Analysis of the current message.
	Analysis Analysis
	// History holds up to the most recent prior user messages, oldest first.
	History []string
	// ToneDirective is the style hint derived from the message.
	ToneDirective string
}

// NoopResponder is the null collaborator for deployments without a
// generative backend. It always yields no response.
type NoopResponder struct{}

func (NoopResponder) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	return "", nil
}

func (NoopResponder) Name() string { return "none" }

// toneStyles maps keyword sets to response-style directives for the
// generative prompt. Scanned in order; first match wins.
var toneStyles = []struct {
	markers   []string
	directive string
}{
	{
		markers:   []string{"crying", "रो रहा", "devastated", "heartbroken", "टूट गया"},
		directive: "This person is really hurting. Be extra gentle and comforting. Lead with empathy.",
	},
	{
		markers:   []string{"excited", "happy", "khush", "great news", "amazing"},
		directive: "They're sharing good news! Be genuinely excited for them and celebrate with them.",
	},
	{
		markers:   []string{"confused", "samajh nahi aa raha", "don't know", "stuck"},
		directive: "They're feeling lost and need clarity. Help them think through it step by step, like a friend would.",
	},
	{
		markers:   []string{"angry", "frustrated", "gussa", "annoying", "hate"},
		directive: "They're venting. Let them feel heard first, then gently help them process the anger.",
	},
	{
		markers:   []string{"scared", "nervous", "डरा हुआ", "anxious", "worried"},
		directive: "They need reassurance. Be calming and help them feel less alone with their fears.",
	},
	{
		markers:   []string{"tired", "exhausted", "बहुत थक गया", "burn out"},
		directive: "They're emotionally or physically drained. Acknowledge how hard they're working and validate their tiredness.",
	},
}

const defaultToneDirective = "Respond naturally to what they're sharing. Match their energy level and be a supportive friend."

// ToneDirective picks the response-style hint for a message.
func ToneDirective(message string) string {
	lower := strings.ToLower(message)
	for _, style := range toneStyles {
		for _, marker := range style.markers {
			if strings.Contains(lower, marker) {
				return style.directive
			}
		}
	}
	return defaultToneDirective
}
