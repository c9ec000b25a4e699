package chat

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Romio1310/SaharaAI/pkg/logging"
)

var classifierTracer = otel.Tracer("sahara/classifier")

// UserState describes what the user seems to need from this turn.
type UserState string

const (
	StateExploring       UserState = "exploring"
	StateSeekingGuidance UserState = "seeking_guidance"
	StateStruggling      UserState = "struggling"
)

// Intensity buckets the emotional intensity of a turn.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

// Analysis is the classifier's structured read of one message. Topic is
// empty only when nothing in the pattern table scored above zero.
type Analysis struct {
	Topic         Topic     `json:"topic,omitempty"`
	Emotion       string    `json:"emotion"`
	Intensity     Intensity `json:"intensity"`
	Concerns      []string  `json:"concerns,omitempty"`
	NeedsFollowUp bool      `json:"needs_follow_up"`
	MatchedTerms  []string  `json:"matched_terms,omitempty"`
	Score         int       `json:"score"`
	UserState     UserState `json:"user_state"`
}

// Classifier scores messages against the pattern table. Deterministic for
// identical input; performs no I/O.
type Classifier struct {
	logger   *logging.Logger
	patterns []PatternEntry
}

// NewClassifier creates a classifier over the built-in pattern table.
func NewClassifier(logger *logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &Classifier{
		logger:   logger.With("component", "classifier"),
		patterns: contextPatterns,
	}
}

// Classify scores the message against every pattern entry and returns the
// structured analysis. The session argument reserves room for history-aware
// scoring and may be nil.
func (c *Classifier) Classify(ctx context.Context, message string, session *SessionState) Analysis {
	_, span := classifierTracer.Start(ctx, "chat.classify")
	defer span.End()

	lower := strings.ToLower(message)

	analysis := Analysis{
		Emotion:   "neutral",
		Intensity: IntensityModerate,
		UserState: StateExploring,
	}

	// Entries are scanned in declared order so equal scores resolve to the
	// first-declared topic.
	bestScore := 0
	var bestTerms []string
	for _, entry := range c.patterns {
		score := 0
		var matched []string

		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				score += keywordWeight
				matched = append(matched, kw)
			}
		}
		for _, emotion := range entry.EmotionIndicators {
			if strings.Contains(lower, emotion) {
				score += emotionWeight
				analysis.Emotion = emotion
			}
		}
		for _, phrase := range entry.LanguageMix {
			if strings.Contains(lower, phrase) {
				score += phraseWeight
				matched = append(matched, phrase)
			}
		}

		if score > bestScore {
			bestScore = score
			bestTerms = matched
			analysis.Topic = entry.Topic
		}
	}
	analysis.Score = bestScore
	analysis.MatchedTerms = bestTerms

	for _, q := range questionIndicators {
		if strings.Contains(lower, q) {
			analysis.UserState = StateSeekingGuidance
			analysis.NeedsFollowUp = true
			break
		}
	}
	for _, neg := range negationIndicators {
		if strings.Contains(lower, neg) {
			analysis.UserState = StateStruggling
			analysis.NeedsFollowUp = true
			break
		}
	}

	for _, cp := range concernPatterns {
		for _, indicator := range cp.Indicators {
			if strings.Contains(lower, indicator) {
				analysis.Concerns = append(analysis.Concerns, cp.Concern)
				break
			}
		}
	}

	span.SetAttributes(
		attribute.String("chat.topic", string(analysis.Topic)),
		attribute.String("chat.emotion", analysis.Emotion),
		attribute.Int("chat.score", analysis.Score),
		attribute.String("chat.user_state", string(analysis.UserState)),
	)

	return analysis
}

// ContainsCrisisMarker reports whether the message carries a configured
// crisis phrase.
func ContainsCrisisMarker(message string) bool {
	lower := strings.ToLower(message)
	for _, marker := range crisisMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
