package mood

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

func sampleAt(emotion string, intensity int, daysAgo int) Sample {
	return Sample{
		Emotion:   emotion,
		Intensity: intensity,
		Timestamp: testNow.AddDate(0, 0, -daysAgo),
	}
}

func TestWellnessValueAsymmetry(t *testing.T) {
	// Positive emotions score higher with higher intensity.
	assert.Equal(t, 10.0, wellnessValue(Sample{Emotion: "happy", Intensity: 10}))
	assert.Greater(t,
		wellnessValue(Sample{Emotion: "happy", Intensity: 9}),
		wellnessValue(Sample{Emotion: "happy", Intensity: 3}),
	)

	// Negative emotions score lower with higher intensity.
	assert.Less(t,
		wellnessValue(Sample{Emotion: "sad", Intensity: 9}),
		wellnessValue(Sample{Emotion: "sad", Intensity: 2}),
	)

	// Extreme anger bottoms out at zero.
	assert.Equal(t, 0.0, wellnessValue(Sample{Emotion: "angry", Intensity: 10}))

	// Unknown labels read as neutral.
	assert.Equal(t,
		wellnessValue(Sample{Emotion: "neutral", Intensity: 6}),
		wellnessValue(Sample{Emotion: "nostalgic", Intensity: 6}),
	)
}

func TestWellnessValueCaseInsensitive(t *testing.T) {
	assert.Equal(t,
		wellnessValue(Sample{Emotion: "Happy", Intensity: 7}),
		wellnessValue(Sample{Emotion: "happy", Intensity: 7}),
	)
}

func TestStreak(t *testing.T) {
	cases := []struct {
		name    string
		samples []Sample
		want    int
	}{
		{"empty", nil, 0},
		{"today only", []Sample{sampleAt("happy", 7, 0)}, 1},
		{"today and yesterday", []Sample{sampleAt("happy", 7, 0), sampleAt("calm", 6, 1)}, 2},
		{"yesterday anchor", []Sample{sampleAt("happy", 7, 1), sampleAt("calm", 6, 2)}, 2},
		{"gap breaks streak", []Sample{sampleAt("happy", 7, 0), sampleAt("calm", 6, 2)}, 1},
		{"stale data only", []Sample{sampleAt("happy", 7, 3), sampleAt("calm", 6, 4)}, 0},
		{"multiple samples one day count once", []Sample{sampleAt("happy", 7, 0), sampleAt("tired", 4, 0), sampleAt("calm", 6, 1)}, 2},
		{"four day run", []Sample{sampleAt("happy", 7, 0), sampleAt("calm", 6, 1), sampleAt("neutral", 5, 2), sampleAt("tired", 4, 3)}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, streakAt(testNow, tc.samples))
		})
	}
}

func TestStreakUnorderedInput(t *testing.T) {
	samples := []Sample{sampleAt("calm", 6, 1), sampleAt("happy", 7, 0), sampleAt("neutral", 5, 2)}
	assert.Equal(t, 3, streakAt(testNow, samples))
}

func TestComputeEmpty(t *testing.T) {
	m := computeAt(testNow, nil)

	assert.Equal(t, 0, m.TotalEntries)
	assert.Equal(t, 0.0, m.WellnessScore)
	assert.Equal(t, 0, m.CurrentStreak)
	assert.Equal(t, TrendInsufficientData, m.Trend)
	assert.Equal(t, "Start tracking to build your streak!", m.StreakMessage)
	assert.Equal(t, "Begin your wellness journey", m.WellnessMessage)
	assert.NotNil(t, m.MoodDistribution)
}

func TestComputeHappyPair(t *testing.T) {
	samples := []Sample{sampleAt("happy", 8, 0), sampleAt("happy", 7, 1)}
	m := computeAt(testNow, samples)

	assert.Equal(t, 2, m.TotalEntries)
	assert.Equal(t, 2, m.CurrentStreak)
	assert.Equal(t, map[string]int{"happy": 2}, m.MoodDistribution)
	// Today's 8/10 dominates the recency blend; trend and consistency
	// contribute little with only two samples.
	assert.InDelta(t, 5.9, m.WellnessScore, 0.11)
	assert.Equal(t, "Amazing! 2 days strong!", m.StreakMessage)
}

func TestComputeExtremeAnger(t *testing.T) {
	samples := []Sample{sampleAt("angry", 10, 0)}
	m := computeAt(testNow, samples)

	assert.Less(t, m.WellnessScore, 1.0)
	assert.Equal(t, "Consider seeking support", m.WellnessMessage)
	assert.Equal(t, 1, m.CurrentStreak)
}

func TestWellnessScoreBounds(t *testing.T) {
	cases := [][]Sample{
		{sampleAt("happy", 10, 0), sampleAt("excited", 10, 0), sampleAt("happy", 10, 1), sampleAt("sad", 10, 2)},
		{sampleAt("depressed", 10, 0), sampleAt("angry", 10, 1)},
		{sampleAt("neutral", 5, 10), sampleAt("neutral", 5, 12)},
	}
	for _, samples := range cases {
		score := wellnessScoreAt(testNow, samples)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 10.0)
	}
}

func TestWellnessScoreStaleDataHalved(t *testing.T) {
	fresh := wellnessScoreAt(testNow, []Sample{sampleAt("happy", 8, 1)})
	stale := wellnessScoreAt(testNow, []Sample{sampleAt("happy", 8, 20)})
	assert.Greater(t, fresh, stale)
}

func TestTrendComparative(t *testing.T) {
	improving := []Sample{
		sampleAt("happy", 8, 0), sampleAt("happy", 8, 1), sampleAt("happy", 8, 2),
		sampleAt("sad", 8, 3), sampleAt("sad", 8, 4), sampleAt("sad", 8, 5),
	}
	assert.Equal(t, TrendSignificantlyImproving, trend(improving))

	declining := []Sample{
		sampleAt("sad", 8, 0), sampleAt("sad", 8, 1), sampleAt("sad", 8, 2),
		sampleAt("happy", 8, 3), sampleAt("happy", 8, 4), sampleAt("happy", 8, 5),
	}
	assert.Equal(t, TrendNeedsAttention, trend(declining))

	stable := []Sample{
		sampleAt("calm", 6, 0), sampleAt("calm", 6, 1), sampleAt("calm", 6, 2),
		sampleAt("calm", 6, 3), sampleAt("calm", 6, 4), sampleAt("calm", 6, 5),
	}
	assert.Equal(t, TrendStable, trend(stable))
}

func TestTrendLevelBased(t *testing.T) {
	cases := []struct {
		name    string
		samples []Sample
		want    string
	}{
		{"few samples high", []Sample{sampleAt("happy", 8, 0), sampleAt("happy", 8, 1), sampleAt("happy", 8, 2)}, TrendDoingWell},
		{"few samples middling", []Sample{sampleAt("neutral", 10, 0), sampleAt("neutral", 10, 1), sampleAt("neutral", 10, 2)}, TrendModerate},
		{"few samples low", []Sample{sampleAt("sad", 8, 0), sampleAt("sad", 8, 1), sampleAt("sad", 8, 2)}, TrendNeedsSupport},
		{"too few", []Sample{sampleAt("happy", 8, 0)}, TrendInsufficientData},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, trend(tc.samples))
		})
	}
}

func TestStreakMessageBuckets(t *testing.T) {
	assert.Equal(t, "Start your wellness streak today!", streakMessage(0))
	assert.Equal(t, "Great start! Keep it going!", streakMessage(1))
	assert.Equal(t, "Amazing! 5 days strong!", streakMessage(5))
	assert.Equal(t, "Incredible consistency! 12 days!", streakMessage(12))
	assert.Equal(t, "Wellness champion! 45 days!", streakMessage(45))
}

func TestInsight(t *testing.T) {
	cases := []struct {
		label     string
		intensity int
		want      string
	}{
		{"happy", 5, "बहुत अच्छा"},
		{"happy", 99, "ठीक-ठाक"},
		{"stressed", 3, "stressed"},
		{"angry", 4, "गुस्सा"},
		{"curious", 3, "curious"},
	}
	for _, tc := range cases {
		got := Insight(tc.label, tc.intensity)
		require.NotEmpty(t, got)
		assert.Contains(t, got, tc.want, "label %s", tc.label)
	}
}
