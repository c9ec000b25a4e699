// Package mood computes streak, trend, and wellness metrics from tracked
// mood samples. Everything here is a pure function of the sample slice; the
// caller owns storage and ordering (samples are expected newest first).
package mood

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Sample is one tracked mood entry.
type Sample struct {
	Emotion   string    `json:"emotion"`
	Intensity int       `json:"intensity"` // 1-10
	Timestamp time.Time `json:"timestamp"`
}

// Trend labels.
const (
	TrendInsufficientData       = "insufficient_data"
	TrendSignificantlyImproving = "significantly_improving"
	TrendImproving              = "improving"
	TrendStable                 = "stable"
	TrendDeclining              = "declining"
	TrendNeedsAttention         = "needs_attention"
	// Level-based labels used when only 3-5 samples exist.
	TrendDoingWell    = "doing_well"
	TrendModerate     = "moderate"
	TrendNeedsSupport = "needs_support"
)

// Metrics is the computed analytics record. It has no identity or
// lifecycle; every call recomputes it from scratch.
type Metrics struct {
	TotalEntries     int            `json:"total_entries"`
	AverageScore     float64        `json:"average_score"`
	CurrentStreak    int            `json:"current_streak"`
	WellnessScore    float64        `json:"wellness_score"`
	MoodDistribution map[string]int `json:"mood_distribution"`
	Trend            string         `json:"trend"`
	StreakMessage    string         `json:"streak_message"`
	WellnessMessage  string         `json:"wellness_message"`
}

// emotionValence maps emotion labels to how positive they are, on [0,1].
// Unknown labels read as neutral (0.5) so analytics never fails on a novel
// label.
var emotionValence = map[string]float64{
	"happy":       1.0,
	"excited":     1.0,
	"content":     0.8,
	"calm":        0.7,
	"hopeful":     0.9,
	"grateful":    0.9,
	"neutral":     0.5,
	"tired":       0.3,
	"bored":       0.4,
	"confused":    0.3,
	"worried":     0.2,
	"stressed":    0.2,
	"anxious":     0.1,
	"sad":         0.1,
	"angry":       0.0,
	"frustrated":  0.1,
	"depressed":   0.0,
	"overwhelmed": 0.1,
}

// Wellness blend weights. Empirically tuned; changing them changes every
// downstream score.
const (
	recencyWeight     = 0.7
	trendWeight       = 0.2
	consistencyWeight = 0.1
)

// wellnessValue converts one sample to a 0-10 wellness value. For positive
// emotions higher intensity raises the value; for negative emotions higher
// intensity lowers it. This asymmetry is load-bearing: extremely angry must
// score near 0, mildly angry merely low.
func wellnessValue(s Sample) float64 {
	valence, ok := emotionValence[strings.ToLower(s.Emotion)]
	if !ok {
		valence = 0.5
	}

	var wellness float64
	if valence >= 0.5 {
		wellness = valence * float64(s.Intensity)
	} else {
		wellness = valence * float64(11-s.Intensity)
	}
	return clamp(wellness, 0, 10)
}

// Compute derives the full metrics record from a newest-first sample list.
func Compute(samples []Sample) Metrics {
	return computeAt(time.Now(), samples)
}

func computeAt(now time.Time, samples []Sample) Metrics {
	if len(samples) == 0 {
		return Metrics{
			MoodDistribution: map[string]int{},
			Trend:            TrendInsufficientData,
			StreakMessage:    "Start tracking to build your streak!",
			WellnessMessage:  "Begin your wellness journey",
		}
	}

	distribution := make(map[string]int, len(samples))
	sum := 0.0
	for _, s := range samples {
		distribution[s.Emotion]++
		sum += wellnessValue(s)
	}

	streak := streakAt(now, samples)
	wellness := wellnessScoreAt(now, samples)

	return Metrics{
		TotalEntries:     len(samples),
		AverageScore:     round1(sum / float64(len(samples))),
		CurrentStreak:    streak,
		WellnessScore:    wellness,
		MoodDistribution: distribution,
		Trend:            trend(samples),
		StreakMessage:    streakMessage(streak),
		WellnessMessage:  wellnessMessage(wellness),
	}
}

// streakAt counts consecutive calendar days with at least one sample,
// ending today or yesterday. Anything older breaks the streak to zero.
func streakAt(now time.Time, samples []Sample) int {
	if len(samples) == 0 {
		return 0
	}

	seen := make(map[time.Time]bool)
	var dates []time.Time
	for _, s := range samples {
		day := truncateToDay(s.Timestamp)
		if !seen[day] {
			seen[day] = true
			dates = append(dates, day)
		}
	}
	// Newest first regardless of input order.
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	today := truncateToDay(now)
	yesterday := today.AddDate(0, 0, -1)

	var checkDate time.Time
	switch {
	case dates[0].Equal(today):
		checkDate = yesterday
	case dates[0].Equal(yesterday):
		checkDate = yesterday.AddDate(0, 0, -1)
	default:
		return 0
	}

	streak := 1
	for _, date := range dates[1:] {
		if !date.Equal(checkDate) {
			break
		}
		streak++
		checkDate = checkDate.AddDate(0, 0, -1)
	}
	return streak
}

// wellnessScoreAt blends recency (70%), trend (20%), and consistency (10%)
// into a 0-10 score.
func wellnessScoreAt(now time.Time, samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}

	cutoff := now.AddDate(0, 0, -7)
	today := truncateToDay(now)

	var recent []Sample
	for _, s := range samples {
		if !s.Timestamp.Before(cutoff) {
			recent = append(recent, s)
		}
	}

	var recencyScore float64
	if len(recent) > 0 {
		recentAvg := meanWellness(recent)

		var todays []Sample
		for _, s := range recent {
			if truncateToDay(s.Timestamp).Equal(today) {
				todays = append(todays, s)
			}
		}
		if len(todays) > 0 {
			// Today's mood dominates the 7-day window.
			recencyScore = recentAvg*0.3 + meanWellness(todays)*0.7
		} else {
			recencyScore = recentAvg
		}
		recencyScore *= recencyWeight
	} else {
		// Stale data only: overall mean at half weight.
		recencyScore = meanWellness(samples) * 0.5
	}

	trendScore := 0.5
	if len(samples) >= 4 {
		recentTwo := meanWellness(samples[:2])
		previousTwo := meanWellness(samples[2:4])
		switch {
		case recentTwo > previousTwo+1:
			trendScore = 2.0
		case recentTwo > previousTwo:
			trendScore = 1.0
		case recentTwo == previousTwo:
			trendScore = 0.5
		default:
			trendScore = 0
		}
	}

	consistencyPool := len(recent)
	if consistencyPool == 0 {
		consistencyPool = len(samples)
	}
	consistencyScore := math.Min(float64(consistencyPool)/7.0, 1.0) * 10

	score := recencyScore + trendScore*trendWeight + consistencyScore*consistencyWeight
	return clamp(round1(score), 0, 10)
}

// trend compares the mean wellness of the 3 most recent samples against the
// next 3 when enough data exists, and falls back to the absolute level of
// the recent mean with 3-5 samples.
func trend(samples []Sample) string {
	if len(samples) < 3 {
		return TrendInsufficientData
	}

	recentAvg := meanWellness(samples[:3])

	if len(samples) >= 6 {
		olderAvg := meanWellness(samples[3:6])
		diff := recentAvg - olderAvg
		switch {
		case diff > 1:
			return TrendSignificantlyImproving
		case diff > 0.5:
			return TrendImproving
		case diff < -1:
			return TrendNeedsAttention
		case diff < -0.5:
			return TrendDeclining
		default:
			return TrendStable
		}
	}

	switch {
	case recentAvg >= 7:
		return TrendDoingWell
	case recentAvg >= 5:
		return TrendModerate
	default:
		return TrendNeedsSupport
	}
}

func streakMessage(streak int) string {
	switch {
	case streak == 0:
		return "Start your wellness streak today!"
	case streak == 1:
		return "Great start! Keep it going!"
	case streak < 7:
		return fmt.Sprintf("Amazing! %d days strong!", streak)
	case streak < 30:
		return fmt.Sprintf("Incredible consistency! %d days!", streak)
	default:
		return fmt.Sprintf("Wellness champion! %d days!", streak)
	}
}

func wellnessMessage(score float64) string {
	switch {
	case score >= 8:
		return "You're doing great mentally!"
	case score >= 6:
		return "Good mental health balance"
	case score >= 4:
		return "Room for improvement"
	case score >= 2:
		return "Focus on self-care"
	default:
		return "Consider seeking support"
	}
}

func meanWellness(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += wellnessValue(s)
	}
	return sum / float64(len(samples))
}

// truncateToDay normalizes to a UTC calendar date so streaks do not depend
// on the timezone a sample was recorded in.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
