package chat

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// RandSource picks greeting variants. Injected so tests can pin outputs;
// this is the only non-deterministic element in the composer.
type RandSource interface {
	Intn(n int) int
}

// NewRandSource returns the production random source.
func NewRandSource() RandSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// entryGreetings keys the first-turn greeting on how the user arrived.
var entryGreetings = map[EntryPoint]string{
	EntryMoodAnalyticsReferral: "I see you came here from your mood analytics dashboard! 📊 That's great that you're tracking your mental wellness.",
	EntryMoodCheckinReferral:   "Welcome! I noticed you just tracked your mood - thanks for staying aware of your mental state. 🌸",
	EntryDirectChatAccess:      "Hello! I'm Sahara, your AI mental wellness buddy. 🤗",
	EntryExternalReferral:      "Welcome to Sahara! I'm glad you found us. 🌟",
	EntryOrganicDiscovery:      "Hi there! Great to meet you. I'm Sahara, here to support your mental wellness journey. ✨",
}

// moodGreetingVariants keys first-turn greetings on the most recent tracked
// emotion. "{emotion}" is replaced with the tracked label.
var moodGreetingVariants = map[string][]string{
	"happy": {
		"Hey! 😊 I can see you've been feeling {emotion} lately - that's wonderful!",
		"Hi there! 🌟 Your recent mood shows you're doing well. I'm glad to see that!",
	},
	"excited": {
		"Hello! 🎉 I noticed you've been feeling {emotion} - love that energy!",
		"Hey! ✨ Your positive vibes are showing through your recent mood tracking!",
	},
	"sad": {
		"Hi... 🤗 I see you've been going through some tough times lately. I'm here for you.",
		"Hey there. 💙 I noticed you've been feeling {emotion} recently. Want to talk about it?",
	},
	"anxious": {
		"Hello. 🌸 I can see you've been feeling a bit anxious lately. Let's talk through this together.",
		"Hi there. 😌 I noticed some anxiety in your recent mood entries. You're not alone in this.",
	},
	"stressed": {
		"Hey. 🫂 I see you've been dealing with some stress recently. I'm here to help you work through it.",
		"Hi. 🌿 Your recent mood shows you've been under pressure. Let's find some ways to ease that.",
	},
	"angry": {
		"Hi there. 😤 I can see you've been feeling frustrated lately. Sometimes we all need to vent.",
		"Hello. 💭 I noticed some anger in your recent mood tracking. Want to talk about what's bothering you?",
	},
}

// trendClauses are appended to mood-keyed greetings when the trend moved.
var trendClauses = map[string]string{
	"improving": " Things seem to be looking up for you recently! 📈",
	"declining": " I noticed things have been a bit challenging lately. 💪",
	"stable":    " You've been pretty consistent with your mood lately.",
}

// greeting selects the first-turn greeting. Returns "" for continuing
// conversations.
func greeting(rng RandSource, moodCtx *MoodContext, userCtx *UserContext, isContinuing bool) string {
	if isContinuing {
		return ""
	}

	entryPoint := EntryDirectChatAccess
	hasTrackedMood := false
	if userCtx != nil {
		if userCtx.EntryPoint != "" {
			entryPoint = userCtx.EntryPoint
		}
		hasTrackedMood = userCtx.HasTrackedMood
	}

	base, ok := entryGreetings[entryPoint]
	if !ok {
		base = entryGreetings[EntryDirectChatAccess]
	}

	hasMoodData := moodCtx != nil && moodCtx.HasRecentData
	if !hasMoodData && !hasTrackedMood {
		return base + " How are you feeling today?"
	}
	if !hasMoodData {
		return base
	}

	emotion := strings.ToLower(moodCtx.RecentEmotion)
	if variants, ok := moodGreetingVariants[emotion]; ok {
		chosen := variants[rng.Intn(len(variants))]
		chosen = strings.ReplaceAll(chosen, "{emotion}", emotion)
		if moodCtx.WellnessTrend != "stable" && moodCtx.WellnessTrend != "" {
			chosen += trendClauses[moodCtx.WellnessTrend]
		}
		return chosen
	}

	switch {
	case moodCtx.RecentRating >= 7:
		return fmt.Sprintf("Hi! 😊 I can see you've been feeling pretty good lately (%d/10). That's great!", moodCtx.RecentRating)
	case moodCtx.RecentRating <= 4:
		return fmt.Sprintf("Hey there. 🤗 I see you've been having some rough days recently (%d/10). I'm here to listen.", moodCtx.RecentRating)
	default:
		return "Hello! 😌 I noticed you've been tracking your mood - that's a great step for self-awareness."
	}
}

// moodEnhancement derives the clause appended to local replies when mood
// context is present. Checked in order; first match wins.
func moodEnhancement(moodCtx *MoodContext) string {
	if moodCtx == nil || !moodCtx.HasRecentData {
		return ""
	}

	emotion := strings.ToLower(moodCtx.RecentEmotion)
	rating := moodCtx.RecentRating

	switch {
	case containsLabel(emotion, "sad", "depressed", "anxious", "overwhelmed", "hopeless") || rating <= 4:
		return " Given that you've been going through some tough times lately, I want you to know that what you're feeling is completely valid."
	case containsLabel(emotion, "stressed", "overwhelmed", "pressured", "burnt out") || rating == 5:
		return " I can see you've been dealing with some stress recently, so let's focus on practical steps that won't add more pressure."
	case containsLabel(emotion, "angry", "frustrated", "irritated"):
		return " I noticed you've been feeling frustrated lately - sometimes academic pressure can build up and make everything feel more intense."
	case moodCtx.WellnessTrend == "improving":
		return " It's great to see your mood has been improving recently! Let's keep building on that positive momentum."
	case moodCtx.WellnessTrend == "declining":
		return " I see things have been getting tougher for you lately. Remember, it's okay to ask for help and take things one step at a time."
	default:
		return ""
	}
}

func containsLabel(label string, candidates ...string) bool {
	for _, c := range candidates {
		if label == c {
			return true
		}
	}
	return false
}
