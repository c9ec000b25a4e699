package chat

import "errors"

// ErrEmptyMessage signals the distinguishable "no input" condition; the
// classifier is defined only for non-empty messages.
var ErrEmptyMessage = errors.New("chat: empty message")

// Reply sources.
const (
	SourceCrisis = "local_crisis"
	SourceLocal  = "local_intelligent"
)

// EntryPoint describes how the user arrived at the chat.
type EntryPoint string

const (
	EntryMoodAnalyticsReferral EntryPoint = "mood_analytics_referral"
	EntryMoodCheckinReferral   EntryPoint = "mood_checkin_referral"
	EntryDirectChatAccess      EntryPoint = "direct_chat_access"
	EntryExternalReferral      EntryPoint = "external_referral"
	EntryOrganicDiscovery      EntryPoint = "organic_discovery"
)

// MoodContext is the caller-supplied summary of recent mood tracking.
type MoodContext struct {
	HasRecentData    bool     `json:"has_recent_data"`
	RecentEmotion    string   `json:"recent_emotion"`
	RecentRating     int      `json:"recent_rating"`
	WellnessTrend    string   `json:"wellness_trend"`
	DominantEmotions []string `json:"dominant_emotions,omitempty"`
}

// UserContext is the caller-supplied journey context.
type UserContext struct {
	EntryPoint     EntryPoint `json:"entry_point"`
	UserState      string     `json:"user_state"`
	HasTrackedMood bool       `json:"has_tracked_mood"`
}

// Reply is the composed result of one chat turn.
type Reply struct {
	Message  string `json:"message"`
	Context  string `json:"context"`
	Urgent   bool   `json:"urgent"`
	FollowUp string `json:"follow_up,omitempty"`
	Source   string `json:"source"`
}

// TurnRequest is the engine's single chat entry point input.
type TurnRequest struct {
	Message     string
	SessionID   string
	MoodContext *MoodContext
	UserContext *UserContext
}
