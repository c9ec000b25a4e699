package chat

import (
	"context"
	"sync"
	"time"
)

// Turn is one recorded user message with its analysis. Turns are never
// mutated after insertion.
type Turn struct {
	Message   string    `json:"message"`
	Analysis  Analysis  `json:"analysis"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionState is the rolling conversational context for one session id.
type SessionState struct {
	SessionID    string         `json:"session_id"`
	Turns        []Turn         `json:"turns"`
	TopicsSeen   map[Topic]bool `json:"topics_seen"`
	EmotionTrail []string       `json:"emotion_trail"`
	Rapport      int            `json:"rapport"`
}

// SessionStore keeps per-session conversational state. Callers are expected
// to serialize turns for the same session id; stores only guard their own
// shared structures so different sessions can proceed concurrently.
type SessionStore interface {
	// Record appends a turn, creating the session lazily on first use.
	Record(ctx context.Context, sessionID, message string, analysis Analysis) error
	// Get returns the current state, or nil if the session is unknown.
	Get(ctx context.Context, sessionID string) (*SessionState, error)
	// History returns up to n of the most recent user messages, oldest first.
	History(ctx context.Context, sessionID string, n int) ([]string, error)
}

// MemorySessionStore is the in-process SessionStore. Eviction is explicit:
// sessions idle past the TTL are dropped on the next write, and the store
// never holds more than maxSessions (oldest idle evicted first).
type MemorySessionStore struct {
	ttl         time.Duration
	maxSessions int
	now         func() time.Time

	mu       sync.RWMutex
	sessions map[string]*memorySession
}

type memorySession struct {
	state    SessionState
	lastSeen time.Time
}

// NewMemorySessionStore creates an in-memory store with the given eviction
// policy. A non-positive ttl disables time-based eviction; a non-positive
// maxSessions disables the size bound.
func NewMemorySessionStore(ttl time.Duration, maxSessions int) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
		sessions:    make(map[string]*memorySession),
	}
}

func (s *MemorySessionStore) Record(ctx context.Context, sessionID, message string, analysis Analysis) error {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked(now)

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &memorySession{
			state: SessionState{
				SessionID:  sessionID,
				TopicsSeen: make(map[Topic]bool),
			},
		}
		s.sessions[sessionID] = sess
	}

	sess.state.Turns = append(sess.state.Turns, Turn{
		Message:   message,
		Analysis:  analysis,
		Timestamp: now,
	})
	if analysis.Topic != "" {
		sess.state.TopicsSeen[analysis.Topic] = true
	}
	sess.state.EmotionTrail = append(sess.state.EmotionTrail, analysis.Emotion)
	sess.state.Rapport++
	sess.lastSeen = now

	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*SessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	state := cloneState(&sess.state)
	return state, nil
}

func (s *MemorySessionStore) History(ctx context.Context, sessionID string, n int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok || n <= 0 {
		return nil, nil
	}

	turns := sess.state.Turns
	start := len(turns) - n
	if start < 0 {
		start = 0
	}
	history := make([]string, 0, len(turns)-start)
	for _, t := range turns[start:] {
		history = append(history, t.Message)
	}
	return history, nil
}

// Len returns the number of live sessions.
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// evictLocked applies the TTL and size bounds. Caller holds the write lock.
func (s *MemorySessionStore) evictLocked(now time.Time) {
	if s.ttl > 0 {
		for id, sess := range s.sessions {
			if now.Sub(sess.lastSeen) > s.ttl {
				delete(s.sessions, id)
			}
		}
	}
	if s.maxSessions > 0 {
		for len(s.sessions) >= s.maxSessions {
			oldestID := ""
			var oldest time.Time
			for id, sess := range s.sessions {
				if oldestID == "" || sess.lastSeen.Before(oldest) {
					oldestID = id
					oldest = sess.lastSeen
				}
			}
			if oldestID == "" {
				return
			}
			delete(s.sessions, oldestID)
		}
	}
}

// cloneState copies the state so callers cannot mutate stored turns.
func cloneState(state *SessionState) *SessionState {
	clone := &SessionState{
		SessionID:    state.SessionID,
		Turns:        append([]Turn(nil), state.Turns...),
		TopicsSeen:   make(map[Topic]bool, len(state.TopicsSeen)),
		EmotionTrail: append([]string(nil), state.EmotionTrail...),
		Rapport:      state.Rapport,
	}
	for topic := range state.TopicsSeen {
		clone.TopicsSeen[topic] = true
	}
	return clone
}
