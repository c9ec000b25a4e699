package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// RedisSessionStore keeps session state in Redis so turns survive process
// restarts. Eviction is the key TTL, refreshed on every write.
type RedisSessionStore struct {
	redis  *redis.Client
	ttl    time.Duration
	tracer trace.Tracer
}

// NewRedisSessionStore creates a Redis-backed SessionStore.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if client == nil {
		panic("chat: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisSessionStore{
		redis:  client,
		ttl:    ttl,
		tracer: otel.Tracer("sahara/session-redis"),
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (s *RedisSessionStore) Record(ctx context.Context, sessionID, message string, analysis Analysis) error {
	ctx, span := s.tracer.Start(ctx, "chat.session_record")
	defer span.End()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if state == nil {
		state = &SessionState{
			SessionID:  sessionID,
			TopicsSeen: make(map[Topic]bool),
		}
	}

	state.Turns = append(state.Turns, Turn{
		Message:   message,
		Analysis:  analysis,
		Timestamp: time.Now(),
	})
	if analysis.Topic != "" {
		state.TopicsSeen[analysis.Topic] = true
	}
	state.EmotionTrail = append(state.EmotionTrail, analysis.Emotion)
	state.Rapport++

	data, err := json.Marshal(state)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("chat: failed to marshal session: %w", err)
	}
	if err := s.redis.Set(ctx, sessionKey(sessionID), data, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("chat: failed to persist session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*SessionState, error) {
	ctx, span := s.tracer.Start(ctx, "chat.session_get")
	defer span.End()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
	}
	return state, err
}

func (s *RedisSessionStore) History(ctx context.Context, sessionID string, n int) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "chat.session_history")
	defer span.End()

	state, err := s.load(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if state == nil || n <= 0 {
		return nil, nil
	}

	start := len(state.Turns) - n
	if start < 0 {
		start = 0
	}
	history := make([]string, 0, len(state.Turns)-start)
	for _, t := range state.Turns[start:] {
		history = append(history, t.Message)
	}
	return history, nil
}

func (s *RedisSessionStore) load(ctx context.Context, sessionID string) (*SessionState, error) {
	data, err := s.redis.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("chat: failed to load session: %w", err)
	}

	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("chat: failed to decode session: %w", err)
	}
	if state.TopicsSeen == nil {
		state.TopicsSeen = make(map[Topic]bool)
	}
	return &state, nil
}
