package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Romio1310/SaharaAI/internal/observability/metrics"
	"github.com/Romio1310/SaharaAI/pkg/logging"
)

var composerTracer = otel.Tracer("sahara/composer")

// Engine classifies a turn and composes the reply. One instance serves all
// sessions; the caller is responsible for serializing turns that share a
// session id.
type Engine struct {
	classifier   *Classifier
	sessions     SessionStore
	responder    Responder
	timeout      time.Duration
	historyTurns int
	rng          RandSource
	handlers     map[Topic]topicHandler
	metrics      *metrics.ChatMetrics
	logger       *logging.Logger
}

// EngineOptions configures an Engine. Sessions is required; everything else
// has a production default.
type EngineOptions struct {
	Sessions     SessionStore
	Responder    Responder
	Timeout      time.Duration
	HistoryTurns int
	Rand         RandSource
	Metrics      *metrics.ChatMetrics
	Logger       *logging.Logger
}

// NewEngine creates the per-turn engine. Panics if the session store is
// missing or if any declared topic lacks a handler.
func NewEngine(opts EngineOptions) *Engine {
	if opts.Sessions == nil {
		panic("chat: session store cannot be nil")
	}
	if opts.Responder == nil {
		opts.Responder = NoopResponder{}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 8 * time.Second
	}
	if opts.HistoryTurns <= 0 {
		opts.HistoryTurns = 3
	}
	if opts.Rand == nil {
		opts.Rand = NewRandSource()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	engineLogger := opts.Logger.With("component", "composer")

	handlers := handlerTable()
	for _, entry := range contextPatterns {
		if _, ok := handlers[entry.Topic]; !ok {
			panic(fmt.Sprintf("chat: no handler for topic %q", entry.Topic))
		}
	}

	return &Engine{
		classifier:   NewClassifier(opts.Logger),
		sessions:     opts.Sessions,
		responder:    opts.Responder,
		timeout:      opts.Timeout,
		historyTurns: opts.HistoryTurns,
		rng:          opts.Rand,
		handlers:     handlers,
		metrics:      opts.Metrics,
		logger:       engineLogger,
	}
}

// Respond runs the full per-turn pipeline: crisis interception, external
// responder attempt, local handler dispatch, mood enhancement, and
// first-turn greeting. Returns ErrEmptyMessage for blank input.
func (e *Engine) Respond(ctx context.Context, req TurnRequest) (Reply, error) {
	ctx, span := composerTracer.Start(ctx, "chat.respond")
	defer span.End()

	if strings.TrimSpace(req.Message) == "" {
		return Reply{}, ErrEmptyMessage
	}

	analysis := e.classifier.Classify(ctx, req.Message, nil)

	state, err := e.sessions.Get(ctx, req.SessionID)
	if err != nil {
		e.logger.Warn("session lookup failed", "session_id", req.SessionID, "error", err)
	}
	isContinuing := state != nil && len(state.Turns) > 0

	// Crisis always wins. The turn is still recorded for continuity.
	if ContainsCrisisMarker(req.Message) {
		e.record(ctx, req.SessionID, req.Message, analysis)
		e.metrics.ObserveTurn(SourceCrisis, string(analysis.Topic))
		e.logger.Info("crisis marker detected", "session_id", req.SessionID)
		span.SetAttributes(attribute.Bool("chat.crisis", true))
		return Reply{
			Message: crisisMessage,
			Context: "crisis",
			Urgent:  true,
			Source:  SourceCrisis,
		}, nil
	}

	if text := e.tryResponder(ctx, req, analysis); text != "" {
		e.record(ctx, req.SessionID, req.Message, analysis)
		contextTag := string(analysis.Topic)
		if contextTag == "" {
			contextTag = "gemini_response"
		}
		e.metrics.ObserveTurn(e.responder.Name(), string(analysis.Topic))
		return Reply{
			Message: text,
			Context: contextTag,
			Source:  e.responder.Name(),
		}, nil
	}

	handler := e.handlers[analysis.Topic]
	if handler == nil {
		handler = handleGeneralConversation
	}
	local := handler(req.Message, analysis, isContinuing)

	message := local.Message
	if clause := moodEnhancement(req.MoodContext); clause != "" {
		message += clause
	}
	if greet := greeting(e.rng, req.MoodContext, req.UserContext, isContinuing); greet != "" {
		message = greet + "\n\n" + message
	}

	e.record(ctx, req.SessionID, req.Message, analysis)
	e.metrics.ObserveTurn(SourceLocal, string(analysis.Topic))

	return Reply{
		Message:  message,
		Context:  local.Context,
		FollowUp: local.FollowUp,
		Source:   SourceLocal,
	}, nil
}

// tryResponder makes exactly one attempt against the external responder,
// bounded by the configured timeout. Every failure mode, including a panic
// in the provider client, degrades to "" so the local handlers take over.
func (e *Engine) tryResponder(ctx context.Context, req TurnRequest, analysis Analysis) (text string) {
	if _, ok := e.responder.(NoopResponder); ok {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			e.metrics.ObserveResponderFailure(e.responder.Name(), "panic")
			e.logger.Warn("responder panicked, using local handler",
				"provider", e.responder.Name(),
				"panic", fmt.Sprint(r),
			)
			text = ""
		}
	}()

	history, err := e.sessions.History(ctx, req.SessionID, e.historyTurns)
	if err != nil {
		e.logger.Warn("history lookup failed", "session_id", req.SessionID, "error", err)
	}

	start := time.Now()
	text, err = e.responder.Generate(ctx, GenerateRequest{
		Message:       req.Message,
		Analysis:      analysis,
		History:       history,
		ToneDirective: ToneDirective(req.Message),
	})
	e.metrics.ObserveResponderLatency(e.responder.Name(), time.Since(start).Seconds())

	if err != nil {
		e.metrics.ObserveResponderFailure(e.responder.Name(), "error")
		e.logger.Warn("responder failed, using local handler",
			"provider", e.responder.Name(),
			"error", err,
		)
		return ""
	}
	if strings.TrimSpace(text) == "" {
		e.metrics.ObserveResponderFailure(e.responder.Name(), "empty")
		return ""
	}
	return strings.TrimSpace(text)
}

func (e *Engine) record(ctx context.Context, sessionID, message string, analysis Analysis) {
	if sessionID == "" {
		return
	}
	if err := e.sessions.Record(ctx, sessionID, message, analysis); err != nil {
		e.logger.Warn("failed to record turn", "session_id", sessionID, "error", err)
	}
}
