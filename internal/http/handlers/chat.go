package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Romio1310/SaharaAI/internal/chat"
	"github.com/Romio1310/SaharaAI/pkg/logging"
)

// ChatHandler exposes the conversation engine over HTTP.
type ChatHandler struct {
	engine *chat.Engine
	logger *logging.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(engine *chat.Engine, logger *logging.Logger) *ChatHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChatHandler{engine: engine, logger: logger}
}

// ChatRequest is what the chat widget posts.
type ChatRequest struct {
	Message     string            `json:"message"`
	SessionID   string            `json:"session_id"`
	MoodContext *chat.MoodContext `json:"mood_context,omitempty"`
	UserContext *chat.UserContext `json:"user_context,omitempty"`
}

// ChatResponse wraps the engine reply with the session identifier so the
// widget can carry it across turns.
type ChatResponse struct {
	chat.Reply
	SessionID string `json:"session_id"`
}

// HandleChat handles POST /api/chat requests.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode chat request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply, err := h.engine.Respond(r.Context(), chat.TurnRequest{
		Message:     req.Message,
		SessionID:   sessionID,
		MoodContext: req.MoodContext,
		UserContext: req.UserContext,
	})
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			http.Error(w, "No message provided", http.StatusBadRequest)
			return
		}
		h.logger.Error("chat turn failed", "error", err, "session_id", sessionID)
		http.Error(w, "failed to process message", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ChatResponse{Reply: reply, SessionID: sessionID})
}
