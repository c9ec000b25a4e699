package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Romio1310/SaharaAI/internal/mood"
	"github.com/Romio1310/SaharaAI/internal/observability/metrics"
	"github.com/Romio1310/SaharaAI/pkg/logging"
)

// MoodHandler exposes mood analytics over HTTP. Samples arrive in the
// request body; the server keeps no mood storage of its own.
type MoodHandler struct {
	metrics *metrics.ChatMetrics
	logger  *logging.Logger
}

// NewMoodHandler creates a mood analytics handler.
func NewMoodHandler(m *metrics.ChatMetrics, logger *logging.Logger) *MoodHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &MoodHandler{metrics: m, logger: logger}
}

// MetricsRequest carries the tracked samples, newest first.
type MetricsRequest struct {
	Samples []mood.Sample `json:"samples"`
}

// HandleMetrics handles POST /api/mood/metrics requests.
func (h *MoodHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	var req MetricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode mood metrics request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result := mood.Compute(req.Samples)
	h.metrics.ObserveMoodComputation()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

// InsightRequest is a single mood check-in.
type InsightRequest struct {
	MoodLabel     string `json:"mood_label"`
	MoodIntensity int    `json:"mood_intensity"`
}

// InsightResponse carries the acknowledgement text.
type InsightResponse struct {
	Success bool   `json:"success"`
	Insight string `json:"insight"`
}

// HandleInsight handles POST /api/mood/insight requests.
func (h *MoodHandler) HandleInsight(w http.ResponseWriter, r *http.Request) {
	var req InsightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode mood insight request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.MoodLabel == "" {
		http.Error(w, "missing mood_label", http.StatusBadRequest)
		return
	}
	if req.MoodIntensity == 0 {
		req.MoodIntensity = 3
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(InsightResponse{
		Success: true,
		Insight: mood.Insight(req.MoodLabel, req.MoodIntensity),
	})
}
