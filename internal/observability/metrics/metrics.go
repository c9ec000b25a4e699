package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for chat and mood flows.
type ChatMetrics struct {
	turnsTotal        *prometheus.CounterVec
	responderLatency  *prometheus.HistogramVec
	responderFailures *prometheus.CounterVec
	moodComputes      prometheus.Counter
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sahara",
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Total chat turns by reply source",
		}, []string{"source", "topic"}),
		responderLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sahara",
			Subsystem: "chat",
			Name:      "responder_latency_seconds",
			Help:      "Latency of external responder attempts",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		responderFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sahara",
			Subsystem: "chat",
			Name:      "responder_failures_total",
			Help:      "External responder attempts that fell back to local handling",
		}, []string{"provider", "reason"}),
		moodComputes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sahara",
			Subsystem: "mood",
			Name:      "metric_computations_total",
			Help:      "Total mood analytics computations",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.responderLatency, m.responderFailures, m.moodComputes)
	return m
}

func (m *ChatMetrics) ObserveTurn(source, topic string) {
	if m == nil {
		return
	}
	if topic == "" {
		topic = "none"
	}
	m.turnsTotal.WithLabelValues(source, topic).Inc()
}

func (m *ChatMetrics) ObserveResponderLatency(provider string, seconds float64) {
	if m == nil {
		return
	}
	m.responderLatency.WithLabelValues(provider).Observe(seconds)
}

func (m *ChatMetrics) ObserveResponderFailure(provider, reason string) {
	if m == nil {
		return
	}
	m.responderFailures.WithLabelValues(provider, reason).Inc()
}

func (m *ChatMetrics) ObserveMoodComputation() {
	if m == nil {
		return
	}
	m.moodComputes.Inc()
}
