package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for the chat and booking flows.
type ChatMetrics struct {
	chatRequests      *prometheus.CounterVec
	llmLatency        *prometheus.HistogramVec
	bookingsStarted   prometheus.Counter
	bookingsCompleted *prometheus.CounterVec
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		chatRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatdesk",
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "Total chat requests by route and outcome",
		}, []string{"route", "status"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "chatdesk",
			Subsystem: "chat",
			Name:      "llm_latency_seconds",
			Help:      "Latency of LLM completions",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		bookingsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chatdesk",
			Subsystem: "booking",
			Name:      "started_total",
			Help:      "Total booking dialogues started",
		}),
		bookingsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatdesk",
			Subsystem: "booking",
			Name:      "completed_total",
			Help:      "Total booking dialogues that reached the final step",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.chatRequests, m.llmLatency, m.bookingsStarted, m.bookingsCompleted)
	return m
}

func (m *ChatMetrics) ObserveChatRequest(route, status string) {
	if m == nil {
		return
	}
	m.chatRequests.WithLabelValues(route, status).Inc()
}

func (m *ChatMetrics) ObserveLLMLatency(route string, seconds float64) {
	if m == nil {
		return
	}
	m.llmLatency.WithLabelValues(route).Observe(seconds)
}

func (m *ChatMetrics) ObserveBookingStarted() {
	if m == nil {
		return
	}
	m.bookingsStarted.Inc()
}

func (m *ChatMetrics) ObserveBookingCompleted(status string) {
	if m == nil {
		return
	}
	m.bookingsCompleted.WithLabelValues(status).Inc()
}
