package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the dashboard service.
type Metrics struct {
	ChatMessages     *prometheus.CounterVec // labels: keyword category of the user text
	ResponderErrors  prometheus.Counter
	ResponseDuration prometheus.Histogram

	AlertsIngested *prometheus.CounterVec // labels: source
	AlertsServed   prometheus.Counter
	PollErrors     *prometheus.CounterVec // labels: source

	StreamSubscribers prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ChatMessages,
		m.ResponderErrors,
		m.ResponseDuration,
		m.AlertsIngested,
		m.AlertsServed,
		m.PollErrors,
		m.StreamSubscribers,
	)
	return m
}

// NewMetricsForTesting creates unregistered metrics so tests can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ChatMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_dashboard",
			Name:      "chat_messages_total",
			Help:      "User chat messages by the keyword category of their text, whichever responder answers.",
		}, []string{"category"}),
		ResponderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "disaster_dashboard",
			Name:      "responder_errors_total",
			Help:      "Assistant replies replaced by the apology message.",
		}),
		ResponseDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "disaster_dashboard",
			Name:      "response_duration_seconds",
			Help:      "Time to produce an assistant reply.",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 1.5, 2.5, 5, 10, 30},
		}),
		AlertsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_dashboard",
			Name:      "alerts_ingested_total",
			Help:      "New alerts stored, by source.",
		}, []string{"source"}),
		AlertsServed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "disaster_dashboard",
			Name:      "alerts_served_total",
			Help:      "Alerts returned to clients after location filtering.",
		}),
		PollErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "disaster_dashboard",
			Name:      "poll_errors_total",
			Help:      "Failed feed polls, by source.",
		}, []string{"source"}),
		StreamSubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "disaster_dashboard",
			Name:      "stream_subscribers",
			Help:      "Open alert stream connections.",
		}),
	}
}
