package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for dashboard interactions.
type Metrics struct {
	Recomputes      prometheus.Counter
	SessionsStarted prometheus.Counter
	GridResets      prometheus.Counter

	GridEdits    *prometheus.CounterVec // labels: outcome={applied,rejected}
	DragGestures *prometheus.CounterVec // labels: matrix={likelihood,danger}, outcome={applied,ignored}
	MaxDanger    *prometheus.CounterVec // labels: level
}

func newMetrics() *Metrics {
	return &Metrics{
		Recomputes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "avy_dashboard",
			Name:      "recomputes_total",
			Help:      "Total rating recomputations.",
		}),
		SessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "avy_dashboard",
			Name:      "sessions_started_total",
			Help:      "Dashboard sessions initialized with the default grid.",
		}),
		GridResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "avy_dashboard",
			Name:      "grid_resets_total",
			Help:      "Danger grid resets to the default table.",
		}),
		GridEdits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "avy_dashboard",
			Name:      "grid_edits_total",
			Help:      "Danger grid cell edits by outcome.",
		}, []string{"outcome"}),
		DragGestures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "avy_dashboard",
			Name:      "drag_gestures_total",
			Help:      "Matrix drag gestures by matrix and outcome.",
		}, []string{"matrix", "outcome"}),
		MaxDanger: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "avy_dashboard",
			Name:      "max_danger_total",
			Help:      "Computed max danger levels.",
		}, []string{"level"}),
	}
}

// NewMetrics creates and registers all dashboard metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Recomputes,
		m.SessionsStarted,
		m.GridResets,
		m.GridEdits,
		m.DragGestures,
		m.MaxDanger,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests
// can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
