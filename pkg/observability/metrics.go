package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/arbor/pkg/domain"
)

// Metrics holds Prometheus collectors for container activity.
type Metrics struct {
	dispatches   *prometheus.CounterVec
	sliceChanges *prometheus.CounterVec
	duration     prometheus.Histogram
}

// NewMetrics creates and registers the collectors. Pass nil to use the
// default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_dispatches_total",
				Help: "Dispatched actions by type and outcome (applied or noop).",
			},
			[]string{"type", "outcome"},
		),
		sliceChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_slice_changes_total",
				Help: "Published slice value changes by slice name.",
			},
			[]string{"slice"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "arbor_dispatch_duration_seconds",
				Help:    "Time spent processing a dispatch, including fan-out.",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
		),
	}

	reg.MustRegister(m.dispatches, m.sliceChanges, m.duration)
	return m
}

// Dispatches exposes the dispatch counter vec for tests and custom
// dashboards.
func (m *Metrics) Dispatches() *prometheus.CounterVec {
	return m.dispatches
}

// Hooks adapts the collectors to container lifecycle hooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDispatch: func(e *domain.DispatchEvent) {
			outcome := "noop"
			if len(e.Changed) > 0 {
				outcome = "applied"
			}
			m.dispatches.WithLabelValues(e.Action.Type, outcome).Inc()
			m.duration.Observe(e.Duration.Seconds())
		},
		OnStateChange: func(e *domain.ChangeEvent) {
			for _, slice := range e.Changed {
				m.sliceChanges.WithLabelValues(slice).Inc()
			}
		},
	}
}
