package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/cinta/pkg/machine"
)

// Metrics holds the Prometheus collectors for the simulation engine.
type Metrics struct {
	RunsTotal *prometheus.CounterVec
	RunSteps  *prometheus.HistogramVec
}

// NewMetrics creates and registers the collectors.
// A nil registerer falls back to the default Prometheus registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cinta_runs_total",
				Help: "Total number of finished runs by verdict",
			},
			[]string{"machine", "verdict"},
		),
		RunSteps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cinta_run_steps",
				Help:    "Transitions consumed per run",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"machine"},
		),
	}
	reg.MustRegister(m.RunsTotal, m.RunSteps)

	return m
}

// Hooks adapts the collectors into run lifecycle hooks.
func (m *Metrics) Hooks() *machine.LifecycleHooks {
	return &machine.LifecycleHooks{
		OnHalt: func(_ context.Context, e *machine.RunEvent) {
			m.RunsTotal.WithLabelValues(e.Machine, string(e.Verdict)).Inc()
			m.RunSteps.WithLabelValues(e.Machine).Observe(float64(e.Steps))
		},
	}
}
