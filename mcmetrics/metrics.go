package mcmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds every counter/histogram an mcstat run updates. A nil
// *Metrics is never passed around; use New to build one per registry.
type Metrics struct {
	FormulasEvaluated prometheus.Counter
	ModeMismatches    *prometheus.CounterVec
	EvalDuration      *prometheus.HistogramVec
	StatSampleCount   prometheus.Histogram
}

// New creates a Metrics value and registers every collector with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FormulasEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mcstat",
			Name:      "formulas_evaluated_total",
			Help:      "Number of top-level formulas evaluated.",
		}),
		ModeMismatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcstat",
			Name:      "mode_mismatches_total",
			Help:      "Number of operators degraded to a zero vector due to a run-mode mismatch, by operator kind.",
		}, []string{"operator"}),
		EvalDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mcstat",
			Name:      "eval_duration_seconds",
			Help:      "Wall-clock time spent evaluating a formula, by engine (numeric or statistical).",
			Buckets:   prometheus.DefBuckets,
		}, []string{"engine"}),
		StatSampleCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mcstat",
			Name:      "statistical_samples",
			Help:      "Number of Monte Carlo samples drawn per statistical verdict.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 12),
		}),
	}

	reg.MustRegister(m.FormulasEvaluated, m.ModeMismatches, m.EvalDuration, m.StatSampleCount)

	return m
}
