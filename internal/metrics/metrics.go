// Package metrics exposes Prometheus instrumentation for the calculation
// endpoints. Metrics are registered on the default registry via promauto and
// served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProjectionsTotal counts single-parameter-set projections computed.
	ProjectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finance_engine_projections_total",
		Help: "Total number of single projections computed.",
	})

	// ScenarioRunsTotal counts scenario batch runs (one per request, not per
	// scenario entry).
	ScenarioRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finance_engine_scenario_runs_total",
		Help: "Total number of scenario batch runs computed.",
	})

	// CalculationDuration observes wall time of one calculation request.
	CalculationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "finance_engine_calculation_duration_seconds",
		Help:    "Wall time spent computing one calculation request.",
		Buckets: prometheus.DefBuckets,
	})
)
