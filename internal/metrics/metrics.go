package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FilterUpdates tracks filter transitions per field
	FilterUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchdash_filter_updates_total",
			Help: "Total number of filter state transitions",
		},
		[]string{"field"},
	)

	// Recomputations tracks derived outputs recomputed by the binder
	Recomputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchdash_recomputations_total",
			Help: "Total number of chart data recomputations",
		},
		[]string{"output"},
	)

	// RecomputeLatency tracks how long a recomputation takes
	RecomputeLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "launchdash_recompute_latency_seconds",
			Help:    "Chart data recomputation latency in seconds",
			Buckets: []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
		},
		[]string{"output"},
	)

	// ChartRenders tracks rendered charts by outcome
	ChartRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchdash_chart_renders_total",
			Help: "Total number of rendered charts",
		},
		[]string{"chart", "status"},
	)

	// SessionsActive tracks open dashboard sessions
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "launchdash_sessions_active",
			Help: "Number of open dashboard sessions",
		},
	)

	// SessionsPruned tracks sessions expired by the idle pruner
	SessionsPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "launchdash_sessions_pruned_total",
			Help: "Total number of idle sessions removed",
		},
	)

	// DatasetRecords tracks the number of loaded launch records
	DatasetRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "launchdash_dataset_records",
			Help: "Number of launch records loaded at startup",
		},
	)
)
