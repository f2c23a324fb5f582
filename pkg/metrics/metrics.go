package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advisor_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Business metrics
	ComparisonsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_investment_comparisons_total",
			Help: "Total number of investment comparisons computed",
		},
		[]string{"status"},
	)

	RealignmentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "advisor_date_realignments_total",
			Help: "Comparisons whose purchase date was realigned to the later fund's inception",
		},
	)

	SearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "advisor_fund_searches_total",
			Help: "Total number of fund search requests",
		},
	)

	// Dataset snapshot metrics
	FundsLoadedGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "advisor_funds_loaded",
			Help: "Number of funds in the active metrics snapshot",
		},
	)

	NavSchemesLoadedGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "advisor_nav_schemes_loaded",
			Help: "Number of NAV series in the active snapshot",
		},
	)

	SnapshotLoadTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "advisor_snapshot_load_timestamp_seconds",
			Help: "Unix time of the last successful dataset load",
		},
	)

	SnapshotReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisor_snapshot_reloads_total",
			Help: "Dataset reload attempts",
		},
		[]string{"result"},
	)
)
