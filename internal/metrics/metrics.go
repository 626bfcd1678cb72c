package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Engine Metrics
var (
	MixesCalculated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMixesCalculated,
			Help: HelpTextMixesCalculated,
		},
		[]string{LabelProduct, LabelValid},
	)

	MixCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMixCacheLookups,
			Help: HelpTextMixCacheLookups,
		},
		[]string{LabelResult},
	)

	MixWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMixWarnings,
			Help: HelpTextMixWarnings,
		},
	)

	MixCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameMixCacheEntries,
			Help: HelpTextMixCacheEntries,
		},
	)

	CatalogEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogEntries,
			Help: HelpTextCatalogEntries,
		},
		[]string{LabelKind},
	)
)

// Optimizer Metrics
var (
	OptimizerRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOptimizerRuns,
			Help: HelpTextOptimizerRuns,
		},
		[]string{LabelGoal},
	)

	OptimizerCombinations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOptimizerCombinations,
			Help: HelpTextOptimizerCombinations,
		},
	)

	OptimizerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameOptimizerDuration,
			Help:    HelpTextOptimizerDuration,
			Buckets: OptimizerLatencyBuckets,
		},
		[]string{LabelGoal},
	)
)

// Discord Metrics
var (
	DiscordCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordCommands,
			Help: HelpTextDiscordCommands,
		},
		[]string{LabelCommand},
	)
)
