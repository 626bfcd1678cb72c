package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Engine metric names
const (
	MetricNameMixesCalculated = "mixes_calculated_total"
	MetricNameMixCacheLookups = "mix_cache_lookups_total"
	MetricNameMixWarnings     = "mix_warnings_total"
	MetricNameMixCacheEntries = "mix_cache_entries"
	MetricNameCatalogEntries  = "catalog_entries"
)

// Optimizer metric names
const (
	MetricNameOptimizerRuns         = "optimizer_runs_total"
	MetricNameOptimizerCombinations = "optimizer_combinations_evaluated_total"
	MetricNameOptimizerDuration     = "optimizer_duration_seconds"
)

// Discord metric names
const (
	MetricNameDiscordCommands = "discord_commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Engine metric help text
const (
	HelpTextMixesCalculated = "Total number of mixes calculated"
	HelpTextMixCacheLookups = "Mix result cache lookups by outcome"
	HelpTextMixWarnings     = "Total number of warnings attached to calculated mixes"
	HelpTextMixCacheEntries = "Mix results currently held in the cache"
	HelpTextCatalogEntries  = "Number of loaded catalog entries by kind"
)

// Optimizer metric help text
const (
	HelpTextOptimizerRuns         = "Total number of optimizer runs by goal"
	HelpTextOptimizerCombinations = "Total number of ingredient combinations evaluated by the optimizer"
	HelpTextOptimizerDuration     = "Optimizer run latency in seconds"
)

// Discord metric help text
const (
	HelpTextDiscordCommands = "Total number of Discord slash commands handled by command name"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelProduct = "product"
	LabelValid   = "valid"
	LabelResult  = "result"
	LabelGoal    = "goal"
	LabelKind    = "kind"
	LabelCommand = "command"
)

// Label values
const (
	CacheHit  = "hit"
	CacheMiss = "miss"

	UnknownLabel = "unknown"

	KindProducts    = "products"
	KindIngredients = "ingredients"
	KindEffects     = "effects"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// OptimizerLatencyBuckets covers sub-millisecond small inventories up to
// multi-second full catalogs
var OptimizerLatencyBuckets = []float64{.0005, .001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5}
