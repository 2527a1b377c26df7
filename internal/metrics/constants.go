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

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Store metric names
const (
	MetricNameFavoriteToggles     = "favorite_toggles_total"
	MetricNameFavoritesCount      = "favorites_count"
	MetricNameCustomRecipeOps     = "custom_recipe_operations_total"
	MetricNameCustomRecipesCount  = "custom_recipes_count"
	MetricNameStorageOps          = "storage_operations_total"
	MetricNameStorageOpDuration   = "storage_operation_duration_seconds"
	MetricNameStorageCacheLookups = "storage_cache_lookups_total"
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

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Store metric help text
const (
	HelpTextFavoriteToggles     = "Total number of committed favorite toggles"
	HelpTextFavoritesCount      = "Current number of favorites"
	HelpTextCustomRecipeOps     = "Total number of custom recipe operations"
	HelpTextCustomRecipesCount  = "Current number of custom recipes"
	HelpTextStorageOps          = "Total number of key-value storage operations"
	HelpTextStorageOpDuration   = "Key-value storage operation latency in seconds"
	HelpTextStorageCacheLookups = "Total number of storage cache lookups"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelAction  = "action"
	LabelOp      = "op"
	LabelResult  = "result"
	LabelBackend = "backend"
)

// Label values
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultHit     = "hit"
	ResultMiss    = "miss"

	ActionAdded   = "added"
	ActionRemoved = "removed"
)

// HTTPLatencyBuckets are the histogram buckets for HTTP latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// StorageLatencyBuckets are the histogram buckets for storage latency
var StorageLatencyBuckets = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}

// Log messages
const (
	LogMsgUnexpectedPayload = "Unexpected event payload type"
)
