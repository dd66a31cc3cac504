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

// Cultivation metric names
const (
	MetricNameSessionsStarted   = "cultivation_sessions_started_total"
	MetricNameSessionsEnded     = "cultivation_sessions_ended_total"
	MetricNameSessionDuration   = "cultivation_session_duration_minutes"
	MetricNameExpGranted        = "cultivation_exp_granted_total"
	MetricNameRealmAdvancements = "cultivation_realm_advancements_total"
	MetricNameDailyResets       = "cultivation_daily_resets_total"
	MetricNameWeatherLookups    = "weather_lookups_total"
	MetricNameWeatherFallbacks  = "weather_fallbacks_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextEventsPublished      = "Total number of events published"
	HelpTextSessionsStarted      = "Total number of cultivation sessions started"
	HelpTextSessionsEnded        = "Total number of cultivation sessions completed"
	HelpTextSessionDuration      = "Credited session length in minutes"
	HelpTextExpGranted           = "Total experience credited to users"
	HelpTextRealmAdvancements    = "Realm promotions by destination realm"
	HelpTextDailyResets          = "Completed daily rollovers"
	HelpTextWeatherLookups       = "Weather provider lookups by result"
	HelpTextWeatherFallbacks     = "Placeholder weather substitutions by reason"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelRealm     = "realm"
	LabelTruncated = "truncated"
	LabelResult    = "result"
	LabelReason    = "reason"
)

// Weather lookup results
const (
	LookupResultCacheHit = "cache_hit"
	LookupResultFetched  = "fetched"
	LookupResultError    = "error"
)

// Weather fallback reasons
const (
	FallbackReasonUnconfigured = "unconfigured"
	FallbackReasonError        = "error"
	FallbackReasonTimeout      = "timeout"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// SessionDurationBuckets covers one minute up to the eight hour cap
var SessionDurationBuckets = []float64{1, 5, 15, 30, 60, 120, 240, 480}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Unexpected event payload type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
