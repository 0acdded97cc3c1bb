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
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameExpGranted          = "exp_granted_total"
	MetricNameExpDeducted         = "exp_deducted_total"
	MetricNameLevelUps            = "level_ups_total"
	MetricNamePunishmentsApplied  = "punishments_applied_total"
	MetricNamePunishmentsResolved = "punishments_resolved_total"
	MetricNameHonorRecovered      = "honor_recovered_total"
	MetricNameBossBattles         = "boss_battles_total"
	MetricNameLeaderboardRefresh  = "leaderboard_refreshes_total"
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
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextExpGranted          = "Total EXP granted to players, after multipliers"
	HelpTextExpDeducted         = "Total EXP deducted from players, after multipliers"
	HelpTextLevelUps            = "Total number of player level ups"
	HelpTextPunishmentsApplied  = "Total number of punishments applied"
	HelpTextPunishmentsResolved = "Total number of punishments resolved"
	HelpTextHonorRecovered      = "Total honor points restored by recovery sweeps"
	HelpTextBossBattles         = "Total number of boss battle scores recorded"
	HelpTextLeaderboardRefresh  = "Total number of leaderboard cache invalidations"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelActivity = "activity"
	LabelCategory = "category"
	LabelSeverity = "severity"
	LabelBossType = "boss_type"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnknown = "Event payload type not recognized"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
