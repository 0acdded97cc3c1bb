package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized    = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir = "failed to create dead-letter directory"
	ErrMsgFailedCreatePublisher     = "failed to create resilient publisher"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	LogMsgNotifierInitialized        = "Webhook notifier initialized"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedSubscribeEventLogger = "failed to subscribe event logger"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer           = "Shutting down server..."
	LogMsgServerStopped                = "Server stopped"
	LogMsgServerForcedShutdown         = "Server forced to shutdown"
	LogMsgEffectWorkerShutdownFailed   = "Effect expiry worker shutdown failed"
	LogMsgSchedulerStopped             = "Scheduler stopped"
	LogMsgWorkerPoolStopped            = "Worker pool stopped"
	LogMsgPublisherShutdownFailed      = "Event publisher shutdown failed"
	LogMsgRedisCloseFailed             = "Redis client close failed"
	LogMsgDatabasePoolClosed           = "Database pool closed"
)
