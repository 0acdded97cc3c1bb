package eventlog

// JSON payload field keys
const (
	PayloadKeyPlayerID = "player_id"
)

// Log messages - service events
const (
	LogMsgEventPayloadNotLoggable = "Event payload is not serializable, skipping log"
	LogMsgFailedToLogEvent        = "Failed to log event to database"
	LogMsgEventLogged             = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldPlayerID      = "player_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)
