package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeSerializationFailure signals a concurrent-write conflict; callers may retry
	PgErrorCodeSerializationFailure = "40001"
	// PgErrorCodeDeadlockDetected signals lock ordering conflicts between transactions
	PgErrorCodeDeadlockDetected = "40P01"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Player Operations
const (
	ErrMsgInvalidPlayerID         = "invalid player id"
	ErrMsgFailedToInsertPlayer    = "failed to insert player"
	ErrMsgFailedToUpdatePlayer    = "failed to update player"
	ErrMsgFailedToGetPlayer       = "failed to get player"
	ErrMsgFailedToListPlayers     = "failed to list players"
	ErrMsgFailedToScanPlayer      = "failed to scan player"
	ErrMsgFailedToGetLevels       = "failed to get level thresholds"
	ErrMsgFailedToInsertExpLog    = "failed to insert exp log entry"
	ErrMsgFailedToListExpLog      = "failed to list exp log entries"
	ErrMsgFailedToGetEffects      = "failed to get status effects"
	ErrMsgFailedToExpireEffects   = "failed to expire status effects"
	ErrMsgFailedToInsertEffect    = "failed to insert status effect"
	ErrMsgFailedToInsertPunish    = "failed to insert punishment"
	ErrMsgFailedToGetPunishment   = "failed to get punishment"
	ErrMsgFailedToGetAttendance   = "failed to get attendance"
)
