package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidID         = "Invalid id parameter"

	// Player error messages
	ErrMsgRegisterPlayerFailed = "Failed to register player"
	ErrMsgGetPlayerFailed      = "Failed to get player"
	ErrMsgGetProgressFailed    = "Failed to get progression"
	ErrMsgGetPrivilegesFailed  = "Failed to get privileges"
	ErrMsgGetExpLogFailed      = "Failed to get EXP log"

	// EXP ledger error messages
	ErrMsgGrantExpFailed = "Failed to grant EXP"

	// Status effect error messages
	ErrMsgListEffectsFailed  = "Failed to list status effects"
	ErrMsgApplyEffectFailed  = "Failed to apply status effect"
	ErrMsgRemoveEffectFailed = "Failed to remove status effect"

	// Punishment error messages
	ErrMsgApplyPunishmentFailed   = "Failed to apply punishment"
	ErrMsgResolvePunishmentFailed = "Failed to resolve punishment"
	ErrMsgListPunishmentsFailed   = "Failed to list punishments"
	ErrMsgInvalidPunishmentID     = "Invalid punishment ID"

	// Attendance and dungeon error messages
	ErrMsgCreateDungeonFailed    = "Failed to create dungeon"
	ErrMsgGetDungeonFailed       = "Failed to get dungeon"
	ErrMsgUpdateDungeonFailed    = "Failed to update dungeon"
	ErrMsgInvalidDungeonID       = "Invalid dungeon ID"
	ErrMsgRecordAttendanceFailed = "Failed to record attendance"
	ErrMsgGetAttendanceFailed    = "Failed to get attendance"

	// Boss battle error messages
	ErrMsgRecordBattleFailed = "Failed to record boss battle"
	ErrMsgListBattlesFailed  = "Failed to list boss battles"
	ErrMsgPreviewScoreFailed = "Failed to preview boss score"

	// Sidequest error messages
	ErrMsgCreateSidequestFailed = "Failed to create sidequest"
	ErrMsgGetSidequestFailed    = "Failed to get sidequest"
	ErrMsgInvalidSidequestID    = "Invalid sidequest ID"
	ErrMsgSubmitFailed          = "Failed to submit sidequest"
	ErrMsgGradeFailed           = "Failed to grade submission"
	ErrMsgInvalidSubmissionID   = "Invalid submission ID"

	// Leaderboard error messages
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgEffectRemovedSuccess      = "Status effect removed"
	MsgDungeonStatusUpdated      = "Dungeon status updated"
	MsgPunishmentResolvedSuccess = "Punishment resolved"
	MsgAbsenceBelowThreshold     = "Absence recorded, below punishment threshold"
)
