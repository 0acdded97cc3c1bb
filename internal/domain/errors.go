package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"
	ErrMsgUsernameTaken  = "username already taken"

	// Level table errors
	ErrMsgLevelTableEmpty = "level table is empty"

	// Validation errors
	ErrMsgInvalidSeverity = "invalid plagiarism severity"
	ErrMsgInvalidBossType = "invalid boss type"
	ErrMsgInvalidActivity = "invalid activity category"
	ErrMsgInvalidEffect   = "invalid status effect type"
	ErrMsgInvalidScore    = "score out of range"
	ErrMsgInvalidInput    = "invalid input"

	// Punishment errors
	ErrMsgPunishmentNotFound = "punishment not found"
	ErrMsgAlreadyResolved    = "punishment already resolved"

	// Attendance errors
	ErrMsgDungeonNotFound     = "dungeon not found"
	ErrMsgDuplicateAttendance = "attendance already recorded"

	// Sidequest errors
	ErrMsgSidequestNotFound   = "sidequest not found"
	ErrMsgSubmissionNotFound  = "submission not found"
	ErrMsgDuplicateSubmission = "sidequest already submitted"

	// Privilege errors
	ErrMsgPrivilegeDenied = "privilege denied by honor tier"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxConflict    = "transaction conflict"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)
	ErrUsernameTaken  = errors.New(ErrMsgUsernameTaken)

	// Level table errors
	ErrLevelTableEmpty = errors.New(ErrMsgLevelTableEmpty)

	// Validation errors
	ErrInvalidSeverity = errors.New(ErrMsgInvalidSeverity)
	ErrInvalidBossType = errors.New(ErrMsgInvalidBossType)
	ErrInvalidActivity = errors.New(ErrMsgInvalidActivity)
	ErrInvalidEffect   = errors.New(ErrMsgInvalidEffect)
	ErrInvalidScore    = errors.New(ErrMsgInvalidScore)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)

	// Punishment errors
	ErrPunishmentNotFound = errors.New(ErrMsgPunishmentNotFound)
	ErrAlreadyResolved    = errors.New(ErrMsgAlreadyResolved)

	// Attendance errors
	ErrDungeonNotFound     = errors.New(ErrMsgDungeonNotFound)
	ErrDuplicateAttendance = errors.New(ErrMsgDuplicateAttendance)

	// Sidequest errors
	ErrSidequestNotFound   = errors.New(ErrMsgSidequestNotFound)
	ErrSubmissionNotFound  = errors.New(ErrMsgSubmissionNotFound)
	ErrDuplicateSubmission = errors.New(ErrMsgDuplicateSubmission)

	// Privilege errors
	ErrPrivilegeDenied = errors.New(ErrMsgPrivilegeDenied)

	// Transaction errors - callers may retry the whole operation
	ErrTxConflict = errors.New(ErrMsgTxConflict)
)
