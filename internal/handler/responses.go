package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName+" failed", "error", err)
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Player messages
	ErrMsgPlayerNotFoundError = "Player not found"
	ErrMsgUsernameTakenError  = "That username is already taken"

	// Rules engine messages
	ErrMsgLevelTableEmptyError     = "Level table is not configured"
	ErrMsgInvalidSeverityError     = "Invalid severity"
	ErrMsgInvalidBossTypeError     = "Invalid boss type"
	ErrMsgInvalidActivityError     = "Invalid activity category"
	ErrMsgInvalidEffectError       = "Invalid status effect type"
	ErrMsgInvalidScoreError        = "Score must be between 0 and 100"
	ErrMsgPunishmentNotFoundError  = "Punishment not found"
	ErrMsgAlreadyResolvedError     = "Punishment is already resolved"
	ErrMsgPrivilegeDeniedError     = "Honor tier too low for this action"
	ErrMsgTxConflictError          = "Operation conflicted with another update. Please retry."
	ErrMsgDuplicateAttendanceError = "Attendance already recorded for this dungeon"
	ErrMsgDuplicateSubmissionError = "Sidequest already submitted"
	ErrMsgSidequestNotFoundError   = "Sidequest not found"
	ErrMsgDungeonNotFoundError     = "Dungeon not found"
	ErrMsgSubmissionNotFoundError  = "Submission not found"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrLevelTableEmpty):
		return http.StatusInternalServerError, ErrMsgLevelTableEmptyError
	case errors.Is(err, domain.ErrInvalidSeverity):
		return http.StatusBadRequest, ErrMsgInvalidSeverityError
	case errors.Is(err, domain.ErrInvalidBossType):
		return http.StatusBadRequest, ErrMsgInvalidBossTypeError
	case errors.Is(err, domain.ErrInvalidActivity):
		return http.StatusBadRequest, ErrMsgInvalidActivityError
	case errors.Is(err, domain.ErrInvalidEffect):
		return http.StatusBadRequest, ErrMsgInvalidEffectError
	case errors.Is(err, domain.ErrInvalidScore):
		return http.StatusBadRequest, ErrMsgInvalidScoreError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrPunishmentNotFound):
		return http.StatusNotFound, ErrMsgPunishmentNotFoundError
	case errors.Is(err, domain.ErrAlreadyResolved):
		return http.StatusConflict, ErrMsgAlreadyResolvedError
	case errors.Is(err, domain.ErrPrivilegeDenied):
		return http.StatusForbidden, ErrMsgPrivilegeDeniedError
	case errors.Is(err, domain.ErrDuplicateAttendance):
		return http.StatusConflict, ErrMsgDuplicateAttendanceError
	case errors.Is(err, domain.ErrDuplicateSubmission):
		return http.StatusConflict, ErrMsgDuplicateSubmissionError
	case errors.Is(err, domain.ErrSidequestNotFound):
		return http.StatusNotFound, ErrMsgSidequestNotFoundError
	case errors.Is(err, domain.ErrDungeonNotFound):
		return http.StatusNotFound, ErrMsgDungeonNotFoundError
	case errors.Is(err, domain.ErrSubmissionNotFound):
		return http.StatusNotFound, ErrMsgSubmissionNotFoundError
	case errors.Is(err, domain.ErrTxConflict):
		return http.StatusConflict, ErrMsgTxConflictError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
