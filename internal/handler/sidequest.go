package handler

import (
	"net/http"
	"time"

	"github.com/rakandito/ClassQuest_Go/internal/logger"
	"github.com/rakandito/ClassQuest_Go/internal/sidequest"
)

// CreateSidequestRequest represents the request to open an assignment
type CreateSidequestRequest struct {
	Title         string    `json:"title" validate:"required,max=128"`
	Description   string    `json:"description" validate:"max=1024"`
	DueDate       time.Time `json:"due_date" validate:"required"`
	ExpReward     int       `json:"exp_reward" validate:"min=0"`
	LateExpReward int       `json:"late_exp_reward" validate:"min=0"`
}

// SubmitSidequestRequest represents a player's submission
type SubmitSidequestRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
}

// GradeSubmissionRequest represents the instructor's grading of a submission
type GradeSubmissionRequest struct {
	Grade    int    `json:"grade" validate:"min=0,max=100"`
	Feedback string `json:"feedback" validate:"max=1024"`
}

// HandleCreateSidequest handles assignment creation
func HandleCreateSidequest(sidequestService sidequest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSidequestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create sidequest"); err != nil {
			return
		}

		quest, err := sidequestService.Create(r.Context(), req.Title, req.Description,
			req.DueDate, req.ExpReward, req.LateExpReward)
		if err != nil {
			respondServiceError(w, r, "Create sidequest", err)
			return
		}

		logger.FromContext(r.Context()).Info("Sidequest created",
			"sidequest_id", quest.ID, "title", quest.Title)
		respondJSON(w, http.StatusCreated, quest)
	}
}

// HandleGetSidequest returns a sidequest by ID
func HandleGetSidequest(sidequestService sidequest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIDParam(r, w, "sidequestID", ErrMsgInvalidSidequestID)
		if !ok {
			return
		}

		quest, err := sidequestService.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get sidequest", err)
			return
		}

		respondJSON(w, http.StatusOK, quest)
	}
}

// HandleSubmitSidequest records a player's submission. Late submissions are
// accepted; the reduced reward resolves at grading time.
func HandleSubmitSidequest(sidequestService sidequest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIDParam(r, w, "sidequestID", ErrMsgInvalidSidequestID)
		if !ok {
			return
		}

		var req SubmitSidequestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit sidequest"); err != nil {
			return
		}

		sub, err := sidequestService.Submit(r.Context(), req.PlayerID, id)
		if err != nil {
			respondServiceError(w, r, "Submit sidequest", err)
			return
		}

		logger.FromContext(r.Context()).Info("Sidequest submitted",
			"sidequest_id", id, "player_id", req.PlayerID, "submission_id", sub.ID)
		respondJSON(w, http.StatusCreated, sub)
	}
}

// HandleGradeSubmission assigns a grade and credits the reward on first
// grading
func HandleGradeSubmission(sidequestService sidequest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIDParam(r, w, "submissionID", ErrMsgInvalidSubmissionID)
		if !ok {
			return
		}

		var req GradeSubmissionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Grade submission"); err != nil {
			return
		}

		result, err := sidequestService.Grade(r.Context(), id, req.Grade, req.Feedback)
		if err != nil {
			respondServiceError(w, r, "Grade submission", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
