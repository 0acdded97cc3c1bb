package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
	"github.com/rakandito/ClassQuest_Go/internal/punishment"
)

// PunishmentHandler groups the punishment endpoints
type PunishmentHandler struct {
	punishmentService punishment.Service
}

// NewPunishmentHandler creates a new PunishmentHandler
func NewPunishmentHandler(punishmentService punishment.Service) *PunishmentHandler {
	return &PunishmentHandler{punishmentService: punishmentService}
}

// PlagiarismRequest represents a plagiarism punishment report
type PlagiarismRequest struct {
	PlayerID string            `json:"player_id" validate:"required,uuid"`
	Severity string            `json:"severity" validate:"required,oneof=minor major critical"`
	Evidence map[string]string `json:"evidence"`
	IssuedBy string            `json:"issued_by" validate:"max=64"`
}

// CheatingRequest represents a cheating punishment report. The boss tier
// the cheat happened in picks the penalty row.
type CheatingRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	BossType string `json:"boss_type" validate:"required,bosstype"`
	IssuedBy string `json:"issued_by" validate:"max=64"`
}

// HandlePlagiarism applies the plagiarism penalty row for the given severity
func (h *PunishmentHandler) HandlePlagiarism(w http.ResponseWriter, r *http.Request) {
	var req PlagiarismRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Apply plagiarism punishment"); err != nil {
		return
	}

	result, err := h.punishmentService.ApplyPlagiarism(r.Context(), req.PlayerID,
		domain.PlagiarismSeverity(req.Severity), req.Evidence, req.IssuedBy)
	if err != nil {
		respondServiceError(w, r, "Apply plagiarism punishment", err)
		return
	}

	logger.FromContext(r.Context()).Info("Plagiarism punishment applied",
		"player_id", req.PlayerID, "severity", req.Severity)
	respondJSON(w, http.StatusCreated, result)
}

// HandleCheating applies the cheating penalty row for the given boss tier
func (h *PunishmentHandler) HandleCheating(w http.ResponseWriter, r *http.Request) {
	var req CheatingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Apply cheating punishment"); err != nil {
		return
	}

	result, err := h.punishmentService.ApplyCheating(r.Context(), req.PlayerID,
		domain.BossType(req.BossType), req.IssuedBy)
	if err != nil {
		respondServiceError(w, r, "Apply cheating punishment", err)
		return
	}

	logger.FromContext(r.Context()).Info("Cheating punishment applied",
		"player_id", req.PlayerID, "boss_type", req.BossType)
	respondJSON(w, http.StatusCreated, result)
}

// HandleDirect applies an instructor-specified punishment outside the fixed
// rule tables
func (h *PunishmentHandler) HandleDirect(w http.ResponseWriter, r *http.Request) {
	var req punishment.DirectRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Apply direct punishment"); err != nil {
		return
	}

	result, err := h.punishmentService.ApplyDirect(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, "Apply direct punishment", err)
		return
	}

	logger.FromContext(r.Context()).Info("Direct punishment applied",
		"player_id", req.PlayerID, "category", req.Category)
	respondJSON(w, http.StatusCreated, result)
}

// HandleResolve closes a punishment and lifts its linked status effects
func (h *PunishmentHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, "punishmentID", ErrMsgInvalidPunishmentID)
	if !ok {
		return
	}

	record, err := h.punishmentService.Resolve(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Resolve punishment", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{
		Message: MsgPunishmentResolvedSuccess,
		Data:    record,
	})
}

// HandleGet returns one punishment record
func (h *PunishmentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIDParam(r, w, "punishmentID", ErrMsgInvalidPunishmentID)
	if !ok {
		return
	}

	record, err := h.punishmentService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get punishment", err)
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// HandleList returns a player's punishment history, newest first
func (h *PunishmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	records, err := h.punishmentService.List(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "List punishments", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: records})
}
