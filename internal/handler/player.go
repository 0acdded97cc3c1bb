package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rakandito/ClassQuest_Go/internal/honor"
	"github.com/rakandito/ClassQuest_Go/internal/leveling"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
	"github.com/rakandito/ClassQuest_Go/internal/player"
)

// RegisterPlayerRequest represents the request to register a player
type RegisterPlayerRequest struct {
	Username    string `json:"username" validate:"required,min=2,max=32"`
	DisplayName string `json:"display_name" validate:"max=64"`
}

// HandleRegisterPlayer handles player registration
// @Summary Register player
// @Description Creates a new player with starting progression state
// @Tags players
// @Accept json
// @Produce json
// @Success 201 {object} domain.Player
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/players [post]
func HandleRegisterPlayer(playerService player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register player"); err != nil {
			return
		}

		p, err := playerService.Register(r.Context(), req.Username, req.DisplayName)
		if err != nil {
			respondServiceError(w, r, "Register player", err)
			return
		}

		logger.FromContext(r.Context()).Info("Player registered",
			"player_id", p.ID, "username", p.Username)
		respondJSON(w, http.StatusCreated, p)
	}
}

// HandleGetPlayer returns a player by ID
func HandleGetPlayer(playerService player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		p, err := playerService.Get(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get player", err)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandleGetPlayerByUsername returns a player looked up by username
func HandleGetPlayerByUsername(playerService player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := GetQueryParam(r, w, "username")
		if !ok {
			return
		}

		p, err := playerService.GetByUsername(r.Context(), username)
		if err != nil {
			respondServiceError(w, r, "Get player by username", err)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandleGetProgress returns a player's level progress view
func HandleGetProgress(levelingService leveling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		progress, err := levelingService.GetProgress(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get progress", err)
			return
		}

		respondJSON(w, http.StatusOK, progress)
	}
}

// HandleGetPrivileges returns what a player's honor standing permits
func HandleGetPrivileges(honorService honor.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		privileges, err := honorService.GetPrivileges(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "Get privileges", err)
			return
		}

		respondJSON(w, http.StatusOK, privileges)
	}
}

// HandleGetExpLog returns a player's ledger entries, newest first
func HandleGetExpLog(levelingService leveling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		entries, err := levelingService.GetExpLog(r.Context(), playerID, limit)
		if err != nil {
			respondServiceError(w, r, "Get EXP log", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}
