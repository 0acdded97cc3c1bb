package handler

import (
	"net/http"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/leveling"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
)

// GrantExpRequest represents an instructor-issued ledger grant
type GrantExpRequest struct {
	PlayerID    string `json:"player_id" validate:"required,uuid"`
	Amount      int    `json:"amount" validate:"required"`
	Activity    string `json:"activity"`
	Description string `json:"description" validate:"max=255"`
}

// HandleGrantExp handles direct EXP grants. The amount is the base value;
// status effects and honor standing scale it before it lands on the ledger.
func HandleGrantExp(levelingService leveling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GrantExpRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Grant EXP"); err != nil {
			return
		}

		activity := domain.ActivityCategory(req.Activity)
		if req.Activity == "" {
			activity = domain.ActivityAdmin
		}

		result, err := levelingService.GrantExp(r.Context(), req.PlayerID, req.Amount, activity, req.Description)
		if err != nil {
			respondServiceError(w, r, "Grant EXP", err)
			return
		}

		logger.FromContext(r.Context()).Info("EXP granted",
			"player_id", req.PlayerID,
			"base_amount", req.Amount,
			"actual_amount", result.ActualAmount,
			"leveled_up", result.LeveledUp)
		respondJSON(w, http.StatusOK, result)
	}
}
