package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/statuseffect"
)

// ApplyEffectRequest represents a direct status effect application
type ApplyEffectRequest struct {
	EffectType   string `json:"effect_type" validate:"required,effecttype"`
	Description  string `json:"description" validate:"max=255"`
	DurationDays int    `json:"duration_days" validate:"min=0"`
}

// HandleListEffects returns a player's active status effects
func HandleListEffects(effectService statuseffect.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		effects, err := effectService.ListActive(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "List status effects", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: effects})
	}
}

// HandleApplyEffect attaches a status effect to a player outside the
// punishment rules. Zero duration means the effect persists until removed.
func HandleApplyEffect(effectService statuseffect.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		var req ApplyEffectRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Apply status effect"); err != nil {
			return
		}

		effect, err := effectService.Apply(r.Context(), playerID,
			domain.EffectType(req.EffectType), req.Description, req.DurationDays)
		if err != nil {
			respondServiceError(w, r, "Apply status effect", err)
			return
		}

		respondJSON(w, http.StatusCreated, effect)
	}
}

// HandleRemoveEffect deactivates a status effect ahead of its end time
func HandleRemoveEffect(effectService statuseffect.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		effectID, ok := GetIDParam(r, w, "effectID", ErrMsgInvalidID)
		if !ok {
			return
		}

		if err := effectService.Remove(r.Context(), playerID, effectID); err != nil {
			respondServiceError(w, r, "Remove status effect", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgEffectRemovedSuccess})
	}
}
