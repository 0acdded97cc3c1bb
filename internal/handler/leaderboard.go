package handler

import (
	"net/http"

	"github.com/rakandito/ClassQuest_Go/internal/leaderboard"
)

// HandleGetLeaderboard returns the ranked player list ordered by lifetime EXP
// @Summary Leaderboard
// @Description Returns the top players by total EXP, with honor standing
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of rows (default 10, max 100)"
// @Success 200 {object} DataResponse
// @Router /api/v1/leaderboard [get]
func HandleGetLeaderboard(leaderboardService leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		entries, err := leaderboardService.Top(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}
