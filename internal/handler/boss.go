package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rakandito/ClassQuest_Go/internal/boss"
	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
)

// RecordBattleRequest represents the request to record a boss battle score
type RecordBattleRequest struct {
	PlayerID   string    `json:"player_id" validate:"required,uuid"`
	BossType   string    `json:"boss_type" validate:"required,bosstype"`
	Name       string    `json:"name" validate:"max=128"`
	Score      int       `json:"score" validate:"min=0,max=100"`
	BattleDate time.Time `json:"battle_date"`
}

// HandleRecordBattle records a boss battle score with the level bonus applied
func HandleRecordBattle(bossService boss.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecordBattleRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Record boss battle"); err != nil {
			return
		}

		battleDate := req.BattleDate
		if battleDate.IsZero() {
			battleDate = time.Now()
		}

		battle, err := bossService.RecordBattle(r.Context(), req.PlayerID,
			domain.BossType(req.BossType), req.Name, req.Score, battleDate)
		if err != nil {
			respondServiceError(w, r, "Record boss battle", err)
			return
		}

		logger.FromContext(r.Context()).Info("Boss battle recorded",
			"player_id", req.PlayerID,
			"boss_type", req.BossType,
			"base_score", req.Score,
			"final_score", battle.FinalScore)
		respondJSON(w, http.StatusCreated, battle)
	}
}

// HandleListBattles returns a player's boss battle history, newest first
func HandleListBattles(bossService boss.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")

		battles, err := bossService.ListBattles(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, "List boss battles", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: battles})
	}
}

// HandlePreviewScore shows what a raw score would become for a player at
// their current level, without recording anything
func HandlePreviewScore(bossService boss.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}
		rawScore, ok := GetQueryParam(r, w, "score")
		if !ok {
			return
		}
		score, err := strconv.Atoi(rawScore)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		result, err := bossService.Preview(r.Context(), playerID, score)
		if err != nil {
			respondServiceError(w, r, "Preview boss score", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
