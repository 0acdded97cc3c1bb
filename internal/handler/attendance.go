package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rakandito/ClassQuest_Go/internal/attendance"
	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
)

// CreateDungeonRequest represents the request to schedule a class session
type CreateDungeonRequest struct {
	Name          string    `json:"name" validate:"required,max=128"`
	Description   string    `json:"description" validate:"max=512"`
	ScheduledDate time.Time `json:"scheduled_date" validate:"required"`
	ExpReward     int       `json:"exp_reward" validate:"min=0"`
}

// UpdateDungeonStatusRequest moves a dungeon through its lifecycle
type UpdateDungeonStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=planned active completed"`
}

// RecordAttendanceRequest marks a player present or absent for a dungeon
type RecordAttendanceRequest struct {
	PlayerID   string `json:"player_id" validate:"required,uuid"`
	Attended   *bool  `json:"attended" validate:"required"`
	RecordedBy string `json:"recorded_by" validate:"max=64"`
}

// HandleCreateDungeon handles dungeon creation
func HandleCreateDungeon(attendanceService attendance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateDungeonRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create dungeon"); err != nil {
			return
		}

		dungeon, err := attendanceService.CreateDungeon(r.Context(), req.Name, req.Description,
			req.ScheduledDate, req.ExpReward)
		if err != nil {
			respondServiceError(w, r, "Create dungeon", err)
			return
		}

		logger.FromContext(r.Context()).Info("Dungeon created",
			"dungeon_id", dungeon.ID, "name", dungeon.Name)
		respondJSON(w, http.StatusCreated, dungeon)
	}
}

// HandleGetDungeon returns a dungeon by ID
func HandleGetDungeon(attendanceService attendance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIDParam(r, w, "dungeonID", ErrMsgInvalidDungeonID)
		if !ok {
			return
		}

		dungeon, err := attendanceService.GetDungeon(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get dungeon", err)
			return
		}

		respondJSON(w, http.StatusOK, dungeon)
	}
}

// HandleUpdateDungeonStatus handles dungeon lifecycle transitions
func HandleUpdateDungeonStatus(attendanceService attendance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIDParam(r, w, "dungeonID", ErrMsgInvalidDungeonID)
		if !ok {
			return
		}

		var req UpdateDungeonStatusRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update dungeon status"); err != nil {
			return
		}

		if err := attendanceService.UpdateDungeonStatus(r.Context(), id, domain.DungeonStatus(req.Status)); err != nil {
			respondServiceError(w, r, "Update dungeon status", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDungeonStatusUpdated})
	}
}

// HandleRecordAttendance records presence or absence for a dungeon. An
// absence may trigger the consecutive-absence punishment, returned alongside
// the attendance row.
func HandleRecordAttendance(attendanceService attendance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dungeonID, ok := GetIDParam(r, w, "dungeonID", ErrMsgInvalidDungeonID)
		if !ok {
			return
		}

		var req RecordAttendanceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Record attendance"); err != nil {
			return
		}

		result, err := attendanceService.RecordAttendance(r.Context(), req.PlayerID, dungeonID,
			*req.Attended, req.RecordedBy)
		if err != nil {
			respondServiceError(w, r, "Record attendance", err)
			return
		}

		logger.FromContext(r.Context()).Info("Attendance recorded",
			"player_id", req.PlayerID,
			"dungeon_id", dungeonID,
			"attended", *req.Attended,
			"punished", result.Punishment != nil)
		respondJSON(w, http.StatusCreated, result)
	}
}

// HandleGetRecentAttendance returns a player's latest attendance records
func HandleGetRecentAttendance(attendanceService attendance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := chi.URLParam(r, "playerID")
		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		records, err := attendanceService.GetRecent(r.Context(), playerID, limit)
		if err != nil {
			respondServiceError(w, r, "Get attendance", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: records})
	}
}
