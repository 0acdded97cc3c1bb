package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/honor"
	"github.com/rakandito/ClassQuest_Go/internal/leveling"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
	"github.com/rakandito/ClassQuest_Go/internal/punishment"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

// Service defines the interface for dungeon and attendance operations
type Service interface {
	CreateDungeon(ctx context.Context, name, description string, scheduledDate time.Time, expReward int) (*domain.Dungeon, error)
	GetDungeon(ctx context.Context, id int64) (*domain.Dungeon, error)
	UpdateDungeonStatus(ctx context.Context, id int64, status domain.DungeonStatus) error
	RecordAttendance(ctx context.Context, playerID string, dungeonID int64, attended bool, recordedBy string) (*RecordResult, error)
	GetRecent(ctx context.Context, playerID string, limit int) ([]domain.Attendance, error)
}

// RecordResult describes the consequences of one attendance record
type RecordResult struct {
	Attendance *domain.Attendance       `json:"attendance"`
	Ledger     *domain.LedgerResult     `json:"ledger,omitempty"`
	Punishment *domain.PunishmentRecord `json:"punishment,omitempty"`
}

// service implements the Service interface
type service struct {
	records     repository.Attendance
	players     repository.Game
	leveling    leveling.Service
	punishments punishment.Service
}

// NewService creates a new attendance service
func NewService(records repository.Attendance, players repository.Game, lvl leveling.Service, pun punishment.Service) Service {
	return &service{
		records:     records,
		players:     players,
		leveling:    lvl,
		punishments: pun,
	}
}

// CreateDungeon schedules a class session
func (s *service) CreateDungeon(ctx context.Context, name, description string, scheduledDate time.Time, expReward int) (*domain.Dungeon, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: dungeon name is required", domain.ErrInvalidInput)
	}
	if expReward < 0 {
		return nil, fmt.Errorf("%w: exp reward must not be negative", domain.ErrInvalidInput)
	}

	dungeon := &domain.Dungeon{
		Name:          name,
		Description:   description,
		ScheduledDate: scheduledDate,
		Status:        domain.DungeonPlanned,
		ExpReward:     expReward,
	}
	if err := s.records.CreateDungeon(ctx, dungeon); err != nil {
		return nil, err
	}
	return dungeon, nil
}

// GetDungeon returns a dungeon by ID
func (s *service) GetDungeon(ctx context.Context, id int64) (*domain.Dungeon, error) {
	return s.records.GetDungeon(ctx, id)
}

// UpdateDungeonStatus moves a dungeon through its lifecycle
func (s *service) UpdateDungeonStatus(ctx context.Context, id int64, status domain.DungeonStatus) error {
	switch status {
	case domain.DungeonPlanned, domain.DungeonActive, domain.DungeonCompleted:
	default:
		return fmt.Errorf("%w: unknown dungeon status %q", domain.ErrInvalidInput, status)
	}
	return s.records.UpdateDungeonStatus(ctx, id, status)
}

// RecordAttendance marks a player present or absent for a dungeon.
// Presence credits the dungeon's EXP reward through the ledger; absence runs
// the consecutive-absence check, which may open a punishment.
func (s *service) RecordAttendance(ctx context.Context, playerID string, dungeonID int64, attended bool, recordedBy string) (*RecordResult, error) {
	log := logger.FromContext(ctx)

	dungeon, err := s.records.GetDungeon(ctx, dungeonID)
	if err != nil {
		return nil, err
	}

	existing, err := s.records.GetAttendance(ctx, playerID, dungeonID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: dungeon %d", domain.ErrDuplicateAttendance, dungeonID)
	}

	if attended {
		player, err := s.players.GetPlayerByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		if !honor.TierFor(player.HonorPoints).CanJoinDungeon {
			return nil, fmt.Errorf("%w: dungeons", domain.ErrPrivilegeDenied)
		}
	}

	att := &domain.Attendance{
		PlayerID:  playerID,
		DungeonID: dungeonID,
		Attended:  attended,
	}
	if err := s.records.InsertAttendance(ctx, att); err != nil {
		return nil, err
	}

	result := &RecordResult{Attendance: att}

	if attended && dungeon.ExpReward > 0 {
		ledger, err := s.leveling.GrantExp(ctx, playerID, dungeon.ExpReward,
			domain.ActivityParticipation, fmt.Sprintf("Attended dungeon: %s", dungeon.Name))
		if err != nil {
			return nil, fmt.Errorf("failed to credit attendance exp: %w", err)
		}
		att.ExpEarned = ledger.ActualAmount
		if err := s.records.UpdateAttendanceExp(ctx, att.ID, ledger.ActualAmount); err != nil {
			log.Warn("Failed to record earned exp on attendance row", "attendance_id", att.ID, "error", err)
		}
		result.Ledger = ledger
	}

	if !attended {
		record, created, err := s.punishments.CheckAndApplyAbsence(ctx, playerID, recordedBy)
		if err != nil {
			// The attendance row is already durable; the next miss retries the check
			log.Warn("Absence punishment check failed", "player_id", playerID, "error", err)
		} else if record != nil {
			result.Punishment = record
			if created {
				log.Info("Absence punishment triggered", "player_id", playerID, "punishment_id", record.ID)
			}
		}
	}

	return result, nil
}

// GetRecent returns a player's most recent attendance records, newest first
func (s *service) GetRecent(ctx context.Context, playerID string, limit int) ([]domain.Attendance, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.records.GetRecentAttendance(ctx, playerID, limit)
}
