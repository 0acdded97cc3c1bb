package repository

import (
	"context"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
)

// Game defines the interface for the progression store. All state-mutating
// player operations go through a GameTx so that EXP, log, honor and status
// effect writes commit or roll back together.
type Game interface {
	GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
	CreatePlayer(ctx context.Context, player *domain.Player) error
	ListPlayerIDs(ctx context.Context) ([]string, error)
	ListTopPlayers(ctx context.Context, limit int) ([]domain.Player, error)

	GetLevelThresholds(ctx context.Context) ([]domain.LevelThreshold, error)

	ListExpLog(ctx context.Context, playerID string, limit int) ([]domain.ExpLogEntry, error)

	GetPunishment(ctx context.Context, id int64) (*domain.PunishmentRecord, error)
	ListPunishments(ctx context.Context, playerID string) ([]domain.PunishmentRecord, error)

	ListActiveStatusEffects(ctx context.Context, playerID string) ([]domain.StatusEffect, error)
	DeactivateExpiredEffects(ctx context.Context) (int64, error)

	BeginTx(ctx context.Context) (GameTx, error)
}

// GameTx defines the in-transaction operations of the progression store.
// GetPlayerForUpdate takes a row lock, serializing concurrent operations on
// the same player for the lifetime of the transaction.
type GameTx interface {
	Tx

	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	UpdatePlayerProgress(ctx context.Context, player *domain.Player) error
	UpdatePlayerHonor(ctx context.Context, playerID string, honorPoints int) error

	InsertExpLog(ctx context.Context, entry *domain.ExpLogEntry) error

	GetLevelThresholds(ctx context.Context) ([]domain.LevelThreshold, error)

	GetActiveStatusEffects(ctx context.Context, playerID string) ([]domain.StatusEffect, error)
	InsertStatusEffect(ctx context.Context, effect *domain.StatusEffect) error
	DeactivateStatusEffect(ctx context.Context, effectID int64) error
	DeactivateEffectsForPunishment(ctx context.Context, punishmentID int64) (int64, error)

	InsertPunishment(ctx context.Context, record *domain.PunishmentRecord) error
	GetPunishmentForUpdate(ctx context.Context, id int64) (*domain.PunishmentRecord, error)
	GetUnresolvedPunishment(ctx context.Context, playerID string, category domain.PunishmentCategory) (*domain.PunishmentRecord, error)
	MarkPunishmentResolved(ctx context.Context, id int64) error

	GetRecentAttendance(ctx context.Context, playerID string, limit int) ([]domain.Attendance, error)
}
