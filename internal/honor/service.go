package honor

import (
	"context"
	"fmt"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/event"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

// Service defines the interface for honor operations
type Service interface {
	GetPrivileges(ctx context.Context, playerID string) (*Privileges, error)
	RecoverAll(ctx context.Context, amount int) (int, error)
}

// service implements the Service interface
type service struct {
	repo repository.Game
	bus  event.Bus
}

// NewService creates a new honor service
func NewService(repo repository.Game, bus event.Bus) Service {
	return &service{
		repo: repo,
		bus:  bus,
	}
}

// GetPrivileges returns the privilege view for a player
func (s *service) GetPrivileges(ctx context.Context, playerID string) (*Privileges, error) {
	player, err := s.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	p := PrivilegesFor(player)
	return &p, nil
}

// RecoverAll grants every player below the honor cap a gradual recovery and
// returns how many players were affected. Per-player failures are logged and
// skipped so one bad row cannot stall the sweep.
func (s *service) RecoverAll(ctx context.Context, amount int) (int, error) {
	log := logger.FromContext(ctx)

	if amount <= 0 {
		return 0, fmt.Errorf("%w: recovery amount must be positive", domain.ErrInvalidInput)
	}

	ids, err := s.repo.ListPlayerIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list players: %w", err)
	}

	affected := 0
	for _, id := range ids {
		changed, err := s.recoverOne(ctx, id, amount)
		if err != nil {
			log.Warn("Honor recovery failed for player", "player_id", id, "error", err)
			continue
		}
		if changed {
			affected++
		}
	}

	log.Info("Honor recovery sweep complete", "players_affected", affected, "amount", amount)

	if affected > 0 {
		if err := s.bus.Publish(ctx, event.NewHonorRecoveredEvent(affected, amount)); err != nil {
			log.Warn("Failed to publish honor recovery event", "error", err)
		}
	}
	return affected, nil
}

func (s *service) recoverOne(ctx context.Context, playerID string, amount int) (bool, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return false, err
	}
	if player.HonorPoints >= domain.MaxHonorPoints {
		return false, nil
	}

	newHonor := player.HonorPoints + amount
	if newHonor > domain.MaxHonorPoints {
		newHonor = domain.MaxHonorPoints
	}
	if err := tx.UpdatePlayerHonor(ctx, playerID, newHonor); err != nil {
		return false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
