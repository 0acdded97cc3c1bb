package statuseffect

import (
	"context"
	"fmt"
	"time"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

// Service defines the interface for status effect operations
type Service interface {
	ListActive(ctx context.Context, playerID string) ([]domain.StatusEffect, error)
	Apply(ctx context.Context, playerID string, effectType domain.EffectType, description string, durationDays int) (*domain.StatusEffect, error)
	Remove(ctx context.Context, playerID string, effectID int64) error
	ExpireStale(ctx context.Context) (int64, error)
}

// service implements the Service interface
type service struct {
	repo repository.Game
	now  func() time.Time
}

// NewService creates a new status effect service
func NewService(repo repository.Game) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

// ListActive returns a player's active effects. Expired effects still present
// in the store are filtered from the view; they get persisted as inactive on
// the next ledger write.
func (s *service) ListActive(ctx context.Context, playerID string) ([]domain.StatusEffect, error) {
	effects, err := s.repo.ListActiveStatusEffects(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active effects: %w", err)
	}

	now := s.now()
	live := effects[:0]
	for _, e := range effects {
		if !e.Expired(now) {
			live = append(live, e)
		}
	}
	return live, nil
}

// Apply attaches an effect to a player directly, outside the punishment
// rules. This is the only path that can place a silence effect.
func (s *service) Apply(ctx context.Context, playerID string, effectType domain.EffectType, description string, durationDays int) (*domain.StatusEffect, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidEffectType(effectType) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidEffect, effectType)
	}
	if durationDays < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", domain.ErrInvalidInput)
	}

	// Verify the player exists before opening a write transaction
	if _, err := s.repo.GetPlayerByID(ctx, playerID); err != nil {
		return nil, err
	}

	now := s.now()
	effect := &domain.StatusEffect{
		PlayerID:      playerID,
		EffectType:    effectType,
		Description:   description,
		ExpMultiplier: domain.EffectMultiplier(effectType),
		StartTime:     now,
		IsActive:      true,
	}
	if durationDays > 0 {
		end := now.AddDate(0, 0, durationDays)
		effect.EndTime = &end
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.InsertStatusEffect(ctx, effect); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	log.Info("Status effect applied",
		"player_id", playerID,
		"effect_type", effectType,
		"multiplier", effect.ExpMultiplier,
		"duration_days", durationDays)
	return effect, nil
}

// Remove deactivates a single effect ahead of its end time
func (s *service) Remove(ctx context.Context, playerID string, effectID int64) error {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.DeactivateStatusEffect(ctx, effectID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	log.Info("Status effect removed", "player_id", playerID, "effect_id", effectID)
	return nil
}

// ExpireStale deactivates all effects past their end time across all players
func (s *service) ExpireStale(ctx context.Context) (int64, error) {
	affected, err := s.repo.DeactivateExpiredEffects(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale effects: %w", err)
	}
	if affected > 0 {
		logger.FromContext(ctx).Info("Expired stale status effects", "count", affected)
	}
	return affected, nil
}
