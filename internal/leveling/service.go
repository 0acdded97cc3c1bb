package leveling

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/event"
	"github.com/rakandito/ClassQuest_Go/internal/honor"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
	"github.com/rakandito/ClassQuest_Go/internal/statuseffect"
)

// Service defines the interface for EXP ledger operations
type Service interface {
	GrantExp(ctx context.Context, playerID string, amount int, activity domain.ActivityCategory, description string) (*domain.LedgerResult, error)
	GrantExpInTx(ctx context.Context, tx repository.GameTx, playerID string, amount int, activity domain.ActivityCategory, description string) (*domain.LedgerResult, error)
	PublishResultEvents(ctx context.Context, activity domain.ActivityCategory, result *domain.LedgerResult)
	GetProgress(ctx context.Context, playerID string) (*Progress, error)
	GetExpLog(ctx context.Context, playerID string, limit int) ([]domain.ExpLogEntry, error)
}

// Progress is the display view of a player's standing
type Progress struct {
	Player       *domain.Player `json:"player"`
	ExpRemaining int            `json:"exp_remaining"`
	NextLevelExp *int           `json:"next_level_exp,omitempty"`
	HonorTier    string         `json:"honor_tier"`
}

// service implements the Service interface
type service struct {
	repo repository.Game
	bus  event.Bus
}

// NewService creates a new leveling service
func NewService(repo repository.Game, bus event.Bus) Service {
	return &service{
		repo: repo,
		bus:  bus,
	}
}

// GrantExp credits (or debits) EXP through the ledger in its own transaction
// and publishes the resulting events after commit.
func (s *service) GrantExp(ctx context.Context, playerID string, amount int, activity domain.ActivityCategory, description string) (*domain.LedgerResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	result, err := s.GrantExpInTx(ctx, tx, playerID, amount, activity, description)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.PublishResultEvents(ctx, activity, result)
	return result, nil
}

// GrantExpInTx runs the ledger inside the caller's transaction. The caller
// owns commit and event publication; the punishment engine uses this form so
// penalty, honor loss, and effect creation land atomically.
func (s *service) GrantExpInTx(ctx context.Context, tx repository.GameTx, playerID string, amount int, activity domain.ActivityCategory, description string) (*domain.LedgerResult, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidActivityCategory(activity) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidActivity, activity)
	}

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	thresholds, err := tx.GetLevelThresholds(ctx)
	if err != nil {
		return nil, err
	}
	if len(thresholds) == 0 {
		return nil, domain.ErrLevelTableEmpty
	}

	effectMult, err := statuseffect.CombinedMultiplier(ctx, tx, playerID, time.Now())
	if err != nil {
		return nil, err
	}
	multiplier := effectMult * honor.TierFor(player.HonorPoints).ExpBonus

	// Signed floor: a reducing multiplier also shrinks penalties
	actualAmount := int(math.Floor(float64(amount) * multiplier))

	player.CurrentExp += actualAmount
	player.TotalExp += actualAmount

	entryDesc := description
	if multiplier != 1.0 {
		entryDesc = fmt.Sprintf("%s (multiplier: %.2fx)", description, multiplier)
	}
	entry := &domain.ExpLogEntry{
		PlayerID:    playerID,
		Activity:    activity,
		ExpDelta:    actualAmount,
		Description: entryDesc,
	}
	if err := tx.InsertExpLog(ctx, entry); err != nil {
		return nil, err
	}

	result := &domain.LedgerResult{
		PlayerID:     playerID,
		OldLevel:     player.CurrentLevel,
		NewLevel:     player.CurrentLevel,
		Multiplier:   multiplier,
		BaseAmount:   amount,
		ActualAmount: actualAmount,
	}

	// Re-derive the level from cumulative thresholds. Levels only move up:
	// penalties can drag total EXP below the current threshold without
	// demoting the player.
	best, found := domain.LevelForTotalExp(thresholds, player.TotalExp)
	if found && best.Level > player.CurrentLevel {
		oldLevel := player.CurrentLevel
		player.CurrentLevel = best.Level
		expRemaining := player.TotalExp - best.ExpRequired
		if expRemaining < 0 {
			expRemaining = 0
		}
		player.CurrentExp = expRemaining

		honorBonus := domain.HonorBonusForLevel(best.Level)
		player.HonorPoints += honorBonus
		if player.HonorPoints > domain.MaxHonorPoints {
			player.HonorPoints = domain.MaxHonorPoints
		}

		bonusEntry := &domain.ExpLogEntry{
			PlayerID: playerID,
			Activity: domain.ActivityBonus,
			ExpDelta: 0,
			Description: fmt.Sprintf("Level Up! %d -> %d. Bonus: %d honor points",
				oldLevel, best.Level, honorBonus),
		}
		if err := tx.InsertExpLog(ctx, bonusEntry); err != nil {
			return nil, err
		}

		result.LeveledUp = true
		result.OldLevel = oldLevel
		result.NewLevel = best.Level
		result.HonorBonus = honorBonus
		result.ExpRemaining = expRemaining
	} else {
		result.ExpRemaining = expRemainingFor(thresholds, player)
	}

	if err := tx.UpdatePlayerProgress(ctx, player); err != nil {
		return nil, err
	}

	result.NewExp = player.CurrentExp
	result.NewTotalExp = player.TotalExp

	log.Debug("EXP granted",
		"player_id", playerID,
		"activity", activity,
		"base_amount", amount,
		"actual_amount", actualAmount,
		"multiplier", multiplier,
		"leveled_up", result.LeveledUp)
	return result, nil
}

// PublishResultEvents emits the post-commit events for a ledger result.
// Publication is best-effort: the bus is wrapped in a resilient publisher
// and failures never surface to the caller.
func (s *service) PublishResultEvents(ctx context.Context, activity domain.ActivityCategory, result *domain.LedgerResult) {
	log := logger.FromContext(ctx)

	if err := s.bus.Publish(ctx, event.NewExpGrantedEvent(
		result.PlayerID, string(activity), result.BaseAmount, result.ActualAmount, result.Multiplier)); err != nil {
		log.Warn("Failed to publish exp granted event", "error", err)
	}

	if result.LeveledUp {
		if err := s.bus.Publish(ctx, event.NewLevelUpEvent(
			result.PlayerID, result.OldLevel, result.NewLevel, result.HonorBonus)); err != nil {
			log.Warn("Failed to publish level up event", "error", err)
		}
		if err := s.bus.Publish(ctx, event.NewLeaderboardRefreshEvent()); err != nil {
			log.Warn("Failed to publish leaderboard refresh event", "error", err)
		}
	}
}

// GetProgress returns a player's standing with EXP remaining toward the next level
func (s *service) GetProgress(ctx context.Context, playerID string) (*Progress, error) {
	player, err := s.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	thresholds, err := s.repo.GetLevelThresholds(ctx)
	if err != nil {
		return nil, err
	}
	if len(thresholds) == 0 {
		return nil, domain.ErrLevelTableEmpty
	}

	progress := &Progress{
		Player:       player,
		ExpRemaining: expRemainingFor(thresholds, player),
		HonorTier:    honor.TierFor(player.HonorPoints).Name,
	}
	for _, t := range thresholds {
		if t.Level == player.CurrentLevel+1 {
			next := t.ExpRequired
			progress.NextLevelExp = &next
			break
		}
	}
	return progress, nil
}

// GetExpLog returns a player's ledger entries, newest first
func (s *service) GetExpLog(ctx context.Context, playerID string, limit int) ([]domain.ExpLogEntry, error) {
	if limit <= 0 {
		limit = DefaultExpLogLimit
	}
	entries, err := s.repo.ListExpLog(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list exp log: %w", err)
	}
	return entries, nil
}

// expRemainingFor computes EXP past the player's current level threshold,
// clamped at zero for display
func expRemainingFor(thresholds []domain.LevelThreshold, player *domain.Player) int {
	remaining := player.TotalExp
	for _, t := range thresholds {
		if t.Level == player.CurrentLevel {
			remaining = player.TotalExp - t.ExpRequired
			break
		}
	}
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
