package boss

import (
	"context"
	"fmt"
	"time"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
	"github.com/rakandito/ClassQuest_Go/internal/event"
	"github.com/rakandito/ClassQuest_Go/internal/honor"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

// Service defines the interface for boss battle operations
type Service interface {
	RecordBattle(ctx context.Context, playerID string, bossType domain.BossType, name string, baseScore int, battleDate time.Time) (*domain.BossBattle, error)
	ListBattles(ctx context.Context, playerID string) ([]domain.BossBattle, error)
	Preview(ctx context.Context, playerID string, baseScore int) (*domain.BossScoreResult, error)
}

// service implements the Service interface
type service struct {
	players repository.Game
	battles repository.Boss
	bus     event.Bus
}

// NewService creates a new boss service
func NewService(players repository.Game, battles repository.Boss, bus event.Bus) Service {
	return &service{
		players: players,
		battles: battles,
		bus:     bus,
	}
}

// RecordBattle scores an exam for a player and stores the battle record.
// The level bonus uses the player's level at record time.
func (s *service) RecordBattle(ctx context.Context, playerID string, bossType domain.BossType, name string, baseScore int, battleDate time.Time) (*domain.BossBattle, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidBossType(bossType) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidBossType, bossType)
	}
	if baseScore < 0 || baseScore > MaxScore {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidScore, baseScore)
	}

	player, err := s.players.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !honor.TierFor(player.HonorPoints).CanParticipateBoss {
		return nil, fmt.Errorf("%w: boss battles", domain.ErrPrivilegeDenied)
	}

	score := FinalScore(baseScore, player.CurrentLevel)
	battle := &domain.BossBattle{
		PlayerID:     playerID,
		BossType:     bossType,
		Name:         name,
		BaseScore:    score.BaseScore,
		BonusApplied: score.BonusApplied,
		FinalScore:   score.FinalScore,
		BattleDate:   battleDate,
	}
	if err := s.battles.InsertBossBattle(ctx, battle); err != nil {
		return nil, err
	}

	log.Info("Boss battle recorded",
		"player_id", playerID,
		"boss_type", bossType,
		"base_score", score.BaseScore,
		"final_score", score.FinalScore)

	if err := s.bus.Publish(ctx, event.NewBossBattleRecordedEvent(
		playerID, string(bossType), score.BaseScore, score.FinalScore)); err != nil {
		log.Warn("Failed to publish boss battle event", "error", err)
	}
	return battle, nil
}

// ListBattles returns a player's battle records, newest first
func (s *service) ListBattles(ctx context.Context, playerID string) ([]domain.BossBattle, error) {
	return s.battles.ListBossBattles(ctx, playerID)
}

// Preview computes the bonus-adjusted score without recording anything
func (s *service) Preview(ctx context.Context, playerID string, baseScore int) (*domain.BossScoreResult, error) {
	if baseScore < 0 || baseScore > MaxScore {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidScore, baseScore)
	}
	player, err := s.players.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	result := FinalScore(baseScore, player.CurrentLevel)
	return &result, nil
}
