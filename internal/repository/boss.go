package repository

import (
	"context"

	"github.com/rakandito/ClassQuest_Go/internal/domain"
)

// Boss defines the interface for boss battle persistence
type Boss interface {
	InsertBossBattle(ctx context.Context, battle *domain.BossBattle) error
	ListBossBattles(ctx context.Context, playerID string) ([]domain.BossBattle, error)
}
