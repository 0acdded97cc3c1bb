package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rakandito/ClassQuest_Go/internal/event"
	"github.com/rakandito/ClassQuest_Go/internal/honor"
	"github.com/rakandito/ClassQuest_Go/internal/logger"
	"github.com/rakandito/ClassQuest_Go/internal/repository"
)

// DefaultLimit bounds leaderboard reads when the caller gives no limit
const DefaultLimit = 10

// MaxLimit caps how many rows one leaderboard read may return
const MaxLimit = 100

// localCacheSize bounds the number of distinct snapshot sizes kept in memory
const localCacheSize = 8

// Entry is one ranked row of the leaderboard
type Entry struct {
	Rank        int    `json:"rank"`
	PlayerID    string `json:"player_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Level       int    `json:"level"`
	TotalExp    int    `json:"total_exp"`
	HonorPoints int    `json:"honor_points"`
	HonorTier   string `json:"honor_tier"`
}

// Service defines the interface for leaderboard reads
type Service interface {
	Top(ctx context.Context, limit int) ([]Entry, error)
	Invalidate(ctx context.Context)
}

// service implements the Service interface. Snapshots are cached in-process
// and, when a Redis client is configured, shared across instances. A refresh
// event drops both layers.
type service struct {
	repo   repository.Game
	local  *boardCache
	shared *redisCache
}

// NewService creates a new leaderboard service and subscribes it to refresh
// events. redisClient may be nil for single-instance deployments.
func NewService(repo repository.Game, bus event.Bus, redisClient *redis.Client, ttl time.Duration) Service {
	s := &service{
		repo:  repo,
		local: newBoardCache(localCacheSize, ttl),
	}
	if redisClient != nil {
		s.shared = newRedisCache(redisClient, ttl)
	}

	bus.Subscribe(event.LeaderboardRefresh, func(ctx context.Context, _ event.Event) error {
		s.Invalidate(ctx)
		return nil
	})
	return s
}

// Top returns the ranked player list ordered by lifetime EXP
func (s *service) Top(ctx context.Context, limit int) ([]Entry, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	if entries, ok := s.local.Get(limit); ok {
		return entries, nil
	}
	if s.shared != nil {
		if entries, ok := s.shared.Get(ctx, limit); ok {
			s.local.Set(limit, entries)
			return entries, nil
		}
	}

	players, err := s.repo.ListTopPlayers(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top players: %w", err)
	}

	entries := make([]Entry, len(players))
	for i, p := range players {
		entries[i] = Entry{
			Rank:        i + 1,
			PlayerID:    p.ID,
			Username:    p.Username,
			DisplayName: p.DisplayName,
			Level:       p.CurrentLevel,
			TotalExp:    p.TotalExp,
			HonorPoints: p.HonorPoints,
			HonorTier:   honor.TierFor(p.HonorPoints).Name,
		}
	}

	s.local.Set(limit, entries)
	if s.shared != nil {
		s.shared.Set(ctx, limit, entries)
	}

	log.Debug("Leaderboard rebuilt", "limit", limit, "entries", len(entries))
	return entries, nil
}

// Invalidate drops all cached snapshots
func (s *service) Invalidate(ctx context.Context) {
	s.local.Clear()
	if s.shared != nil {
		s.shared.Clear(ctx)
	}
}
