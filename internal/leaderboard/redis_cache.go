package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rakandito/ClassQuest_Go/internal/logger"
)

const redisKeyPrefix = "classquest:leaderboard:"

// redisCache shares leaderboard snapshots across instances. Misses and
// errors both fall through to the database; this layer is never consulted
// for correctness-critical decisions.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func newRedisCache(client *redis.Client, ttl time.Duration) *redisCache {
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, limit int) ([]Entry, bool) {
	data, err := c.client.Get(ctx, redisKeyPrefix+cacheKey(limit)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.FromContext(ctx).Warn("Leaderboard redis read failed", "error", err)
		}
		return nil, false
	}

	var board cachedBoard
	if err := json.Unmarshal(data, &board); err != nil || board.Version != CacheSchemaVersion {
		return nil, false
	}
	return board.Entries, true
}

func (c *redisCache) Set(ctx context.Context, limit int, entries []Entry) {
	data, err := json.Marshal(cachedBoard{
		Version:  CacheSchemaVersion,
		Entries:  entries,
		CachedAt: time.Now(),
	})
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, redisKeyPrefix+cacheKey(limit), data, c.ttl).Err(); err != nil {
		logger.FromContext(ctx).Warn("Leaderboard redis write failed", "error", err)
	}
}

func (c *redisCache) Clear(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.FromContext(ctx).Warn("Leaderboard redis scan failed", "error", err)
		return
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			logger.FromContext(ctx).Warn("Leaderboard redis invalidation failed", "error", err)
		}
	}
}
