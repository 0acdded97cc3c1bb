package leaderboard

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the cached entry structure changes to auto-invalidate
// old entries.
const CacheSchemaVersion = "1.0"

// cachedBoard wraps a leaderboard snapshot with version metadata
type cachedBoard struct {
	Version  string    `json:"version"`
	Entries  []Entry   `json:"entries"`
	CachedAt time.Time `json:"cached_at"`
}

// boardCache is an in-memory LRU for leaderboard snapshots keyed by limit,
// with time-based expiration. Writes to player state never consult it.
type boardCache struct {
	lru *expirable.LRU[string, *cachedBoard]
}

func newBoardCache(size int, ttl time.Duration) *boardCache {
	return &boardCache{
		lru: expirable.NewLRU[string, *cachedBoard](size, nil, ttl),
	}
}

func cacheKey(limit int) string {
	return fmt.Sprintf("top:%d", limit)
}

func (c *boardCache) Get(limit int) ([]Entry, bool) {
	entry, found := c.lru.Get(cacheKey(limit))
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(cacheKey(limit))
		return nil, false
	}
	return entry.Entries, true
}

func (c *boardCache) Set(limit int, entries []Entry) {
	c.lru.Add(cacheKey(limit), &cachedBoard{
		Version:  CacheSchemaVersion,
		Entries:  entries,
		CachedAt: time.Now(),
	})
}

func (c *boardCache) Clear() {
	c.lru.Purge()
}
