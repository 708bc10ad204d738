package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"elearning-service/internal/models"
)

// LeaderboardCache keeps recent top-N results in Redis so the leaderboard
// endpoint does not hit Mongo on every poll. A nil client disables caching;
// every lookup is then a miss.
type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLeaderboardCache(client *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{client: client, ttl: ttl}
}

func (c *LeaderboardCache) key(n int) string {
	return fmt.Sprintf("leaderboard:top:%d", n)
}

func (c *LeaderboardCache) Get(ctx context.Context, n int) ([]models.LeaderboardEntry, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, c.key(n)).Result()
	if err != nil {
		return nil, false
	}
	var entries []models.LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (c *LeaderboardCache) Set(ctx context.Context, n int, entries []models.LeaderboardEntry) error {
	if c.client == nil {
		return nil
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(n), raw, c.ttl).Err()
}
