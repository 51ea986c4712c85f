// Package cache stores raw per-team event batches between collection
// runs. Two backends: JSON files on disk (the default, one file per
// team) and Redis for deployments where runs share a cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/roguetex/courtside/internal/model"
)

// rawEventsKey prefixes per-team cache entries in Redis.
const rawEventsKey = "rawevents:"

// RedisCache is the shared raw-event cache backend.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection. A zero
// ttl stores entries without expiry.
func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

// Close closes the Redis connection.
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// HealthCheck pings Redis to verify the connection.
func (rc *RedisCache) HealthCheck(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// Get returns the cached batch for a team. A missing key is not an
// error; ok is false.
func (rc *RedisCache) Get(ctx context.Context, team string) ([]model.RawEvent, bool, error) {
	payload, err := rc.client.Get(ctx, rawEventsKey+Slug(team)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get for %s: %w", team, err)
	}

	var events []model.RawEvent
	if err := json.Unmarshal([]byte(payload), &events); err != nil {
		return nil, false, fmt.Errorf("decoding cached events for %s: %w", team, err)
	}
	return events, true, nil
}

// Put stores a team's batch with the configured TTL.
func (rc *RedisCache) Put(ctx context.Context, team string, events []model.RawEvent) error {
	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encoding events for %s: %w", team, err)
	}
	if err := rc.client.Set(ctx, rawEventsKey+Slug(team), payload, rc.ttl).Err(); err != nil {
		return fmt.Errorf("redis set for %s: %w", team, err)
	}
	return nil
}
