package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/wellnest/backend/domain"
	"github.com/wellnest/backend/repository"
)

const catalogKey = "catalog:activities"

type activityCache struct {
	client *redislib.Client
	ttl    time.Duration
}

// NewActivityCache creates a Redis-backed catalog cache with a default TTL.
func NewActivityCache(client *redislib.Client, ttl time.Duration) repository.ActivityCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &activityCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *activityCache) Get(ctx context.Context) ([]domain.Activity, bool, error) {
	result, err := c.client.Get(ctx, catalogKey).Result()
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var activities []domain.Activity
	if err := json.Unmarshal([]byte(result), &activities); err != nil {
		// Stale or corrupt payload, treat as a miss.
		return nil, false, nil
	}
	return activities, true, nil
}

func (c *activityCache) Set(ctx context.Context, activities []domain.Activity, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.ttl
	}

	payload, err := json.Marshal(activities)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, catalogKey, payload, ttl).Err()
}

func (c *activityCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}
