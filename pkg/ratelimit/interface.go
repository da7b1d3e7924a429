// Package ratelimit provides per-key request limiters backed by Redis or by
// in-process token buckets.
package ratelimit

import (
	"context"
	"time"

	"social-analytics-srv/pkg/redis"
)

// Limiter decides whether one more request for key is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// NewRedis returns a fixed-window limiter allowing limit requests per window,
// shared by every instance that uses the same Redis.
func NewRedis(client redis.IRedis, limit int, window time.Duration) Limiter {
	return &redisLimiter{client: client, limit: int64(limit), window: window, prefix: DefaultKeyPrefix}
}

// NewLocal returns an in-process token-bucket limiter refilling limit tokens per window.
func NewLocal(limit int, window time.Duration) Limiter {
	return newLocalLimiter(limit, window, time.Now)
}
