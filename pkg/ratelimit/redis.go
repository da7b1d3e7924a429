package ratelimit

import (
	"context"
	"time"

	"social-analytics-srv/pkg/redis"
)

type redisLimiter struct {
	client redis.IRedis
	limit  int64
	window time.Duration
	prefix string
}

func (r *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	n, err := r.client.IncrWindow(ctx, r.prefix+key, r.window)
	if err != nil {
		return false, err
	}
	return n <= r.limit, nil
}
