package redis

import (
	"context"
	"time"
)

// IncrWindow increments key and starts its expiry on the first hit of a window.
func (r *redisImpl) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// Ping checks if Redis is reachable
func (r *redisImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *redisImpl) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer()
}
