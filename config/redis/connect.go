package redis

import (
	"context"
	"fmt"

	"social-analytics-srv/config"
	"social-analytics-srv/pkg/redis"
)

// Connect creates the Redis client. It returns nil, nil when no host is configured.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	if cfg.Host == "" {
		return nil, nil
	}

	client, err := redis.NewRedis(redis.RedisConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	return client, nil
}

// Disconnect closes the Redis connection if one was opened.
func Disconnect(client redis.IRedis) error {
	if client == nil {
		return nil
	}
	return client.Close()
}
