package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"quiniela-tool-backend/internal/common/config"
)

// Open creates a Redis client from the service config and pings it to
// validate the connection.
func Open(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return c, nil
}
