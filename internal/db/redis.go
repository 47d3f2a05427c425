package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"click-logs/internal/config/configs"
)

// NewRedisClient connects to Redis when cfg.Addr is set. It returns a nil
// client and no error when Redis is not configured, in which case callers
// run without a token cache.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
