package cache

import (
	"context"
	"log/slog"
	"time"

	"band-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// NewRedisClient returns nil when Redis is disabled or unreachable at
// startup; callers fall back to in-process behaviour.
func NewRedisClient(cfg config.RedisConfig, logger *slog.Logger) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, continuing without it",
			slog.String("addr", cfg.Addr),
			slog.String("error", err.Error()),
		)
		_ = client.Close()
		return nil
	}
	return client
}
