package di

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"movie_backend/internal/config"
	infraredis "movie_backend/internal/platform/redis"
	"movie_backend/internal/platform/session"
)

// NewTokenDenylist creates the token revocation list.
// If Redis is available, revocations are persisted there.
// Otherwise, it returns a disabled list and logout only discards the token client-side.
func NewTokenDenylist(ctx context.Context, cfg config.Redis, prefix string) (*session.TokenDenylist, func()) {
	rdb, err := infraredis.NewRedisClient(ctx, infraredis.Config{Host: cfg.Host, Port: cfg.Port, Password: cfg.Password})
	if err != nil {
		if errors.Is(err, infraredis.ErrNotConfigured) {
			slog.Warn("Redis not configured. Running without token revocation.")
		} else {
			slog.Warn("Redis unavailable. Running without token revocation.", "error", err)
		}
		return session.NewTokenDenylist(nil, prefix), func() {}
	}
	return session.NewTokenDenylist(rdb, prefix), closeRedis(rdb)
}

func closeRedis(rdb *redis.Client) func() {
	return func() {
		if err := rdb.Close(); err != nil {
			slog.Error("Failed to close Redis client", "error", err)
		}
	}
}
