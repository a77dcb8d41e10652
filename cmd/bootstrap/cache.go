package bootstrap

import (
	"context"
	"log/slog"

	"storefront/internal/infra/cache"
	"storefront/internal/infra/challenge"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		fx.Annotate(
			NewLocker,
			fx.As(new(commands.Locker)),
		),
		fx.Annotate(
			NewTokenGuard,
			fx.As(new(challenge.ReplayGuard)),
		),
	),
)

// NewRedis does not fail startup when Redis is unreachable: locks and replay guards degrade instead.
func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	rdb, err := cache.NewClient(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable at startup, continuing without locks", "addr", cfg.Redis.Addr, "error", err.Error())
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

func NewLocker(rdb *redis.Client, cfg config.Config) *cache.Locker {
	return cache.NewLocker(rdb, cfg.Redis.LockTTL)
}

func NewTokenGuard(rdb *redis.Client, cfg config.Config) *cache.TokenGuard {
	return cache.NewTokenGuard(rdb, cfg.Turnstile.ReplayTTL)
}
