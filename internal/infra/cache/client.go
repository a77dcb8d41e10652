// Package cache holds the Redis-backed short-lived coordination state: locks and consumed challenge tokens.
package cache

import (
	"context"
	"time"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"

	"github.com/go-redis/redis/v8"
)

const pingTimeout = 5 * time.Second

// NewClient connects and pings. A failed ping is returned so the caller decides whether Redis is optional.
func NewClient(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return rdb, errs.Wrapf(err, "redis ping %s failed", cfg.Addr)
	}
	return rdb, nil
}
