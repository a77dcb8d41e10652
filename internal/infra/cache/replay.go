package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenGuard remembers consumed one-time tokens for ttl. Only a digest of the token is stored.
type TokenGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTokenGuard(rdb *redis.Client, ttl time.Duration) *TokenGuard {
	return &TokenGuard{rdb: rdb, ttl: ttl}
}

// Claim reports true the first time token is seen.
func (g *TokenGuard) Claim(ctx context.Context, token string) (bool, error) {
	sum := sha256.Sum256([]byte(token))
	return g.rdb.SetNX(ctx, "challenge:"+hex.EncodeToString(sum[:]), 1, g.ttl).Result()
}
