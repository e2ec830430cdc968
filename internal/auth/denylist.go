package auth

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Denylist tracks revoked token ids until their natural expiry. Tokens stay
// stateless; logout only needs a redis SETEX plus a lookup in the auth
// middleware. A nil client disables revocation entirely.
type Denylist struct {
	client *redis.Client
}

func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{client: client}
}

func denyKey(tokenID string) string {
	return "revoked_token:" + tokenID
}

func (d *Denylist) Revoke(ctx context.Context, claims *Claims) error {
	if d == nil || d.client == nil || claims.TokenID == "" {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	return d.client.Set(ctx, denyKey(claims.TokenID), "1", ttl).Err()
}

func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) bool {
	if d == nil || d.client == nil || tokenID == "" {
		return false
	}

	_, err := d.client.Get(ctx, denyKey(tokenID)).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		// Redis being down must not lock every user out.
		log.Printf("denylist lookup failed: %v", err)
		return false
	}
	return true
}

// NewRedisClient parses REDIS_URL. An empty URL yields a nil client and
// disables the denylist.
func NewRedisClient(redisURL string) *redis.Client {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, token revocation disabled: %v", err)
		return nil
	}
	return redis.NewClient(opts)
}
