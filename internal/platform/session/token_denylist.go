// Package session keeps the set of access tokens revoked before their expiry.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist implements token revocation on Redis. Each revoked token id is stored
// under its own key with a TTL equal to the token's remaining lifetime, so entries
// disappear once the token would have expired anyway.
//
// A nil client disables revocation: Revoke is a no-op and IsRevoked reports false.
type TokenDenylist struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewTokenDenylist creates a new TokenDenylist. If prefix is empty, it uses "revoked".
func NewTokenDenylist(client *redis.Client, prefix string) *TokenDenylist {
	if prefix == "" {
		prefix = "revoked"
	}
	return &TokenDenylist{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

// Enabled reports whether revocations are persisted.
func (d *TokenDenylist) Enabled() bool {
	return d != nil && d.client != nil
}

// key returns the Redis key for a token id.
func (d *TokenDenylist) key(id string) string {
	return fmt.Sprintf("%s:%s", d.prefix, id)
}

// Revoke marks the token id as revoked until expiresAt.
func (d *TokenDenylist) Revoke(ctx context.Context, id string, expiresAt time.Time) error {
	if !d.Enabled() {
		return nil
	}
	if id == "" {
		return fmt.Errorf("token has no id")
	}
	ttl := expiresAt.Sub(d.now())
	if ttl <= 0 {
		// 既に期限切れのトークンは検証で拒否されるため保存不要
		return nil
	}
	if err := d.client.Set(ctx, d.key(id), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token id has been revoked.
func (d *TokenDenylist) IsRevoked(ctx context.Context, id string) (bool, error) {
	if !d.Enabled() || id == "" {
		return false, nil
	}
	n, err := d.client.Exists(ctx, d.key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}
