package ports

import (
	"context"
	"time"
)

// TokenDenylist records revoked token IDs until their natural expiry.
// A token is authorized only while its jti is absent here.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
