package cache

import (
	"context"
	"time"

	"github.com/0xsj/wikilink/internal/domain/model"
)

// SessionStore defines the interface for the bearer-token session store.
// Sessions are created by the external OAuth login flow; this service only
// resolves tokens to principals on inbound requests.
type SessionStore interface {
	// Get resolves a session token to its principal.
	// Returns nil if the token is unknown or expired.
	Get(ctx context.Context, token string) (*model.Principal, error)

	// Set stores a session with TTL.
	Set(ctx context.Context, token string, principal *model.Principal, ttl time.Duration) error

	// Delete removes a session.
	Delete(ctx context.Context, token string) error
}
