package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/wikilink/internal/domain/model"
	"github.com/0xsj/wikilink/internal/port/outbound/cache"
)

const (
	sessionKeyPrefix  = "wikilink:session:"
	defaultSessionTTL = 24 * time.Hour
)

// sessionStore implements cache.SessionStore. The external OAuth login flow
// writes sessions under the same key convention; this service resolves them
// on every authenticated request.
type sessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *redis.Client, ttl time.Duration) cache.SessionStore {
	if ttl == 0 {
		ttl = defaultSessionTTL
	}
	return &sessionStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *sessionStore) Get(ctx context.Context, token string) (*model.Principal, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // unknown or expired token
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var cached cachedPrincipal
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return cached.toModel()
}

func (s *sessionStore) Set(ctx context.Context, token string, principal *model.Principal, ttl time.Duration) error {
	if ttl == 0 {
		ttl = s.ttl
	}

	data, err := json.Marshal(newCachedPrincipal(principal))
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(token), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (s *sessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Cached principal structure for JSON serialization

type cachedPrincipal struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

func newCachedPrincipal(p *model.Principal) cachedPrincipal {
	return cachedPrincipal{
		UserID:   p.UserID().String(),
		Username: p.Username(),
	}
}

func (c cachedPrincipal) toModel() (*model.Principal, error) {
	userID, err := types.ParseID(c.UserID)
	if err != nil {
		return nil, err
	}
	return model.NewPrincipal(userID, c.Username), nil
}
