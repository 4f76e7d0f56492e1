package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/0xsj/wikilink/internal/domain/model"
)

// --- SessionStore Mock ---

// SessionStore is a mock implementation of cache.SessionStore.
type SessionStore struct {
	mu sync.RWMutex

	// Storage
	sessions map[string]*model.Principal

	// Call tracking
	Calls struct {
		Get    int
		Set    int
		Delete int
	}

	// Error injection
	Errors struct {
		Get    error
		Set    error
		Delete error
	}
}

// NewSessionStore creates a new mock SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*model.Principal),
	}
}

func (m *SessionStore) Get(ctx context.Context, token string) (*model.Principal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.Get++

	if m.Errors.Get != nil {
		return nil, m.Errors.Get
	}

	principal, ok := m.sessions[token]
	if !ok {
		return nil, nil
	}
	return principal, nil
}

func (m *SessionStore) Set(ctx context.Context, token string, principal *model.Principal, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Set++

	if m.Errors.Set != nil {
		return m.Errors.Set
	}

	m.sessions[token] = principal
	return nil
}

func (m *SessionStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Delete++

	if m.Errors.Delete != nil {
		return m.Errors.Delete
	}

	delete(m.sessions, token)
	return nil
}

// Reset clears all data and call counts.
func (m *SessionStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = make(map[string]*model.Principal)
	m.Calls = struct {
		Get    int
		Set    int
		Delete int
	}{}
	m.Errors = struct {
		Get    error
		Set    error
		Delete error
	}{}
}

// Seed adds a session directly to the mock storage.
func (m *SessionStore) Seed(token string, principal *model.Principal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = principal
}
