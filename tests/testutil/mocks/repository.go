// Package mocks provides mock implementations of ports for testing.
package mocks

import (
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/wikilink/internal/domain/model"
	"github.com/0xsj/wikilink/internal/port/outbound/repository"
)

// --- IdentityRepository Mock ---

// IdentityRepository is a mock implementation of repository.IdentityRepository.
type IdentityRepository struct {
	mu sync.RWMutex

	// Storage, keyed by userID + "/" + provider
	identities map[string]*model.LinkedIdentity

	// Recorded username writes, keyed by identity ID
	UpdatedUsernames map[string]string

	// Call tracking
	Calls struct {
		FindByUserIDAndProvider int
		UpdateUsername          int
	}

	// Error injection
	Errors struct {
		FindByUserIDAndProvider error
		UpdateUsername          error
	}
}

// NewIdentityRepository creates a new mock IdentityRepository.
func NewIdentityRepository() *IdentityRepository {
	return &IdentityRepository{
		identities:       make(map[string]*model.LinkedIdentity),
		UpdatedUsernames: make(map[string]string),
	}
}

func identityKey(userID types.ID, provider model.Provider) string {
	return userID.String() + "/" + provider.String()
}

func (m *IdentityRepository) FindByUserIDAndProvider(ctx context.Context, userID types.ID, provider model.Provider) (*model.LinkedIdentity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.FindByUserIDAndProvider++

	if m.Errors.FindByUserIDAndProvider != nil {
		return nil, m.Errors.FindByUserIDAndProvider
	}

	identity, ok := m.identities[identityKey(userID, provider)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return identity, nil
}

func (m *IdentityRepository) UpdateUsername(ctx context.Context, id types.ID, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.UpdateUsername++

	if m.Errors.UpdateUsername != nil {
		return m.Errors.UpdateUsername
	}

	m.UpdatedUsernames[id.String()] = username
	return nil
}

// Reset clears all data and call counts.
func (m *IdentityRepository) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identities = make(map[string]*model.LinkedIdentity)
	m.UpdatedUsernames = make(map[string]string)
	m.Calls = struct {
		FindByUserIDAndProvider int
		UpdateUsername          int
	}{}
	m.Errors = struct {
		FindByUserIDAndProvider error
		UpdateUsername          error
	}{}
}

// Seed adds a linked identity directly to the mock storage.
func (m *IdentityRepository) Seed(identity *model.LinkedIdentity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identities[identityKey(identity.UserID(), identity.Provider())] = identity
}

// --- ReplicaRepository Mock ---

// ReplicaRepository is a mock implementation of repository.ReplicaRepository.
type ReplicaRepository struct {
	mu sync.RWMutex

	// Storage
	ArticleCount int64
	actors       []*model.WikiActor
	revisions    map[int64]int64 // actorID -> revision count
	pages        []*model.WikiPage

	// Call tracking
	Calls struct {
		CountArticles         int
		FindActorByName       int
		CountRevisionsByActor int
		SearchPages           int
	}

	// Error injection
	Errors struct {
		CountArticles         error
		FindActorByName       error
		CountRevisionsByActor error
		SearchPages           error
	}

	// LastSearchParams records the params of the most recent SearchPages call.
	LastSearchParams repository.SearchPagesParams
}

// NewReplicaRepository creates a new mock ReplicaRepository.
func NewReplicaRepository() *ReplicaRepository {
	return &ReplicaRepository{
		revisions: make(map[int64]int64),
	}
}

func (m *ReplicaRepository) CountArticles(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.CountArticles++

	if m.Errors.CountArticles != nil {
		return 0, m.Errors.CountArticles
	}
	return m.ArticleCount, nil
}

func (m *ReplicaRepository) FindActorByName(ctx context.Context, name []byte) (*model.WikiActor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.FindActorByName++

	if m.Errors.FindActorByName != nil {
		return nil, m.Errors.FindActorByName
	}

	for _, actor := range m.actors {
		if bytes.Equal(actor.Name(), name) {
			return actor, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *ReplicaRepository) CountRevisionsByActor(ctx context.Context, actorID int64) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.CountRevisionsByActor++

	if m.Errors.CountRevisionsByActor != nil {
		return 0, m.Errors.CountRevisionsByActor
	}
	return m.revisions[actorID], nil
}

func (m *ReplicaRepository) SearchPages(ctx context.Context, params repository.SearchPagesParams) ([]*model.WikiPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.SearchPages++
	m.LastSearchParams = params

	if m.Errors.SearchPages != nil {
		return nil, m.Errors.SearchPages
	}

	var result []*model.WikiPage
	for _, page := range m.pages {
		if page.Namespace() != params.Namespace {
			continue
		}
		if params.ExcludeRedirects && page.IsRedirect() {
			continue
		}
		if !strings.Contains(page.Title(), params.Term) {
			continue
		}
		result = append(result, page)
		if len(result) == params.Limit {
			break
		}
	}
	return result, nil
}

// Reset clears all data and call counts.
func (m *ReplicaRepository) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticleCount = 0
	m.actors = nil
	m.revisions = make(map[int64]int64)
	m.pages = nil
	m.LastSearchParams = repository.SearchPagesParams{}
	m.Calls = struct {
		CountArticles         int
		FindActorByName       int
		CountRevisionsByActor int
		SearchPages           int
	}{}
	m.Errors = struct {
		CountArticles         error
		FindActorByName       error
		CountRevisionsByActor error
		SearchPages           error
	}{}
}

// SeedActor adds an actor with a revision count directly to the mock storage.
func (m *ReplicaRepository) SeedActor(actor *model.WikiActor, revisionCount int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actors = append(m.actors, actor)
	m.revisions[actor.ActorID()] = revisionCount
}

// SeedPage adds a page directly to the mock storage.
func (m *ReplicaRepository) SeedPage(page *model.WikiPage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages = append(m.pages, page)
}
