package repository

import (
	"context"

	"github.com/0xsj/wikilink/internal/domain/model"
)

// SearchPagesParams filters a page search. Term is matched as a
// case-preserving byte substring against the stored underscore titles.
type SearchPagesParams struct {
	Term             string
	Namespace        int32
	Limit            int
	ExcludeRedirects bool
}

// ReplicaRepository defines read-only queries against the wiki replica
// database. The actor lookup and the revision count are deliberately two
// separate calls: the tables are allowed to live in physically separate
// stores, so no relational join may be assumed.
type ReplicaRepository interface {
	// CountArticles counts mainspace pages that are not redirects.
	CountArticles(ctx context.Context) (int64, error)

	// FindActorByName returns the first actor whose raw name bytes equal
	// name. Returns ErrNotFound when there is no match.
	FindActorByName(ctx context.Context, name []byte) (*model.WikiActor, error)

	// CountRevisionsByActor counts revisions authored by the actor.
	CountRevisionsByActor(ctx context.Context, actorID int64) (int64, error)

	// SearchPages returns pages matching the params, in the replica's
	// natural row order, capped at Limit.
	SearchPages(ctx context.Context, params SearchPagesParams) ([]*model.WikiPage, error)
}
