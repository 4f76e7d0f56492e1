package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/0xsj/wikilink/internal/domain/model"
	"github.com/0xsj/wikilink/internal/port/outbound/repository"
)

const countArticlesSQL = `
SELECT count(*)
FROM page
WHERE page_namespace = 0 AND page_is_redirect = false
`

const findActorByNameSQL = `
SELECT actor_id, COALESCE(actor_user, 0), actor_name
FROM actor
WHERE actor_name = $1
LIMIT 1
`

const countRevisionsByActorSQL = `
SELECT count(*)
FROM revision
WHERE rev_actor = $1
`

// position() keeps the match a byte-exact, case-preserving substring test;
// LIKE would treat the underscores in normalized terms as wildcards.
// No ORDER BY: result order is the replica's natural row order.
const searchPagesSQL = `
SELECT page_id, page_namespace, page_title, page_is_redirect, page_is_new, page_len, page_latest
FROM page
WHERE page_namespace = $1 AND position($2 in page_title) > 0
LIMIT $3
`

const searchPagesNoRedirectsSQL = `
SELECT page_id, page_namespace, page_title, page_is_redirect, page_is_new, page_len, page_latest
FROM page
WHERE page_namespace = $1 AND position($2 in page_title) > 0 AND page_is_redirect = false
LIMIT $3
`

// replicaRepository implements repository.ReplicaRepository against the
// read-only wiki replica. All queries are read-only; the replica is
// externally owned and independently updated.
type replicaRepository struct {
	pool *pgxpool.Pool
}

// NewReplicaRepository creates a new ReplicaRepository.
func NewReplicaRepository(pool *pgxpool.Pool) repository.ReplicaRepository {
	return &replicaRepository{pool: pool}
}

func (r *replicaRepository) CountArticles(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, countArticlesSQL).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *replicaRepository) FindActorByName(ctx context.Context, name []byte) (*model.WikiActor, error) {
	var (
		actorID   int64
		actorUser int64
		actorName []byte
	)

	row := r.pool.QueryRow(ctx, findActorByNameSQL, name)
	if err := row.Scan(&actorID, &actorUser, &actorName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return model.ReconstructWikiActor(actorID, actorUser, actorName), nil
}

func (r *replicaRepository) CountRevisionsByActor(ctx context.Context, actorID int64) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, countRevisionsByActorSQL, actorID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *replicaRepository) SearchPages(ctx context.Context, params repository.SearchPagesParams) ([]*model.WikiPage, error) {
	sql := searchPagesSQL
	if params.ExcludeRedirects {
		sql = searchPagesNoRedirectsSQL
	}

	rows, err := r.pool.Query(ctx, sql, params.Namespace, params.Term, params.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := make([]*model.WikiPage, 0, params.Limit)
	for rows.Next() {
		var (
			pageID     int64
			namespace  int32
			title      string
			isRedirect bool
			isNew      bool
			length     int64
			latestRev  int64
		)
		if err := rows.Scan(&pageID, &namespace, &title, &isRedirect, &isNew, &length, &latestRev); err != nil {
			return nil, err
		}
		pages = append(pages, model.ReconstructWikiPage(pageID, namespace, title, isRedirect, isNew, length, latestRev))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pages, nil
}
