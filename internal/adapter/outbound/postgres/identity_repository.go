package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/wikilink/internal/domain/model"
	"github.com/0xsj/wikilink/internal/port/outbound/repository"
)

const findLinkedIdentitySQL = `
SELECT id, user_id, provider, extra_data, created_at, updated_at
FROM linked_identities
WHERE user_id = $1 AND provider = $2
`

const updateUsernameSQL = `
UPDATE linked_identities
SET extra_data = jsonb_set(extra_data, '{username}', to_jsonb($2::text), true),
    updated_at = now()
WHERE id = $1
`

// identityRepository implements repository.IdentityRepository against the
// primary database. The extra_data column is the loosely-structured JSON
// blob written by the auth provider integration.
type identityRepository struct {
	pool *pgxpool.Pool
}

// NewIdentityRepository creates a new IdentityRepository.
func NewIdentityRepository(pool *pgxpool.Pool) repository.IdentityRepository {
	return &identityRepository{pool: pool}
}

func (r *identityRepository) FindByUserIDAndProvider(ctx context.Context, userID types.ID, provider model.Provider) (*model.LinkedIdentity, error) {
	var (
		id          string
		rowUserID   string
		rowProvider string
		extraData   []byte
		createdAt   time.Time
		updatedAt   time.Time
	)

	row := r.pool.QueryRow(ctx, findLinkedIdentitySQL, userID.String(), provider.String())
	if err := row.Scan(&id, &rowUserID, &rowProvider, &extraData, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return toLinkedIdentityModel(id, rowUserID, rowProvider, extraData, createdAt, updatedAt)
}

func (r *identityRepository) UpdateUsername(ctx context.Context, id types.ID, username string) error {
	_, err := r.pool.Exec(ctx, updateUsernameSQL, id.String(), username)
	return err
}
