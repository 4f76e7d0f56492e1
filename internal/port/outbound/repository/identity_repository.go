package repository

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/wikilink/internal/domain/model"
)

// IdentityRepository defines access to the externally-owned linked identity
// store. The auth provider integration creates and updates records; this
// service only reads them and writes back a discovered username.
type IdentityRepository interface {
	// FindByUserIDAndProvider returns the linked identity for a local user
	// and provider. Returns ErrNotFound when no record exists.
	FindByUserIDAndProvider(ctx context.Context, userID types.ID, provider model.Provider) (*model.LinkedIdentity, error)

	// UpdateUsername writes a discovered username into the record's extra
	// data. Idempotent overwrite of a single key.
	UpdateUsername(ctx context.Context, id types.ID, username string) error
}
