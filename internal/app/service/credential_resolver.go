package service

import (
	"context"
	"errors"

	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/0xsj/wikilink/internal/domain/error"
	"github.com/0xsj/wikilink/internal/domain/event"
	"github.com/0xsj/wikilink/internal/domain/model"
	"github.com/0xsj/wikilink/internal/port/outbound/messaging"
	"github.com/0xsj/wikilink/internal/port/outbound/repository"
)

// CredentialResolver turns a local user's linked identity record into a
// usable wiki credential pair.
type CredentialResolver interface {
	// Resolve looks up the user's mediawiki linked identity and extracts
	// credentials from whatever token shape the record stores.
	// Fails with ErrNoLinkedIdentity when no record exists and with
	// ErrIncompleteCredentials when the record yields no usable pair.
	Resolve(ctx context.Context, userID types.ID) (*model.LinkedIdentity, *model.WikiCredentials, error)

	// RememberUsername memoizes a username discovered from the live wiki
	// API onto the identity record. No-op when the record already has one.
	// Persistence failures are returned but the in-memory identity is
	// updated regardless; callers treat the write as best-effort.
	RememberUsername(ctx context.Context, identity *model.LinkedIdentity, username string) error
}

type credentialResolver struct {
	identityRepo repository.IdentityRepository
	publisher    messaging.EventPublisher
}

// NewCredentialResolver creates a new CredentialResolver.
func NewCredentialResolver(
	identityRepo repository.IdentityRepository,
	publisher messaging.EventPublisher,
) CredentialResolver {
	return &credentialResolver{
		identityRepo: identityRepo,
		publisher:    publisher,
	}
}

func (r *credentialResolver) Resolve(ctx context.Context, userID types.ID) (*model.LinkedIdentity, *model.WikiCredentials, error) {
	if userID.IsEmpty() {
		return nil, nil, domainerror.ErrUserIDRequired
	}

	identity, err := r.identityRepo.FindByUserIDAndProvider(ctx, userID, model.ProviderMediaWiki)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, domainerror.ErrNoLinkedIdentity
		}
		return nil, nil, err
	}

	creds, err := identity.Credentials()
	if err != nil {
		return nil, nil, err
	}

	return identity, creds, nil
}

func (r *credentialResolver) RememberUsername(ctx context.Context, identity *model.LinkedIdentity, username string) error {
	if username == "" || identity.ResolvedUsername().IsPresent() {
		return nil
	}

	identity.RememberUsername(username)

	if err := r.identityRepo.UpdateUsername(ctx, identity.ID(), username); err != nil {
		return err
	}

	_ = r.publisher.Publish(ctx, event.NewUsernameDiscovered(
		identity.ID(),
		identity.UserID(),
		identity.Provider().String(),
		username,
	))

	return nil
}
