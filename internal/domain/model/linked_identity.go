package model

import (
	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/0xsj/wikilink/internal/domain/error"
)

// Provider identifies the external account provider a local user is linked to.
type Provider string

const (
	ProviderMediaWiki Provider = "mediawiki"
)

func (p Provider) String() string {
	return string(p)
}

func (p Provider) IsValid() bool {
	switch p {
	case ProviderMediaWiki:
		return true
	default:
		return false
	}
}

// TokenShape is the union of the access-token storage shapes found in linked
// identity records. Older records store the token as a nested object, newer
// ones as a bare string with a sibling secret field.
type TokenShape interface {
	isTokenShape()
}

// MappingToken is the object-shaped access token:
// extra_data.access_token = {oauth_token|key, oauth_token_secret|secret}.
type MappingToken struct {
	OAuthToken       string
	Key              string
	OAuthTokenSecret string
	Secret           string
}

func (MappingToken) isTokenShape() {}

// BareToken is the string-shaped access token with its secret stored in a
// sibling extra_data.access_token_secret field.
type BareToken struct {
	Token         string
	SiblingSecret string
}

func (BareToken) isTokenShape() {}

// LinkedIdentity is the association between a local account and an external
// wiki account, created by the OAuth sign-in flow. The record's extra data is
// loosely structured; the only mutation this service performs on it is the
// one-time username write-back.
type LinkedIdentity struct {
	id         types.ID
	userID     types.ID
	provider   Provider
	username   types.Optional[string] // explicit extra_data.username
	nestedName types.Optional[string] // legacy extra_data.user.name
	token      TokenShape             // nil when the record carries no token
	createdAt  types.Timestamp
	updatedAt  types.Timestamp
}

// NewLinkedIdentity creates a new LinkedIdentity.
func NewLinkedIdentity(
	userID types.ID,
	provider Provider,
	username types.Optional[string],
	nestedName types.Optional[string],
	token TokenShape,
) (*LinkedIdentity, error) {
	if userID.IsEmpty() {
		return nil, domainerror.ErrUserIDRequired
	}
	if !provider.IsValid() {
		return nil, domainerror.ErrProviderInvalid
	}

	now := types.Now()

	return &LinkedIdentity{
		id:         types.NewID(),
		userID:     userID,
		provider:   provider,
		username:   username,
		nestedName: nestedName,
		token:      token,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructLinkedIdentity creates a LinkedIdentity from persisted data.
func ReconstructLinkedIdentity(
	id types.ID,
	userID types.ID,
	provider Provider,
	username types.Optional[string],
	nestedName types.Optional[string],
	token TokenShape,
	createdAt types.Timestamp,
	updatedAt types.Timestamp,
) *LinkedIdentity {
	return &LinkedIdentity{
		id:         id,
		userID:     userID,
		provider:   provider,
		username:   username,
		nestedName: nestedName,
		token:      token,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Getters

func (l *LinkedIdentity) ID() types.ID                       { return l.id }
func (l *LinkedIdentity) UserID() types.ID                   { return l.userID }
func (l *LinkedIdentity) Provider() Provider                 { return l.provider }
func (l *LinkedIdentity) Username() types.Optional[string]   { return l.username }
func (l *LinkedIdentity) NestedName() types.Optional[string] { return l.nestedName }
func (l *LinkedIdentity) Token() TokenShape                  { return l.token }
func (l *LinkedIdentity) CreatedAt() types.Timestamp         { return l.createdAt }
func (l *LinkedIdentity) UpdatedAt() types.Timestamp         { return l.updatedAt }

// ResolvedUsername returns the wiki username stored on the record: the
// explicit username field wins, the legacy nested user.name is the fallback.
func (l *LinkedIdentity) ResolvedUsername() types.Optional[string] {
	if l.username.IsPresent() {
		return l.username
	}
	if l.nestedName.IsPresent() {
		return l.nestedName
	}
	return types.None[string]()
}

// RememberUsername records a username discovered from the live wiki API.
// Idempotent; persisting the change is the repository's job.
func (l *LinkedIdentity) RememberUsername(name string) {
	if name == "" {
		return
	}
	l.username = types.Some(name)
	l.updatedAt = types.Now()
}

// Credentials resolves the stored token shape into a usable key/secret pair.
// Returns ErrIncompleteCredentials when either half is missing, which callers
// must treat differently from a record that does not exist at all.
func (l *LinkedIdentity) Credentials() (*WikiCredentials, error) {
	var key, secret string

	switch tok := l.token.(type) {
	case MappingToken:
		key = tok.OAuthToken
		if key == "" {
			key = tok.Key
		}
		secret = tok.OAuthTokenSecret
		if secret == "" {
			secret = tok.Secret
		}
	case BareToken:
		key = tok.Token
		secret = tok.SiblingSecret
	}

	if key == "" || secret == "" {
		return nil, domainerror.ErrIncompleteCredentials
	}

	return NewWikiCredentials(key, secret, l.ResolvedUsername()), nil
}
