package testutil

import (
	"time"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/wikilink/internal/domain/model"
)

// Fixtures provides builders for domain models in tests.
var Fixtures = &fixtures{}

type fixtures struct{}

// --- LinkedIdentity ---

// LinkedIdentity creates a linked identity with a complete mapping token
// and no stored username.
func (f *fixtures) LinkedIdentity(userID types.ID) *model.LinkedIdentity {
	identity, err := model.NewLinkedIdentity(
		userID,
		model.ProviderMediaWiki,
		types.None[string](),
		types.None[string](),
		model.MappingToken{
			OAuthToken:       Fake.Token(),
			OAuthTokenSecret: Fake.Token(),
		},
	)
	if err != nil {
		panic("fixtures: failed to create linked identity: " + err.Error())
	}
	return identity
}

// LinkedIdentityBuilder returns a builder for customizing LinkedIdentity
// creation.
func (f *fixtures) LinkedIdentityBuilder(userID types.ID) *LinkedIdentityBuilder {
	return &LinkedIdentityBuilder{
		userID:     userID,
		provider:   model.ProviderMediaWiki,
		username:   types.None[string](),
		nestedName: types.None[string](),
		token: model.MappingToken{
			OAuthToken:       Fake.Token(),
			OAuthTokenSecret: Fake.Token(),
		},
	}
}

type LinkedIdentityBuilder struct {
	userID     types.ID
	provider   model.Provider
	username   types.Optional[string]
	nestedName types.Optional[string]
	token      model.TokenShape

	// For reconstruction
	id          types.ID
	createdAt   types.Timestamp
	reconstruct bool
}

func (b *LinkedIdentityBuilder) WithUsername(name string) *LinkedIdentityBuilder {
	b.username = types.Some(name)
	return b
}

func (b *LinkedIdentityBuilder) WithNestedName(name string) *LinkedIdentityBuilder {
	b.nestedName = types.Some(name)
	return b
}

func (b *LinkedIdentityBuilder) WithToken(token model.TokenShape) *LinkedIdentityBuilder {
	b.token = token
	return b
}

// WithBareToken stores the token in the string shape with a sibling secret.
func (b *LinkedIdentityBuilder) WithBareToken(token, secret string) *LinkedIdentityBuilder {
	b.token = model.BareToken{Token: token, SiblingSecret: secret}
	return b
}

// WithoutToken produces a record that cannot yield credentials.
func (b *LinkedIdentityBuilder) WithoutToken() *LinkedIdentityBuilder {
	b.token = nil
	return b
}

func (b *LinkedIdentityBuilder) WithID(id types.ID) *LinkedIdentityBuilder {
	b.id = id
	b.reconstruct = true
	return b
}

func (b *LinkedIdentityBuilder) WithCreatedAt(t time.Time) *LinkedIdentityBuilder {
	b.createdAt = types.FromTime(t)
	b.reconstruct = true
	return b
}

func (b *LinkedIdentityBuilder) Build() *model.LinkedIdentity {
	if b.reconstruct {
		id := b.id
		if id.IsEmpty() {
			id = types.NewID()
		}
		createdAt := b.createdAt
		if createdAt.IsZero() {
			createdAt = types.Now()
		}

		return model.ReconstructLinkedIdentity(
			id,
			b.userID,
			b.provider,
			b.username,
			b.nestedName,
			b.token,
			createdAt,
			createdAt,
		)
	}

	identity, err := model.NewLinkedIdentity(
		b.userID,
		b.provider,
		b.username,
		b.nestedName,
		b.token,
	)
	if err != nil {
		panic("fixtures: failed to create linked identity: " + err.Error())
	}
	return identity
}

// --- WikiUserInfo ---

// WikiUserInfo creates a user info payload with default values.
func (f *fixtures) WikiUserInfo(name string) *model.WikiUserInfo {
	return model.NewWikiUserInfo(
		42,
		name,
		types.Some(Fake.Email()),
		[]string{"*", "user", "autoconfirmed"},
		12,
	)
}

// --- WikiPage ---

// WikiPage creates a mainspace, non-redirect page row.
func (f *fixtures) WikiPage(pageID int64, title string) *model.WikiPage {
	return model.ReconstructWikiPage(pageID, 0, title, false, false, 2048, pageID*10)
}

// --- Principal ---

// Principal creates an authenticated principal.
func (f *fixtures) Principal() *model.Principal {
	return model.NewPrincipal(types.NewID(), Fake.String("user"))
}
