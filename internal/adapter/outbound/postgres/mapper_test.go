package postgres

import (
	"testing"
	"time"

	"github.com/0xsj/wikilink/internal/domain/model"
)

func TestToLinkedIdentityModel(t *testing.T) {
	now := time.Now()

	mapIdentity := func(t *testing.T, rawExtra string) *model.LinkedIdentity {
		t.Helper()
		identity, err := toLinkedIdentityModel("id1", "user1", "mediawiki", []byte(rawExtra), now, now)
		if err != nil {
			t.Fatalf("toLinkedIdentityModel() error = %v", err)
		}
		return identity
	}

	t.Run("object-shaped access token", func(t *testing.T) {
		identity := mapIdentity(t, `{
			"access_token": {"oauth_token": "k1", "oauth_token_secret": "s1"}
		}`)

		tok, ok := identity.Token().(model.MappingToken)
		if !ok {
			t.Fatalf("token = %T, want MappingToken", identity.Token())
		}
		if tok.OAuthToken != "k1" || tok.OAuthTokenSecret != "s1" {
			t.Errorf("token = %+v", tok)
		}
	})

	t.Run("object-shaped token with key/secret field names", func(t *testing.T) {
		identity := mapIdentity(t, `{
			"access_token": {"key": "k2", "secret": "s2"}
		}`)

		creds, err := identity.Credentials()
		if err != nil {
			t.Fatalf("Credentials() error = %v", err)
		}
		if creds.AccessKey() != "k2" || creds.AccessSecret() != "s2" {
			t.Errorf("credentials = %q/%q", creds.AccessKey(), creds.AccessSecret())
		}
	})

	t.Run("string-shaped token with sibling secret", func(t *testing.T) {
		identity := mapIdentity(t, `{
			"access_token": "k3",
			"access_token_secret": "s3"
		}`)

		tok, ok := identity.Token().(model.BareToken)
		if !ok {
			t.Fatalf("token = %T, want BareToken", identity.Token())
		}
		if tok.Token != "k3" || tok.SiblingSecret != "s3" {
			t.Errorf("token = %+v", tok)
		}
	})

	t.Run("missing token maps to nil", func(t *testing.T) {
		for name, raw := range map[string]string{
			"empty object": `{}`,
			"null token":   `{"access_token": null}`,
			"number token": `{"access_token": 7}`,
		} {
			t.Run(name, func(t *testing.T) {
				identity := mapIdentity(t, raw)
				if identity.Token() != nil {
					t.Errorf("token = %v, want nil", identity.Token())
				}
			})
		}
	})

	t.Run("empty extra data maps to empty identity", func(t *testing.T) {
		identity, err := toLinkedIdentityModel("id1", "user1", "mediawiki", nil, now, now)
		if err != nil {
			t.Fatalf("toLinkedIdentityModel() error = %v", err)
		}
		if identity.Token() != nil {
			t.Error("token should be nil")
		}
		if identity.ResolvedUsername().IsPresent() {
			t.Error("username should be absent")
		}
	})

	t.Run("explicit username and nested name", func(t *testing.T) {
		identity := mapIdentity(t, `{
			"username": "Explicit",
			"user": {"name": "Nested"}
		}`)

		if got := identity.Username(); !got.IsPresent() || got.MustGet() != "Explicit" {
			t.Errorf("Username = %v", got)
		}
		if got := identity.NestedName(); !got.IsPresent() || got.MustGet() != "Nested" {
			t.Errorf("NestedName = %v", got)
		}
		if identity.ResolvedUsername().MustGet() != "Explicit" {
			t.Error("explicit username should win")
		}
	})

	t.Run("malformed extra data fails", func(t *testing.T) {
		_, err := toLinkedIdentityModel("id1", "user1", "mediawiki", []byte("{broken"), now, now)
		if err == nil {
			t.Error("toLinkedIdentityModel() should fail on malformed JSON")
		}
	})
}
