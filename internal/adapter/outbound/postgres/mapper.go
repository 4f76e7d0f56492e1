package postgres

import (
	"encoding/json"
	"time"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/wikilink/internal/domain/model"
)

// extraData is the wire shape of the linked identity record's JSON blob.
// The access_token field varies by historical auth-flow version: either a
// nested object or a bare string with a sibling access_token_secret.
type extraData struct {
	Username string `json:"username"`
	User     struct {
		Name string `json:"name"`
	} `json:"user"`
	AccessToken       json.RawMessage `json:"access_token"`
	AccessTokenSecret string          `json:"access_token_secret"`
}

type mappingTokenJSON struct {
	OAuthToken       string `json:"oauth_token"`
	Key              string `json:"key"`
	OAuthTokenSecret string `json:"oauth_token_secret"`
	Secret           string `json:"secret"`
}

func toLinkedIdentityModel(id, userID, provider string, rawExtra []byte, createdAt, updatedAt time.Time) (*model.LinkedIdentity, error) {
	var extra extraData
	if len(rawExtra) > 0 {
		if err := json.Unmarshal(rawExtra, &extra); err != nil {
			return nil, err
		}
	}

	return model.ReconstructLinkedIdentity(
		types.ID(id),
		types.ID(userID),
		model.Provider(provider),
		optionalString(extra.Username),
		optionalString(extra.User.Name),
		toTokenShape(extra),
		types.FromTime(createdAt),
		types.FromTime(updatedAt),
	), nil
}

// toTokenShape resolves the access_token field into its tagged union form.
// Returns nil when the record carries nothing usable; credential resolution
// reports that as incomplete.
func toTokenShape(extra extraData) model.TokenShape {
	raw := extra.AccessToken
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	switch raw[0] {
	case '{':
		var tok mappingTokenJSON
		if err := json.Unmarshal(raw, &tok); err != nil {
			return nil
		}
		return model.MappingToken{
			OAuthToken:       tok.OAuthToken,
			Key:              tok.Key,
			OAuthTokenSecret: tok.OAuthTokenSecret,
			Secret:           tok.Secret,
		}
	case '"':
		var tok string
		if err := json.Unmarshal(raw, &tok); err != nil {
			return nil
		}
		return model.BareToken{
			Token:         tok,
			SiblingSecret: extra.AccessTokenSecret,
		}
	default:
		return nil
	}
}

func optionalString(s string) types.Optional[string] {
	if s == "" {
		return types.None[string]()
	}
	return types.Some(s)
}
