package model

import (
	"github.com/0xsj/overwatch-pkg/types"
)

// WikiCredentials is the resolved per-user OAuth access pair. Ephemeral:
// built per request, never persisted, never logged.
type WikiCredentials struct {
	accessKey    string
	accessSecret string
	mwUsername   types.Optional[string]
}

// NewWikiCredentials creates a WikiCredentials value.
func NewWikiCredentials(accessKey, accessSecret string, mwUsername types.Optional[string]) *WikiCredentials {
	return &WikiCredentials{
		accessKey:    accessKey,
		accessSecret: accessSecret,
		mwUsername:   mwUsername,
	}
}

func (c *WikiCredentials) AccessKey() string                  { return c.accessKey }
func (c *WikiCredentials) AccessSecret() string               { return c.accessSecret }
func (c *WikiCredentials) MWUsername() types.Optional[string] { return c.mwUsername }

// String keeps the secret out of accidental %v formatting.
func (c *WikiCredentials) String() string {
	return "WikiCredentials([redacted])"
}
