package model

import (
	"github.com/0xsj/overwatch-pkg/types"
)

// Principal is the authenticated local account attached to an inbound
// request by the session middleware.
type Principal struct {
	userID   types.ID
	username string
}

// NewPrincipal creates a Principal.
func NewPrincipal(userID types.ID, username string) *Principal {
	return &Principal{
		userID:   userID,
		username: username,
	}
}

func (p *Principal) UserID() types.ID { return p.userID }
func (p *Principal) Username() string { return p.username }
