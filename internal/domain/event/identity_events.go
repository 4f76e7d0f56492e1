package event

import (
	"github.com/0xsj/overwatch-pkg/types"
)

// UsernameDiscovered is emitted when the live wiki API reveals the username
// for a linked identity whose record did not carry one yet.
type UsernameDiscovered struct {
	BaseEvent
	IdentityID types.ID
	UserID     types.ID
	Provider   string
	Username   string
}

// NewUsernameDiscovered creates a new UsernameDiscovered event.
func NewUsernameDiscovered(
	identityID types.ID,
	userID types.ID,
	provider string,
	username string,
) UsernameDiscovered {
	return UsernameDiscovered{
		BaseEvent:  NewBaseEvent(EventTypeUsernameDiscovered, identityID, AggregateTypeLinkedIdentity),
		IdentityID: identityID,
		UserID:     userID,
		Provider:   provider,
		Username:   username,
	}
}

// UserInfoFetched is emitted after a successful live userinfo query.
// Carries only non-sensitive attributes.
type UserInfoFetched struct {
	BaseEvent
	IdentityID  types.ID
	UserID      types.ID
	WikiUserID  int64
	Username    string
	GroupCount  int
	RightsCount int
}

// NewUserInfoFetched creates a new UserInfoFetched event.
func NewUserInfoFetched(
	identityID types.ID,
	userID types.ID,
	wikiUserID int64,
	username string,
	groupCount int,
	rightsCount int,
) UserInfoFetched {
	return UserInfoFetched{
		BaseEvent:   NewBaseEvent(EventTypeUserInfoFetched, identityID, AggregateTypeLinkedIdentity),
		IdentityID:  identityID,
		UserID:      userID,
		WikiUserID:  wikiUserID,
		Username:    username,
		GroupCount:  groupCount,
		RightsCount: rightsCount,
	}
}
