package wiki

import (
	"context"

	"github.com/0xsj/wikilink/internal/domain/model"
)

// UserInfoClient performs the authenticated userinfo query against the
// remote wiki API. One round trip per call, no retries; calls are
// user-initiated and on-demand.
type UserInfoClient interface {
	// FetchUserInfo fetches and normalizes the caller's wiki user info.
	// Any transport, authentication, or malformed-response failure is
	// surfaced as ErrWikiRemote with a human-readable message.
	FetchUserInfo(ctx context.Context, creds *model.WikiCredentials) (*model.WikiUserInfo, error)
}
