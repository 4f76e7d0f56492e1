package query

import (
	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/wikilink/internal/domain/model"
)

// GetUserInfo fetches the caller's linked wiki identity and live user info.
type GetUserInfo struct {
	UserID types.ID
}

func (q GetUserInfo) QueryName() string {
	return "wikilink.get_user_info"
}

// GetUserInfoResult contains the resolved wiki username and the normalized
// remote userinfo payload.
type GetUserInfoResult struct {
	MWUsername types.Optional[string]
	UserInfo   *model.WikiUserInfo
}

// GetUserInfoHandler handles the GetUserInfo query.
type GetUserInfoHandler = Handler[GetUserInfo, GetUserInfoResult]
