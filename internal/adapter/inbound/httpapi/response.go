package httpapi

import (
	"github.com/0xsj/wikilink/internal/domain/model"
	"github.com/0xsj/wikilink/internal/port/inbound/query"
)

// notAvailable is the stats placeholder for deployments without a replica.
const notAvailable = "N/A"

// UserInfoResponse is the JSON shape of GET /api/user.
type UserInfoResponse struct {
	Username    string   `json:"username"`
	MWUsername  *string  `json:"mw_username"`
	UserID      int64    `json:"user_id"`
	Email       *string  `json:"email"`
	Groups      []string `json:"groups"`
	RightsCount int      `json:"rights_count"`
}

// StatsResponse is the JSON shape of GET /api/stats. Both fields carry
// either a count or the literal "N/A" placeholder.
type StatsResponse struct {
	TotalArticles any `json:"total_articles"`
	UserEditCount any `json:"user_edit_count"`
}

// SearchResultItem is one entry of the search response.
type SearchResultItem struct {
	PageID        int64  `json:"page_id"`
	PageTitle     string `json:"page_title"`
	PageNamespace int32  `json:"page_namespace"`
	PageIsRedir   bool   `json:"page_is_redirect"`
	PageLen       int64  `json:"page_len"`
	URL           string `json:"url"`
}

// SearchResponse is the JSON shape of GET /api/search.
type SearchResponse struct {
	Results []SearchResultItem `json:"results"`
	Count   int                `json:"count"`
	Query   string             `json:"query"`
}

func toUserInfoResponse(principal *model.Principal, result query.GetUserInfoResult) UserInfoResponse {
	resp := UserInfoResponse{
		Username:    principal.Username(),
		UserID:      result.UserInfo.ID(),
		Groups:      result.UserInfo.Groups(),
		RightsCount: result.UserInfo.RightsCount(),
	}

	if result.MWUsername.IsPresent() {
		name := result.MWUsername.MustGet()
		resp.MWUsername = &name
	}
	if result.UserInfo.Email().IsPresent() {
		email := result.UserInfo.Email().MustGet()
		resp.Email = &email
	}

	return resp
}

func toStatsResponse(result query.GetWikiStatsResult) StatsResponse {
	if !result.Available {
		return StatsResponse{
			TotalArticles: notAvailable,
			UserEditCount: notAvailable,
		}
	}
	return StatsResponse{
		TotalArticles: result.TotalArticles,
		UserEditCount: result.UserEditCount,
	}
}

func toSearchResponse(q string, result query.SearchArticlesResult) SearchResponse {
	items := make([]SearchResultItem, 0, len(result.Results))
	for _, r := range result.Results {
		items = append(items, SearchResultItem{
			PageID:        r.PageID,
			PageTitle:     r.DisplayTitle,
			PageNamespace: r.Namespace,
			PageIsRedir:   r.IsRedirect,
			PageLen:       r.Length,
			URL:           r.CanonicalURL,
		})
	}

	return SearchResponse{
		Results: items,
		Count:   len(items),
		Query:   q,
	}
}
