package query

import (
	"github.com/0xsj/overwatch-pkg/types"
)

// GetWikiStats computes aggregate replica statistics for the caller.
type GetWikiStats struct {
	UserID types.ID
}

func (q GetWikiStats) QueryName() string {
	return "wikilink.get_wiki_stats"
}

// GetWikiStatsResult contains the aggregates. Available is false when the
// deployment has no replica configured; callers render that as a neutral
// placeholder, never as an error.
type GetWikiStatsResult struct {
	Available     bool
	TotalArticles int64
	UserEditCount int64
}

// GetWikiStatsHandler handles the GetWikiStats query.
type GetWikiStatsHandler = Handler[GetWikiStats, GetWikiStatsResult]
