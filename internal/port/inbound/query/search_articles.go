package query

import (
	"github.com/0xsj/wikilink/internal/domain/model"
)

// SearchArticles performs a filtered, paginated title search against the
// replica. Limit is clamped to [1, 100] by the handler; zero means default.
type SearchArticles struct {
	Query            string
	Limit            int
	Namespace        int32
	ExcludeRedirects bool
}

func (q SearchArticles) QueryName() string {
	return "wikilink.search_articles"
}

// SearchArticlesResult contains matched pages in the replica's natural row
// order. No ordering is guaranteed.
type SearchArticlesResult struct {
	Results []model.SearchResult
}

// SearchArticlesHandler handles the SearchArticles query.
type SearchArticlesHandler = Handler[SearchArticles, SearchArticlesResult]
