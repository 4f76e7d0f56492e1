package query

import (
	"context"
	"strings"

	domainerror "github.com/0xsj/wikilink/internal/domain/error"
	"github.com/0xsj/wikilink/internal/domain/model"
	"github.com/0xsj/wikilink/internal/port/inbound/query"
	"github.com/0xsj/wikilink/internal/port/outbound/repository"
)

const (
	// DefaultSearchLimit applies when the caller supplies no usable limit.
	DefaultSearchLimit = 10

	// MaxSearchLimit caps the result count regardless of what was asked.
	MaxSearchLimit = 100
)

type searchArticlesHandler struct {
	replica     repository.ReplicaRepository // nil when the deployment has no replica
	articleBase string
}

func NewSearchArticlesHandler(
	replica repository.ReplicaRepository,
	articleBase string,
) query.SearchArticlesHandler {
	return &searchArticlesHandler{
		replica:     replica,
		articleBase: articleBase,
	}
}

func (h *searchArticlesHandler) Handle(ctx context.Context, qry query.SearchArticles) (query.SearchArticlesResult, error) {
	term := strings.TrimSpace(qry.Query)
	if term == "" {
		return query.SearchArticlesResult{}, domainerror.ErrSearchQueryRequired
	}

	if h.replica == nil {
		return query.SearchArticlesResult{}, domainerror.ErrReplicaUnavailable
	}

	limit := qry.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	pages, err := h.replica.SearchPages(ctx, repository.SearchPagesParams{
		Term:             model.NormalizeSearchTerm(term),
		Namespace:        qry.Namespace,
		Limit:            limit,
		ExcludeRedirects: qry.ExcludeRedirects,
	})
	if err != nil {
		return query.SearchArticlesResult{}, err
	}

	results := make([]model.SearchResult, 0, len(pages))
	for _, page := range pages {
		results = append(results, model.NewSearchResult(page, h.articleBase))
	}

	return query.SearchArticlesResult{Results: results}, nil
}
