package query_test

import (
	"context"
	"errors"
	"testing"

	appquery "github.com/0xsj/wikilink/internal/app/query"
	domainerror "github.com/0xsj/wikilink/internal/domain/error"
	"github.com/0xsj/wikilink/internal/domain/model"
	"github.com/0xsj/wikilink/internal/port/inbound/query"
	"github.com/0xsj/wikilink/tests/testutil/mocks"
)

const articleBase = "https://en.wikipedia.org/wiki/"

func TestSearchArticlesHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("matches underscore-normalized titles", func(t *testing.T) {
		replica := mocks.NewReplicaRepository()
		replica.SeedPage(model.ReconstructWikiPage(1, 0, "History_of_science", false, false, 4096, 10))
		replica.SeedPage(model.ReconstructWikiPage(2, 0, "Music_theory", false, false, 2048, 20))
		handler := appquery.NewSearchArticlesHandler(replica, articleBase)

		result, err := handler.Handle(ctx, query.SearchArticles{
			Query:            "History of",
			ExcludeRedirects: true,
		})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(result.Results) != 1 {
			t.Fatalf("got %d results, want 1", len(result.Results))
		}
		if result.Results[0].DisplayTitle != "History of science" {
			t.Errorf("DisplayTitle = %q", result.Results[0].DisplayTitle)
		}
		if result.Results[0].CanonicalURL != articleBase+"History_of_science" {
			t.Errorf("CanonicalURL = %q", result.Results[0].CanonicalURL)
		}
		if replica.LastSearchParams.Term != "History_of" {
			t.Errorf("search term = %q, want History_of", replica.LastSearchParams.Term)
		}
	})

	t.Run("fails with ErrSearchQueryRequired on blank query", func(t *testing.T) {
		handler := appquery.NewSearchArticlesHandler(mocks.NewReplicaRepository(), articleBase)

		for _, q := range []string{"", "   "} {
			_, err := handler.Handle(ctx, query.SearchArticles{Query: q})
			if !errors.Is(err, domainerror.ErrSearchQueryRequired) {
				t.Errorf("Handle(%q) error = %v, want ErrSearchQueryRequired", q, err)
			}
		}
	})

	t.Run("blank query check precedes the replica check", func(t *testing.T) {
		handler := appquery.NewSearchArticlesHandler(nil, articleBase)

		_, err := handler.Handle(ctx, query.SearchArticles{Query: ""})
		if !errors.Is(err, domainerror.ErrSearchQueryRequired) {
			t.Errorf("error = %v, want ErrSearchQueryRequired", err)
		}
	})

	t.Run("fails with ErrReplicaUnavailable without a replica", func(t *testing.T) {
		handler := appquery.NewSearchArticlesHandler(nil, articleBase)

		_, err := handler.Handle(ctx, query.SearchArticles{Query: "anything"})
		if !errors.Is(err, domainerror.ErrReplicaUnavailable) {
			t.Errorf("error = %v, want ErrReplicaUnavailable", err)
		}
	})

	t.Run("limit defaults and clamps", func(t *testing.T) {
		tests := []struct {
			name  string
			limit int
			want  int
		}{
			{"zero gets the default", 0, appquery.DefaultSearchLimit},
			{"negative gets the default", -5, appquery.DefaultSearchLimit},
			{"in range passes through", 25, 25},
			{"over the cap clamps", 500, appquery.MaxSearchLimit},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				replica := mocks.NewReplicaRepository()
				handler := appquery.NewSearchArticlesHandler(replica, articleBase)

				_, err := handler.Handle(ctx, query.SearchArticles{Query: "x", Limit: tt.limit})
				if err != nil {
					t.Fatalf("Handle() error = %v", err)
				}
				if replica.LastSearchParams.Limit != tt.want {
					t.Errorf("limit = %d, want %d", replica.LastSearchParams.Limit, tt.want)
				}
			})
		}
	})

	t.Run("redirect filter and namespace pass through", func(t *testing.T) {
		replica := mocks.NewReplicaRepository()
		replica.SeedPage(model.ReconstructWikiPage(3, 6, "Example.jpg", false, false, 100, 30))
		replica.SeedPage(model.ReconstructWikiPage(4, 6, "Example_redirect.jpg", true, false, 50, 40))
		handler := appquery.NewSearchArticlesHandler(replica, articleBase)

		result, err := handler.Handle(ctx, query.SearchArticles{
			Query:            "Example",
			Namespace:        6,
			ExcludeRedirects: true,
		})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(result.Results) != 1 {
			t.Fatalf("got %d results, want 1", len(result.Results))
		}
		if result.Results[0].CanonicalURL != articleBase+"File:Example.jpg" {
			t.Errorf("CanonicalURL = %q", result.Results[0].CanonicalURL)
		}
	})

	t.Run("empty match set yields empty results", func(t *testing.T) {
		handler := appquery.NewSearchArticlesHandler(mocks.NewReplicaRepository(), articleBase)

		result, err := handler.Handle(ctx, query.SearchArticles{Query: "nothing"})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if len(result.Results) != 0 {
			t.Errorf("got %d results, want 0", len(result.Results))
		}
	})

	t.Run("surfaces replica failure", func(t *testing.T) {
		replica := mocks.NewReplicaRepository()
		replica.Errors.SearchPages = errors.New("replica gone")
		handler := appquery.NewSearchArticlesHandler(replica, articleBase)

		_, err := handler.Handle(ctx, query.SearchArticles{Query: "x"})
		if err == nil {
			t.Error("Handle() should surface the replica failure")
		}
	})
}
