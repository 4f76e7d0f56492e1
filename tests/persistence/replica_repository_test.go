package persistence

import (
	"bytes"
	"errors"
	"testing"

	"github.com/0xsj/wikilink/internal/adapter/outbound/postgres"
	"github.com/0xsj/wikilink/internal/port/outbound/repository"
)

func seedPage(t *testing.T, pageID int64, namespace int32, title string, isRedirect bool) {
	t.Helper()
	_, err := getPool().Exec(getContext(), `
		INSERT INTO page (page_id, page_namespace, page_title, page_is_redirect, page_len, page_latest)
		VALUES ($1, $2, $3, $4, 1024, $1 * 10)`,
		pageID, namespace, title, isRedirect,
	)
	if err != nil {
		t.Fatalf("failed to seed page: %v", err)
	}
}

func seedActor(t *testing.T, actorID int64, actorUser int64, name []byte) {
	t.Helper()
	_, err := getPool().Exec(getContext(), `
		INSERT INTO actor (actor_id, actor_user, actor_name)
		VALUES ($1, NULLIF($2, 0), $3)`,
		actorID, actorUser, name,
	)
	if err != nil {
		t.Fatalf("failed to seed actor: %v", err)
	}
}

func seedRevision(t *testing.T, revID int64, actorID int64) {
	t.Helper()
	_, err := getPool().Exec(getContext(), `
		INSERT INTO revision (rev_id, rev_actor, rev_page)
		VALUES ($1, $2, 1)`,
		revID, actorID,
	)
	if err != nil {
		t.Fatalf("failed to seed revision: %v", err)
	}
}

func TestReplicaRepository_CountArticles(t *testing.T) {
	truncateTables(t)
	repo := postgres.NewReplicaRepository(getPool())
	ctx := getContext()

	seedPage(t, 1, 0, "Article_one", false)
	seedPage(t, 2, 0, "Article_two", false)
	seedPage(t, 3, 0, "A_redirect", true)
	seedPage(t, 4, 6, "File_page.jpg", false)

	count, err := repo.CountArticles(ctx)
	if err != nil {
		t.Fatalf("CountArticles() error = %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2 (mainspace non-redirects only)", count)
	}
}

func TestReplicaRepository_FindActorByName(t *testing.T) {
	repo := postgres.NewReplicaRepository(getPool())
	ctx := getContext()

	t.Run("finds actor by exact name bytes", func(t *testing.T) {
		truncateTables(t)
		seedActor(t, 7, 99, []byte("WikiAlice"))

		actor, err := repo.FindActorByName(ctx, []byte("WikiAlice"))
		if err != nil {
			t.Fatalf("FindActorByName() error = %v", err)
		}
		if actor.ActorID() != 7 {
			t.Errorf("ActorID = %d, want 7", actor.ActorID())
		}
		if actor.UserID() != 99 {
			t.Errorf("UserID = %d, want 99", actor.UserID())
		}
		if !bytes.Equal(actor.Name(), []byte("WikiAlice")) {
			t.Errorf("Name = %q", actor.Name())
		}
	})

	t.Run("anonymous actor maps user to zero", func(t *testing.T) {
		truncateTables(t)
		seedActor(t, 8, 0, []byte("192.0.2.1"))

		actor, err := repo.FindActorByName(ctx, []byte("192.0.2.1"))
		if err != nil {
			t.Fatalf("FindActorByName() error = %v", err)
		}
		if actor.UserID() != 0 {
			t.Errorf("UserID = %d, want 0 for anonymous", actor.UserID())
		}
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		truncateTables(t)
		seedActor(t, 7, 99, []byte("WikiAlice"))

		_, err := repo.FindActorByName(ctx, []byte("wikialice"))
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("unknown name returns ErrNotFound", func(t *testing.T) {
		truncateTables(t)

		_, err := repo.FindActorByName(ctx, []byte("Nobody"))
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestReplicaRepository_CountRevisionsByActor(t *testing.T) {
	truncateTables(t)
	repo := postgres.NewReplicaRepository(getPool())
	ctx := getContext()

	seedActor(t, 7, 99, []byte("WikiAlice"))
	seedRevision(t, 100, 7)
	seedRevision(t, 101, 7)
	seedRevision(t, 102, 7)
	seedRevision(t, 103, 8)

	count, err := repo.CountRevisionsByActor(ctx, 7)
	if err != nil {
		t.Fatalf("CountRevisionsByActor() error = %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestReplicaRepository_SearchPages(t *testing.T) {
	repo := postgres.NewReplicaRepository(getPool())
	ctx := getContext()

	t.Run("matches substring in stored titles", func(t *testing.T) {
		truncateTables(t)
		seedPage(t, 1, 0, "History_of_science", false)
		seedPage(t, 2, 0, "Natural_history", false)
		seedPage(t, 3, 0, "Music_theory", false)

		pages, err := repo.SearchPages(ctx, repository.SearchPagesParams{
			Term:      "history",
			Namespace: 0,
			Limit:     10,
		})
		if err != nil {
			t.Fatalf("SearchPages() error = %v", err)
		}
		if len(pages) != 1 {
			t.Fatalf("got %d pages, want 1 (match is case sensitive)", len(pages))
		}
		if pages[0].Title() != "Natural_history" {
			t.Errorf("title = %q", pages[0].Title())
		}
	})

	t.Run("underscore matches literally", func(t *testing.T) {
		truncateTables(t)
		seedPage(t, 1, 0, "History_of_science", false)
		seedPage(t, 2, 0, "HistoryXofXscience", false)

		pages, err := repo.SearchPages(ctx, repository.SearchPagesParams{
			Term:      "History_of",
			Namespace: 0,
			Limit:     10,
		})
		if err != nil {
			t.Fatalf("SearchPages() error = %v", err)
		}
		if len(pages) != 1 || pages[0].PageID() != 1 {
			t.Errorf("underscore should not act as a wildcard, got %d pages", len(pages))
		}
	})

	t.Run("filters by namespace", func(t *testing.T) {
		truncateTables(t)
		seedPage(t, 1, 0, "Example", false)
		seedPage(t, 2, 6, "Example.jpg", false)

		pages, err := repo.SearchPages(ctx, repository.SearchPagesParams{
			Term:      "Example",
			Namespace: 6,
			Limit:     10,
		})
		if err != nil {
			t.Fatalf("SearchPages() error = %v", err)
		}
		if len(pages) != 1 || pages[0].Namespace() != 6 {
			t.Errorf("got %d pages", len(pages))
		}
	})

	t.Run("excludes redirects when asked", func(t *testing.T) {
		truncateTables(t)
		seedPage(t, 1, 0, "Target_page", false)
		seedPage(t, 2, 0, "Target_redirect", true)

		pages, err := repo.SearchPages(ctx, repository.SearchPagesParams{
			Term:             "Target",
			Namespace:        0,
			Limit:            10,
			ExcludeRedirects: true,
		})
		if err != nil {
			t.Fatalf("SearchPages() error = %v", err)
		}
		if len(pages) != 1 || pages[0].IsRedirect() {
			t.Errorf("got %d pages", len(pages))
		}
	})

	t.Run("caps results at the limit", func(t *testing.T) {
		truncateTables(t)
		for i := int64(1); i <= 5; i++ {
			seedPage(t, i, 0, "Common_prefix_"+string(rune('a'+i)), false)
		}

		pages, err := repo.SearchPages(ctx, repository.SearchPagesParams{
			Term:      "Common_prefix",
			Namespace: 0,
			Limit:     3,
		})
		if err != nil {
			t.Fatalf("SearchPages() error = %v", err)
		}
		if len(pages) != 3 {
			t.Errorf("got %d pages, want 3", len(pages))
		}
	})
}
