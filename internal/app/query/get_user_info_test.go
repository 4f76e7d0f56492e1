package query_test

import (
	"context"
	"errors"
	"testing"

	"github.com/0xsj/overwatch-pkg/types"

	appquery "github.com/0xsj/wikilink/internal/app/query"
	"github.com/0xsj/wikilink/internal/app/service"
	domainerror "github.com/0xsj/wikilink/internal/domain/error"
	"github.com/0xsj/wikilink/internal/domain/event"
	"github.com/0xsj/wikilink/internal/port/inbound/query"
	"github.com/0xsj/wikilink/tests/testutil"
	"github.com/0xsj/wikilink/tests/testutil/mocks"
)

func newUserInfoFixture() (*mocks.IdentityRepository, *mocks.UserInfoClient, *mocks.EventPublisher, query.GetUserInfoHandler) {
	repo := mocks.NewIdentityRepository()
	client := mocks.NewUserInfoClient()
	publisher := mocks.NewEventPublisher()
	resolver := service.NewCredentialResolver(repo, publisher)
	handler := appquery.NewGetUserInfoHandler(resolver, client, publisher)
	return repo, client, publisher, handler
}

func TestGetUserInfoHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("returns live userinfo with stored username", func(t *testing.T) {
		repo, client, _, handler := newUserInfoFixture()

		userID := types.NewID()
		repo.Seed(testutil.Fixtures.LinkedIdentityBuilder(userID).
			WithUsername("WikiAlice").
			Build())
		client.Info = testutil.Fixtures.WikiUserInfo("WikiAlice")

		result, err := handler.Handle(ctx, query.GetUserInfo{UserID: userID})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if !result.MWUsername.IsPresent() || result.MWUsername.MustGet() != "WikiAlice" {
			t.Errorf("MWUsername = %v, want WikiAlice", result.MWUsername)
		}
		if result.UserInfo.Name() != "WikiAlice" {
			t.Errorf("UserInfo.Name = %q, want WikiAlice", result.UserInfo.Name())
		}
	})

	t.Run("memoizes username when record has none", func(t *testing.T) {
		repo, client, _, handler := newUserInfoFixture()

		userID := types.NewID()
		identity := testutil.Fixtures.LinkedIdentityBuilder(userID).Build()
		repo.Seed(identity)
		client.Info = testutil.Fixtures.WikiUserInfo("Discovered")

		result, err := handler.Handle(ctx, query.GetUserInfo{UserID: userID})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}

		if got := repo.UpdatedUsernames[identity.ID().String()]; got != "Discovered" {
			t.Errorf("persisted username = %q, want Discovered", got)
		}
		if !result.MWUsername.IsPresent() || result.MWUsername.MustGet() != "Discovered" {
			t.Errorf("MWUsername = %v, want Discovered", result.MWUsername)
		}
	})

	t.Run("does not overwrite an existing username", func(t *testing.T) {
		repo, client, _, handler := newUserInfoFixture()

		userID := types.NewID()
		repo.Seed(testutil.Fixtures.LinkedIdentityBuilder(userID).
			WithNestedName("LegacyName").
			Build())
		client.Info = testutil.Fixtures.WikiUserInfo("FreshName")

		result, err := handler.Handle(ctx, query.GetUserInfo{UserID: userID})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if repo.Calls.UpdateUsername != 0 {
			t.Error("UpdateUsername should not be called")
		}
		if result.MWUsername.MustGet() != "LegacyName" {
			t.Errorf("MWUsername = %v, want LegacyName", result.MWUsername)
		}
	})

	t.Run("failed memoization does not fail the request", func(t *testing.T) {
		repo, client, _, handler := newUserInfoFixture()
		repo.Errors.UpdateUsername = errors.New("write failed")

		userID := types.NewID()
		repo.Seed(testutil.Fixtures.LinkedIdentityBuilder(userID).Build())
		client.Info = testutil.Fixtures.WikiUserInfo("Discovered")

		result, err := handler.Handle(ctx, query.GetUserInfo{UserID: userID})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if !result.MWUsername.IsPresent() {
			t.Error("MWUsername should still be resolved from the live response")
		}
	})

	t.Run("publishes info fetched event", func(t *testing.T) {
		repo, client, publisher, handler := newUserInfoFixture()

		userID := types.NewID()
		repo.Seed(testutil.Fixtures.LinkedIdentityBuilder(userID).
			WithUsername("WikiAlice").
			Build())
		client.Info = testutil.Fixtures.WikiUserInfo("WikiAlice")

		if _, err := handler.Handle(ctx, query.GetUserInfo{UserID: userID}); err != nil {
			t.Fatalf("Handle() error = %v", err)
		}

		published := publisher.PublishedOfType(event.EventTypeUserInfoFetched)
		if len(published) != 1 {
			t.Fatalf("published %d UserInfoFetched events, want 1", len(published))
		}
	})

	t.Run("fails with ErrNoLinkedIdentity when no record exists", func(t *testing.T) {
		_, _, _, handler := newUserInfoFixture()

		_, err := handler.Handle(ctx, query.GetUserInfo{UserID: types.NewID()})
		if !errors.Is(err, domainerror.ErrNoLinkedIdentity) {
			t.Errorf("error = %v, want ErrNoLinkedIdentity", err)
		}
	})

	t.Run("surfaces remote wiki failure", func(t *testing.T) {
		repo, client, _, handler := newUserInfoFixture()
		client.Errors.FetchUserInfo = domainerror.ErrWikiRemote

		userID := types.NewID()
		repo.Seed(testutil.Fixtures.LinkedIdentityBuilder(userID).Build())

		_, err := handler.Handle(ctx, query.GetUserInfo{UserID: userID})
		if !errors.Is(err, domainerror.ErrWikiRemote) {
			t.Errorf("error = %v, want ErrWikiRemote", err)
		}
	})
}
