package query

import (
	"context"

	"github.com/0xsj/wikilink/internal/app/service"
	"github.com/0xsj/wikilink/internal/domain/event"
	"github.com/0xsj/wikilink/internal/port/inbound/query"
	"github.com/0xsj/wikilink/internal/port/outbound/messaging"
	"github.com/0xsj/wikilink/internal/port/outbound/wiki"
)

type getUserInfoHandler struct {
	resolver   service.CredentialResolver
	wikiClient wiki.UserInfoClient
	publisher  messaging.EventPublisher
}

func NewGetUserInfoHandler(
	resolver service.CredentialResolver,
	wikiClient wiki.UserInfoClient,
	publisher messaging.EventPublisher,
) query.GetUserInfoHandler {
	return &getUserInfoHandler{
		resolver:   resolver,
		wikiClient: wikiClient,
		publisher:  publisher,
	}
}

func (h *getUserInfoHandler) Handle(ctx context.Context, qry query.GetUserInfo) (query.GetUserInfoResult, error) {
	identity, creds, err := h.resolver.Resolve(ctx, qry.UserID)
	if err != nil {
		return query.GetUserInfoResult{}, err
	}

	info, err := h.wikiClient.FetchUserInfo(ctx, creds)
	if err != nil {
		return query.GetUserInfoResult{}, err
	}

	// Memoize the username when the record did not carry one. Best-effort:
	// a failed write must not fail the request.
	if !identity.ResolvedUsername().IsPresent() && info.Name() != "" {
		_ = h.resolver.RememberUsername(ctx, identity, info.Name())
	}

	_ = h.publisher.Publish(ctx, event.NewUserInfoFetched(
		identity.ID(),
		identity.UserID(),
		info.ID(),
		info.Name(),
		len(info.Groups()),
		info.RightsCount(),
	))

	return query.GetUserInfoResult{
		MWUsername: identity.ResolvedUsername(),
		UserInfo:   info,
	}, nil
}
