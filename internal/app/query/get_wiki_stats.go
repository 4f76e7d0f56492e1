package query

import (
	"context"
	"errors"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/wikilink/internal/domain/model"
	"github.com/0xsj/wikilink/internal/port/inbound/query"
	"github.com/0xsj/wikilink/internal/port/outbound/repository"
)

type getWikiStatsHandler struct {
	identityRepo repository.IdentityRepository
	replica      repository.ReplicaRepository // nil when the deployment has no replica
}

func NewGetWikiStatsHandler(
	identityRepo repository.IdentityRepository,
	replica repository.ReplicaRepository,
) query.GetWikiStatsHandler {
	return &getWikiStatsHandler{
		identityRepo: identityRepo,
		replica:      replica,
	}
}

func (h *getWikiStatsHandler) Handle(ctx context.Context, qry query.GetWikiStats) (query.GetWikiStatsResult, error) {
	if h.replica == nil {
		return query.GetWikiStatsResult{Available: false}, nil
	}

	total, err := h.replica.CountArticles(ctx)
	if err != nil {
		return query.GetWikiStatsResult{}, err
	}

	editCount, err := h.userEditCount(ctx, qry.UserID)
	if err != nil {
		return query.GetWikiStatsResult{}, err
	}

	return query.GetWikiStatsResult{
		Available:     true,
		TotalArticles: total,
		UserEditCount: editCount,
	}, nil
}

// userEditCount counts revisions authored by the caller's stored wiki
// username. A missing identity or username degrades to zero; the stats
// endpoint never fails on account state.
func (h *getWikiStatsHandler) userEditCount(ctx context.Context, userID types.ID) (int64, error) {
	identity, err := h.identityRepo.FindByUserIDAndProvider(ctx, userID, model.ProviderMediaWiki)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	username := identity.ResolvedUsername()
	if !username.IsPresent() {
		return 0, nil
	}

	// Actor names are raw bytes on the wiki side; match byte-exact, then
	// count revisions in a second query. Never a join: the two tables may
	// live in separate stores.
	actor, err := h.replica.FindActorByName(ctx, []byte(username.MustGet()))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return h.replica.CountRevisionsByActor(ctx, actor.ActorID())
}
