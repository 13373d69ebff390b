package document

import (
	"context"

	"github.com/riskibarqy/cricket-stats/internal/domain/innings"
	"github.com/riskibarqy/cricket-stats/internal/platform/docstore"
)

type InningsRepository struct {
	innings *docstore.Collection[innings.Innings]
}

func NewInningsRepository(store docstore.Store) *InningsRepository {
	return &InningsRepository{
		innings: docstore.NewCollection(store, InningsCollection, func(in *innings.Innings, id string) { in.ID = id }),
	}
}

func (r *InningsRepository) Create(ctx context.Context, in innings.Innings) (innings.Innings, error) {
	return r.innings.Insert(ctx, in)
}

func (r *InningsRepository) ListByMatch(ctx context.Context, matchID string) ([]innings.Innings, error) {
	return r.innings.FindMany(ctx, docstore.Query{"match_id": matchID})
}

func (r *InningsRepository) Finalize(ctx context.Context, inningsID string, totals innings.Totals) error {
	return r.innings.Update(ctx, inningsID, docstore.Fields{
		"total_runs":   totals.TotalRuns,
		"wickets_lost": totals.WicketsLost,
		"overs_played": totals.OversPlayed,
	})
}

func (r *InningsRepository) DeleteByMatch(ctx context.Context, matchID string) (int64, error) {
	return r.innings.DeleteMany(ctx, docstore.Query{"match_id": matchID})
}
