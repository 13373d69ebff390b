package document

import (
	"context"

	"github.com/riskibarqy/cricket-stats/internal/domain/match"
	"github.com/riskibarqy/cricket-stats/internal/platform/docstore"
)

type MatchRepository struct {
	matches *docstore.Collection[match.Match]
}

func NewMatchRepository(store docstore.Store) *MatchRepository {
	return &MatchRepository{
		matches: docstore.NewCollection(store, MatchesCollection, func(m *match.Match, id string) { m.ID = id }),
	}
}

func matchKeyQuery(key match.Key) docstore.Query {
	q := docstore.Query{
		"series_id":    key.SeriesID,
		"match_number": key.MatchNumber,
	}
	if key.MatchNumber == 0 {
		q["stage"] = key.Stage
	}
	return q
}

func (r *MatchRepository) FindByKey(ctx context.Context, key match.Key) (match.Match, bool, error) {
	return r.matches.FindOne(ctx, matchKeyQuery(key))
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	return r.matches.Insert(ctx, m)
}

func (r *MatchRepository) DeleteByKey(ctx context.Context, key match.Key) (int64, error) {
	return r.matches.DeleteMany(ctx, matchKeyQuery(key))
}
