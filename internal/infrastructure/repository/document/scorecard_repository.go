package document

import (
	"context"

	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/platform/docstore"
)

type ScorecardRepository struct {
	cards *docstore.Collection[scorecard.PlayerScorecard]
}

func NewScorecardRepository(store docstore.Store) *ScorecardRepository {
	return &ScorecardRepository{
		cards: docstore.NewCollection(store, ScorecardsCollection, func(c *scorecard.PlayerScorecard, id string) { c.ID = id }),
	}
}

func (r *ScorecardRepository) Create(ctx context.Context, card scorecard.PlayerScorecard) (scorecard.PlayerScorecard, error) {
	return r.cards.Insert(ctx, card)
}

func (r *ScorecardRepository) ListByMatch(ctx context.Context, matchID string) ([]scorecard.PlayerScorecard, error) {
	return r.cards.FindMany(ctx, docstore.Query{"match_id": matchID})
}

func (r *ScorecardRepository) DeleteByMatch(ctx context.Context, matchID string) (int64, error) {
	return r.cards.DeleteMany(ctx, docstore.Query{"match_id": matchID})
}
