package document

import (
	"context"

	"github.com/riskibarqy/cricket-stats/internal/domain/series"
	"github.com/riskibarqy/cricket-stats/internal/platform/docstore"
)

type SeriesRepository struct {
	series *docstore.Collection[series.Series]
}

func NewSeriesRepository(store docstore.Store) *SeriesRepository {
	return &SeriesRepository{
		series: docstore.NewCollection(store, SeriesCollection, func(s *series.Series, id string) { s.ID = id }),
	}
}

func (r *SeriesRepository) FindByKey(ctx context.Context, key series.Key) (series.Series, bool, error) {
	return r.series.FindOne(ctx, docstore.Query{
		"name":       key.Name,
		"season":     key.Season,
		"gender":     key.Gender,
		"match_type": key.MatchType,
	})
}

func (r *SeriesRepository) Create(ctx context.Context, s series.Series) (series.Series, error) {
	return r.series.Insert(ctx, s)
}

func (r *SeriesRepository) UpdateTeams(ctx context.Context, seriesID string, teams []string) error {
	return r.series.Update(ctx, seriesID, docstore.Fields{"teams": teams})
}
