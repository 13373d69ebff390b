package document

import (
	"context"

	"github.com/riskibarqy/cricket-stats/internal/domain/venue"
	"github.com/riskibarqy/cricket-stats/internal/platform/docstore"
)

type StadiumRepository struct {
	stadiums *docstore.Collection[venue.Stadium]
}

func NewStadiumRepository(store docstore.Store) *StadiumRepository {
	return &StadiumRepository{
		stadiums: docstore.NewCollection(store, StadiumsCollection, func(s *venue.Stadium, id string) { s.ID = id }),
	}
}

func (r *StadiumRepository) FindByNaturalKey(ctx context.Context, name, city string) (venue.Stadium, bool, error) {
	return r.stadiums.FindOne(ctx, docstore.Query{"name": name, "city": city})
}

func (r *StadiumRepository) Create(ctx context.Context, s venue.Stadium) (venue.Stadium, error) {
	return r.stadiums.Insert(ctx, s)
}
