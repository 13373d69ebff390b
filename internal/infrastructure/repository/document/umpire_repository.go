package document

import (
	"context"

	"github.com/riskibarqy/cricket-stats/internal/domain/umpire"
	"github.com/riskibarqy/cricket-stats/internal/platform/docstore"
)

type UmpireRepository struct {
	umpires *docstore.Collection[umpire.Umpire]
}

func NewUmpireRepository(store docstore.Store) *UmpireRepository {
	return &UmpireRepository{
		umpires: docstore.NewCollection(store, UmpiresCollection, func(u *umpire.Umpire, id string) { u.ID = id }),
	}
}

func (r *UmpireRepository) FindByName(ctx context.Context, name string) (umpire.Umpire, bool, error) {
	return r.umpires.FindOne(ctx, docstore.Query{"name": name})
}

func (r *UmpireRepository) Create(ctx context.Context, u umpire.Umpire) (umpire.Umpire, error) {
	return r.umpires.Insert(ctx, u)
}
