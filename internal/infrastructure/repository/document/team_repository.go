package document

import (
	"context"

	"github.com/riskibarqy/cricket-stats/internal/domain/team"
	"github.com/riskibarqy/cricket-stats/internal/platform/docstore"
)

type TeamRepository struct {
	teams *docstore.Collection[team.Team]
}

func NewTeamRepository(store docstore.Store) *TeamRepository {
	return &TeamRepository{
		teams: docstore.NewCollection(store, TeamsCollection, func(t *team.Team, id string) { t.ID = id }),
	}
}

func (r *TeamRepository) FindByNaturalKey(ctx context.Context, name, teamType string) (team.Team, bool, error) {
	return r.teams.FindOne(ctx, docstore.Query{"name": name, "team_type": teamType})
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	return r.teams.Insert(ctx, t)
}
