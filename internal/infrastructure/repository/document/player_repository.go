package document

import (
	"context"

	"github.com/riskibarqy/cricket-stats/internal/domain/player"
	"github.com/riskibarqy/cricket-stats/internal/platform/docstore"
)

type PlayerRepository struct {
	players *docstore.Collection[player.Player]
}

func NewPlayerRepository(store docstore.Store) *PlayerRepository {
	return &PlayerRepository{
		players: docstore.NewCollection(store, PlayersCollection, func(p *player.Player, id string) { p.ID = id }),
	}
}

// FindByCricSheetID looks a player up by registry id alone; feed names for the
// same person vary between matches.
func (r *PlayerRepository) FindByCricSheetID(ctx context.Context, cricSheetID string) (player.Player, bool, error) {
	return r.players.FindOne(ctx, docstore.Query{"cric_sheet_id": cricSheetID})
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	return r.players.Insert(ctx, p)
}

func (r *PlayerRepository) UpdateTeams(ctx context.Context, playerID string, teams []string) error {
	return r.players.Update(ctx, playerID, docstore.Fields{"teams": teams})
}
