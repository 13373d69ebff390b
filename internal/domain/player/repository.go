package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	FindByCricSheetID(ctx context.Context, cricSheetID string) (Player, bool, error)
	Create(ctx context.Context, p Player) (Player, error)
	UpdateTeams(ctx context.Context, playerID string, teams []string) error
}
