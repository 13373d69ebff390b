package series

import "context"

// Repository describes series persistence needs from use cases.
type Repository interface {
	FindByKey(ctx context.Context, key Key) (Series, bool, error)
	Create(ctx context.Context, s Series) (Series, error)
	UpdateTeams(ctx context.Context, seriesID string, teams []string) error
}
