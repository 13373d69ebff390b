package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	FindByNaturalKey(ctx context.Context, name, teamType string) (Team, bool, error)
	Create(ctx context.Context, t Team) (Team, error)
}
