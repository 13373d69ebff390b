package venue

import "context"

// Repository describes stadium persistence needs from use cases.
type Repository interface {
	FindByNaturalKey(ctx context.Context, name, city string) (Stadium, bool, error)
	Create(ctx context.Context, s Stadium) (Stadium, error)
}
