package scorecard

import "context"

// Repository describes scorecard persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, card PlayerScorecard) (PlayerScorecard, error)
	ListByMatch(ctx context.Context, matchID string) ([]PlayerScorecard, error)
	DeleteByMatch(ctx context.Context, matchID string) (int64, error)
}
