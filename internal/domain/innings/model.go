package innings

import "context"

// Innings is one batting turn. Totals stay zero until the innings is finalized.
type Innings struct {
	ID            string  `json:"-"`
	MatchID       string  `json:"match_id" validate:"required"`
	InningsNumber int     `json:"innings_number" validate:"min=1"`
	BattingTeamID string  `json:"batting_team_id" validate:"required"`
	BowlingTeamID string  `json:"bowling_team_id"`
	IsSuperOver   bool    `json:"is_super_over"`
	TotalRuns     int     `json:"total_runs" validate:"gte=0"`
	WicketsLost   int     `json:"wickets_lost" validate:"gte=0"`
	OversPlayed   float64 `json:"overs_played" validate:"gte=0"`
}

// Totals are the values written back when an innings is finalized.
type Totals struct {
	TotalRuns   int
	WicketsLost int
	OversPlayed float64
}

// Repository describes innings persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, in Innings) (Innings, error)
	ListByMatch(ctx context.Context, matchID string) ([]Innings, error)
	Finalize(ctx context.Context, inningsID string, totals Totals) error
	DeleteByMatch(ctx context.Context, matchID string) (int64, error)
}
