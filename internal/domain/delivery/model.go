package delivery

import "context"

// Delivery is one ball as bowled. DeliveryNumber counts from 1 inside each
// over, extras included.
type Delivery struct {
	ID               string   `json:"-"`
	MatchID          string   `json:"match_id" validate:"required"`
	InningsID        string   `json:"innings_id" validate:"required"`
	OverNumber       int      `json:"over_number" validate:"gte=0"`
	DeliveryNumber   int      `json:"delivery_number" validate:"min=1"`
	BatterID         string   `json:"batter_id" validate:"required"`
	BowlerID         string   `json:"bowler_id" validate:"required"`
	NonStrikerID     string   `json:"non_striker_id" validate:"required"`
	RunsByBatter     int      `json:"runs_by_batter" validate:"gte=0"`
	Extras           int      `json:"extras" validate:"gte=0"`
	TotalRuns        int      `json:"total_runs" validate:"gte=0"`
	IsWicket         bool     `json:"is_wicket"`
	WicketType       string   `json:"wicket_type"`
	PlayerOutID      string   `json:"player_out_id,omitempty"`
	FieldersInvolved []string `json:"fielders_involved" validate:"dive,required"`
	IsWide           bool     `json:"is_wide"`
	IsNoBall         bool     `json:"is_no_ball"`
	IsLegBye         bool     `json:"is_leg_bye"`
	IsBye            bool     `json:"is_bye"`
	PenaltyRuns      int      `json:"penalty_runs" validate:"gte=0"`
}

// Repository describes delivery persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, d Delivery) (Delivery, error)
	ListByInnings(ctx context.Context, inningsID string) ([]Delivery, error)
	DeleteByInnings(ctx context.Context, inningsID string) (int64, error)
	DeleteByMatch(ctx context.Context, matchID string) (int64, error)
}
