package scorecard

const (
	DismissalCaught  = "caught"
	DismissalRunOut  = "run out"
	DismissalStumped = "stumped"
)

type BattingStats struct {
	RunsScored       int      `json:"runs_scored" validate:"gte=0"`
	BallsFaced       int      `json:"balls_faced" validate:"gte=0"`
	Fours            int      `json:"fours" validate:"gte=0"`
	Sixes            int      `json:"sixes" validate:"gte=0"`
	DotBalls         int      `json:"dot_balls" validate:"gte=0"`
	StrikeRate       float64  `json:"strike_rate" validate:"gte=0"`
	IsOut            bool     `json:"is_out"`
	DismissalType    string   `json:"dismissal_type"`
	FieldersInvolved []string `json:"fielders_involved" validate:"dive,required"`
}

type Boundaries struct {
	Fours int `json:"fours" validate:"gte=0"`
	Sixes int `json:"sixes" validate:"gte=0"`
}

type BowlingStats struct {
	BallsBowled        int        `json:"balls_bowled" validate:"gte=0"`
	OversBowled        float64    `json:"overs_bowled" validate:"gte=0"`
	WicketsTaken       int        `json:"wickets_taken" validate:"gte=0"`
	RunsConceded       int        `json:"runs_conceded" validate:"gte=0"`
	Maidens            int        `json:"maidens" validate:"gte=0"`
	DotBalls           int        `json:"dot_balls" validate:"gte=0"`
	Economy            float64    `json:"economy" validate:"gte=0"`
	BoundariesConceded Boundaries `json:"boundaries_conceded"`
}

type FieldingStats struct {
	CatchesTaken int `json:"catches_taken" validate:"gte=0"`
	RunOuts      int `json:"run_outs" validate:"gte=0"`
	Stumpings    int `json:"stumpings" validate:"gte=0"`
}

// PlayerScorecard is the final per player, per match aggregate. A block is
// nil when the player took no part in that discipline.
type PlayerScorecard struct {
	ID            string         `json:"-"`
	PlayerID      string         `json:"player_id" validate:"required"`
	MatchID       string         `json:"match_id" validate:"required"`
	TeamID        string         `json:"team_id"`
	BattingStats  *BattingStats  `json:"batting_stats,omitempty"`
	BowlingStats  *BowlingStats  `json:"bowling_stats,omitempty"`
	FieldingStats *FieldingStats `json:"fielding_stats,omitempty"`
}

// DecimalOvers renders legal balls as whole overs plus remaining balls in
// tenths: 17 balls is 2.5.
func DecimalOvers(balls int) float64 {
	if balls <= 0 {
		return 0
	}
	return float64(balls/6) + float64(balls%6)/10
}

func StrikeRate(runs, balls int) float64 {
	if balls <= 0 {
		return 0
	}
	return float64(runs) / float64(balls) * 100
}

// Economy divides by the decimal overs value, not by true overs.
func Economy(runsConceded int, oversBowled float64) float64 {
	if oversBowled <= 0 {
		return 0
	}
	return float64(runsConceded) / oversBowled
}
