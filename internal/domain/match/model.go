package match

import (
	"fmt"
	"time"
)

const (
	TossBat   = "bat"
	TossField = "field"
)

// TeamSquad is one side of a match: the team and the players it fielded.
type TeamSquad struct {
	TeamID  string   `json:"team_id" validate:"required"`
	Players []string `json:"players" validate:"dive,required"`
}

func (s TeamSquad) Has(playerID string) bool {
	for _, id := range s.Players {
		if id == playerID {
			return true
		}
	}
	return false
}

// Officials lists umpire ids per category. Every category is a non-nil slice.
type Officials struct {
	Umpires        []string `json:"umpires" validate:"dive,required"`
	TVUmpires      []string `json:"tv_umpires" validate:"dive,required"`
	ReserveUmpires []string `json:"reserve_umpires" validate:"dive,required"`
	MatchReferees  []string `json:"match_referees" validate:"dive,required"`
}

type Toss struct {
	TeamID   string `json:"team_id" validate:"required"`
	Decision string `json:"decision" validate:"oneof=bat field"`
}

const (
	ResultDraw     = "draw"
	ResultTie      = "tie"
	ResultNoResult = "no result"
)

// Outcome is how a match ended. A decided match has a winner and at most one
// of ByRuns or ByWickets set; a draw has neither.
type Outcome struct {
	WinnerID   string `json:"winner_id"`
	ByRuns     int    `json:"by_runs" validate:"gte=0"`
	ByWickets  int    `json:"by_wickets" validate:"gte=0"`
	ByInnings  int    `json:"by_innings" validate:"gte=0"`
	IsDraw     bool   `json:"is_draw"`
	Result     string `json:"result"`
	Method     string `json:"method"`
	Eliminator string `json:"eliminator,omitempty"`
}

func (o Outcome) Validate() error {
	if o.IsDraw {
		if o.WinnerID != "" || o.ByRuns > 0 || o.ByWickets > 0 {
			return fmt.Errorf("drawn outcome cannot carry a winner or margin")
		}
		return nil
	}
	if o.ByRuns > 0 && o.ByWickets > 0 {
		return fmt.Errorf("outcome margin must be by runs or by wickets, not both")
	}
	if o.Result == ResultTie || o.Result == ResultNoResult {
		return nil
	}
	if o.WinnerID == "" {
		return fmt.Errorf("outcome winner is required")
	}
	if o.ByRuns == 0 && o.ByWickets == 0 && o.Method == "" {
		return fmt.Errorf("outcome margin is required")
	}
	return nil
}

// Match is the match level aggregate. Its Key is unique; re-ingesting a match replaces it and every record hanging off it.
type Match struct {
	ID            string      `json:"-"`
	SeriesID      string      `json:"series_id" validate:"required"`
	MatchNumber   int         `json:"match_number" validate:"gte=0"`
	Stage         string      `json:"stage"`
	Dates         []time.Time `json:"dates" validate:"min=1"`
	VenueID       string      `json:"venue_id" validate:"required"`
	Team1         TeamSquad   `json:"team_1"`
	Team2         TeamSquad   `json:"team_2"`
	Toss          Toss        `json:"toss"`
	Outcome       Outcome     `json:"outcome"`
	Officials     Officials   `json:"officials"`
	PlayerOfMatch string      `json:"player_of_match_id,omitempty"`
}

// Squad returns the side of teamID.
func (m Match) Squad(teamID string) (TeamSquad, bool) {
	switch teamID {
	case m.Team1.TeamID:
		return m.Team1, true
	case m.Team2.TeamID:
		return m.Team2, true
	default:
		return TeamSquad{}, false
	}
}

// Opponent returns the team facing teamID.
func (m Match) Opponent(teamID string) string {
	switch teamID {
	case m.Team1.TeamID:
		return m.Team2.TeamID
	case m.Team2.TeamID:
		return m.Team1.TeamID
	default:
		return ""
	}
}
