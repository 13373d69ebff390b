package cricsheet

import (
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

// Match is one ball-by-ball match document.
type Match struct {
	Meta    Meta      `json:"meta"`
	Info    Info      `json:"info"`
	Innings []Innings `json:"innings"`
}

type Meta struct {
	DataVersion string `json:"data_version"`
	Created     string `json:"created"`
	Revision    int    `json:"revision"`
}

type Info struct {
	BallsPerOver  int                 `json:"balls_per_over"`
	City          string              `json:"city"`
	Dates         []string            `json:"dates"`
	Event         Event               `json:"event"`
	Gender        string              `json:"gender"`
	MatchType     string              `json:"match_type"`
	Officials     Officials           `json:"officials"`
	Outcome       Outcome             `json:"outcome"`
	Overs         int                 `json:"overs"`
	PlayerOfMatch []string            `json:"player_of_match"`
	Players       map[string][]string `json:"players"`
	Registry      Registry            `json:"registry"`
	Season        Season              `json:"season"`
	TeamType      string              `json:"team_type"`
	Teams         []string            `json:"teams"`
	Toss          Toss                `json:"toss"`
	Venue         string              `json:"venue"`
}

type Event struct {
	Name        string `json:"name"`
	MatchNumber int    `json:"match_number"`
	Stage       string `json:"stage"`
	Group       string `json:"group"`
}

type Officials struct {
	MatchReferees  []string `json:"match_referees"`
	ReserveUmpires []string `json:"reserve_umpires"`
	TVUmpires      []string `json:"tv_umpires"`
	Umpires        []string `json:"umpires"`
}

type Outcome struct {
	Winner     string `json:"winner"`
	By         Margin `json:"by"`
	Result     string `json:"result"`
	Method     string `json:"method"`
	Eliminator string `json:"eliminator"`
}

type Margin struct {
	Runs    int `json:"runs"`
	Wickets int `json:"wickets"`
	Innings int `json:"innings"`
}

type Toss struct {
	Winner   string `json:"winner"`
	Decision string `json:"decision"`
}

type Registry struct {
	People map[string]string `json:"people"`
}

// Season is encoded either as a string ("2007/08") or a bare year (2019).
type Season string

func (s *Season) UnmarshalJSON(raw []byte) error {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		*s = ""
		return nil
	}
	if strings.HasPrefix(text, `"`) {
		var value string
		if err := sonic.Unmarshal(raw, &value); err != nil {
			return crerr.Wrap(err, "decode season")
		}
		*s = Season(value)
		return nil
	}
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return crerr.Newf("decode season: unexpected value %s", text)
	}
	*s = Season(text)
	return nil
}

type Innings struct {
	Team        string `json:"team"`
	Overs       []Over `json:"overs"`
	SuperOver   bool   `json:"super_over"`
	Declared    bool   `json:"declared"`
	Forfeited   bool   `json:"forfeited"`
	PenaltyRuns struct {
		Pre  int `json:"pre"`
		Post int `json:"post"`
	} `json:"penalty_runs"`
}

type Over struct {
	Over       int        `json:"over"`
	Deliveries []Delivery `json:"deliveries"`
}

type Delivery struct {
	Batter     string   `json:"batter"`
	Bowler     string   `json:"bowler"`
	NonStriker string   `json:"non_striker"`
	Runs       Runs     `json:"runs"`
	Extras     *Extras  `json:"extras"`
	Wickets    []Wicket `json:"wickets"`
}

type Runs struct {
	Batter      int  `json:"batter"`
	Extras      int  `json:"extras"`
	Total       int  `json:"total"`
	NonBoundary bool `json:"non_boundary"`
}

// Extras flags are keyed on presence: a present key marks the delivery even
// when its value is zero.
type Extras struct {
	Wides   *int `json:"wides"`
	NoBalls *int `json:"noballs"`
	LegByes *int `json:"legbyes"`
	Byes    *int `json:"byes"`
	Penalty *int `json:"penalty"`
}

type Wicket struct {
	PlayerOut string    `json:"player_out"`
	Kind      string    `json:"kind"`
	Fielders  []Fielder `json:"fielders"`
}

type Fielder struct {
	Name       string `json:"name"`
	Substitute bool   `json:"substitute"`
}

func (d Delivery) IsWide() bool   { return d.Extras != nil && d.Extras.Wides != nil }
func (d Delivery) IsNoBall() bool { return d.Extras != nil && d.Extras.NoBalls != nil }
func (d Delivery) IsLegBye() bool { return d.Extras != nil && d.Extras.LegByes != nil }
func (d Delivery) IsBye() bool    { return d.Extras != nil && d.Extras.Byes != nil }

func (d Delivery) PenaltyRuns() int {
	if d.Extras == nil || d.Extras.Penalty == nil {
		return 0
	}
	return *d.Extras.Penalty
}

// IsLegal reports whether the ball counts toward the over.
func (d Delivery) IsLegal() bool {
	return !d.IsWide() && !d.IsNoBall()
}

func (d Delivery) HasWicket() bool {
	return len(d.Wickets) > 0
}
