package usecase

type BattingTally struct {
	Runs             int
	Balls            int
	Fours            int
	Sixes            int
	DotBalls         int
	IsOut            bool
	DismissalType    string
	FieldersInvolved []string
}

type BowlingTally struct {
	BallsBowled   int
	Overs         float64
	Wickets       int
	RunsConceded  int
	Maidens       int
	DotBalls      int
	FoursConceded int
	SixesConceded int
	Economy       float64
}

type FieldingTally struct {
	Catches   int
	RunOuts   int
	Stumpings int
}

// PlayerStats is the running aggregate of one player in one match. A nil
// block means the player has not taken part in that discipline yet.
type PlayerStats struct {
	PlayerID string
	TeamID   string
	Batting  *BattingTally
	Bowling  *BowlingTally
	Fielding *FieldingTally
}

// StatsTable holds PlayerStats keyed by internal player id, in the order
// players first appeared. It belongs to a single ingestion run.
type StatsTable struct {
	order []string
	rows  map[string]*PlayerStats
}

func NewStatsTable() *StatsTable {
	return &StatsTable{rows: make(map[string]*PlayerStats)}
}

func (t *StatsTable) row(playerID, teamID string) *PlayerStats {
	if row, ok := t.rows[playerID]; ok {
		return row
	}
	row := &PlayerStats{PlayerID: playerID, TeamID: teamID}
	t.rows[playerID] = row
	t.order = append(t.order, playerID)
	return row
}

func (t *StatsTable) batting(playerID, teamID string) *BattingTally {
	row := t.row(playerID, teamID)
	if row.Batting == nil {
		row.Batting = &BattingTally{FieldersInvolved: []string{}}
	}
	return row.Batting
}

func (t *StatsTable) bowling(playerID, teamID string) *BowlingTally {
	row := t.row(playerID, teamID)
	if row.Bowling == nil {
		row.Bowling = &BowlingTally{}
	}
	return row.Bowling
}

func (t *StatsTable) fielding(playerID, teamID string) *FieldingTally {
	row := t.row(playerID, teamID)
	if row.Fielding == nil {
		row.Fielding = &FieldingTally{}
	}
	return row.Fielding
}

// Get returns the row of playerID, or nil.
func (t *StatsTable) Get(playerID string) *PlayerStats {
	return t.rows[playerID]
}

// Rows returns every row in first appearance order.
func (t *StatsTable) Rows() []*PlayerStats {
	out := make([]*PlayerStats, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *StatsTable) Len() int {
	return len(t.order)
}
