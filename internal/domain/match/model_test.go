package match

import "testing"

func TestOutcome_Validate(t *testing.T) {
	cases := []struct {
		name    string
		outcome Outcome
		wantErr bool
	}{
		{name: "won by runs", outcome: Outcome{WinnerID: "t1", ByRuns: 140}},
		{name: "won by wickets", outcome: Outcome{WinnerID: "t2", ByWickets: 5}},
		{name: "draw", outcome: Outcome{IsDraw: true, Result: ResultDraw}},
		{name: "tie without winner", outcome: Outcome{Result: ResultTie}},
		{name: "awarded", outcome: Outcome{WinnerID: "t1", Method: "Awarded"}},
		{name: "missing winner", outcome: Outcome{ByRuns: 10}, wantErr: true},
		{name: "missing margin", outcome: Outcome{WinnerID: "t1"}, wantErr: true},
		{name: "both margins", outcome: Outcome{WinnerID: "t1", ByRuns: 3, ByWickets: 2}, wantErr: true},
		{name: "draw with winner", outcome: Outcome{IsDraw: true, WinnerID: "t1"}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.outcome.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestMatch_SquadAndOpponent(t *testing.T) {
	m := Match{
		Team1: TeamSquad{TeamID: "t1", Players: []string{"p1"}},
		Team2: TeamSquad{TeamID: "t2", Players: []string{"p2"}},
	}

	squad, ok := m.Squad("t2")
	if !ok || !squad.Has("p2") || squad.Has("p1") {
		t.Fatalf("unexpected squad: %+v", squad)
	}
	if m.Opponent("t1") != "t2" || m.Opponent("t2") != "t1" || m.Opponent("x") != "" {
		t.Fatalf("unexpected opponent mapping")
	}
}

func TestMatch_KeyIgnoresStageOfNumberedMatches(t *testing.T) {
	numbered := Match{SeriesID: "s-1", MatchNumber: 5, Stage: "Qualifier 1"}
	if got := numbered.Key(); got != (Key{SeriesID: "s-1", MatchNumber: 5}) {
		t.Fatalf("unexpected key for numbered match: %+v", got)
	}

	final := Match{SeriesID: "s-1", Stage: "Final"}
	if got := final.Key(); got != (Key{SeriesID: "s-1", Stage: "Final"}) {
		t.Fatalf("unexpected key for unnumbered match: %+v", got)
	}
}
