package cricsheet

import (
	"strings"
	"testing"

	crerr "github.com/cockroachdb/errors"
)

func TestLoadFile_TwoInnings(t *testing.T) {
	m, err := LoadFile("testdata/two_innings.json")
	if err != nil {
		t.Fatalf("load file: %v", err)
	}

	if m.Info.Season != "2024" {
		t.Fatalf("expected numeric season to decode as string, got %q", m.Info.Season)
	}
	if m.Info.Event.MatchNumber != 7 {
		t.Fatalf("unexpected match number: %d", m.Info.Event.MatchNumber)
	}
	if len(m.Innings) != 2 {
		t.Fatalf("expected 2 innings, got %d", len(m.Innings))
	}
	wicketBall := m.Innings[0].Overs[1].Deliveries[2]
	if !wicketBall.HasWicket() || wicketBall.Wickets[0].Kind != "caught" {
		t.Fatalf("expected caught wicket at 1.3, got %+v", wicketBall.Wickets)
	}
	if got := m.Info.SquadOf("B Keeper"); got != "Beta" {
		t.Fatalf("unexpected squad for B Keeper: %q", got)
	}
	if got := m.Info.Opponent("Alpha"); got != "Beta" {
		t.Fatalf("unexpected opponent: %q", got)
	}
}

func TestDelivery_ExtrasByKeyPresence(t *testing.T) {
	raw := `{"info":{"teams":["A","B"],"players":{"A":["a"],"B":["b"]},"venue":"V","event":{"name":"E"},"dates":["2024-01-01"],"season":"2023/24"},
	"innings":[{"team":"A","overs":[{"over":0,"deliveries":[
		{"batter":"a","bowler":"b","non_striker":"a2","runs":{"batter":0,"extras":1,"total":1},"extras":{"wides":1}},
		{"batter":"a","bowler":"b","non_striker":"a2","runs":{"batter":0,"extras":0,"total":0},"extras":{"legbyes":0}},
		{"batter":"a","bowler":"b","non_striker":"a2","runs":{"batter":0,"extras":5,"total":5},"extras":{"noballs":1,"penalty":4}},
		{"batter":"a","bowler":"b","non_striker":"a2","runs":{"batter":4,"extras":0,"total":4}}
	]}]}]}`

	m, err := Decode(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.Info.Season != "2023/24" {
		t.Fatalf("unexpected season: %q", m.Info.Season)
	}

	ds := m.Innings[0].Overs[0].Deliveries
	if !ds[0].IsWide() || ds[0].IsLegal() {
		t.Fatalf("expected wide to be flagged and illegal")
	}
	if !ds[1].IsLegBye() || !ds[1].IsLegal() {
		t.Fatalf("expected zero-valued legbyes key to set the flag")
	}
	if !ds[2].IsNoBall() || ds[2].PenaltyRuns() != 4 {
		t.Fatalf("expected no ball with 4 penalty runs")
	}
	if ds[3].IsWide() || ds[3].IsNoBall() || ds[3].IsBye() || ds[3].IsLegBye() || ds[3].PenaltyRuns() != 0 {
		t.Fatalf("expected clean delivery without extras")
	}
}

func TestDecode_RejectsInvalidFeeds(t *testing.T) {
	cases := map[string]string{
		"malformed json": `{"info":`,
		"one team":       `{"info":{"teams":["A"],"players":{"A":[]},"venue":"V","event":{"name":"E"},"dates":["2024-01-01"]}}`,
		"unknown innings team": `{"info":{"teams":["A","B"],"players":{"A":[],"B":[]},"venue":"V","event":{"name":"E"},"dates":["2024-01-01"]},
			"innings":[{"team":"C","overs":[]}]}`,
		"bad season": `{"info":{"teams":["A","B"],"players":{"A":[],"B":[]},"venue":"V","event":{"name":"E"},"dates":["2024-01-01"],"season":true}}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(raw))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !crerr.Is(err, ErrInvalidFeed) {
				t.Fatalf("expected ErrInvalidFeed, got %v", err)
			}
		})
	}
}
