package usecase

import (
	"fmt"
	"sync"
	"testing"

	"github.com/riskibarqy/cricket-stats/external/cricsheet"
	"github.com/riskibarqy/cricket-stats/internal/infrastructure/repository/document"
	"github.com/riskibarqy/cricket-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

type sequenceIDs struct {
	mu   sync.Mutex
	next int
}

func (g *sequenceIDs) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("id-%04d", g.next), nil
}

type harness struct {
	store      *memory.DocumentStore
	teams      *document.TeamRepository
	players    *document.PlayerRepository
	series     *document.SeriesRepository
	matches    *document.MatchRepository
	innings    *document.InningsRepository
	deliveries *document.DeliveryRepository
	scorecards *document.ScorecardRepository
	resolver   *EntityResolver
	builder    *MatchBuilder
	processor  *DeliveryProcessor
	summarizer *InningsSummarizer
	compiler   *ScorecardCompiler
	service    *IngestionService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	logger := logging.NewNop()
	store := memory.NewDocumentStore(&sequenceIDs{})
	h := &harness{
		store:      store,
		teams:      document.NewTeamRepository(store),
		players:    document.NewPlayerRepository(store),
		series:     document.NewSeriesRepository(store),
		matches:    document.NewMatchRepository(store),
		innings:    document.NewInningsRepository(store),
		deliveries: document.NewDeliveryRepository(store),
		scorecards: document.NewScorecardRepository(store),
	}
	h.resolver = NewEntityResolver(
		h.teams,
		h.players,
		document.NewUmpireRepository(store),
		document.NewStadiumRepository(store),
		h.series,
		ResolverCacheConfig{},
		logger,
	)
	h.builder = NewMatchBuilder(h.matches, h.innings, h.deliveries, h.scorecards, logger)
	h.processor = NewDeliveryProcessor(h.deliveries, logger)
	h.summarizer = NewInningsSummarizer(h.innings, logger)
	h.compiler = NewScorecardCompiler(h.scorecards, 2, logger)
	h.service = NewIngestionService(store, h.resolver, h.builder, h.processor, h.summarizer, h.compiler, logger)
	return h
}

// ball builds a delivery with no extras.
func ball(batter, bowler, nonStriker string, batterRuns int) cricsheet.Delivery {
	return cricsheet.Delivery{
		Batter:     batter,
		Bowler:     bowler,
		NonStriker: nonStriker,
		Runs:       cricsheet.Runs{Batter: batterRuns, Total: batterRuns},
	}
}

func intPtr(v int) *int {
	return &v
}

func wide(batter, bowler, nonStriker string, runs int) cricsheet.Delivery {
	d := ball(batter, bowler, nonStriker, 0)
	d.Runs.Extras = runs
	d.Runs.Total = runs
	d.Extras = &cricsheet.Extras{Wides: intPtr(runs)}
	return d
}

func byes(batter, bowler, nonStriker string, runs int) cricsheet.Delivery {
	d := ball(batter, bowler, nonStriker, 0)
	d.Runs.Extras = runs
	d.Runs.Total = runs
	d.Extras = &cricsheet.Extras{Byes: intPtr(runs)}
	return d
}

func dismissed(d cricsheet.Delivery, kind string, fielders ...string) cricsheet.Delivery {
	w := cricsheet.Wicket{PlayerOut: d.Batter, Kind: kind}
	for _, name := range fielders {
		w.Fielders = append(w.Fielders, cricsheet.Fielder{Name: name})
	}
	d.Wickets = []cricsheet.Wicket{w}
	return d
}

func repeatBall(n int, d cricsheet.Delivery) []cricsheet.Delivery {
	out := make([]cricsheet.Delivery, n)
	for i := range out {
		out[i] = d
	}
	return out
}

// processorFixture gives the processor an open innings and a roster with
// batters b1, b2 for team-bat and bowler w1 plus fielders f1, f2 for team-bowl.
type processorFixture struct {
	h     *harness
	scope InningsScope
	table *StatsTable
	tally *InningsTally
}

func newProcessorFixture(t *testing.T) processorFixture {
	t.Helper()

	h := newHarness(t)
	roster := NewRoster()
	roster.Add("b1", "p-b1", "team-bat")
	roster.Add("b2", "p-b2", "team-bat")
	roster.Add("w1", "p-w1", "team-bowl")
	roster.Add("w2", "p-w2", "team-bowl")
	roster.Add("f1", "p-f1", "team-bowl")
	roster.Add("f2", "p-f2", "team-bowl")

	tally, err := h.summarizer.Open(t.Context(), OpenInningsInput{
		MatchID:       "match-1",
		InningsNumber: 1,
		BattingTeamID: "team-bat",
		BowlingTeamID: "team-bowl",
	})
	if err != nil {
		t.Fatalf("open innings: %v", err)
	}

	return processorFixture{
		h: h,
		scope: InningsScope{
			MatchID:       "match-1",
			BattingTeamID: "team-bat",
			BowlingTeamID: "team-bowl",
			Roster:        roster,
		},
		table: NewStatsTable(),
		tally: tally,
	}
}

func (f processorFixture) run(t *testing.T, overs ...cricsheet.Over) {
	t.Helper()
	if err := f.h.processor.ProcessInnings(t.Context(), f.scope, f.table, f.tally, overs); err != nil {
		t.Fatalf("process innings: %v", err)
	}
}
