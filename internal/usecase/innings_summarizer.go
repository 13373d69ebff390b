package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/cricket-stats/external/cricsheet"
	"github.com/riskibarqy/cricket-stats/internal/domain/innings"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

const ballsPerOver = 6

type OpenInningsInput struct {
	MatchID       string
	InningsNumber int
	BattingTeamID string
	BowlingTeamID string
	IsSuperOver   bool
}

// InningsTally accumulates the totals of one open innings.
type InningsTally struct {
	Record      innings.Innings
	TotalRuns   int
	Wickets     int
	OversPlayed float64
	Deliveries  int
}

// record counts one delivery toward the innings totals.
func (t *InningsTally) record(d cricsheet.Delivery) {
	t.TotalRuns += d.Runs.Total
	t.Wickets += len(d.Wickets)
	t.Deliveries++
}

// closeOver advances overs played after the over at overIndex. A full over
// moves to the next whole number, a short one leaves the decimal notation.
func (t *InningsTally) closeOver(overIndex, legalBalls int) {
	if legalBalls >= ballsPerOver {
		t.OversPlayed = float64(overIndex) + 1.0
		return
	}
	t.OversPlayed = float64(overIndex) + float64(legalBalls)/10
}

// InningsSummarizer opens an innings record with zero totals and writes the
// final totals back once, after its last over.
type InningsSummarizer struct {
	innings innings.Repository
	logger  *logging.Logger
}

func NewInningsSummarizer(repo innings.Repository, logger *logging.Logger) *InningsSummarizer {
	if logger == nil {
		logger = logging.Default()
	}
	return &InningsSummarizer{innings: repo, logger: logger}
}

func (s *InningsSummarizer) Open(ctx context.Context, input OpenInningsInput) (*InningsTally, error) {
	record, err := s.innings.Create(ctx, innings.Innings{
		MatchID:       input.MatchID,
		InningsNumber: input.InningsNumber,
		BattingTeamID: input.BattingTeamID,
		BowlingTeamID: input.BowlingTeamID,
		IsSuperOver:   input.IsSuperOver,
	})
	if err != nil {
		return nil, fmt.Errorf("create innings %d: %w", input.InningsNumber, err)
	}
	return &InningsTally{Record: record}, nil
}

func (s *InningsSummarizer) Finalize(ctx context.Context, tally *InningsTally) (innings.Innings, error) {
	totals := innings.Totals{
		TotalRuns:   tally.TotalRuns,
		WicketsLost: tally.Wickets,
		OversPlayed: tally.OversPlayed,
	}
	if err := s.innings.Finalize(ctx, tally.Record.ID, totals); err != nil {
		return innings.Innings{}, fmt.Errorf("finalize innings %d: %w", tally.Record.InningsNumber, err)
	}

	out := tally.Record
	out.TotalRuns = totals.TotalRuns
	out.WicketsLost = totals.WicketsLost
	out.OversPlayed = totals.OversPlayed

	s.logger.InfoContext(ctx, "innings finalized",
		"innings_id", out.ID,
		"innings_number", out.InningsNumber,
		"total_runs", out.TotalRuns,
		"wickets_lost", out.WicketsLost,
		"overs_played", out.OversPlayed,
	)
	return out, nil
}
