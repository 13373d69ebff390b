package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

const defaultScorecardWorkers = 4

// ScorecardCompiler turns the running stats table into one scorecard per
// player and writes them.
type ScorecardCompiler struct {
	scorecards scorecard.Repository
	workers    int
	logger     *logging.Logger
}

func NewScorecardCompiler(repo scorecard.Repository, workers int, logger *logging.Logger) *ScorecardCompiler {
	if workers <= 0 {
		workers = defaultScorecardWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ScorecardCompiler{scorecards: repo, workers: workers, logger: logger}
}

// Compile derives the final rates of every player in table. Only the blocks a
// player took part in are set.
func (c *ScorecardCompiler) Compile(matchID string, table *StatsTable) []scorecard.PlayerScorecard {
	rows := table.Rows()
	cards := make([]scorecard.PlayerScorecard, 0, len(rows))
	for _, row := range rows {
		card := scorecard.PlayerScorecard{
			PlayerID: row.PlayerID,
			MatchID:  matchID,
			TeamID:   row.TeamID,
		}

		if bat := row.Batting; bat != nil {
			fielders := bat.FieldersInvolved
			if fielders == nil {
				fielders = []string{}
			}
			card.BattingStats = &scorecard.BattingStats{
				RunsScored:       bat.Runs,
				BallsFaced:       bat.Balls,
				Fours:            bat.Fours,
				Sixes:            bat.Sixes,
				DotBalls:         bat.DotBalls,
				StrikeRate:       scorecard.StrikeRate(bat.Runs, bat.Balls),
				IsOut:            bat.IsOut,
				DismissalType:    bat.DismissalType,
				FieldersInvolved: fielders,
			}
		}

		if bowl := row.Bowling; bowl != nil {
			overs := scorecard.DecimalOvers(bowl.BallsBowled)
			card.BowlingStats = &scorecard.BowlingStats{
				BallsBowled:  bowl.BallsBowled,
				OversBowled:  overs,
				WicketsTaken: bowl.Wickets,
				RunsConceded: bowl.RunsConceded,
				Maidens:      bowl.Maidens,
				DotBalls:     bowl.DotBalls,
				Economy:      scorecard.Economy(bowl.RunsConceded, overs),
				BoundariesConceded: scorecard.Boundaries{
					Fours: bowl.FoursConceded,
					Sixes: bowl.SixesConceded,
				},
			}
		}

		if field := row.Fielding; field != nil {
			card.FieldingStats = &scorecard.FieldingStats{
				CatchesTaken: field.Catches,
				RunOuts:      field.RunOuts,
				Stumpings:    field.Stumpings,
			}
		}

		cards = append(cards, card)
	}
	return cards
}

// Store inserts cards through a bounded worker pool. The returned slice keeps
// the input order; the first failure is returned once every write finished.
func (c *ScorecardCompiler) Store(ctx context.Context, cards []scorecard.PlayerScorecard) ([]scorecard.PlayerScorecard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorecardCompiler.Store")
	var err error
	defer func() { endSpan(span, err) }()

	if len(cards) == 0 {
		return nil, nil
	}

	workers := c.workers
	if workers > len(cards) {
		workers = len(cards)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create scorecard pool: %w", err)
	}
	defer pool.Release()

	stored := make([]scorecard.PlayerScorecard, len(cards))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i := range cards {
		i := i
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			card, writeErr := c.scorecards.Create(ctx, cards[i])
			if writeErr != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("store scorecard for player %s: %w", cards[i].PlayerID, writeErr)
				}
				mu.Unlock()
				return
			}
			stored[i] = card
		}); submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit scorecard write: %w", submitErr)
			}
			mu.Unlock()
		}
	}
	wg.Wait()

	if firstErr != nil {
		err = firstErr
		return nil, err
	}

	c.logger.DebugContext(ctx, "scorecards stored", "count", len(stored), "workers", workers)
	return stored, nil
}
