package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/cricket-stats/external/cricsheet"
	"github.com/riskibarqy/cricket-stats/internal/domain/delivery"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

// InningsScope is what the processor needs to know about the innings being
// walked.
type InningsScope struct {
	MatchID       string
	BattingTeamID string
	BowlingTeamID string
	Roster        *Roster
}

// DeliveryProcessor walks an innings ball by ball, folding every delivery into
// the stats table and persisting it. Deliveries must be applied in feed order.
type DeliveryProcessor struct {
	deliveries delivery.Repository
	logger     *logging.Logger
}

func NewDeliveryProcessor(repo delivery.Repository, logger *logging.Logger) *DeliveryProcessor {
	if logger == nil {
		logger = logging.Default()
	}
	return &DeliveryProcessor{deliveries: repo, logger: logger}
}

func (p *DeliveryProcessor) ProcessInnings(ctx context.Context, scope InningsScope, table *StatsTable, tally *InningsTally, overs []cricsheet.Over) error {
	for overIndex, over := range overs {
		if err := p.processOver(ctx, scope, table, tally, over); err != nil {
			return err
		}
		tally.closeOver(overIndex, legalBalls(over.Deliveries))
	}
	return nil
}

func (p *DeliveryProcessor) processOver(ctx context.Context, scope InningsScope, table *StatsTable, tally *InningsTally, over cricsheet.Over) error {
	for i, d := range over.Deliveries {
		number := i + 1

		record, err := p.apply(ctx, scope, table, d)
		if err != nil {
			return fmt.Errorf("over %d delivery %d: %w", over.Over, number, err)
		}
		tally.record(d)

		record.MatchID = scope.MatchID
		record.InningsID = tally.Record.ID
		record.OverNumber = over.Over
		record.DeliveryNumber = number
		if _, err := p.deliveries.Create(ctx, record); err != nil {
			return fmt.Errorf("store delivery %d.%d: %w", over.Over, number, err)
		}

		// The sum runs over the whole delivery list, so only overs listed with
		// exactly six entries are ever checked.
		if number == ballsPerOver && len(over.Deliveries) == ballsPerOver && overRuns(over.Deliveries) == 0 {
			table.bowling(record.BowlerID, scope.BowlingTeamID).Maidens++
		}
	}
	return nil
}

// apply folds d into the stats table and returns the delivery record without
// its position fields.
func (p *DeliveryProcessor) apply(ctx context.Context, scope InningsScope, table *StatsTable, d cricsheet.Delivery) (delivery.Delivery, error) {
	batterID, err := p.lookup(scope, d.Batter)
	if err != nil {
		return delivery.Delivery{}, err
	}
	nonStrikerID, err := p.lookup(scope, d.NonStriker)
	if err != nil {
		return delivery.Delivery{}, err
	}
	bowlerID, err := p.lookup(scope, d.Bowler)
	if err != nil {
		return delivery.Delivery{}, err
	}

	bat := table.batting(batterID, scope.BattingTeamID)
	table.batting(nonStrikerID, scope.BattingTeamID)
	bowl := table.bowling(bowlerID, scope.BowlingTeamID)

	if d.IsLegal() {
		bat.Balls++
		bowl.BallsBowled++
	}

	if !d.IsBye() && !d.IsLegBye() {
		bat.Runs += d.Runs.Batter
		bowl.RunsConceded += d.Runs.Total
	}

	switch d.Runs.Batter {
	case 0:
		bat.DotBalls++
	case 4:
		bat.Fours++
		bowl.FoursConceded++
	case 6:
		bat.Sixes++
		bowl.SixesConceded++
	}
	if d.Runs.Total == 0 {
		bowl.DotBalls++
	}

	record := delivery.Delivery{
		BatterID:         batterID,
		BowlerID:         bowlerID,
		NonStrikerID:     nonStrikerID,
		RunsByBatter:     d.Runs.Batter,
		Extras:           d.Runs.Extras,
		TotalRuns:        d.Runs.Total,
		FieldersInvolved: []string{},
		IsWide:           d.IsWide(),
		IsNoBall:         d.IsNoBall(),
		IsLegBye:         d.IsLegBye(),
		IsBye:            d.IsBye(),
		PenaltyRuns:      d.PenaltyRuns(),
	}

	if d.HasWicket() {
		bowl.Wickets += len(d.Wickets)

		dismissal := d.Wickets[0]
		outID := batterID
		if id, ok := scope.Roster.PlayerID(dismissal.PlayerOut); ok {
			outID = id
		}
		fielders := p.creditFielders(ctx, scope, table, dismissal)

		out := table.batting(outID, scope.BattingTeamID)
		out.IsOut = true
		out.DismissalType = dismissal.Kind
		out.FieldersInvolved = fielders

		record.IsWicket = true
		record.WicketType = dismissal.Kind
		record.PlayerOutID = outID
		record.FieldersInvolved = fielders
	}

	bowl.Overs = scorecard.DecimalOvers(bowl.BallsBowled)
	bowl.Economy = scorecard.Economy(bowl.RunsConceded, bowl.Overs)

	return record, nil
}

// creditFielders resolves the named fielders of a dismissal and credits each
// of them by dismissal kind. Unknown fielders are logged and skipped.
func (p *DeliveryProcessor) creditFielders(ctx context.Context, scope InningsScope, table *StatsTable, w cricsheet.Wicket) []string {
	ids := make([]string, 0, len(w.Fielders))
	for _, f := range w.Fielders {
		if f.Name == "" {
			continue
		}
		id, ok := scope.Roster.PlayerID(f.Name)
		if !ok {
			p.logger.WarnContext(ctx, "fielder not in roster, skipping credit",
				"fielder", f.Name,
				"dismissal", w.Kind,
				"match_id", scope.MatchID,
			)
			continue
		}
		ids = append(ids, id)

		switch w.Kind {
		case scorecard.DismissalCaught:
			table.fielding(id, scope.BowlingTeamID).Catches++
		case scorecard.DismissalRunOut:
			table.fielding(id, scope.BowlingTeamID).RunOuts++
		case scorecard.DismissalStumped:
			table.fielding(id, scope.BowlingTeamID).Stumpings++
		}
	}
	return ids
}

func (p *DeliveryProcessor) lookup(scope InningsScope, name string) (string, error) {
	id, ok := scope.Roster.PlayerID(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	return id, nil
}

func legalBalls(deliveries []cricsheet.Delivery) int {
	n := 0
	for _, d := range deliveries {
		if d.IsLegal() {
			n++
		}
	}
	return n
}

func overRuns(deliveries []cricsheet.Delivery) int {
	total := 0
	for _, d := range deliveries {
		total += d.Runs.Total
	}
	return total
}
