package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-stats/external/cricsheet"
	"github.com/riskibarqy/cricket-stats/internal/domain/delivery"
	"github.com/riskibarqy/cricket-stats/internal/domain/innings"
	"github.com/riskibarqy/cricket-stats/internal/domain/match"
	"github.com/riskibarqy/cricket-stats/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
)

const feedDateLayout = "2006-01-02"

// MatchRefs are the resolved identities a match record is built from. Teams
// and Umpires map feed names to ids; Squads lists player ids per feed team
// name in squad order.
type MatchRefs struct {
	SeriesID string
	VenueID  string
	Teams    map[string]string
	Squads   map[string][]string
	Umpires  map[string]string
	Roster   *Roster
}

// CascadeResult counts what ReplaceExisting removed.
type CascadeResult struct {
	MatchID    string
	Innings    int64
	Deliveries int64
	Scorecards int64
}

type MatchBuilder struct {
	matches    match.Repository
	innings    innings.Repository
	deliveries delivery.Repository
	scorecards scorecard.Repository
	logger     *logging.Logger
}

func NewMatchBuilder(
	matches match.Repository,
	inningsRepo innings.Repository,
	deliveries delivery.Repository,
	scorecards scorecard.Repository,
	logger *logging.Logger,
) *MatchBuilder {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchBuilder{
		matches:    matches,
		innings:    inningsRepo,
		deliveries: deliveries,
		scorecards: scorecards,
		logger:     logger,
	}
}

// Build assembles the match aggregate from feed metadata and resolved refs.
// It does not touch the store.
func (b *MatchBuilder) Build(info cricsheet.Info, refs MatchRefs) (match.Match, error) {
	if len(info.Teams) != 2 {
		return match.Match{}, fmt.Errorf("%w: expected 2 teams, got %d", ErrInvalidInput, len(info.Teams))
	}

	squads := make([]match.TeamSquad, 0, 2)
	for _, name := range info.Teams {
		teamID, ok := refs.Teams[name]
		if !ok {
			return match.Match{}, fmt.Errorf("%w: %q", ErrUnknownTeam, name)
		}
		players := refs.Squads[name]
		if players == nil {
			players = []string{}
		}
		squads = append(squads, match.TeamSquad{TeamID: teamID, Players: players})
	}

	dates := make([]time.Time, 0, len(info.Dates))
	for _, raw := range info.Dates {
		d, err := time.Parse(feedDateLayout, strings.TrimSpace(raw))
		if err != nil {
			return match.Match{}, fmt.Errorf("%w: match date %q: %v", ErrInvalidInput, raw, err)
		}
		dates = append(dates, d)
	}

	toss, err := buildToss(info.Toss, refs.Teams)
	if err != nil {
		return match.Match{}, err
	}
	outcome, err := buildOutcome(info.Outcome, refs.Teams)
	if err != nil {
		return match.Match{}, err
	}

	m := match.Match{
		SeriesID:    refs.SeriesID,
		MatchNumber: info.Event.MatchNumber,
		Stage:       info.Event.Stage,
		Dates:       dates,
		VenueID:     refs.VenueID,
		Team1:       squads[0],
		Team2:       squads[1],
		Toss:        toss,
		Outcome:     outcome,
		Officials: match.Officials{
			Umpires:        umpireIDs(info.Officials.Umpires, refs.Umpires),
			TVUmpires:      umpireIDs(info.Officials.TVUmpires, refs.Umpires),
			ReserveUmpires: umpireIDs(info.Officials.ReserveUmpires, refs.Umpires),
			MatchReferees:  umpireIDs(info.Officials.MatchReferees, refs.Umpires),
		},
	}
	if len(info.PlayerOfMatch) > 0 && refs.Roster != nil {
		if id, ok := refs.Roster.PlayerID(info.PlayerOfMatch[0]); ok {
			m.PlayerOfMatch = id
		}
	}
	return m, nil
}

func buildToss(t cricsheet.Toss, teams map[string]string) (match.Toss, error) {
	teamID, ok := teams[t.Winner]
	if !ok {
		return match.Toss{}, fmt.Errorf("%w: toss winner %q", ErrUnknownTeam, t.Winner)
	}
	return match.Toss{TeamID: teamID, Decision: t.Decision}, nil
}

// buildOutcome lets a draw win over anything else the feed says. Ties and no
// results may carry no winner; every other outcome requires one.
func buildOutcome(o cricsheet.Outcome, teams map[string]string) (match.Outcome, error) {
	out := match.Outcome{
		ByRuns:    o.By.Runs,
		ByWickets: o.By.Wickets,
		ByInnings: o.By.Innings,
		Result:    o.Result,
		Method:    o.Method,
	}

	switch o.Result {
	case match.ResultDraw:
		out = match.Outcome{IsDraw: true, Result: o.Result, Method: o.Method}
	case match.ResultTie:
		if o.Eliminator != "" {
			id, ok := teams[o.Eliminator]
			if !ok {
				return match.Outcome{}, fmt.Errorf("%w: eliminator %q", ErrUnknownTeam, o.Eliminator)
			}
			out.WinnerID = id
			out.Eliminator = id
		}
	case match.ResultNoResult:
	default:
		id, ok := teams[o.Winner]
		if !ok {
			return match.Outcome{}, fmt.Errorf("%w: outcome winner %q", ErrUnknownTeam, o.Winner)
		}
		out.WinnerID = id
	}

	if err := out.Validate(); err != nil {
		return match.Outcome{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return out, nil
}

func umpireIDs(names []string, ids map[string]string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if id, ok := ids[name]; ok {
			out = append(out, id)
		}
	}
	return out
}

// ReplaceExisting removes a previous ingestion of the match identified by key.
// Children are removed before their parent, in this order: the
// deliveries of each innings, stray deliveries tagged with the match, the
// innings, the scorecards and finally the match itself.
func (b *MatchBuilder) ReplaceExisting(ctx context.Context, key match.Key) (CascadeResult, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchBuilder.ReplaceExisting")
	var err error
	defer func() { endSpan(span, err) }()

	existing, found, err := b.matches.FindByKey(ctx, key)
	if err != nil {
		return CascadeResult{}, false, fmt.Errorf("find existing match: %w", err)
	}
	if !found {
		return CascadeResult{}, false, nil
	}

	result := CascadeResult{MatchID: existing.ID}
	list, err := b.innings.ListByMatch(ctx, existing.ID)
	if err != nil {
		return result, true, fmt.Errorf("list innings of match %s: %w", existing.ID, err)
	}
	for _, in := range list {
		n, delErr := b.deliveries.DeleteByInnings(ctx, in.ID)
		if delErr != nil {
			err = delErr
			return result, true, fmt.Errorf("delete deliveries of innings %s: %w", in.ID, err)
		}
		result.Deliveries += n
	}

	n, err := b.deliveries.DeleteByMatch(ctx, existing.ID)
	if err != nil {
		return result, true, fmt.Errorf("delete deliveries of match %s: %w", existing.ID, err)
	}
	result.Deliveries += n

	if result.Innings, err = b.innings.DeleteByMatch(ctx, existing.ID); err != nil {
		return result, true, fmt.Errorf("delete innings of match %s: %w", existing.ID, err)
	}
	if result.Scorecards, err = b.scorecards.DeleteByMatch(ctx, existing.ID); err != nil {
		return result, true, fmt.Errorf("delete scorecards of match %s: %w", existing.ID, err)
	}
	if _, err = b.matches.DeleteByKey(ctx, key); err != nil {
		return result, true, fmt.Errorf("delete match %s: %w", existing.ID, err)
	}

	b.logger.InfoContext(ctx, "previous ingestion removed",
		"match_id", existing.ID,
		"innings", result.Innings,
		"deliveries", result.Deliveries,
		"scorecards", result.Scorecards,
	)
	return result, true, nil
}

// Save inserts m as a new record with a fresh identity.
func (b *MatchBuilder) Save(ctx context.Context, m match.Match) (match.Match, error) {
	m.ID = ""
	saved, err := b.matches.Create(ctx, m)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return saved, nil
}
