package usecase

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricket-stats/external/cricsheet"
	"github.com/riskibarqy/cricket-stats/internal/domain/series"
	"github.com/riskibarqy/cricket-stats/internal/platform/docstore"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// IngestResult summarizes one ingestion run.
type IngestResult struct {
	MatchID    string `json:"match_id"`
	Replaced   bool   `json:"replaced"`
	Innings    int    `json:"innings"`
	Deliveries int    `json:"deliveries"`
	Scorecards int    `json:"scorecards"`
}

// IngestionService runs one match feed end to end: resolve entities, replace
// any previous ingestion, walk every innings and write the scorecards.
type IngestionService struct {
	store      docstore.Store
	resolver   *EntityResolver
	builder    *MatchBuilder
	processor  *DeliveryProcessor
	summarizer *InningsSummarizer
	compiler   *ScorecardCompiler
	logger     *logging.Logger
}

func NewIngestionService(
	store docstore.Store,
	resolver *EntityResolver,
	builder *MatchBuilder,
	processor *DeliveryProcessor,
	summarizer *InningsSummarizer,
	compiler *ScorecardCompiler,
	logger *logging.Logger,
) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		store:      store,
		resolver:   resolver,
		builder:    builder,
		processor:  processor,
		summarizer: summarizer,
		compiler:   compiler,
		logger:     logger,
	}
}

func (s *IngestionService) IngestFile(ctx context.Context, path string) (IngestResult, error) {
	feed, err := cricsheet.LoadFile(path)
	if err != nil {
		if crerr.Is(err, cricsheet.ErrInvalidFeed) {
			return IngestResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return IngestResult{}, fmt.Errorf("load match feed: %w", err)
	}
	return s.IngestMatch(ctx, feed)
}

func (s *IngestionService) IngestMatch(ctx context.Context, feed cricsheet.Match) (IngestResult, error) {
	info := feed.Info
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestMatch",
		attribute.String("event.name", info.Event.Name),
		attribute.Int("event.match_number", info.Event.MatchNumber),
	)
	var err error
	defer func() { endSpan(span, err) }()

	refs, err := s.resolveRefs(ctx, feed)
	if err != nil {
		return IngestResult{}, err
	}

	m, err := s.builder.Build(info, refs)
	if err != nil {
		return IngestResult{}, fmt.Errorf("build match: %w", err)
	}

	result := IngestResult{}
	err = docstore.WithinTx(ctx, s.store, func(ctx context.Context) error {
		_, replaced, replaceErr := s.builder.ReplaceExisting(ctx, m.Key())
		if replaceErr != nil {
			return replaceErr
		}
		saved, saveErr := s.builder.Save(ctx, m)
		if saveErr != nil {
			return saveErr
		}
		m = saved
		result.Replaced = replaced
		return nil
	})
	if err != nil {
		return IngestResult{}, fmt.Errorf("replace match: %w", err)
	}
	result.MatchID = m.ID

	table := NewStatsTable()
	for i, in := range feed.Innings {
		battingTeamID := refs.Teams[in.Team]
		bowlingTeamID := m.Opponent(battingTeamID)

		tally, openErr := s.summarizer.Open(ctx, OpenInningsInput{
			MatchID:       m.ID,
			InningsNumber: i + 1,
			BattingTeamID: battingTeamID,
			BowlingTeamID: bowlingTeamID,
			IsSuperOver:   in.SuperOver,
		})
		if openErr != nil {
			err = openErr
			return result, err
		}

		scope := InningsScope{
			MatchID:       m.ID,
			BattingTeamID: battingTeamID,
			BowlingTeamID: bowlingTeamID,
			Roster:        refs.Roster,
		}
		if err = s.processor.ProcessInnings(ctx, scope, table, tally, in.Overs); err != nil {
			err = fmt.Errorf("process innings %d: %w", i+1, err)
			return result, err
		}
		if _, err = s.summarizer.Finalize(ctx, tally); err != nil {
			return result, err
		}
		result.Innings++
		result.Deliveries += tally.Deliveries
	}

	cards, err := s.compiler.Store(ctx, s.compiler.Compile(m.ID, table))
	if err != nil {
		return result, err
	}
	result.Scorecards = len(cards)

	s.logger.InfoContext(ctx, "match ingested",
		"match_id", result.MatchID,
		"event", info.Event.Name,
		"match_number", info.Event.MatchNumber,
		"replaced", result.Replaced,
		"innings", result.Innings,
		"deliveries", result.Deliveries,
		"scorecards", result.Scorecards,
	)
	return result, nil
}

// resolveRefs finds or creates every reference record the feed names: venue,
// series, teams with their squads, substitute fielders and officials.
func (s *IngestionService) resolveRefs(ctx context.Context, feed cricsheet.Match) (MatchRefs, error) {
	info := feed.Info
	people := info.Registry.People

	stadium, err := s.resolver.ResolveVenue(ctx, info.Venue, info.City)
	if err != nil {
		return MatchRefs{}, err
	}

	ser, err := s.resolver.ResolveSeries(ctx, series.Key{
		Name:      info.Event.Name,
		Season:    string(info.Season),
		Gender:    info.Gender,
		MatchType: info.MatchType,
	})
	if err != nil {
		return MatchRefs{}, err
	}

	refs := MatchRefs{
		SeriesID: ser.ID,
		VenueID:  stadium.ID,
		Teams:    make(map[string]string, len(info.Teams)),
		Squads:   make(map[string][]string, len(info.Teams)),
		Umpires:  make(map[string]string),
		Roster:   NewRoster(),
	}

	teamIDs := make([]string, 0, len(info.Teams))
	for _, name := range info.Teams {
		t, err := s.resolver.ResolveTeam(ctx, name, info.TeamType)
		if err != nil {
			return MatchRefs{}, err
		}
		refs.Teams[name] = t.ID
		teamIDs = append(teamIDs, t.ID)

		squad := make([]string, 0, len(info.Players[name]))
		for _, playerName := range info.Players[name] {
			p, err := s.resolver.ResolvePlayer(ctx, playerName, people[playerName], t.ID)
			if err != nil {
				return MatchRefs{}, err
			}
			refs.Roster.Add(playerName, p.ID, t.ID)
			squad = append(squad, p.ID)
		}
		refs.Squads[name] = squad
	}
	if err := s.resolver.EnrollSeriesTeams(ctx, &ser, teamIDs...); err != nil {
		return MatchRefs{}, err
	}

	if err := s.resolveSubstitutes(ctx, feed, refs); err != nil {
		return MatchRefs{}, err
	}

	categories := [][]string{
		info.Officials.Umpires,
		info.Officials.TVUmpires,
		info.Officials.ReserveUmpires,
		info.Officials.MatchReferees,
	}
	for _, names := range categories {
		for _, name := range names {
			if _, ok := refs.Umpires[name]; ok {
				continue
			}
			u, err := s.resolver.ResolveUmpire(ctx, name)
			if err != nil {
				return MatchRefs{}, err
			}
			refs.Umpires[name] = u.ID
		}
	}

	return refs, nil
}

// resolveSubstitutes adds fielders who are in the registry but in neither
// squad, as players of the fielding side. Fielders missing from the registry
// are left out and skipped when credits are handed out.
func (s *IngestionService) resolveSubstitutes(ctx context.Context, feed cricsheet.Match, refs MatchRefs) error {
	people := feed.Info.Registry.People
	for _, in := range feed.Innings {
		fieldingTeam := feed.Info.Opponent(in.Team)
		for _, over := range in.Overs {
			for _, d := range over.Deliveries {
				for _, w := range d.Wickets {
					for _, f := range w.Fielders {
						if f.Name == "" || refs.Roster.Has(f.Name) {
							continue
						}
						id, ok := people[f.Name]
						if !ok {
							continue
						}
						teamID := refs.Teams[fieldingTeam]
						p, err := s.resolver.ResolvePlayer(ctx, f.Name, id, teamID)
						if err != nil {
							return err
						}
						refs.Roster.Add(f.Name, p.ID, teamID)
						s.logger.DebugContext(ctx, "substitute fielder resolved", "player_id", p.ID, "name", f.Name)
					}
				}
			}
		}
	}
	return nil
}
