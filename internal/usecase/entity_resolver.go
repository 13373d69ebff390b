package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricket-stats/internal/domain/player"
	"github.com/riskibarqy/cricket-stats/internal/domain/series"
	"github.com/riskibarqy/cricket-stats/internal/domain/team"
	"github.com/riskibarqy/cricket-stats/internal/domain/umpire"
	"github.com/riskibarqy/cricket-stats/internal/domain/venue"
	"github.com/riskibarqy/cricket-stats/internal/platform/cache"
	"github.com/riskibarqy/cricket-stats/internal/platform/docstore"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

type ResolverCacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// EntityResolver finds or creates the reference records a match points at.
// Teams, umpires and stadiums never change after creation and are memoized;
// players and series are always read because ingestion mutates them.
type EntityResolver struct {
	teams   team.Repository
	players player.Repository
	umpires umpire.Repository
	venues  venue.Repository
	series  series.Repository
	logger  *logging.Logger

	teamCache   *cache.Store[team.Team]
	umpireCache *cache.Store[umpire.Umpire]
	venueCache  *cache.Store[venue.Stadium]
}

func NewEntityResolver(
	teams team.Repository,
	players player.Repository,
	umpires umpire.Repository,
	venues venue.Repository,
	seriesRepo series.Repository,
	cacheCfg ResolverCacheConfig,
	logger *logging.Logger,
) *EntityResolver {
	if logger == nil {
		logger = logging.Default()
	}
	r := &EntityResolver{
		teams:   teams,
		players: players,
		umpires: umpires,
		venues:  venues,
		series:  seriesRepo,
		logger:  logger,
	}
	if cacheCfg.Enabled {
		r.teamCache = cache.NewStore[team.Team](cacheCfg.TTL)
		r.umpireCache = cache.NewStore[umpire.Umpire](cacheCfg.TTL)
		r.venueCache = cache.NewStore[venue.Stadium](cacheCfg.TTL)
	}
	return r
}

// findOrCreate reads by natural key, inserts when absent and falls back to a
// second read when the insert loses a race on the uniqueness constraint.
func findOrCreate[T any](
	ctx context.Context,
	find func(context.Context) (T, bool, error),
	create func(context.Context) (T, error),
) (T, bool, error) {
	found, ok, err := find(ctx)
	if err != nil || ok {
		return found, false, err
	}

	created, err := create(ctx)
	if err == nil {
		return created, true, nil
	}
	if !crerr.Is(err, docstore.ErrDuplicate) {
		return created, false, err
	}

	found, ok, findErr := find(ctx)
	if findErr != nil {
		return found, false, findErr
	}
	if !ok {
		return found, false, err
	}
	return found, false, nil
}

func (r *EntityResolver) ResolveTeam(ctx context.Context, name, teamType string) (team.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	return r.teamCache.GetOrLoad(ctx, cache.Key(name, teamType), func(ctx context.Context) (team.Team, error) {
		t, created, err := findOrCreate(ctx,
			func(ctx context.Context) (team.Team, bool, error) { return r.teams.FindByNaturalKey(ctx, name, teamType) },
			func(ctx context.Context) (team.Team, error) { return r.teams.Create(ctx, team.New(name, teamType)) },
		)
		if err != nil {
			return team.Team{}, fmt.Errorf("resolve team %q: %w", name, err)
		}
		if created {
			r.logger.DebugContext(ctx, "team created", "team_id", t.ID, "name", name, "team_type", teamType)
		}
		return t, nil
	})
}

// ResolvePlayer returns the player registered under cricSheetID and makes sure
// teamID is among its teams.
func (r *EntityResolver) ResolvePlayer(ctx context.Context, name, cricSheetID, teamID string) (_ player.Player, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EntityResolver.ResolvePlayer", attribute.String("player.name", name))
	defer func() { endSpan(span, err) }()

	name = strings.TrimSpace(name)
	cricSheetID = strings.TrimSpace(cricSheetID)
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if cricSheetID == "" {
		return player.Player{}, fmt.Errorf("%w: %q is missing from the match registry", ErrUnknownPlayer, name)
	}

	p, created, err := findOrCreate(ctx,
		func(ctx context.Context) (player.Player, bool, error) {
			return r.players.FindByCricSheetID(ctx, cricSheetID)
		},
		func(ctx context.Context) (player.Player, error) {
			return r.players.Create(ctx, player.Player{
				Name:        name,
				FullName:    name,
				CricSheetID: cricSheetID,
				Teams:       []string{teamID},
			})
		},
	)
	if err != nil {
		return player.Player{}, fmt.Errorf("resolve player %q: %w", name, err)
	}
	if created {
		return p, nil
	}

	if p.AddTeam(teamID) {
		if err := r.players.UpdateTeams(ctx, p.ID, p.Teams); err != nil {
			return player.Player{}, fmt.Errorf("add team to player %q: %w", name, err)
		}
		r.logger.DebugContext(ctx, "player joined team", "player_id", p.ID, "team_id", teamID)
	}
	return p, nil
}

func (r *EntityResolver) ResolveUmpire(ctx context.Context, name string) (umpire.Umpire, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return umpire.Umpire{}, fmt.Errorf("%w: umpire name is required", ErrInvalidInput)
	}

	return r.umpireCache.GetOrLoad(ctx, cache.Key(name), func(ctx context.Context) (umpire.Umpire, error) {
		u, _, err := findOrCreate(ctx,
			func(ctx context.Context) (umpire.Umpire, bool, error) { return r.umpires.FindByName(ctx, name) },
			func(ctx context.Context) (umpire.Umpire, error) {
				return r.umpires.Create(ctx, umpire.Umpire{Name: name, FullName: name})
			},
		)
		if err != nil {
			return umpire.Umpire{}, fmt.Errorf("resolve umpire %q: %w", name, err)
		}
		return u, nil
	})
}

// ResolveVenue keys stadiums on the part of the raw venue before the first
// comma together with the city.
func (r *EntityResolver) ResolveVenue(ctx context.Context, rawVenue, city string) (venue.Stadium, error) {
	name, locality := venue.SplitName(rawVenue)
	city = strings.TrimSpace(city)
	if name == "" {
		return venue.Stadium{}, fmt.Errorf("%w: venue name is required", ErrInvalidInput)
	}

	return r.venueCache.GetOrLoad(ctx, cache.Key(name, city), func(ctx context.Context) (venue.Stadium, error) {
		s, _, err := findOrCreate(ctx,
			func(ctx context.Context) (venue.Stadium, bool, error) { return r.venues.FindByNaturalKey(ctx, name, city) },
			func(ctx context.Context) (venue.Stadium, error) {
				return r.venues.Create(ctx, venue.Stadium{Name: name, City: city, Locality: locality})
			},
		)
		if err != nil {
			return venue.Stadium{}, fmt.Errorf("resolve venue %q: %w", name, err)
		}
		return s, nil
	})
}

func (r *EntityResolver) ResolveSeries(ctx context.Context, key series.Key) (series.Series, error) {
	if strings.TrimSpace(key.Name) == "" {
		return series.Series{}, fmt.Errorf("%w: series name is required", ErrInvalidInput)
	}

	s, _, err := findOrCreate(ctx,
		func(ctx context.Context) (series.Series, bool, error) { return r.series.FindByKey(ctx, key) },
		func(ctx context.Context) (series.Series, error) { return r.series.Create(ctx, series.New(key)) },
	)
	if err != nil {
		return series.Series{}, fmt.Errorf("resolve series %q: %w", key.Name, err)
	}
	return s, nil
}

// EnrollSeriesTeams adds teamIDs to s and persists the set when it grew.
func (r *EntityResolver) EnrollSeriesTeams(ctx context.Context, s *series.Series, teamIDs ...string) error {
	changed := false
	for _, id := range teamIDs {
		if s.AddTeam(id) {
			changed = true
		}
	}
	if !changed {
		return nil
	}
	if err := r.series.UpdateTeams(ctx, s.ID, s.Teams); err != nil {
		return fmt.Errorf("update series teams: %w", err)
	}
	return nil
}
