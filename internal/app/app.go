package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/cricket-stats/internal/config"
	"github.com/riskibarqy/cricket-stats/internal/infrastructure/repository/document"
	"github.com/riskibarqy/cricket-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/cricket-stats/internal/platform/docstore"
	idgen "github.com/riskibarqy/cricket-stats/internal/platform/id"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"github.com/riskibarqy/cricket-stats/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// App holds the wired ingestion pipeline and the resources it owns.
type App struct {
	Ingestion *usecase.IngestionService
	Store     docstore.Store

	db *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store, db, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("document store ready", "driver", cfg.StoreDriver)

	teams := document.NewTeamRepository(store)
	players := document.NewPlayerRepository(store)
	umpires := document.NewUmpireRepository(store)
	stadiums := document.NewStadiumRepository(store)
	seriesRepo := document.NewSeriesRepository(store)
	matches := document.NewMatchRepository(store)
	inningsRepo := document.NewInningsRepository(store)
	deliveries := document.NewDeliveryRepository(store)
	scorecards := document.NewScorecardRepository(store)

	resolver := usecase.NewEntityResolver(
		teams,
		players,
		umpires,
		stadiums,
		seriesRepo,
		usecase.ResolverCacheConfig{
			Enabled: cfg.ResolverCacheEnabled,
			TTL:     cfg.ResolverCacheTTL,
		},
		logger.Named("resolver"),
	)
	builder := usecase.NewMatchBuilder(matches, inningsRepo, deliveries, scorecards, logger.Named("match"))
	processor := usecase.NewDeliveryProcessor(deliveries, logger.Named("delivery"))
	summarizer := usecase.NewInningsSummarizer(inningsRepo, logger.Named("innings"))
	compiler := usecase.NewScorecardCompiler(scorecards, cfg.ScorecardWorkers, logger.Named("scorecard"))

	return &App{
		Ingestion: usecase.NewIngestionService(store, resolver, builder, processor, summarizer, compiler, logger),
		Store:     store,
		db:        db,
	}, nil
}

// Close releases the database pool, if any.
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func openStore(cfg config.Config) (docstore.Store, *sqlx.DB, error) {
	ids := idgen.NewUUIDGenerator()

	switch cfg.StoreDriver {
	case config.StoreMemory:
		return memory.NewDocumentStore(ids), nil, nil
	case config.StorePostgres:
		dsn := PostgresDSN(cfg)
		db, err := otelsqlx.Open("postgres", dsn,
			otelsql.WithDBName(dbNameFromDSN(dsn)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(cfg.DBMaxOpenConns)
		db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
		return postgres.NewDocumentStore(db, ids), db, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

// PostgresDSN is the connection string every postgres client of the service
// uses, including the migration runner.
func PostgresDSN(cfg config.Config) string {
	return postgresDSN(cfg.DBURL, cfg.ServiceName, cfg.DBDisablePreparedBinary)
}
