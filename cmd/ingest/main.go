// Command ingest loads one ball-by-ball match file into the document store.
//
// Usage:
//
//	cricket-ingest path/to/match.json
//
// Configuration comes from the environment, optionally seeded by a .env file
// in the working directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/cricket-stats/internal/app"
	"github.com/riskibarqy/cricket-stats/internal/config"
	"github.com/riskibarqy/cricket-stats/internal/observability"
	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load(".env")

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "cricket-ingest <match.json>",
		Short:         "Ingest one ball-by-ball cricket match",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "load config: %v\n", err)
				return err
			}
			return run(cmd, cfg, args[0])
		},
	}
}

func run(cmd *cobra.Command, cfg config.Config, path string) (err error) {
	logger := logging.New(cfg.AppEnv == config.EnvDev, cfg.LogLevel).With("service", cfg.ServiceName)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()
	defer func() {
		if err != nil {
			logger.Error("ingestion failed", "path", path, "error", err)
		}
	}()

	shutdownTracing := observability.InitUptrace(cfg, logger)
	defer flush(logger, "uptrace", shutdownTracing)

	stopProfiling, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return err
	}
	defer flush(logger, "pyroscope", stopProfiling)

	application, err := app.New(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := application.Close(); closeErr != nil {
			logger.Warn("close app", "error", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.IngestTimeout)
	defer cancel()

	start := time.Now()
	result, err := application.Ingestion.IngestFile(ctx, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"ingested %s: match %s, %d innings, %d deliveries, %d scorecards (replaced=%t) in %s\n",
		path,
		result.MatchID,
		result.Innings,
		result.Deliveries,
		result.Scorecards,
		result.Replaced,
		time.Since(start).Round(time.Millisecond),
	)
	return nil
}

func flush(logger *logging.Logger, name string, shutdown observability.Shutdown) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logger.Warn("telemetry shutdown failed", "component", name, "error", err)
	}
}
