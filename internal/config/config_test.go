package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("DB_URL", "")
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected dev env by default, got %q", cfg.AppEnv)
	}
	if cfg.StoreDriver != StorePostgres || cfg.DBURL == "" {
		t.Fatalf("expected postgres with a local url by default, got %q %q", cfg.StoreDriver, cfg.DBURL)
	}
	if cfg.IngestTimeout != 5*time.Minute {
		t.Fatalf("unexpected IngestTimeout: %s", cfg.IngestTimeout)
	}
	if !cfg.ResolverCacheEnabled || cfg.ResolverCacheTTL != 10*time.Minute {
		t.Fatalf("unexpected resolver cache config: enabled=%v ttl=%s", cfg.ResolverCacheEnabled, cfg.ResolverCacheTTL)
	}
	if cfg.ScorecardWorkers != 4 || cfg.DBMaxOpenConns != 8 {
		t.Fatalf("unexpected pool sizes: workers=%d conns=%d", cfg.ScorecardWorkers, cfg.DBMaxOpenConns)
	}
	if cfg.LogLevel.String() != "info" {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel.String())
	}
}

func TestLoad_StoreDriver(t *testing.T) {
	t.Run("memory needs no url", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("STORE_DRIVER", "Memory")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StoreDriver != StoreMemory {
			t.Fatalf("expected memory driver, got %q", cfg.StoreDriver)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("STORE_DRIVER", "mongo")

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown STORE_DRIVER")
		}
	})
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-other=1, uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "cricket-ingest-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "cricket-ingest-test" {
		t.Fatalf("unexpected PyroscopeAppName: %q", cfg.PyroscopeAppName)
	}
	if cfg.PyroscopeUploadRate != 15*time.Second {
		t.Fatalf("unexpected PyroscopeUploadRate: %s", cfg.PyroscopeUploadRate)
	}
}

func TestLoad_NumericBounds(t *testing.T) {
	cases := map[string]string{
		"SCORECARD_WORKERS":      "0",
		"DB_MAX_OPEN_CONNS":      "-1",
		"INGEST_TIMEOUT":         "0s",
		"RESOLVER_CACHE_TTL":     "-5m",
		"DB_CONN_MAX_LIFETIME":   "soon",
		"RESOLVER_CACHE_ENABLED": "maybe",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(key, value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoad_OverridesParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("APP_LOG_LEVEL", "warning")
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "false")
	t.Setenv("RESOLVER_CACHE_ENABLED", "false")
	t.Setenv("SCORECARD_WORKERS", "16")
	t.Setenv("INGEST_TIMEOUT", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvProd || cfg.LogLevel.String() != "warn" {
		t.Fatalf("unexpected env or level: %q %s", cfg.AppEnv, cfg.LogLevel.String())
	}
	if cfg.DBDisablePreparedBinary {
		t.Fatalf("expected DBDisablePreparedBinary=false")
	}
	if cfg.ResolverCacheEnabled {
		t.Fatalf("expected ResolverCacheEnabled=false")
	}
	if cfg.ScorecardWorkers != 16 || cfg.IngestTimeout != 90*time.Second {
		t.Fatalf("unexpected overrides: workers=%d timeout=%s", cfg.ScorecardWorkers, cfg.IngestTimeout)
	}
}
