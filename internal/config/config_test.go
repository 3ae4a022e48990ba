package config

import (
	"reflect"
	"testing"
	"time"

	"github.com/suomipoikas/poikas-stats/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "APP_SERVICE_NAME", "APP_LOG_LEVEL", "APP_LOG_FORMAT", "DATA_FILE", "HISTORICAL_FILES",
		"IMAGE_HOST", "AGGREGATE_WORKERS", "LOADER_WORKERS", "CACHE_ENABLED", "CACHE_TTL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev || cfg.ServiceName != "poikas-stats" {
		t.Fatalf("unexpected identity: env=%q service=%q", cfg.AppEnv, cfg.ServiceName)
	}
	if !cfg.UsesSeed() {
		t.Fatalf("expected seed data without DATA_FILE")
	}
	if cfg.AggregateWorkers != 4 || cfg.LoaderWorkers != 2 {
		t.Fatalf("unexpected workers: aggregate=%d loader=%d", cfg.AggregateWorkers, cfg.LoaderWorkers)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 0 {
		t.Fatalf("unexpected cache config: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.ImageHost != "/images" {
		t.Fatalf("unexpected image host: %q", cfg.ImageHost)
	}
	if cfg.LogLevel != logging.LevelInfo || cfg.LogFormat != LogFormatConsole {
		t.Fatalf("unexpected logging config: level=%s format=%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoad_DataSources(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("APP_LOG_FORMAT", "")
	t.Setenv("DATA_FILE", " data/poikas.json ")
	t.Setenv("HISTORICAL_FILES", "data/rec.json, ,data/c.json")
	t.Setenv("AGGREGATE_WORKERS", "1")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_TTL", "10m")
	t.Setenv("APP_LOG_LEVEL", "warning")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DataFile != "data/poikas.json" || cfg.UsesSeed() {
		t.Fatalf("unexpected data file: %q", cfg.DataFile)
	}
	if want := []string{"data/rec.json", "data/c.json"}; !reflect.DeepEqual(cfg.HistoricalFiles, want) {
		t.Fatalf("unexpected historical files: %v", cfg.HistoricalFiles)
	}
	if cfg.AggregateWorkers != 1 || cfg.CacheEnabled || cfg.CacheTTL != 10*time.Minute {
		t.Fatalf("unexpected tuning: %+v", cfg)
	}
	if cfg.LogLevel != logging.LevelWarn || cfg.LogFormat != LogFormatJSON {
		t.Fatalf("unexpected logging config: level=%s format=%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric workers", key: "AGGREGATE_WORKERS", value: "many"},
		{name: "zero workers", key: "AGGREGATE_WORKERS", value: "0"},
		{name: "negative loader workers", key: "LOADER_WORKERS", value: "-2"},
		{name: "bad cache flag", key: "CACHE_ENABLED", value: "sometimes"},
		{name: "negative ttl", key: "CACHE_TTL", value: "-1s"},
		{name: "unknown log format", key: "APP_LOG_FORMAT", value: "xml"},
		{name: "historical without data file", key: "HISTORICAL_FILES", value: "rec.json"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("DATA_FILE", "")
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}
