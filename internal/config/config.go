package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/suomipoikas/poikas-stats/internal/platform/logging"
)

// Config stores runtime configuration for the stats pipeline.
type Config struct {
	AppEnv           string
	ServiceName      string
	DataFile         string
	HistoricalFiles  []string
	ImageHost        string
	AggregateWorkers int
	LoaderWorkers    int
	CacheEnabled     bool
	CacheTTL         time.Duration
	LogLevel         logging.Level
	LogFormat        string
}

const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	aggregateWorkers, err := getEnvAsInt("AGGREGATE_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse AGGREGATE_WORKERS: %w", err)
	}
	if aggregateWorkers <= 0 {
		return Config{}, fmt.Errorf("AGGREGATE_WORKERS must be > 0")
	}

	loaderWorkers, err := getEnvAsInt("LOADER_WORKERS", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse LOADER_WORKERS: %w", err)
	}
	if loaderWorkers <= 0 {
		return Config{}, fmt.Errorf("LOADER_WORKERS must be > 0")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL < 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be >= 0")
	}

	logFormatDefault := LogFormatConsole
	if appEnv != EnvDev {
		logFormatDefault = LogFormatJSON
	}
	logFormat, err := parseLogFormat(getEnv("APP_LOG_FORMAT", logFormatDefault))
	if err != nil {
		return Config{}, err
	}

	dataFile := strings.TrimSpace(getEnv("DATA_FILE", ""))
	historicalFiles := splitCSV(getEnv("HISTORICAL_FILES", ""))
	if dataFile == "" && len(historicalFiles) > 0 {
		return Config{}, fmt.Errorf("DATA_FILE is required when HISTORICAL_FILES is set")
	}

	return Config{
		AppEnv:           appEnv,
		ServiceName:      getEnv("APP_SERVICE_NAME", "poikas-stats"),
		DataFile:         dataFile,
		HistoricalFiles:  historicalFiles,
		ImageHost:        strings.TrimSpace(getEnv("IMAGE_HOST", "/images")),
		AggregateWorkers: aggregateWorkers,
		LoaderWorkers:    loaderWorkers,
		CacheEnabled:     cacheEnabled,
		CacheTTL:         cacheTTL,
		LogLevel:         parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:        logFormat,
	}, nil
}

// UsesSeed reports whether no data file is configured, in which case the
// built-in sample club is served.
func (c Config) UsesSeed() bool {
	return c.DataFile == ""
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseLogFormat(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case LogFormatJSON, LogFormatConsole:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_LOG_FORMAT %q: valid values are %s, %s", v, LogFormatJSON, LogFormatConsole)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
