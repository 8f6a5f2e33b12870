package config

import (
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	OTLP    OTLPConfig
	Catalog CatalogConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string
	Host string
	// DurationMillisecondsMetric enables the extra http.server.request.duration.ms histogram
	DurationMillisecondsMetric bool
}

type OTLPConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
	Environment string
}

// CatalogConfig controls how the catalog is seeded at startup
type CatalogConfig struct {
	// File is an optional YAML or JSON catalog loaded first
	File string
	// SeedSize is the number of random sample shirts appended after File
	SeedSize int
	Seed     int64
}

type LogConfig struct {
	Level slog.Level
}

// Keys bound from the environment (and from command line flags where the CLI binds them)
const (
	KeyServerHost       = "SERVER_HOST"
	KeyServerPort       = "SERVER_PORT"
	KeyDurationMsMetric = "HTTP_DURATION_MS_METRIC"
	KeyOTLPEnabled      = "OTEL_ENABLED"
	KeyOTLPEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	KeyOTLPServiceName  = "OTEL_SERVICE_NAME"
	KeyOTLPEnvironment  = "OTEL_ENVIRONMENT"
	KeyCatalogFile      = "CATALOG_FILE"
	KeyCatalogSeedSize  = "CATALOG_SEED_SIZE"
	KeyCatalogSeed      = "CATALOG_SEED"
	KeyLogLevel         = "LOG_LEVEL"
)

const (
	defaultServiceName = "shirt-search-api"
	defaultCatalogSeed = 20240601
)

// New returns a viper instance reading configuration from the environment with defaults applied
func New() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault(KeyServerHost, "0.0.0.0")
	v.SetDefault(KeyServerPort, "8080")
	v.SetDefault(KeyDurationMsMetric, false)
	v.SetDefault(KeyOTLPEnabled, true)
	v.SetDefault(KeyOTLPEndpoint, "localhost:4317")
	v.SetDefault(KeyOTLPServiceName, defaultServiceName)
	v.SetDefault(KeyOTLPEnvironment, "development")
	v.SetDefault(KeyCatalogFile, "")
	v.SetDefault(KeyCatalogSeedSize, 0)
	v.SetDefault(KeyCatalogSeed, defaultCatalogSeed)
	v.SetDefault(KeyLogLevel, "info")

	return v
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return FromViper(New())
}

// FromViper builds a Config from an already populated viper instance
func FromViper(v *viper.Viper) *Config {
	seedSize := v.GetInt(KeyCatalogSeedSize)
	if seedSize < 0 {
		seedSize = 0
	}

	return &Config{
		Server: ServerConfig{
			Host:                       v.GetString(KeyServerHost),
			Port:                       v.GetString(KeyServerPort),
			DurationMillisecondsMetric: v.GetBool(KeyDurationMsMetric),
		},
		OTLP: OTLPConfig{
			Enabled:     v.GetBool(KeyOTLPEnabled),
			Endpoint:    v.GetString(KeyOTLPEndpoint),
			ServiceName: v.GetString(KeyOTLPServiceName),
			Environment: v.GetString(KeyOTLPEnvironment),
		},
		Catalog: CatalogConfig{
			File:     v.GetString(KeyCatalogFile),
			SeedSize: seedSize,
			Seed:     v.GetInt64(KeyCatalogSeed),
		},
		Log: LogConfig{
			Level: ParseLogLevel(v.GetString(KeyLogLevel)),
		},
	}
}

// ParseLogLevel maps a level name to a slog.Level, falling back to info
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		slog.Warn("Invalid LOG_LEVEL, using INFO", "value", level)
		return slog.LevelInfo
	}
}
