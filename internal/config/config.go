// Package config loads charforge settings from the environment.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/charforge/internal/errors"
)

// Character store backends
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// Catalog sources
const (
	CatalogStatic   = "static"
	CatalogDND5eAPI = "dnd5eapi"
)

// Config holds every setting the server reads from the environment
type Config struct {
	GRPCPort  int    `env:"GRPC_PORT" envDefault:"50051"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	RedisEndpoint  string        `env:"REDIS_ENDPOINT" envDefault:"localhost:6379"`
	DraftTTL       time.Duration `env:"DRAFT_TTL" envDefault:"24h"`
	DiceSessionTTL time.Duration `env:"DICE_SESSION_TTL" envDefault:"15m"`

	CharacterStore string `env:"CHARACTER_STORE" envDefault:"sqlite"`
	SQLitePath     string `env:"SQLITE_PATH" envDefault:"charforge.db"`

	CatalogSource    string        `env:"CATALOG_SOURCE" envDefault:"static"`
	DND5eBaseURL     string        `env:"DND5E_BASE_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	DND5eHTTPTimeout time.Duration `env:"DND5E_HTTP_TIMEOUT" envDefault:"30s"`
	DND5eCacheTTL    time.Duration `env:"DND5E_CACHE_TTL" envDefault:"24h"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"charforge"`
}

// Load parses the environment into a validated Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("LOG_LEVEL", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("LOG_FORMAT", strings.ToLower(c.LogFormat), []string{"text", "json"}, vb)
	errors.ValidateEnum("CHARACTER_STORE", c.CharacterStore, []string{StoreSQLite, StoreRedis}, vb)
	errors.ValidateEnum("CATALOG_SOURCE", c.CatalogSource, []string{CatalogStatic, CatalogDND5eAPI}, vb)
	errors.ValidateRequired("REDIS_ENDPOINT", c.RedisEndpoint, vb)

	if c.CharacterStore == StoreSQLite {
		errors.ValidateRequired("SQLITE_PATH", c.SQLitePath, vb)
	}
	if c.CatalogSource == CatalogDND5eAPI {
		errors.ValidateRequired("DND5E_BASE_URL", c.DND5eBaseURL, vb)
	}
	if c.DraftTTL <= 0 {
		vb.Field("DRAFT_TTL", "must be positive")
	}
	if c.DiceSessionTTL <= 0 {
		vb.Field("DICE_SESSION_TTL", "must be positive")
	}

	return vb.Build()
}

// SlogLevel maps LOG_LEVEL onto a slog level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
