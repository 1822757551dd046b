package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"buddyverse/internal/platform/config"
)

const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds server command configuration.
type Config struct {
	HTTPAddr       string        `env:"BUDDY_HTTP_ADDR" envDefault:":8080"`
	Storage        string        `env:"BUDDY_STORAGE" envDefault:"sqlite"`
	DBPath         string        `env:"BUDDY_DB_PATH" envDefault:"data/buddy.db"`
	DBDSN          string        `env:"BUDDY_DB_DSN"`
	MigrationsDir  string        `env:"BUDDY_MIGRATIONS_DIR" envDefault:"db/migrations/postgres"`
	DecayInterval  time.Duration `env:"BUDDY_DECAY_INTERVAL" envDefault:"1m"`
	DefaultName    string        `env:"BUDDY_DEFAULT_NAME" envDefault:"Buddy"`
	AdventuresFile string        `env:"BUDDY_ADVENTURES_FILE"`
	CORSOrigin     string        `env:"BUDDY_CORS_ORIGIN"`

	// Tracing is exported only when enabled and an endpoint is set.
	OTELEnabled     bool    `env:"BUDDY_OTEL_ENABLED" envDefault:"true"`
	OTELEndpoint    string  `env:"BUDDY_OTEL_ENDPOINT"`
	OTELSampleRatio float64 `env:"BUDDY_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage backend: sqlite, postgres or memory")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.DBDSN, "db-dsn", cfg.DBDSN, "Postgres DSN")
	fs.StringVar(&cfg.MigrationsDir, "migrations-dir", cfg.MigrationsDir, "Postgres SQL migrations directory")
	fs.DurationVar(&cfg.DecayInterval, "decay-interval", cfg.DecayInterval, "Passive decay tick interval")
	fs.StringVar(&cfg.DefaultName, "default-name", cfg.DefaultName, "Name given to a first-run buddy")
	fs.StringVar(&cfg.AdventuresFile, "adventures-file", cfg.AdventuresFile, "Optional JSON adventure catalog")
	fs.StringVar(&cfg.CORSOrigin, "cors-origin", cfg.CORSOrigin, "Allowed browser origin (empty allows any)")
	fs.BoolVar(&cfg.OTELEnabled, "otel-enabled", cfg.OTELEnabled, "Export traces when an endpoint is set")
	fs.StringVar(&cfg.OTELEndpoint, "otel-endpoint", cfg.OTELEndpoint, "OTLP/HTTP collector URL")
	fs.Float64Var(&cfg.OTELSampleRatio, "otel-sample-ratio", cfg.OTELSampleRatio, "Fraction of root spans to keep")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage {
	case StorageSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return errors.New("db path is required for sqlite storage")
		}
	case StoragePostgres:
		if strings.TrimSpace(c.DBDSN) == "" {
			return errors.New("BUDDY_DB_DSN is required for postgres storage")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.DecayInterval <= 0 {
		return fmt.Errorf("decay interval must be positive, got %s", c.DecayInterval)
	}
	if c.OTELSampleRatio < 0 || c.OTELSampleRatio > 1 {
		return fmt.Errorf("otel sample ratio must be within [0, 1], got %v", c.OTELSampleRatio)
	}
	return nil
}
