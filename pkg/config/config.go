// Package config provides configuration management for puyadb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: host, port, user, password, database, ssl_mode
//   - Seed: count, table, age_min, age_max, statuses, observations
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Seed.RandomSeed, Seed.WithProgress, Seed.DryRun
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use PUYADB_ prefix with underscores for nesting:
//
//	PUYADB_DATABASE_HOST=localhost
//	PUYADB_DATABASE_PORT=5432
//	PUYADB_SEED_COUNT=1536
//	PUYADB_LOG_LEVEL=info
//
// DB_HOST, DB_PORT, DB_USER, DB_PASSWORD and DB_NAME are accepted as
// well, so the same .env file serves the map backend and puyadb.
package config

import (
	"github.com/gnames/puyadb/pkg/puyas"
)

// Config represents the complete puyadb configuration.
type Config struct {
	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Seed contains settings of generated records.
	Seed SeedConfig `mapstructure:"seed" yaml:"seed"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// SeedConfig contains settings of the seed command.
type SeedConfig struct {
	// Count is the number of records to insert. Records get
	// conteopuyas_id values from 1 to Count.
	Count int `mapstructure:"count" yaml:"count"`

	// Table is the target table, optionally schema-qualified.
	Table string `mapstructure:"table" yaml:"table"`

	// AgeMin is the lowest estimated age (inclusive).
	AgeMin int `mapstructure:"age_min" yaml:"age_min"`

	// AgeMax is the highest estimated age (inclusive).
	AgeMax int `mapstructure:"age_max" yaml:"age_max"`

	// Statuses is the closed set of flowering statuses.
	Statuses []string `mapstructure:"statuses" yaml:"statuses"`

	// Observations is the closed set of field notes.
	Observations []string `mapstructure:"observations" yaml:"observations"`

	// RandomSeed makes generated values reproducible. Zero means
	// a new random sequence for every run.
	RandomSeed uint64 `mapstructure:"random_seed" yaml:"random_seed"`

	// WithProgress shows a progress bar during inserts.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`

	// DryRun prints generated records instead of inserting them.
	DryRun bool `mapstructure:"dry_run" yaml:"dry_run"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	opts := puyas.DefaultOptions()
	res := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "root",
			Password: "postgres",
			Database: "comanche_db",
			SSLMode:  "disable",
		},
		Seed: SeedConfig{
			Count:        puyas.DefaultCount,
			Table:        "public.puyas_info",
			AgeMin:       opts.AgeMin,
			AgeMax:       opts.AgeMax,
			Statuses:     opts.Statuses,
			Observations: opts.Observations,
			WithProgress: true,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

// GeneratorOptions returns the value space of generated records.
func (c *Config) GeneratorOptions() puyas.Options {
	return puyas.Options{
		AgeMin:       c.Seed.AgeMin,
		AgeMax:       c.Seed.AgeMax,
		Statuses:     c.Seed.Statuses,
		Observations: c.Seed.Observations,
	}
}
