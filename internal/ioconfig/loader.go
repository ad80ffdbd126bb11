// Package ioconfig provides I/O operations for loading configuration
// from config.yaml and environment variables.
// This is an impure package that handles file system access.
package ioconfig

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/gnames/puyadb/internal/iofs"
	"github.com/gnames/puyadb/pkg/config"
	"github.com/spf13/viper"
)

// Load reads configuration from a YAML file at cfgPath and from
// environment variables. A missing file is not an error, defaults and
// environment are used instead. Values that do not pass validation
// are ignored with a warning, so the result is always a valid Config.
func Load(cfgPath string) (*config.Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	initEnvVars(v)

	if cfgPath != "" {
		if _, err := os.Stat(cfgPath); err == nil {
			v.SetConfigFile(cfgPath)
			if err = v.ReadInConfig(); err != nil {
				return nil, iofs.ReadFileError(cfgPath, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, iofs.ReadFileError(cfgPath, err)
		}
	}

	var raw config.Config
	if err := v.Unmarshal(&raw); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	res := config.New()
	res.Update(raw.ToOptions())
	return res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	// DB_* names are shared with the map backend .env file.
	v.SetEnvPrefix("PUYADB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.host", "PUYADB_DATABASE_HOST", "DB_HOST")
	v.BindEnv("database.port", "PUYADB_DATABASE_PORT", "DB_PORT")
	v.BindEnv("database.user", "PUYADB_DATABASE_USER", "DB_USER")
	v.BindEnv("database.password", "PUYADB_DATABASE_PASSWORD", "DB_PASSWORD")
	v.BindEnv("database.database", "PUYADB_DATABASE_DATABASE", "DB_NAME")
	v.BindEnv("database.ssl_mode", "PUYADB_DATABASE_SSL_MODE")

	// Seed configuration
	v.BindEnv("seed.count", "PUYADB_SEED_COUNT")
	v.BindEnv("seed.table", "PUYADB_SEED_TABLE")
	v.BindEnv("seed.age_min", "PUYADB_SEED_AGE_MIN")
	v.BindEnv("seed.age_max", "PUYADB_SEED_AGE_MAX")

	// Log configuration
	v.BindEnv("log.level", "PUYADB_LOG_LEVEL")
	v.BindEnv("log.format", "PUYADB_LOG_FORMAT")
	v.BindEnv("log.destination", "PUYADB_LOG_DESTINATION")

	v.AutomaticEnv()
}
