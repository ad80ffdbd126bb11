package config

import (
	"slices"
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptSeedCount sets the number of records to insert.
func OptSeedCount(i int) Option {
	return func(c *Config) {
		if isValidInt("Seed Count", i) {
			c.Seed.Count = i
		}
	}
}

// OptSeedTable sets the target table, for example "public.puyas_info".
func OptSeedTable(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidTable("Seed Table", s) {
			c.Seed.Table = s
		}
	}
}

// OptSeedAgeRange sets inclusive bounds of the estimated age.
// Both bounds are set together so the range is never reversed.
func OptSeedAgeRange(lo, hi int) Option {
	return func(c *Config) {
		if isValidRange("Seed Age Range", lo, hi) {
			c.Seed.AgeMin = lo
			c.Seed.AgeMax = hi
		}
	}
}

// OptSeedStatuses sets the closed set of flowering statuses.
// Blank entries are dropped.
func OptSeedStatuses(ss []string) Option {
	ss = cleanList(ss)
	return func(c *Config) {
		if isValidList("Seed Statuses", ss) {
			c.Seed.Statuses = ss
		}
	}
}

// OptSeedObservations sets the closed set of field notes.
// Blank entries are dropped.
func OptSeedObservations(ss []string) Option {
	ss = cleanList(ss)
	return func(c *Config) {
		if isValidList("Seed Observations", ss) {
			c.Seed.Observations = ss
		}
	}
}

// OptSeedRandomSeed fixes the random sequence of generated values.
// Runtime-only field - not in ToOptions().
func OptSeedRandomSeed(i uint64) Option {
	return func(c *Config) {
		c.Seed.RandomSeed = i
	}
}

// OptSeedWithProgress toggles the progress bar.
// Runtime-only field - not in ToOptions().
func OptSeedWithProgress(b bool) Option {
	return func(c *Config) {
		c.Seed.WithProgress = b
	}
}

// OptSeedDryRun makes the seed command print records instead of
// inserting them.
// Runtime-only field - not in ToOptions().
func OptSeedDryRun(b bool) Option {
	return func(c *Config) {
		c.Seed.DryRun = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

func cleanList(ss []string) []string {
	res := make([]string, 0, len(ss))
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v != "" && !slices.Contains(res, v) {
			res = append(res, v)
		}
	}
	return res
}
