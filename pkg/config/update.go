package config

import (
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/puyadb/pkg/puyas"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, RandomSeed, WithProgress, DryRun).
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int
	s = c.Database.Host
	if s != "" {
		res = append(res, OptDatabaseHost(s))
	}
	i = c.Database.Port
	if i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	s = c.Database.User
	if s != "" {
		res = append(res, OptDatabaseUser(s))
	}
	s = c.Database.Password
	if s != "" {
		res = append(res, OptDatabasePassword(s))
	}
	s = c.Database.Database
	if s != "" {
		res = append(res, OptDatabaseDatabase(s))
	}
	s = c.Database.SSLMode
	if s != "" {
		res = append(res, OptDatabaseSSLMode(s))
	}

	i = c.Seed.Count
	if i > 0 {
		res = append(res, OptSeedCount(i))
	}
	s = c.Seed.Table
	if s != "" {
		res = append(res, OptSeedTable(s))
	}
	if lo, hi, ok := ageBounds(c.Seed.AgeMin, c.Seed.AgeMax); ok {
		res = append(res, OptSeedAgeRange(lo, hi))
	}
	if len(c.Seed.Statuses) > 0 {
		res = append(res, OptSeedStatuses(c.Seed.Statuses))
	}
	if len(c.Seed.Observations) > 0 {
		res = append(res, OptSeedObservations(c.Seed.Observations))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

// ageBounds fills a missing (zero) age bound with its default. A
// zero minimum stays zero if the default minimum is above the given
// maximum.
func ageBounds(lo, hi int) (int, int, bool) {
	if lo == 0 && hi == 0 {
		return 0, 0, false
	}
	if hi == 0 {
		hi = max(puyas.DefaultAgeMax, lo)
	}
	if lo == 0 && puyas.DefaultAgeMin <= hi {
		lo = puyas.DefaultAgeMin
	}
	return lo, hi, true
}

var identRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// SplitTable splits an optionally schema-qualified table name into
// identifier parts. It returns nil if the name is not a plain SQL
// identifier or a schema.table pair.
func SplitTable(s string) []string {
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return nil
	}
	for _, v := range parts {
		if !identRe.MatchString(v) {
			return nil
		}
	}
	return parts
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidRange(name string, lo, hi int) bool {
	res := lo >= 0 && lo <= hi && hi-lo < math.MaxInt
	if !res {
		gn.Warn(
			"<em>%s</em> needs 0 <= min <= max < %d, ignoring %d..%d",
			name, math.MaxInt, lo, hi,
		)
	}
	return res
}

func isValidList(name string, ss []string) bool {
	res := len(ss) > 0
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidTable(name, s string) bool {
	res := SplitTable(s) != nil
	if !res {
		gn.Warn(
			"<em>%s</em> has to be 'table' or 'schema.table', ignoring '%s'",
			name, s,
		)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Database.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
