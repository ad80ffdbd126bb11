// Package puyadb seeds the puyas_info observation table of a PostgreSQL
// database with synthetic records.
package puyadb

var (
	// Version of puyadb, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
