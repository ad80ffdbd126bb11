// Package seed defines the contract of the component that fills the
// puyas_info table with generated records.
package seed

import (
	"context"
	"time"
)

// Seeder inserts generated records for conteopuyas_id 1..N and
// commits them in one transaction. Either all N records become
// durable or none do.
type Seeder interface {
	// Seed runs the insert loop and commits at the end.
	Seed(ctx context.Context) (*Report, error)
}

// Report summarizes a successful seeding run.
type Report struct {
	// RunID identifies the run in logs.
	RunID string

	// Table is the table that received the records.
	Table string

	// Inserted is the number of committed records.
	Inserted int

	// Duration is the wall time of the run.
	Duration time.Duration
}
