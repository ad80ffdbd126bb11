// Package ioseed implements the seed.Seeder interface: it inserts
// generated puyas_info records into PostgreSQL inside one transaction.
// This is an impure I/O package.
package ioseed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/puyadb/pkg/config"
	"github.com/gnames/puyadb/pkg/db"
	"github.com/gnames/puyadb/pkg/puyas"
	"github.com/gnames/puyadb/pkg/seed"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// seeder implements the Seeder interface.
type seeder struct {
	cfg      *config.Config
	operator db.Operator
	gen      *puyas.Generator
}

// New creates a new Seeder. The operator has to be connected before
// Seed is called.
func New(cfg *config.Config, op db.Operator) (seed.Seeder, error) {
	gen, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	return &seeder{cfg: cfg, operator: op, gen: gen}, nil
}

// NewGenerator creates a record generator from the seed settings.
func NewGenerator(cfg *config.Config) (*puyas.Generator, error) {
	return puyas.NewSeeded(cfg.GeneratorOptions(), cfg.Seed.RandomSeed)
}

// Seed inserts records with conteopuyas_id 1..Count and commits once.
// Any failure before the commit rolls the transaction back, so a
// failed run leaves the table as it was.
func (s *seeder) Seed(ctx context.Context) (*seed.Report, error) {
	startTime := time.Now()
	count := s.cfg.Seed.Count
	table := s.cfg.Seed.Table
	runID := uuid.NewString()
	log := slog.With("run_id", runID, "table", table)

	parts := config.SplitTable(table)
	if parts == nil {
		return nil, InvalidTableError(table)
	}

	exists, err := s.operator.TableExists(ctx, table)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, TableMissingError(table, s.cfg.Database.Database)
	}

	log.Info("Starting seeding", "count", count)

	tx, err := s.operator.Begin(ctx)
	if err != nil {
		return nil, BeginError(err)
	}
	// no-op after a successful commit
	defer tx.Rollback(ctx)

	query, err := insertQuery(parts)
	if err != nil {
		return nil, InvalidTableError(table)
	}

	var bar *pb.ProgressBar
	if s.cfg.Seed.WithProgress {
		bar = newProgressBar(count, "Inserting records: ")
		defer bar.Finish()
	}

	for i := 1; i <= count; i++ {
		if err = ctx.Err(); err != nil {
			log.Warn("Seeding cancelled", "inserted", i-1)
			return nil, CancelledError(i-1, err)
		}

		rec := s.gen.Record(i)
		if _, err = tx.Exec(ctx, query, rec.Args()...); err != nil {
			log.Error("Insert failed",
				"conteopuyas_id", rec.ConteoPuyasID,
				"error", err,
			)
			return nil, InsertError(rec.ConteoPuyasID, table, err)
		}
		log.Debug("Record inserted",
			"conteopuyas_id", rec.ConteoPuyasID,
			"edad_estimada", rec.EdadEstimada,
			"estado_floracion", rec.EstadoFloracion,
		)

		if bar != nil {
			bar.Increment()
		}
	}

	if err = tx.Commit(ctx); err != nil {
		log.Error("Commit failed", "error", err)
		return nil, CommitError(count, err)
	}

	res := seed.Report{
		RunID:    runID,
		Table:    table,
		Inserted: count,
		Duration: time.Since(startTime),
	}
	log.Info("Seeding complete",
		"inserted", res.Inserted,
		"duration", gnfmt.TimeString(res.Duration.Seconds()),
	)
	return &res, nil
}

// insertQuery builds a parameterized INSERT for the puyas_info
// columns. Table identifiers are quoted, values are bound.
func insertQuery(table []string) (string, error) {
	query, _, err := sq.Insert(pgx.Identifier(table).Sanitize()).
		Columns(puyas.Columns...).
		Values(puyas.Record{}.Args()...).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	return query, err
}

const completionMsg = "Inserted <em>%s</em> records into <em>%s</em> in %s"

// CompletionMessage returns the user-facing summary of a successful
// run.
func CompletionMessage(r *seed.Report) string {
	return fmt.Sprintf(completionMsg, completionVars(r)...)
}

// ReportCompletion prints the summary of a successful run to STDOUT.
func ReportCompletion(r *seed.Report) {
	gn.Info(completionMsg, completionVars(r)...)
}

func completionVars(r *seed.Report) []any {
	return []any{
		humanize.Comma(int64(r.Inserted)),
		r.Table,
		gnfmt.TimeString(r.Duration.Seconds()),
	}
}
