/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/puyadb/internal/iodb"
	"github.com/gnames/puyadb/internal/ioseed"
	"github.com/gnames/puyadb/pkg/config"
	"github.com/gnames/puyadb/pkg/db"
	"github.com/spf13/cobra"
)

// getSeedCmd returns the seed command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getSeedCmd() *cobra.Command {
	var (
		count      int
		table      string
		randomSeed uint64
		dryRun     bool
		noProgress bool
	)

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed puyas_info with generated observations",
		Long: `Insert one generated observation per counted plant.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Checks that the target table (public.puyas_info) exists
  3. For every conteopuyas_id from 1 to count generates a random
     estimated age, flowering status and field note
  4. Inserts all records in a single transaction
  5. Commits once; if any insert fails nothing is saved

The table and the referenced ConteoPuyas rows must exist already.
Running the command twice inserts the same ids again.

Examples:
  # Insert the default 1536 records
  puyadb seed

  # Insert 100 records into another table
  puyadb seed -n 100 -t campo.puyas_info

  # Show what would be inserted, reproducibly, without a database
  puyadb seed --dry-run -r 42`,
		Aliases: []string{"populate"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSeed(cmd, count, table, randomSeed, dryRun, noProgress)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	seedCmd.Flags().IntVarP(
		&count, "count", "n", 0,
		"number of records to insert (ids 1..count)",
	)
	seedCmd.Flags().StringVarP(
		&table, "table", "t", "",
		"target table, 'table' or 'schema.table'",
	)
	seedCmd.Flags().Uint64VarP(
		&randomSeed, "random-seed", "r", 0,
		"seed of the random generator for reproducible values",
	)
	seedCmd.Flags().BoolVar(
		&dryRun, "dry-run", false,
		"print generated records as YAML instead of inserting them",
	)
	seedCmd.Flags().BoolVar(
		&noProgress, "no-progress", false,
		"do not show the progress bar",
	)

	return seedCmd
}

func runSeed(
	cmd *cobra.Command,
	count int,
	table string,
	randomSeed uint64,
	dryRun bool,
	noProgress bool,
) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cfg.Update(seedOptions(cmd, count, table, randomSeed, dryRun, noProgress))

	if cfg.Seed.DryRun {
		return ioseed.Preview(cmd.OutOrStdout(), cfg)
	}

	return seedDatabase(ctx, cfg, iodb.NewPgxOperator())
}

// seedOptions builds options from explicitly set flags.
func seedOptions(
	cmd *cobra.Command,
	count int,
	table string,
	randomSeed uint64,
	dryRun bool,
	noProgress bool,
) []config.Option {
	var res []config.Option

	if cmd.Flags().Changed("count") {
		res = append(res, config.OptSeedCount(count))
	}
	if cmd.Flags().Changed("table") {
		res = append(res, config.OptSeedTable(table))
	}
	if cmd.Flags().Changed("random-seed") {
		res = append(res, config.OptSeedRandomSeed(randomSeed))
	}
	if cmd.Flags().Changed("dry-run") {
		res = append(res, config.OptSeedDryRun(dryRun))
	}
	if cmd.Flags().Changed("no-progress") {
		res = append(res, config.OptSeedWithProgress(!noProgress))
	}
	return res
}

// seedDatabase connects with op, runs the seeder and releases the
// connection on every exit path.
func seedDatabase(
	ctx context.Context,
	cfg *config.Config,
	op db.Operator,
) error {
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	seeder, err := ioseed.New(cfg, op)
	if err != nil {
		return err
	}

	res, err := seeder.Seed(ctx)
	if err != nil {
		return err
	}

	ioseed.ReportCompletion(res)
	return nil
}
