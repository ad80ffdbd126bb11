package ioseed

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/puyadb/pkg/errcode"
)

// InvalidTableError is returned when the target table name is not a
// plain identifier or a schema.table pair.
func InvalidTableError(table string) error {
	msg := `Table name <em>%s</em> is not valid

<em>How to fix:</em>
  Use 'table' or 'schema.table' made of letters, digits and underscores`

	return &gn.Error{
		Code: errcode.SeedInvalidTableError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("invalid table name %q", table),
	}
}

// TableMissingError is returned when the target table does not exist.
// The seeder only writes rows, it never creates tables.
func TableMissingError(table, database string) error {
	msg := `Table <em>%s</em> does not exist in database <em>%s</em>

<em>How to fix:</em>
  1. Create puyas_info and load ConteoPuyas before seeding
  2. Check 'seed.table' in config.yaml`

	return &gn.Error{
		Code: errcode.SeedTableMissingError,
		Msg:  msg,
		Vars: []any{table, database},
		Err:  fmt.Errorf("table %s not found in %s", table, database),
	}
}

// BeginError is returned when a transaction cannot start.
func BeginError(err error) error {
	msg := "Cannot start database transaction"

	return &gn.Error{
		Code: errcode.SeedBeginError,
		Msg:  msg,
		Err:  fmt.Errorf("begin transaction: %w", err),
	}
}

// InsertError is returned when a record is rejected by the database.
// Nothing from the run is committed after this error.
func InsertError(id int, table string, err error) error {
	msg := `Cannot insert record <em>conteopuyas_id=%d</em> into <em>%s</em>
No records from this run were saved.

<em>Possible causes:</em>
  - The id is missing from ConteoPuyas
  - The record was inserted by a previous run
  - Column types do not match`

	return &gn.Error{
		Code: errcode.SeedInsertError,
		Msg:  msg,
		Vars: []any{id, table},
		Err:  fmt.Errorf("insert conteopuyas_id %d into %s: %w", id, table, err),
	}
}

// CommitError is returned when the final commit fails.
func CommitError(count int, err error) error {
	msg := "Cannot commit <em>%d</em> records, no records were saved"

	return &gn.Error{
		Code: errcode.SeedCommitError,
		Msg:  msg,
		Vars: []any{count},
		Err:  fmt.Errorf("commit %d records: %w", count, err),
	}
}

// CancelledError is returned when the run is interrupted before commit.
func CancelledError(done int, err error) error {
	msg := "Seeding cancelled after <em>%d</em> records, no records were saved"

	return &gn.Error{
		Code: errcode.SeedCancelledError,
		Msg:  msg,
		Vars: []any{done},
		Err:  fmt.Errorf("seeding cancelled: %w", err),
	}
}

// PreviewError is returned when generated records cannot be written
// out during a dry run.
func PreviewError(err error) error {
	msg := "Cannot write generated records"

	return &gn.Error{
		Code: errcode.SeedPreviewError,
		Msg:  msg,
		Err:  fmt.Errorf("write preview: %w", err),
	}
}
