package db

import (
	"context"

	"github.com/gnames/puyadb/pkg/config"
	"github.com/jackc/pgx/v5"
)

// Operator defines the interface for basic database management operations.
// It manages the connection lifecycle and hands out transactions to the
// seeder, which executes its inserts inside a single pgx.Tx.
type Operator interface {
	// Connect establishes a connection to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close releases the database connection. It is safe to call
	// Close on an operator that never connected.
	Close() error

	// Begin starts a transaction. The caller must either commit or
	// roll it back.
	Begin(ctx context.Context) (pgx.Tx, error)

	// TableExists checks if a table exists in the database.
	// The table name can be schema-qualified; the public schema
	// is used otherwise.
	TableExists(ctx context.Context, tableName string) (bool, error)
}
