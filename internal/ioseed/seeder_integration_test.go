package ioseed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/puyadb/internal/iodb"
	"github.com/gnames/puyadb/internal/ioseed"
	"github.com/gnames/puyadb/internal/iotesting"
	"github.com/gnames/puyadb/pkg/config"
	"github.com/gnames/puyadb/pkg/db"
	"github.com/gnames/puyadb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTable = "puyas_info_seed_test"

func setupTable(t *testing.T, ctx context.Context) db.Operator {
	t.Helper()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, iotesting.GetTestDatabaseConfig()))
	t.Cleanup(func() {
		exec(t, ctx, op, "DROP TABLE IF EXISTS "+testTable)
		op.Close()
	})

	exec(t, ctx, op, "DROP TABLE IF EXISTS "+testTable)
	exec(t, ctx, op, `CREATE TABLE `+testTable+` (
		id SERIAL PRIMARY KEY,
		conteopuyas_id INT UNIQUE NOT NULL,
		edad_estimada INT,
		estado_floracion TEXT,
		observaciones TEXT
	)`)
	return op
}

func exec(t *testing.T, ctx context.Context, op db.Operator, sql string) {
	t.Helper()
	tx, err := op.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.Exec(ctx, sql)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
}

func countRows(t *testing.T, ctx context.Context, op db.Operator) (int, int, int) {
	t.Helper()
	tx, err := op.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	var n, minID, maxID int
	err = tx.QueryRow(ctx,
		`SELECT count(*), coalesce(min(conteopuyas_id), 0),
		  coalesce(max(conteopuyas_id), 0) FROM `+testTable,
	).Scan(&n, &minID, &maxID)
	require.NoError(t, err)
	return n, minID, maxID
}

func integrationConfig(count int) *config.Config {
	cfg := iotesting.GetTestConfig()
	cfg.Update([]config.Option{
		config.OptSeedCount(count),
		config.OptSeedTable(testTable),
	})
	return cfg
}

func TestSeedIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()
	op := setupTable(t, ctx)

	s, err := ioseed.New(integrationConfig(150), op)
	require.NoError(t, err)

	res, err := s.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 150, res.Inserted)

	n, minID, maxID := countRows(t, ctx, op)
	assert.Equal(t, 150, n)
	assert.Equal(t, 1, minID)
	assert.Equal(t, 150, maxID)

	// the unique constraint turns a repeated run into an insert error
	// and the table stays unchanged
	_, err = s.Seed(ctx)
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.SeedInsertError, gnErr.Code)
	assert.Equal(t, 1, gnErr.Vars[0])

	n, _, _ = countRows(t, ctx, op)
	assert.Equal(t, 150, n)
}

func TestSeedIntegrationRollback(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()
	op := setupTable(t, ctx)

	exec(t, ctx, op, "INSERT INTO "+testTable+
		" (conteopuyas_id, edad_estimada) VALUES (40, 1)")

	s, err := ioseed.New(integrationConfig(100), op)
	require.NoError(t, err)

	_, err = s.Seed(ctx)
	require.Error(t, err)

	n, minID, maxID := countRows(t, ctx, op)
	assert.Equal(t, 1, n, "rows 1..39 are rolled back")
	assert.Equal(t, 40, minID)
	assert.Equal(t, 40, maxID)
}
