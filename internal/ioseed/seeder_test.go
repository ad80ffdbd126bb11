package ioseed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/puyadb/internal/ioseed"
	"github.com/gnames/puyadb/pkg/config"
	"github.com/gnames/puyadb/pkg/errcode"
	"github.com/gnames/puyadb/pkg/puyas"
	"github.com/gnames/puyadb/pkg/seed"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx records statements. Methods the seeder does not use are
// left to the embedded nil interface.
type fakeTx struct {
	pgx.Tx
	queries   []string
	rows      [][]any
	failAt    int
	onExec    func(n int)
	commitErr error
	committed bool
	rollbacks int
}

func (f *fakeTx) Exec(
	_ context.Context,
	sql string,
	args ...any,
) (pgconn.CommandTag, error) {
	n := len(f.rows) + 1
	if f.onExec != nil {
		f.onExec(n)
	}
	if n == f.failAt {
		return pgconn.CommandTag{}, errors.New("duplicate key value")
	}
	f.queries = append(f.queries, sql)
	f.rows = append(f.rows, args)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeTx) Commit(context.Context) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rollbacks++
	return nil
}

// durable returns rows that survived the transaction.
func (f *fakeTx) durable() [][]any {
	if !f.committed {
		return nil
	}
	return f.rows
}

type fakeOperator struct {
	tx       *fakeTx
	exists   bool
	checkErr error
	beginErr error
	begins   int
}

func (f *fakeOperator) Connect(context.Context, *config.DatabaseConfig) error {
	return nil
}

func (f *fakeOperator) Close() error { return nil }

func (f *fakeOperator) Begin(context.Context) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	f.begins++
	return f.tx, nil
}

func (f *fakeOperator) TableExists(context.Context, string) (bool, error) {
	return f.exists, f.checkErr
}

func testConfig(count int) *config.Config {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptSeedCount(count),
		config.OptSeedWithProgress(false),
	})
	return cfg
}

func runSeed(
	t *testing.T,
	cfg *config.Config,
	op *fakeOperator,
) (*seed.Report, error) {
	t.Helper()
	s, err := ioseed.New(cfg, op)
	require.NoError(t, err)
	return s.Seed(context.Background())
}

func requireCode(t *testing.T, err error, code gn.ErrorCode) *gn.Error {
	t.Helper()
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr), "Error should be *gn.Error")
	assert.Equal(t, code, gnErr.Code)
	return gnErr
}

func TestSeedInsertsAllRecords(t *testing.T) {
	cfg := testConfig(puyas.DefaultCount)
	op := &fakeOperator{tx: &fakeTx{}, exists: true}

	res, err := runSeed(t, cfg, op)
	require.NoError(t, err)

	assert.Equal(t, puyas.DefaultCount, res.Inserted)
	assert.Equal(t, "public.puyas_info", res.Table)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 1, op.begins, "single transaction")
	assert.True(t, op.tx.committed, "single commit")
	assert.Zero(t, op.tx.rollbacks)

	rows := op.tx.durable()
	require.Len(t, rows, puyas.DefaultCount)
	for i, row := range rows {
		require.Len(t, row, 4)
		assert.Equal(t, i+1, row[0], "ids are 1..N without gaps")

		age := row[1].(int)
		assert.GreaterOrEqual(t, age, 20)
		assert.LessOrEqual(t, age, 100)
		assert.Contains(t, puyas.Statuses, row[2])
		assert.Contains(t, puyas.Observations, row[3])
	}
}

func TestSeedQuery(t *testing.T) {
	cfg := testConfig(2)
	op := &fakeOperator{tx: &fakeTx{}, exists: true}

	_, err := runSeed(t, cfg, op)
	require.NoError(t, err)

	exp := `INSERT INTO "public"."puyas_info" ` +
		`(conteopuyas_id,edad_estimada,estado_floracion,observaciones) ` +
		`VALUES ($1,$2,$3,$4)`
	assert.Equal(t, []string{exp, exp}, op.tx.queries)
}

func TestSeedInsertFailureCommitsNothing(t *testing.T) {
	cfg := testConfig(100)
	op := &fakeOperator{tx: &fakeTx{failAt: 37}, exists: true}

	res, err := runSeed(t, cfg, op)
	assert.Nil(t, res)

	gnErr := requireCode(t, err, errcode.SeedInsertError)
	assert.Equal(t, 37, gnErr.Vars[0])
	assert.Contains(t, gnErr.Err.Error(), "duplicate key value")

	assert.False(t, op.tx.committed, "no commit after failed insert")
	assert.Equal(t, 1, op.tx.rollbacks)
	assert.Len(t, op.tx.rows, 36, "remaining inserts are skipped")
	assert.Empty(t, op.tx.durable())
}

func TestSeedCommitFailure(t *testing.T) {
	cfg := testConfig(5)
	tx := &fakeTx{commitErr: errors.New("connection reset")}
	op := &fakeOperator{tx: tx, exists: true}

	_, err := runSeed(t, cfg, op)
	gnErr := requireCode(t, err, errcode.SeedCommitError)
	assert.Equal(t, 5, gnErr.Vars[0])
	assert.Empty(t, tx.durable())
	assert.Equal(t, 1, tx.rollbacks)
}

func TestSeedTableChecks(t *testing.T) {
	t.Run("missing table", func(t *testing.T) {
		op := &fakeOperator{tx: &fakeTx{}}
		_, err := runSeed(t, testConfig(3), op)
		requireCode(t, err, errcode.SeedTableMissingError)
		assert.Zero(t, op.begins)
	})

	t.Run("check fails", func(t *testing.T) {
		checkErr := errors.New("boom")
		op := &fakeOperator{tx: &fakeTx{}, checkErr: checkErr}
		_, err := runSeed(t, testConfig(3), op)
		assert.ErrorIs(t, err, checkErr)
		assert.Zero(t, op.begins)
	})

	t.Run("invalid table", func(t *testing.T) {
		cfg := testConfig(3)
		cfg.Seed.Table = "puyas info"
		op := &fakeOperator{tx: &fakeTx{}, exists: true}
		_, err := runSeed(t, cfg, op)
		requireCode(t, err, errcode.SeedInvalidTableError)
		assert.Zero(t, op.begins)
	})
}

func TestSeedBeginFailure(t *testing.T) {
	op := &fakeOperator{exists: true, beginErr: errors.New("too many clients")}
	_, err := runSeed(t, testConfig(3), op)
	gnErr := requireCode(t, err, errcode.SeedBeginError)
	assert.Contains(t, gnErr.Err.Error(), "too many clients")
}

func TestSeedCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tx := &fakeTx{onExec: func(n int) {
		if n == 5 {
			cancel()
		}
	}}
	op := &fakeOperator{tx: tx, exists: true}

	s, err := ioseed.New(testConfig(50), op)
	require.NoError(t, err)

	_, err = s.Seed(ctx)
	gnErr := requireCode(t, err, errcode.SeedCancelledError)
	assert.Equal(t, 5, gnErr.Vars[0])
	assert.ErrorIs(t, gnErr.Err, context.Canceled)
	assert.Empty(t, tx.durable())
}

func TestSeedReproducible(t *testing.T) {
	cfg := testConfig(200)
	cfg.Update([]config.Option{config.OptSeedRandomSeed(2024)})

	op1 := &fakeOperator{tx: &fakeTx{}, exists: true}
	op2 := &fakeOperator{tx: &fakeTx{}, exists: true}

	_, err := runSeed(t, cfg, op1)
	require.NoError(t, err)
	_, err = runSeed(t, cfg, op2)
	require.NoError(t, err)

	assert.Equal(t, op1.tx.rows, op2.tx.rows)
}

func TestSeedNotIdempotent(t *testing.T) {
	cfg := testConfig(10)
	tx := &fakeTx{}
	op := &fakeOperator{tx: tx, exists: true}

	_, err := runSeed(t, cfg, op)
	require.NoError(t, err)

	// a second run on the same unconstrained table repeats the ids
	tx.committed = false
	_, err = runSeed(t, cfg, op)
	require.NoError(t, err)

	require.Len(t, tx.rows, 20)
	assert.Equal(t, tx.rows[0][0], tx.rows[10][0])
}

func TestNewInvalidGenerator(t *testing.T) {
	cfg := testConfig(3)
	cfg.Seed.Statuses = nil
	_, err := ioseed.New(cfg, &fakeOperator{})
	requireCode(t, err, errcode.SeedGeneratorError)
}

func TestCompletionMessage(t *testing.T) {
	msg := ioseed.CompletionMessage(&seed.Report{
		Inserted: 1536,
		Table:    "public.puyas_info",
	})
	assert.Contains(t, msg, "Inserted <em>1,536</em> records")
	assert.Contains(t, msg, "public.puyas_info")
}
