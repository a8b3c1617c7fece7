package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/lifemap/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertTimeline(ctx context.Context, tx db.DBTX, id, name string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO timelines (id, name, created_at, updated_at) VALUES (?, ?, 'now', 'now')`, id, name)
	return err
}

func timelineExists(t *testing.T, uow *db.SQLiteUnitOfWork, name string) bool {
	t.Helper()
	var n int
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM timelines WHERE name = ?`, name).Scan(&n)
	})
	require.NoError(t, err)
	return n > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertTimeline(ctx, tx, "t1", "career")
	})
	require.NoError(t, err)
	assert.True(t, timelineExists(t, uow, "career"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertTimeline(ctx, tx, "t1", "career"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, timelineExists(t, uow, "career"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertTimeline(ctx, tx, "t1", "career")
			panic("boom")
		})
	})
	assert.False(t, timelineExists(t, uow, "career"))
}
