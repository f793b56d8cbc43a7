package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"productreader/pkg/storage"
	"productreader/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func countScans(t *testing.T, db *sql.DB) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM scans`)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.ErrorIs(t, inner.Migrate(ctx), storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreScans(ctx, presented(t, 1, addrA))
	require.NoError(t, err)
	require.Equal(t, 0, countScans(t, db), "not visible before commit")

	require.NoError(t, txStorage.Commit())
	require.Equal(t, 1, countScans(t, db))
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreScans(ctx, presented(t, 1, addrA))
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())
	require.Equal(t, 0, countScans(t, db))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreScans(ctx, presented(t, 1, addrA), presented(t, 2, addrB))

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, 2, countScans(t, db))

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, e := s.StoreScans(ctx, presented(t, 3, addrA)); e != nil {
			return e //nolint: wrapcheck
		}
		page, e := s.RecentScans(ctx, storage.ScanCursor{}, 10)
		if e != nil {
			return e //nolint: wrapcheck
		}
		require.Len(t, page.Scans, 3, "the uncommitted row is visible inside the tx")

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 2, countScans(t, db))
}
