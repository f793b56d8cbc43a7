package postgres_test

import (
	"context"
	"productreader/pkg/domain"
	"productreader/pkg/storage"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func mustAddress(t *testing.T, s string) domain.ProductAddress {
	t.Helper()

	addr, err := domain.ParseProductAddress(s)
	require.NoError(t, err)

	return addr
}

func presented(t *testing.T, seq uint64, addr string) domain.ScanRecord {
	t.Helper()

	return domain.ScanRecord{
		ID:      uuid.New(),
		Seq:     seq,
		Address: mustAddress(t, addr),
		Outcome: "presented",
		Shown:   true,
		Product: &domain.ProductRecord{
			Owner:         "0x00000000000000000000000000000000000000Aa",
			Type:          domain.ProductTypeGlassBottle,
			TimesRecycled: 7,
			ContentID:     "bafy123",
			Name:          "bottle1",
			State:         domain.ProductStatePendingRecycle,
		},
		Image: "https://bafy123.ipfs.nftstorage.link/bottle1.jpg",
	}
}

const (
	addrA = "0x0102030405060708090a0b0c0d0e0f1011121314"
	addrB = "0x00000000000000000000000000000000000000ff"
)

func TestPgSQL_StoreScans(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("store presented scan", func(t *testing.T) {
		t.Parallel()

		s := presented(t, 1, addrA)
		res, err := pgSQL.StoreScans(ctx, s)
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, s.ID, res[0].ID)
		require.Equal(t, s.Address, res[0].Address)
		require.Equal(t, s.Product, res[0].Product)
		require.Equal(t, s.Image, res[0].Image)
		require.False(t, res[0].CreatedAt.IsZero())
	})

	t.Run("store failed scans", func(t *testing.T) {
		t.Parallel()

		auth := domain.ScanRecord{
			Seq:     2,
			Outcome: "authentication_failure",
			Status:  "Wrong authentication",
			Shown:   true,
		}
		reverted := domain.ScanRecord{
			Seq:     3,
			Address: mustAddress(t, addrB),
			Outcome: "reverted",
			Status:  "Product not registered",
		}

		res, err := pgSQL.StoreScans(ctx, auth, reverted)
		require.NoError(t, err)
		require.Len(t, res, 2)
		require.NotEqual(t, uuid.Nil, res[0].ID, "missing ids are generated")
		require.True(t, res[0].Address.IsZero())
		require.Nil(t, res[0].Product)
		require.Equal(t, "Wrong authentication", res[0].Status)
		require.False(t, res[1].Shown)
	})

	t.Run("store empty scans", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreScans(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_RecentScans_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	scans := make([]domain.ScanRecord, 0, 5)
	for i := range 5 {
		scans = append(scans, presented(t, uint64(i+1), addrA))
	}
	stored, err := pgSQL.StoreScans(ctx, scans...)
	require.NoError(t, err)
	require.Len(t, stored, 5)

	// spread created_at so that the last stored row is the newest
	now := time.Now().UTC()
	for i, sc := range stored {
		created := now.Add(-time.Duration(4-i) * time.Minute)
		_, err := pgSQL.DB.ExecContext(ctx, "UPDATE scans SET created_at = $1 WHERE id = $2", created, sc.ID)
		require.NoError(t, err)
	}

	p1, err := pgSQL.RecentScans(ctx, storage.ScanCursor{}, 2)
	require.NoError(t, err)
	require.Len(t, p1.Scans, 2)
	require.Equal(t, uint64(5), p1.Scans[0].Seq)
	require.Equal(t, uint64(4), p1.Scans[1].Seq)
	require.NotNil(t, p1.NextCursor)

	p2, err := pgSQL.RecentScans(ctx, *p1.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p2.Scans, 2)
	require.NotNil(t, p2.NextCursor)

	p3, err := pgSQL.RecentScans(ctx, *p2.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p3.Scans, 1)
	require.Equal(t, uint64(1), p3.Scans[0].Seq)
	require.Nil(t, p3.NextCursor)
}

func TestPgSQL_RecentScans_SharedTimestamp(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	scans := make([]domain.ScanRecord, 0, 5)
	for i := range 5 {
		scans = append(scans, presented(t, uint64(i+1), addrA))
	}
	stored, err := pgSQL.StoreScans(ctx, scans...)
	require.NoError(t, err)

	same := time.Now().UTC().Truncate(time.Microsecond)
	_, err = pgSQL.DB.ExecContext(ctx, "UPDATE scans SET created_at = $1", same)
	require.NoError(t, err)

	seen := map[uuid.UUID]bool{}
	cursor := storage.ScanCursor{}
	for pages := 0; ; pages++ {
		require.Less(t, pages, 5)

		page, err := pgSQL.RecentScans(ctx, cursor, 2)
		require.NoError(t, err)
		for _, sc := range page.Scans {
			require.False(t, seen[sc.ID], "scan returned twice")
			seen[sc.ID] = true
		}
		if page.NextCursor == nil {
			break
		}
		require.True(t, same.Equal(page.NextCursor.CreatedAt))
		cursor = *page.NextCursor
	}

	require.Len(t, seen, len(stored))
	for _, sc := range stored {
		require.True(t, seen[sc.ID])
	}
}

func TestPgSQL_LastScanByAddress(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	older := presented(t, 1, addrA)
	newer := presented(t, 2, addrA)
	newer.Product.TimesRecycled = 8
	other := presented(t, 3, addrB)
	stored, err := pgSQL.StoreScans(ctx, older, newer, other)
	require.NoError(t, err)

	_, err = pgSQL.DB.ExecContext(ctx, "UPDATE scans SET created_at = created_at - interval '1 minute' WHERE id = $1",
		stored[0].ID)
	require.NoError(t, err)

	got, err := pgSQL.LastScanByAddress(ctx, mustAddress(t, addrA))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, newer.ID, got.ID)
	require.Equal(t, uint16(8), got.Product.TimesRecycled)

	// the stored form is case insensitive on input
	got, err = pgSQL.LastScanByAddress(ctx, mustAddress(t, "0x00000000000000000000000000000000000000FF"))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, other.ID, got.ID)

	none, err := pgSQL.LastScanByAddress(ctx, mustAddress(t, "0x1111111111111111111111111111111111111111"))
	require.NoError(t, err)
	require.Nil(t, none)
}
