package postgres

import (
	"context"
	"fmt"
	"productreader/pkg/domain"
	"productreader/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	scansTable = "scans"
)

// StoreScans inserts the records and returns them with created_at filled in.
func (p *PgSQL) StoreScans(ctx context.Context, scans ...domain.ScanRecord) ([]domain.ScanRecord, error) {
	if len(scans) == 0 {
		return nil, nil
	}

	pgScans, err := domainScansToPg(scans)
	if err != nil {
		return nil, err
	}

	var result []PgScan
	if err := p.Builder.Insert(scansTable).
		Rows(pgScans).
		Returning(&PgScan{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store scans into pg: %w", err)
	}

	return pgScansToDomain(result)
}

// RecentScans returns records after the cursor, ordered by created_at DESC,
// id DESC. NextCursor is set when more rows remain.
func (p *PgSQL) RecentScans(ctx context.Context, cursor storage.ScanCursor, limit uint) (storage.RecentScans, error) {
	var w []goqu.Expression
	if !cursor.IsZero() {
		// rows sharing created_at are told apart by id
		w = append(w, goqu.L("(created_at, id) < (?, ?::uuid)", cursor.CreatedAt, cursor.ID.String()))
	}

	// one extra row tells whether there is a next page
	ds := p.Builder.From(scansTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgScan
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.RecentScans{}, fmt.Errorf("could not fetch recent scans from pg: %w", err)
	}

	var nextCursor *storage.ScanCursor
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := rows[len(rows)-1]
			nextCursor = &storage.ScanCursor{CreatedAt: last.CreatedAt, ID: last.ID}
		}
	}

	domainRows, err := pgScansToDomain(rows)
	if err != nil {
		return storage.RecentScans{}, err
	}

	return storage.RecentScans{
		Scans:      domainRows,
		NextCursor: nextCursor,
	}, nil
}

// LastScanByAddress returns the newest record for addr, or nil.
func (p *PgSQL) LastScanByAddress(ctx context.Context, addr domain.ProductAddress) (*domain.ScanRecord, error) {
	var row PgScan
	found, err := p.Builder.From(scansTable).
		Where(goqu.I("address").Eq(addr.String())).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last scan by address: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
