package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"productreader/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgScan struct {
	ID  uuid.UUID `db:"id"`
	Seq int64     `db:"seq"`

	Address sql.NullString `db:"address"`
	Outcome string         `db:"outcome"`
	Status  string         `db:"status"`
	Shown   bool           `db:"shown"`

	// Product holds the JSON encoded record, NULL for failed runs.
	Product sql.NullString `db:"product"`
	Image   string         `db:"image"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgScan) ToDomain() (*domain.ScanRecord, error) {
	rec := &domain.ScanRecord{
		ID:        p.ID,
		Seq:       uint64(p.Seq), //nolint: gosec
		Outcome:   p.Outcome,
		Status:    p.Status,
		Shown:     p.Shown,
		Image:     domain.ImageReference(p.Image),
		CreatedAt: p.CreatedAt,
	}

	if p.Address.Valid {
		addr, err := domain.ParseProductAddress(p.Address.String)
		if err != nil {
			return nil, fmt.Errorf("could not parse stored address: %w", err)
		}

		rec.Address = addr
	}

	if p.Product.Valid {
		var product domain.ProductRecord
		if err := json.Unmarshal([]byte(p.Product.String), &product); err != nil {
			return nil, fmt.Errorf("could not unmarshal product record: %w", err)
		}

		rec.Product = &product
	}

	return rec, nil
}

func (p *PgScan) FromDomain(scan domain.ScanRecord) error {
	*p = PgScan{
		ID:      scan.ID,
		Seq:     int64(scan.Seq), //nolint: gosec
		Outcome: scan.Outcome,
		Status:  scan.Status,
		Shown:   scan.Shown,
		Image:   scan.Image.String(),
		Address: sql.NullString{
			String: scan.Address.String(),
			Valid:  !scan.Address.IsZero(),
		},
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if scan.Product != nil {
		b, err := json.Marshal(scan.Product)
		if err != nil {
			return fmt.Errorf("could not marshal product record: %w", err)
		}

		p.Product = sql.NullString{String: string(b), Valid: true}
	}

	return nil
}

func domainScansToPg(scans []domain.ScanRecord) ([]PgScan, error) {
	out := make([]PgScan, len(scans))
	for i := range out {
		if err := out[i].FromDomain(scans[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgScansToDomain(scans []PgScan) ([]domain.ScanRecord, error) {
	out := make([]domain.ScanRecord, 0, len(scans))
	for _, scan := range scans {
		d, err := scan.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
