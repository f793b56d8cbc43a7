package storage

import (
	"context"
	"fmt"
	"productreader/pkg/domain"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ScanCursor is the position of a scan record in created_at DESC, id DESC
// order. The zero value points before the newest record.
type ScanCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// cursorSeparator never occurs in an RFC 3339 timestamp or a UUID.
const cursorSeparator = "_"

// IsZero reports whether c is the first page cursor.
func (c ScanCursor) IsZero() bool {
	return c.CreatedAt.IsZero() && c.ID == uuid.Nil
}

// String renders c as <RFC 3339 timestamp>_<uuid>, the form ParseScanCursor reads.
func (c ScanCursor) String() string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSeparator + c.ID.String()
}

// ParseScanCursor parses the output of ScanCursor.String.
func ParseScanCursor(s string) (ScanCursor, error) {
	rawTime, rawID, ok := strings.Cut(s, cursorSeparator)
	if !ok {
		return ScanCursor{}, fmt.Errorf("cursor %q has no separator", s)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, rawTime)
	if err != nil {
		return ScanCursor{}, fmt.Errorf("could not parse cursor time: %w", err)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return ScanCursor{}, fmt.Errorf("could not parse cursor id: %w", err)
	}

	return ScanCursor{CreatedAt: createdAt, ID: id}, nil
}

// RecentScans groups a page of scan records together with an optional
// NextCursor used for pagination.
type RecentScans struct {
	// Scans contains the current page, newest first.
	Scans []domain.ScanRecord
	// NextCursor points to the last record of the page and is passed back to
	// fetch the next one. It is nil when there is no next page.
	NextCursor *ScanCursor
}

// ScanStorage keeps the scan history.
//
//go:generate mockgen -package mockstorage -source=scan.go -destination=mock/mockscan.go *
type ScanStorage interface {
	// StoreScans inserts one or more scan records and returns the stored rows
	// as they exist in the database (including generated fields).
	StoreScans(ctx context.Context, scans ...domain.ScanRecord) ([]domain.ScanRecord, error)
	// RecentScans returns up to limit records strictly after cursor in
	// created_at DESC, id DESC order. A zero cursor starts at the newest record.
	RecentScans(ctx context.Context, cursor ScanCursor, limit uint) (RecentScans, error)
	// LastScanByAddress returns the most recent record of a run that read
	// addr, or nil when there is none.
	LastScanByAddress(ctx context.Context, addr domain.ProductAddress) (*domain.ScanRecord, error)
}
