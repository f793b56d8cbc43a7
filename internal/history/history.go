// Package history persists the scan results the presenter receives.
package history

import (
	"context"
	"fmt"
	"productreader/internal/reader"
	"productreader/pkg/domain"
	"productreader/pkg/storage"
	"time"
)

// DefaultTimeout bounds a single insert when Recorder.Timeout is zero.
const DefaultTimeout = 2 * time.Second

// Recorder stores every presenter result as a domain.ScanRecord.
type Recorder struct {
	Storage storage.ScanStorage
	Timeout time.Duration
}

var _ reader.Recorder = (*Recorder)(nil)

// New returns a Recorder writing to s.
func New(s storage.ScanStorage) *Recorder {
	return &Recorder{Storage: s, Timeout: DefaultTimeout}
}

// Record implements reader.Recorder.
func (r *Recorder) Record(ctx context.Context, res reader.Result, shown bool) error {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := r.Storage.StoreScans(ctx, ToRecord(res, shown)); err != nil {
		return fmt.Errorf("could not store scan %s: %w", res.ScanID, err)
	}

	return nil
}

// ToRecord converts a run result. CreatedAt is left to the storage.
func ToRecord(res reader.Result, shown bool) domain.ScanRecord {
	rec := domain.ScanRecord{
		ID:      res.ScanID,
		Seq:     res.Seq,
		Address: res.Address,
		Outcome: res.Outcome(),
		Status:  reader.StatusMessage(res.Err),
		Shown:   shown,
	}
	if res.Err == nil && res.Product != nil {
		record := res.Product.Record
		rec.Product = &record
		rec.Image = res.Product.Image
	}

	return rec
}
