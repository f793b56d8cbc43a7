package v1handler

import (
	"context"
	"productreader/internal/api/specs/v1specs"
	"productreader/pkg/domain"
	"productreader/pkg/serrors"
	"productreader/pkg/storage"
)

const DefaultLimit = 20

func DomainScanToV1Specs(in domain.ScanRecord) v1specs.Scan {
	out := v1specs.Scan{
		ID:        in.ID,
		Seq:       int64(in.Seq), //nolint: gosec
		Outcome:   in.Outcome,
		Shown:     in.Shown,
		CreatedAt: in.CreatedAt,
	}
	if !in.Address.IsZero() {
		out.Address = v1specs.NewOptString(in.Address.String())
	}
	if in.Status != "" {
		out.Status = v1specs.NewOptString(in.Status)
	}
	if in.Product != nil {
		out.Product = v1specs.NewOptProduct(DomainProductToV1Specs(domain.Product{
			Address: in.Address,
			Record:  *in.Product,
			Image:   in.Image,
		}))
	}

	return out
}

// ListScans returns recorded scans, newest first. The optional cursor is the
// nextCursor of the previous page.
func (h *Handler) ListScans(ctx context.Context, params v1specs.ListScansParams) (*v1specs.ScanList, error) {
	if h.deps.History == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "scan history is disabled")
	}

	var cursor storage.ScanCursor
	if raw, ok := params.Cursor.Get(); ok {
		c, err := storage.ParseScanCursor(raw)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursor = c
	}

	page, err := h.deps.History.RecentScans(ctx, cursor, uint(params.Limit.Or(DefaultLimit))) //nolint: gosec
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	items := make([]v1specs.Scan, 0, len(page.Scans))
	for _, s := range page.Scans {
		items = append(items, DomainScanToV1Specs(s))
	}

	var nextCursor v1specs.OptString
	if page.NextCursor != nil {
		nextCursor = v1specs.NewOptString(page.NextCursor.String())
	}

	return &v1specs.ScanList{
		Scans:      items,
		NextCursor: nextCursor,
	}, nil
}

// GetLastScan returns the most recent recorded scan of an address.
func (h *Handler) GetLastScan(ctx context.Context, params v1specs.GetLastScanParams) (*v1specs.Scan, error) {
	if h.deps.History == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "scan history is disabled")
	}

	addr, err := domain.ParseProductAddress(params.Address)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid product address")
	}

	scan, err := h.deps.History.LastScanByAddress(ctx, addr)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if scan == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no scan recorded for %s", addr)
	}

	out := DomainScanToV1Specs(*scan)

	return &out, nil
}
