package v1handler

import (
	"context"
	"productreader/internal/api/specs/v1specs"
	"productreader/internal/decoder"
	"productreader/pkg/domain"
	"productreader/pkg/serrors"
)

func DomainProductToV1Specs(p domain.Product) v1specs.Product {
	return v1specs.Product{
		Address:         p.Address.String(),
		Owner:           p.Record.Owner,
		ProductType:     p.Record.Type.String(),
		ProductTypeCode: int(p.Record.Type),
		TimesRecycled:   int(p.Record.TimesRecycled),
		Cid:             p.Record.ContentID,
		ProductName:     p.Record.Name,
		State:           p.Record.State.String(),
		StateCode:       int(p.Record.State),
		Image:           p.Image.String(),
	}
}

// GetLatestProduct returns the last presentation, or no content when nothing
// was presented yet.
func (h *Handler) GetLatestProduct(_ context.Context) (v1specs.GetLatestProductRes, error) {
	snap := h.deps.Latest.Snapshot()
	if snap.Empty() {
		return &v1specs.GetLatestProductNoContent{}, nil
	}

	out := &v1specs.Latest{UpdatedAt: snap.UpdatedAt}
	if snap.Product != nil {
		out.Product = v1specs.NewOptProduct(DomainProductToV1Specs(*snap.Product))
	} else {
		out.Status = v1specs.NewOptString(snap.Status)
	}

	return out, nil
}

// GetProduct queries the registry for the address in the path. It does not
// touch any tag.
func (h *Handler) GetProduct(ctx context.Context, params v1specs.GetProductParams) (*v1specs.Product, error) {
	addr, err := domain.ParseProductAddress(params.Address)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid product address")
	}
	if addr.IsZero() {
		return nil, serrors.With(serrors.ErrUnboundTag, "zero address is never registered")
	}
	if h.deps.Client == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "registry lookups are disabled")
	}

	values, err := h.deps.Client.GetProduct(ctx, addr)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	record, err := decoder.Decode(values)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	out := DomainProductToV1Specs(domain.Product{
		Address: addr,
		Record:  record,
		Image:   h.deps.Image.URL(record.ContentID, record.Name),
	})

	return &out, nil
}
