package reader

import (
	"context"
	"productreader/pkg/domain"
)

// Sink is the presentation side of the pipeline. Only the Presenter calls
// it, always from the goroutine running Presenter.Serve.
//
//go:generate mockgen -package mockreader -source=interface.go -destination=mock/mockreader.go *
type Sink interface {
	// ShowProduct presents a decoded product.
	ShowProduct(ctx context.Context, p domain.Product) error
	// ShowStatus presents a short human-readable status, typically why a
	// scan did not produce a product.
	ShowStatus(ctx context.Context, status string) error
}

// Recorder keeps a trace of every result the Presenter receives, including
// the ones it discards as stale.
type Recorder interface {
	// Record stores res. shown tells whether res reached the Sink.
	Record(ctx context.Context, res Result, shown bool) error
}
