package display

import (
	"context"
	"productreader/internal/reader"
	"productreader/pkg/domain"

	"go.uber.org/multierr"
)

// Ensure Fanout conforms to the reader.Sink interface at compile time.
var _ reader.Sink = Fanout(nil)

// Fanout presents on every sink in order. A failing sink does not prevent
// the next ones from being called; all errors are combined.
type Fanout []reader.Sink

func (f Fanout) ShowProduct(ctx context.Context, p domain.Product) error {
	var err error
	for _, s := range f {
		err = multierr.Append(err, s.ShowProduct(ctx, p))
	}

	return err
}

func (f Fanout) ShowStatus(ctx context.Context, status string) error {
	var err error
	for _, s := range f {
		err = multierr.Append(err, s.ShowStatus(ctx, status))
	}

	return err
}
