package display

import (
	"context"
	"fmt"
	"io"
	"productreader/internal/reader"
	"productreader/pkg/domain"
	"sync"
)

// Ensure Terminal conforms to the reader.Sink interface at compile time.
var _ reader.Sink = (*Terminal)(nil)

// Terminal writes presentations as labelled lines.
type Terminal struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTerminal returns a Terminal writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w}
}

func (t *Terminal) ShowProduct(_ context.Context, p domain.Product) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := fmt.Fprintf(t.w,
		"Product Address: %s\nOwner: %s\nProduct Type: %s\nTimes Recycled: %d times\nCID: %s\nProduct Name: %s\nState: %s\nImage: %s\n\n",
		p.Address, p.Record.Owner, p.Record.Type, p.Record.TimesRecycled, p.Record.ContentID,
		p.Record.Name, p.Record.State, p.Image)
	if err != nil {
		return fmt.Errorf("could not write product: %w", err)
	}

	return nil
}

func (t *Terminal) ShowStatus(_ context.Context, status string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := fmt.Fprintf(t.w, "Status: %s\n\n", status); err != nil {
		return fmt.Errorf("could not write status: %w", err)
	}

	return nil
}
