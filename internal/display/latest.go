package display

import (
	"context"
	"productreader/internal/reader"
	"productreader/pkg/domain"
	"sync"
	"time"
)

// Ensure Latest conforms to the reader.Sink interface at compile time.
var _ reader.Sink = (*Latest)(nil)

// Snapshot is the last presentation. Exactly one of Product and Status is set
// once something has been presented.
type Snapshot struct {
	Product   *domain.Product
	Status    string
	UpdatedAt time.Time
}

// Empty reports whether nothing has been presented yet.
func (s Snapshot) Empty() bool { return s.UpdatedAt.IsZero() }

// Latest keeps the last presentation in memory so it can be read from other
// goroutines, such as HTTP handlers.
type Latest struct {
	mu   sync.RWMutex
	snap Snapshot
	now  func() time.Time
}

// NewLatest returns an empty Latest sink.
func NewLatest() *Latest {
	return &Latest{now: time.Now}
}

func (l *Latest) ShowProduct(_ context.Context, p domain.Product) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.snap = Snapshot{Product: &p, UpdatedAt: l.now()}

	return nil
}

func (l *Latest) ShowStatus(_ context.Context, status string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.snap = Snapshot{Status: status, UpdatedAt: l.now()}

	return nil
}

// Snapshot returns a copy of the last presentation.
func (l *Latest) Snapshot() Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := l.snap
	if s.Product != nil {
		p := *s.Product
		s.Product = &p
	}

	return s
}
