package reader

import "sync/atomic"

// Sequencer hands out monotonic run numbers shared by the Reader, which
// stamps each run when it starts, and the Presenter, which only shows the
// result of the most recently started run.
type Sequencer struct {
	last atomic.Uint64
}

// Next starts a new run and returns its number. The first run is 1.
func (s *Sequencer) Next() uint64 { return s.last.Add(1) }

// Latest returns the number of the most recently started run, 0 if none.
func (s *Sequencer) Latest() uint64 { return s.last.Load() }
