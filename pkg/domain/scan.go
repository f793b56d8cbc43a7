package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanRecord is the history entry kept for every scan the presenter receives.
type ScanRecord struct {
	// ID is the scan ID the reader assigned to the run.
	ID uuid.UUID
	// Seq is the run number. It restarts with the process.
	Seq uint64
	// Address is zero when the run failed before extracting it.
	Address ProductAddress
	// Outcome is "presented" or the lower-case error kind of a failed run.
	Outcome string
	// Status is the message shown for failed runs.
	Status string
	// Shown is false for results discarded because a newer run had started.
	Shown bool
	// Product and Image are set for successful runs only.
	Product   *ProductRecord
	Image     ImageReference
	CreatedAt time.Time
}
