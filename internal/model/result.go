package model

import (
	"fmt"
	"time"
)

// MovedEntry records one successful move: the entry's original base name,
// the category it classified into, and the full path it now lives at.
type MovedEntry struct {
	Name        string
	Category    CategoryID
	Destination string
}

// String returns a human-readable description for log display.
func (m MovedEntry) String() string {
	return fmt.Sprintf("%s → %s", m.Name, m.Destination)
}

// EntryError records a per-entry failure that did not abort the pass.
type EntryError struct {
	Name   string
	Reason string
}

// String returns a human-readable description for log display.
func (e EntryError) String() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Reason)
}

// SortResult accumulates the outcome of one sort pass. Both lists are
// append-only during the pass and ordered by processing order. Results are
// reported to the caller and discarded; nothing is persisted.
type SortResult struct {
	PassID     string
	StartedAt  time.Time
	FinishedAt time.Time
	Moved      []MovedEntry
	Errors     []EntryError
	Skipped    int // uncategorized or unconfigured entries left in place
}

// HasErrors reports whether any per-entry failure occurred.
func (r *SortResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Duration returns how long the pass took.
func (r *SortResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Summary returns a one-line digest of the pass for notifications and logs.
func (r *SortResult) Summary() string {
	return fmt.Sprintf("%d moved, %d errors, %d skipped", len(r.Moved), len(r.Errors), r.Skipped)
}
