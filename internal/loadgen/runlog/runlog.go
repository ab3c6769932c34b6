// Package runlog persists load-run summaries so benchmark results can be
// compared across runs and protocols after the fact. One row per run, one
// table, append-only.
package runlog

import (
	"context"
	"time"
)

// Run is a single finished load run.
type Run struct {
	// RunID identifies the run; the driver generates one per invocation.
	RunID string

	Protocol string
	Workers  int
	Duration time.Duration
	Seed     int64

	Calls     int
	Succeeded int
	Errors    int

	// Latency percentiles in milliseconds.
	P50MS float64
	P90MS float64
	P99MS float64

	MeanRequestBytes  float64
	MeanResponseBytes float64

	StartedAt time.Time
}

// Repository is the port for persisting run summaries. The driver depends
// on this abstraction, not on SQLite directly, so tests can use a fake.
type Repository interface {
	// Save appends one run summary.
	Save(ctx context.Context, run *Run) error

	// Recent returns the newest runs, most recent first.
	Recent(ctx context.Context, limit int) ([]Run, error)
}
