// Package clock abstracts the simulated external latency so production
// binaries wait for the configured gateway delay while tests run instantly.
package clock

import (
	"context"
	"time"
)

type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Real waits on the wall clock but gives up when the context does.
type Real struct{}

func (Real) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Nop skips the delay entirely.
type Nop struct{}

func (Nop) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
