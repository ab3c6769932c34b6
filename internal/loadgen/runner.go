package loadgen

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type call struct {
	shape   Shape
	latency time.Duration
	outcome Outcome
	err     error
}

// Runner fans order creation across a fixed worker pool for a fixed
// duration. Each worker owns its own generator seeded from the base seed,
// so runs with the same seed and worker count replay the same orders.
type Runner struct {
	caller   Caller
	workers  int
	duration time.Duration
	seed     int64
}

func NewRunner(caller Caller, workers int, duration time.Duration, seed int64) *Runner {
	return &Runner{
		caller:   caller,
		workers:  workers,
		duration: duration,
		seed:     seed,
	}
}

// Run drives load until the duration elapses or ctx is cancelled, then
// aggregates every call into a Report.
func (r *Runner) Run(ctx context.Context) *Report {
	ctx, cancel := context.WithTimeout(ctx, r.duration)
	defer cancel()

	slog.Info("starting load",
		"protocol", r.caller.Protocol(),
		"workers", r.workers,
		"duration", r.duration,
		"seed", r.seed,
	)

	results := make(chan call, 1024)
	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r.work(ctx, NewGenerator(r.seed+int64(worker)), results)
		}(i)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	report := newReport(r.caller.Protocol())
	for c := range results {
		report.add(c)
	}
	return report
}

func (r *Runner) work(ctx context.Context, gen *Generator, results chan<- call) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		shape, order := gen.Next()
		start := time.Now()
		outcome, err := r.caller.CreateOrder(ctx, order)
		elapsed := time.Since(start)

		// A call aborted by the run deadline is not a data point.
		if err != nil && ctx.Err() != nil {
			return
		}
		results <- call{shape: shape, latency: elapsed, outcome: outcome, err: err}
	}
}
