package loadgen

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/wire"
)

type stubCaller struct {
	calls atomic.Int64
}

func (s *stubCaller) Protocol() string { return "stub" }

func (s *stubCaller) CreateOrder(_ context.Context, _ wire.CreateOrderRequest) (Outcome, error) {
	s.calls.Add(1)
	return Outcome{OK: true, RequestBytes: 100, ResponseBytes: 200}, nil
}

func (s *stubCaller) Close() error { return nil }

func TestRunner_DrivesUntilDeadline(t *testing.T) {
	caller := &stubCaller{}
	runner := NewRunner(caller, 4, 100*time.Millisecond, 1)

	start := time.Now()
	report := runner.Run(context.Background())
	elapsed := time.Since(start)

	require.NotNil(t, report)
	assert.Equal(t, "stub", report.Protocol)
	assert.Greater(t, report.Total.Calls, 0)
	assert.Equal(t, report.Total.Calls, report.Total.Succeeded)
	assert.Zero(t, report.Total.Errors)
	assert.Less(t, elapsed, 5*time.Second)

	// Every driver call that finished is accounted for.
	assert.Equal(t, int(caller.calls.Load()), report.Total.Calls)
}

func TestRunner_CancelStopsEarly(t *testing.T) {
	caller := &stubCaller{}
	runner := NewRunner(caller, 2, time.Minute, 1)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	runner.Run(ctx)
	assert.Less(t, time.Since(start), 10*time.Second)
}
