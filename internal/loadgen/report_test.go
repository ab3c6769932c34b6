package loadgen

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Accounting(t *testing.T) {
	r := newReport("rest")
	r.add(call{shape: ShapeSingle, latency: 10 * time.Millisecond, outcome: Outcome{OK: true, RequestBytes: 100, ResponseBytes: 300}})
	r.add(call{shape: ShapeSingle, latency: 20 * time.Millisecond, outcome: Outcome{OK: false}})
	r.add(call{shape: ShapeLarge, latency: 30 * time.Millisecond, err: errors.New("refused")})

	assert.Equal(t, 3, r.Total.Calls)
	assert.Equal(t, 1, r.Total.Succeeded)
	assert.Equal(t, 1, r.Total.Errors)
	assert.Equal(t, 2, r.ByShape[ShapeSingle].Calls)
	assert.Equal(t, 1, r.ByShape[ShapeLarge].Errors)
	assert.Equal(t, 0, r.ByShape[ShapeMulti].Calls)
}

func TestPercentile(t *testing.T) {
	s := &ShapeStats{}
	for i := 1; i <= 100; i++ {
		s.latencies = append(s.latencies, time.Duration(i)*time.Millisecond)
	}
	assert.Equal(t, 50*time.Millisecond, s.Percentile(50))
	assert.Equal(t, 99*time.Millisecond, s.Percentile(99))

	empty := &ShapeStats{}
	assert.Equal(t, time.Duration(0), empty.Percentile(50))
}

func TestSummarize(t *testing.T) {
	r := newReport("grpc")
	r.add(call{shape: ShapeSingle, latency: 10 * time.Millisecond, outcome: Outcome{OK: true, RequestBytes: 50, ResponseBytes: 150}})
	r.add(call{shape: ShapeMulti, latency: 30 * time.Millisecond, outcome: Outcome{OK: true, RequestBytes: 150, ResponseBytes: 250}})

	started := time.Now().UTC()
	run := r.Summarize("run_1", 4, time.Minute, 99, started)

	require.NotNil(t, run)
	assert.Equal(t, "grpc", run.Protocol)
	assert.Equal(t, 2, run.Calls)
	assert.Equal(t, 2, run.Succeeded)
	assert.Equal(t, 4, run.Workers)
	assert.Equal(t, 100.0, run.MeanRequestBytes)
	assert.Equal(t, 200.0, run.MeanResponseBytes)
	assert.Equal(t, started, run.StartedAt)
	assert.Greater(t, run.P99MS, run.P50MS-1)
}
