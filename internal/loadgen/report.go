package loadgen

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/loadgen/runlog"
)

// ShapeStats aggregates the calls of one order shape.
type ShapeStats struct {
	Calls     int
	Succeeded int
	Errors    int
	latencies []time.Duration
	reqBytes  int64
	respBytes int64
}

// Percentile returns the p-th latency percentile (nearest-rank) or zero
// when no calls were recorded.
func (s *ShapeStats) Percentile(p float64) time.Duration {
	if len(s.latencies) == 0 {
		return 0
	}
	sorted := make([]time.Duration, len(s.latencies))
	copy(sorted, s.latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	idx := int(p/100*float64(len(sorted))+0.5) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func (s *ShapeStats) MeanRequestBytes() float64 {
	if s.Calls == 0 {
		return 0
	}
	return float64(s.reqBytes) / float64(s.Calls)
}

func (s *ShapeStats) MeanResponseBytes() float64 {
	if s.Calls == 0 {
		return 0
	}
	return float64(s.respBytes) / float64(s.Calls)
}

// Report is the aggregated outcome of one load run.
type Report struct {
	Protocol string
	Total    ShapeStats
	ByShape  map[Shape]*ShapeStats
}

func newReport(protocol string) *Report {
	return &Report{
		Protocol: protocol,
		ByShape: map[Shape]*ShapeStats{
			ShapeSingle: {},
			ShapeMulti:  {},
			ShapeLarge:  {},
		},
	}
}

func (r *Report) add(c call) {
	for _, stats := range []*ShapeStats{&r.Total, r.ByShape[c.shape]} {
		stats.Calls++
		stats.latencies = append(stats.latencies, c.latency)
		stats.reqBytes += int64(c.outcome.RequestBytes)
		stats.respBytes += int64(c.outcome.ResponseBytes)
		switch {
		case c.err != nil:
			stats.Errors++
		case c.outcome.OK:
			stats.Succeeded++
		}
	}
}

// String renders the human-readable run summary.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "protocol=%s calls=%d ok=%d errors=%d\n",
		r.Protocol, r.Total.Calls, r.Total.Succeeded, r.Total.Errors)
	fmt.Fprintf(&b, "latency p50=%s p90=%s p99=%s\n",
		r.Total.Percentile(50), r.Total.Percentile(90), r.Total.Percentile(99))
	for _, shape := range []Shape{ShapeSingle, ShapeMulti, ShapeLarge} {
		s := r.ByShape[shape]
		fmt.Fprintf(&b, "  %-15s calls=%-6d ok=%-6d p50=%-10s p99=%-10s req=%.0fB resp=%.0fB\n",
			shape, s.Calls, s.Succeeded, s.Percentile(50), s.Percentile(99),
			s.MeanRequestBytes(), s.MeanResponseBytes())
	}
	return b.String()
}

// Summarize flattens the report into a persistable run record.
func (r *Report) Summarize(runID string, workers int, duration time.Duration, seed int64, startedAt time.Time) *runlog.Run {
	ms := func(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
	return &runlog.Run{
		RunID:             runID,
		Protocol:          r.Protocol,
		Workers:           workers,
		Duration:          duration,
		Seed:              seed,
		Calls:             r.Total.Calls,
		Succeeded:         r.Total.Succeeded,
		Errors:            r.Total.Errors,
		P50MS:             ms(r.Total.Percentile(50)),
		P90MS:             ms(r.Total.Percentile(90)),
		P99MS:             ms(r.Total.Percentile(99)),
		MeanRequestBytes:  r.Total.MeanRequestBytes(),
		MeanResponseBytes: r.Total.MeanResponseBytes(),
		StartedAt:         startedAt,
	}
}

// Log emits the summary as structured records alongside the text report.
func (r *Report) Log() {
	slog.Info("load run finished",
		"protocol", r.Protocol,
		"calls", r.Total.Calls,
		"succeeded", r.Total.Succeeded,
		"errors", r.Total.Errors,
		"p50", r.Total.Percentile(50),
		"p90", r.Total.Percentile(90),
		"p99", r.Total.Percentile(99),
	)
}
