// Package metrics holds the process-wide Prometheus instruments shared by
// every protocol binding. The label schema is part of the benchmark
// contract: identical labels regardless of transport, so the exposition of
// one protocol can be diffed against another.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
)

const (
	DirectionRequest  = "request"
	DirectionResponse = "response"
)

var (
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "request_total",
			Help: "Total number of requests",
		},
		[]string{"protocol", "service", "method"},
	)

	RequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "request_latency_seconds",
			Help:    "Request latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"protocol", "service", "method"},
	)

	PayloadSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payload_size_bytes",
			Help:    "Payload size in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000},
		},
		[]string{"protocol", "service", "direction"},
	)

	ErrorTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "error_total",
			Help: "Total number of errors",
		},
		[]string{"protocol", "service", "error_type"},
	)

	ActiveConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "active_connections",
			Help: "Number of active connections",
		},
		[]string{"protocol", "service"},
	)
)

// Track records one request-count increment immediately and returns a
// function that records exactly one latency observation. Bindings call it
// on entry and defer the result, so both metrics fire regardless of outcome.
func Track(protocol, service, method string) func() {
	RequestTotal.WithLabelValues(protocol, service, method).Inc()
	start := time.Now()
	return func() {
		RequestLatency.WithLabelValues(protocol, service, method).Observe(time.Since(start).Seconds())
	}
}

func RecordError(protocol, service string, kind domain.FaultKind) {
	ErrorTotal.WithLabelValues(protocol, service, string(kind)).Inc()
}

func ObservePayload(protocol, service, direction string, sizeBytes int) {
	PayloadSize.WithLabelValues(protocol, service, direction).Observe(float64(sizeBytes))
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
