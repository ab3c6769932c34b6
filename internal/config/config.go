// Package config reads service configuration from the environment, with
// defaults matching the benchmark's fixed port layout:
//
//	REST      order :8001  payment :8002  notification :8003
//	JSON-RPC  order :8011  payment :8012  notification :8013
//	gRPC      order :8021  payment :8022  notification :8023
//	gRPC Prometheus exposition on :9021/:9022/:9023
package config

import (
	"os"
	"time"
)

// Service is the per-process configuration. Downstream fields are set only
// for services that make outbound calls.
type Service struct {
	Name string

	RESTPort    string
	JSONRPCPort string
	GRPCPort    string
	MetricsPort string

	// Downstream peer, one address per binding so each protocol chain
	// stays on its own transport end to end.
	DownstreamRESTURL    string
	DownstreamJSONRPCURL string
	DownstreamGRPCAddr   string

	// Every downstream call runs under this timeout; expiry is reported
	// as the same "service unavailable" class as a refused connection.
	ClientTimeout time.Duration

	// Simulated external-gateway latency.
	ProcessingDelay time.Duration

	OTLPEndpoint string
}

func Order() Service {
	return Service{
		Name:                 "order",
		RESTPort:             getEnv("ORDER_REST_PORT", "8001"),
		JSONRPCPort:          getEnv("ORDER_JSONRPC_PORT", "8011"),
		GRPCPort:             getEnv("ORDER_GRPC_PORT", "8021"),
		MetricsPort:          getEnv("ORDER_METRICS_PORT", "9021"),
		DownstreamRESTURL:    getEnv("PAYMENT_SERVICE_URL", "http://localhost:8002"),
		DownstreamJSONRPCURL: getEnv("PAYMENT_SERVICE_JSONRPC_URL", "http://localhost:8012"),
		DownstreamGRPCAddr:   getEnv("PAYMENT_SERVICE_GRPC_ADDR", "localhost:8022"),
		ClientTimeout:        getDuration("CLIENT_TIMEOUT", 30*time.Second),
		OTLPEndpoint:         os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

func Payment() Service {
	return Service{
		Name:                 "payment",
		RESTPort:             getEnv("PAYMENT_REST_PORT", "8002"),
		JSONRPCPort:          getEnv("PAYMENT_JSONRPC_PORT", "8012"),
		GRPCPort:             getEnv("PAYMENT_GRPC_PORT", "8022"),
		MetricsPort:          getEnv("PAYMENT_METRICS_PORT", "9022"),
		DownstreamRESTURL:    getEnv("NOTIFICATION_SERVICE_URL", "http://localhost:8003"),
		DownstreamJSONRPCURL: getEnv("NOTIFICATION_SERVICE_JSONRPC_URL", "http://localhost:8013"),
		DownstreamGRPCAddr:   getEnv("NOTIFICATION_SERVICE_GRPC_ADDR", "localhost:8023"),
		ClientTimeout:        getDuration("CLIENT_TIMEOUT", 30*time.Second),
		ProcessingDelay:      getDuration("PAYMENT_PROCESSING_DELAY", 10*time.Millisecond),
		OTLPEndpoint:         os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

func Notification() Service {
	return Service{
		Name:            "notification",
		RESTPort:        getEnv("NOTIFICATION_REST_PORT", "8003"),
		JSONRPCPort:     getEnv("NOTIFICATION_JSONRPC_PORT", "8013"),
		GRPCPort:        getEnv("NOTIFICATION_GRPC_PORT", "8023"),
		MetricsPort:     getEnv("NOTIFICATION_METRICS_PORT", "9023"),
		ClientTimeout:   getDuration("CLIENT_TIMEOUT", 30*time.Second),
		ProcessingDelay: getDuration("NOTIFICATION_SEND_DELAY", 5*time.Millisecond),
		OTLPEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
