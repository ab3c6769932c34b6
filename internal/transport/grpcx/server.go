// Package grpcx is the gRPC binding. Each service registers its generated
// server on a grpc.Server built here, so keepalive, message-size limits and
// metering are identical across the three processes.
package grpcx

import (
	"context"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/protobuf/proto"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
)

const protocol = "grpc"

const maxMessageSize = 50 * 1024 * 1024

// NewServer builds the shared grpc.Server configuration. The service name
// only feeds the metric labels.
func NewServer(service string) *grpc.Server {
	return grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    10 * time.Second,
			Timeout: 5 * time.Second,
		}),
		grpc.MaxRecvMsgSize(maxMessageSize),
		grpc.MaxSendMsgSize(maxMessageSize),
		grpc.ChainUnaryInterceptor(requestIDInterceptor(), meteringInterceptor(service)),
	)
}

// meteringInterceptor observes wire payload sizes and tracks in-flight
// calls. Sizes are the serialized proto sizes, which is what actually
// crossed the wire modulo framing.
func meteringInterceptor(service string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		gauge := metrics.ActiveConnections.WithLabelValues(protocol, service)
		gauge.Inc()
		defer gauge.Dec()

		if msg, ok := req.(proto.Message); ok {
			metrics.ObservePayload(protocol, service, metrics.DirectionRequest, proto.Size(msg))
		}
		resp, err := handler(ctx, req)
		if msg, ok := resp.(proto.Message); ok && err == nil {
			metrics.ObservePayload(protocol, service, metrics.DirectionResponse, proto.Size(msg))
		}
		return resp, err
	}
}
