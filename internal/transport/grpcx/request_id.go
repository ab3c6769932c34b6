package grpcx

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// requestIDHeader carries the caller-assigned request id, mirroring the
// X-Request-Id header the HTTP bindings get from chi middleware.
const requestIDHeader = "x-request-id"

type requestIDKey struct{}

// RequestIDFromContext returns the request id assigned by the server
// interceptor, or "" outside a gRPC call.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func requestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var id string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(requestIDHeader); len(ids) > 0 {
				id = ids[0]
			}
		}
		if id == "" {
			id = uuid.NewString()
		}
		return handler(context.WithValue(ctx, requestIDKey{}, id), req)
	}
}

// withRequestID forwards the inbound request id (or mints one) on an
// outgoing downstream call so a chain can be followed end to end.
func withRequestID(ctx context.Context) context.Context {
	id := RequestIDFromContext(ctx)
	if id == "" {
		id = uuid.NewString()
	}
	return metadata.AppendToOutgoingContext(ctx, requestIDHeader, id)
}
