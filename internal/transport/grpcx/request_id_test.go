package grpcx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

func TestRequestIDInterceptorKeepsInboundID(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(requestIDHeader, "req-123"))

	var seen string
	_, err := requestIDInterceptor()(ctx, nil, nil, func(ctx context.Context, _ any) (any, error) {
		seen = RequestIDFromContext(ctx)
		return nil, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "req-123", seen)
}

func TestRequestIDInterceptorMintsIDWhenAbsent(t *testing.T) {
	var seen string
	_, err := requestIDInterceptor()(context.Background(), nil, nil, func(ctx context.Context, _ any) (any, error) {
		seen = RequestIDFromContext(ctx)
		return nil, nil
	})

	require.NoError(t, err)
	assert.NotEmpty(t, seen)
}

func TestWithRequestIDForwardsInboundID(t *testing.T) {
	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-abc")

	md, ok := metadata.FromOutgoingContext(withRequestID(ctx))
	require.True(t, ok)
	assert.Equal(t, []string{"req-abc"}, md.Get(requestIDHeader))
}
