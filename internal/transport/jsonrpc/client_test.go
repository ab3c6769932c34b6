package jsonrpc

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/wire"
)

func startServer(t *testing.T, method string, fn HandlerFunc) string {
	t.Helper()
	s := NewServer("payment")
	s.Register(method, fn)
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestClient_Call_RoundTrip(t *testing.T) {
	url := startServer(t, "echo", func(_ context.Context, params json.RawMessage) (any, *ErrorObject) {
		var in map[string]string
		require.NoError(t, json.Unmarshal(params, &in))
		return map[string]string{"got": in["say"]}, nil
	})

	var out map[string]string
	err := NewClient(url, time.Second).Call(context.Background(), "echo", map[string]string{"say": "hi"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hi", out["got"])
}

func TestClient_Call_RemoteError(t *testing.T) {
	url := startServer(t, "boom", func(_ context.Context, _ json.RawMessage) (any, *ErrorObject) {
		return nil, NewError(CodeServerError, "payment failed")
	})

	var out struct{}
	err := NewClient(url, time.Second).Call(context.Background(), "boom", nil, &out)

	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, CodeServerError, rpcErr.Code)
	assert.Equal(t, "payment failed", rpcErr.Message)
}

func TestClient_Call_ServerDown(t *testing.T) {
	err := NewClient("http://127.0.0.1:1", 500*time.Millisecond).
		Call(context.Background(), "anything", nil, &struct{}{})
	assert.Equal(t, domain.FaultConnection, domain.KindOf(err))
}

func TestPaymentClient_UpstreamUnavailableMapsToConnectionFault(t *testing.T) {
	url := startServer(t, "process_payment", func(_ context.Context, _ json.RawMessage) (any, *ErrorObject) {
		return nil, NewError(CodeUpstreamUnavailable, "notification service unavailable")
	})

	res, err := NewPaymentClient(url, time.Second).
		ProcessPayment(context.Background(), domain.PaymentRequest{OrderID: "ord_1", PaymentMethod: domain.MethodCreditCard})

	assert.Nil(t, res)
	assert.Equal(t, domain.FaultConnection, domain.KindOf(err))
}

func TestPaymentClient_RemoteErrorIsBusinessFailure(t *testing.T) {
	url := startServer(t, "process_payment", func(_ context.Context, _ json.RawMessage) (any, *ErrorObject) {
		return nil, NewError(CodeServerError, "payment failed")
	})

	res, err := NewPaymentClient(url, time.Second).
		ProcessPayment(context.Background(), domain.PaymentRequest{OrderID: "ord_1", PaymentMethod: domain.MethodCreditCard})

	require.NoError(t, err)
	assert.False(t, res.Success)
}

func TestPaymentClient_Success(t *testing.T) {
	url := startServer(t, "process_payment", func(_ context.Context, _ json.RawMessage) (any, *ErrorObject) {
		return wire.PaymentResponse{
			Success: true,
			Payment: &wire.Payment{
				PaymentID:     "pay_1",
				OrderID:       "ord_1",
				PaymentMethod: "credit_card",
				Status:        "completed",
			},
		}, nil
	})

	res, err := NewPaymentClient(url, time.Second).
		ProcessPayment(context.Background(), domain.PaymentRequest{OrderID: "ord_1", PaymentMethod: domain.MethodCreditCard})

	require.NoError(t, err)
	assert.True(t, res.Success)
	require.NotNil(t, res.Payment)
	assert.Equal(t, "pay_1", res.Payment.PaymentID)
	assert.Equal(t, domain.PaymentCompleted, res.Payment.Status)
}
