package jsonrpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/order"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/wire"
)

type mockPayments struct {
	result *domain.PaymentResult
	err    error
}

func (m *mockPayments) ProcessPayment(_ context.Context, _ domain.PaymentRequest) (*domain.PaymentResult, error) {
	return m.result, m.err
}

func newOrderServer(payments order.PaymentClient) http.Handler {
	s := NewServer("order")
	RegisterOrder(s, order.NewService(payments))
	return s.Router()
}

func dispatch(t *testing.T, router http.Handler, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp Response
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestDispatch_ParseError(t *testing.T) {
	rec, resp := dispatch(t, newOrderServer(&mockPayments{}), `{broken`)

	// JSON-RPC always answers HTTP 200; the failure lives in the envelope.
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeParse, resp.Error.Code)
	assert.Equal(t, "null", string(resp.ID))
}

func TestDispatch_InvalidVersion(t *testing.T) {
	_, resp := dispatch(t, newOrderServer(&mockPayments{}),
		`{"jsonrpc": "1.0", "method": "create_order", "id": 1}`)

	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidRequest, resp.Error.Code)
}

func TestDispatch_MethodNotFound(t *testing.T) {
	_, resp := dispatch(t, newOrderServer(&mockPayments{}),
		`{"jsonrpc": "2.0", "method": "cancel_order", "id": 1}`)

	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeMethodNotFound, resp.Error.Code)
	assert.Equal(t, "1", string(resp.ID))
}

func TestDispatch_InvalidParams(t *testing.T) {
	_, resp := dispatch(t, newOrderServer(&mockPayments{}),
		`{"jsonrpc": "2.0", "method": "create_order", "params": {"customer_id": ""}, "id": 2}`)

	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidParams, resp.Error.Code)
}

func TestDispatch_Success(t *testing.T) {
	payments := &mockPayments{result: &domain.PaymentResult{
		Success: true,
		Payment: &domain.Payment{PaymentID: "pay_1", Status: domain.PaymentCompleted, PaymentMethod: domain.MethodCreditCard},
	}}
	_, resp := dispatch(t, newOrderServer(payments), `{
		"jsonrpc": "2.0",
		"method": "create_order",
		"params": {
			"customer_id": "cust_1",
			"items": [{"product_id": "prod_1", "product_name": "Widget", "quantity": 1, "unit_price": 9.99}],
			"shipping_address": "1 Main St"
		},
		"id": 7
	}`)

	require.Nil(t, resp.Error)
	assert.Equal(t, Version, resp.Jsonrpc)
	assert.Equal(t, "7", string(resp.ID))

	raw, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	var out wire.OrderResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, out.Success)
	assert.Equal(t, 9.99, out.Order.TotalAmount)
}

func TestDispatch_PaymentDeclined(t *testing.T) {
	payments := &mockPayments{result: &domain.PaymentResult{Success: false}}
	_, resp := dispatch(t, newOrderServer(payments), `{
		"jsonrpc": "2.0",
		"method": "create_order",
		"params": {
			"customer_id": "cust_1",
			"items": [{"product_id": "prod_1", "product_name": "Widget", "quantity": 1, "unit_price": 9.99}],
			"shipping_address": "1 Main St"
		},
		"id": 8
	}`)

	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeServerError, resp.Error.Code)
	assert.Equal(t, "payment failed", resp.Error.Message)
}

func TestDispatch_NotificationRequestGetsNoBody(t *testing.T) {
	rec, _ := dispatch(t, newOrderServer(&mockPayments{}),
		`{"jsonrpc": "2.0", "method": "create_order"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestHealth(t *testing.T) {
	router := newOrderServer(&mockPayments{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "order-jsonrpc", body["service"])
}
