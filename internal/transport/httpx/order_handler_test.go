package httpx

import (
	"context"
	"encoding/json"
	"errors"
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
	calls  int
}

func (m *mockPayments) ProcessPayment(_ context.Context, _ domain.PaymentRequest) (*domain.PaymentResult, error) {
	m.calls++
	return m.result, m.err
}

func newOrderRouter(payments order.PaymentClient) http.Handler {
	svc := order.NewService(payments)
	return NewRouter("order", NewOrderHandler(svc).Mount)
}

func postOrders(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validOrderBody = `{
	"customer_id": "cust_1",
	"items": [{"product_id": "prod_1", "product_name": "Widget", "quantity": 2, "unit_price": 10.0}],
	"shipping_address": "1 Main St"
}`

func TestHealthEndpoint(t *testing.T) {
	router := newOrderRouter(&mockPayments{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "order-rest", body["service"])
}

func TestCreateOrder_Success(t *testing.T) {
	payments := &mockPayments{result: &domain.PaymentResult{
		Success:      true,
		Payment:      &domain.Payment{PaymentID: "pay_1", Status: domain.PaymentCompleted, PaymentMethod: domain.MethodCreditCard},
		Notification: &domain.Notification{NotificationID: "not_1", Status: domain.NotificationSent, NotificationType: domain.TypeEmail},
	}}
	rec := postOrders(t, newOrderRouter(payments), validOrderBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp wire.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Order)
	assert.Equal(t, 20.0, resp.Order.TotalAmount)
	require.NotNil(t, resp.Payment)
	assert.Equal(t, "pay_1", resp.Payment.PaymentID)
	require.NotNil(t, resp.Notification)
}

func TestCreateOrder_ValidationRejectedBeforeDownstream(t *testing.T) {
	payments := &mockPayments{}
	rec := postOrders(t, newOrderRouter(payments), `{"customer_id": "", "items": []}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, payments.calls)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestCreateOrder_MalformedJSON(t *testing.T) {
	rec := postOrders(t, newOrderRouter(&mockPayments{}), `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_PaymentDeclined(t *testing.T) {
	payments := &mockPayments{result: &domain.PaymentResult{Success: false}}
	rec := postOrders(t, newOrderRouter(payments), validOrderBody)

	// A declined payment is a well-formed negative result, not an HTTP
	// error.
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp wire.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Order)
	assert.Nil(t, resp.Payment)
	assert.Nil(t, resp.Notification)
}

func TestCreateOrder_PaymentUnreachable(t *testing.T) {
	payments := &mockPayments{err: domain.NewUnavailable(errors.New("connection refused"))}
	rec := postOrders(t, newOrderRouter(payments), validOrderBody)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "service_unavailable", resp.Error)
}

func TestCreateOrder_InternalErrorIsGeneric(t *testing.T) {
	payments := &mockPayments{err: domain.NewInternal(errors.New("token leaked into logs"))}
	rec := postOrders(t, newOrderRouter(payments), validOrderBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// The cause never reaches the caller.
	assert.NotContains(t, rec.Body.String(), "token")
}
