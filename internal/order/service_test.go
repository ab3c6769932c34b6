package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
)

// mockPaymentClient implements PaymentClient, capturing the request it was
// given.
type mockPaymentClient struct {
	result *domain.PaymentResult
	err    error
	got    *domain.PaymentRequest
	calls  int
}

func (m *mockPaymentClient) ProcessPayment(_ context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
	m.calls++
	m.got = &req
	return m.result, m.err
}

func validCreate(t *testing.T) domain.OrderCreate {
	t.Helper()
	item, err := domain.NewOrderItem("prod_1", "Widget", 2, 10.0)
	require.NoError(t, err)
	create, err := domain.NewOrderCreate("cust_1", []domain.OrderItem{item}, "1 Main St")
	require.NoError(t, err)
	return create
}

func TestCreateOrder_Success(t *testing.T) {
	pay := &domain.Payment{PaymentID: "pay_1", Status: domain.PaymentCompleted}
	notif := &domain.Notification{NotificationID: "not_1", Status: domain.NotificationSent}
	client := &mockPaymentClient{result: &domain.PaymentResult{
		Success:      true,
		Payment:      pay,
		Notification: notif,
	}}

	res, err := NewService(client).CreateOrder(context.Background(), validCreate(t))
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 20.0, res.Order.TotalAmount)
	assert.Same(t, pay, res.Payment)
	assert.Same(t, notif, res.Notification)
	assert.GreaterOrEqual(t, res.TotalProcessingTimeMS, 0.0)

	// Exactly one charge attempt, for the full order amount.
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, res.Order.OrderID, client.got.OrderID)
	assert.Equal(t, 20.0, client.got.Amount)
	assert.Equal(t, domain.MethodCreditCard, client.got.PaymentMethod)
	assert.Equal(t, domain.DefaultCurrency, client.got.Currency)
}

func TestCreateOrder_PaymentDeclinedFailsOrder(t *testing.T) {
	client := &mockPaymentClient{result: &domain.PaymentResult{Success: false}}

	res, err := NewService(client).CreateOrder(context.Background(), validCreate(t))

	assert.Equal(t, domain.FaultPaymentFailed, domain.KindOf(err))
	require.NotNil(t, res)
	assert.False(t, res.Success)
	require.NotNil(t, res.Order)
	assert.Nil(t, res.Payment)
	assert.Nil(t, res.Notification)
}

func TestCreateOrder_PaymentUnreachable(t *testing.T) {
	client := &mockPaymentClient{err: domain.NewUnavailable(errors.New("connection refused"))}

	res, err := NewService(client).CreateOrder(context.Background(), validCreate(t))

	assert.Nil(t, res)
	assert.Equal(t, domain.FaultConnection, domain.KindOf(err))
}
