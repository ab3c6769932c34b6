package grpcx

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/clock"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	commonv1 "github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/common/v1"
	notificationv1 "github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/notification/v1"
	orderv1 "github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/order/v1"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/notification"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/order"
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

func validCreateOrderRequest() *orderv1.CreateOrderRequest {
	return &orderv1.CreateOrderRequest{
		CustomerId: "cust_1",
		Items: []*commonv1.OrderItem{
			{ProductId: "prod_1", ProductName: "Widget", Quantity: 2, UnitPrice: 10.0},
		},
		ShippingAddress: "1 Main St",
	}
}

func TestCreateOrder_Success(t *testing.T) {
	payments := &mockPayments{result: &domain.PaymentResult{
		Success: true,
		Payment: &domain.Payment{PaymentID: "pay_1", Status: domain.PaymentCompleted, PaymentMethod: domain.MethodCreditCard},
	}}
	srv := NewOrderServer(order.NewService(payments))

	resp, err := srv.CreateOrder(context.Background(), validCreateOrderRequest())
	require.NoError(t, err)

	assert.True(t, resp.GetSuccess())
	assert.Equal(t, 20.0, resp.GetOrder().GetTotalAmount())
	assert.Equal(t, commonv1.OrderStatus_PENDING, resp.GetOrder().GetStatus())
	assert.Equal(t, "pay_1", resp.GetPayment().GetPaymentId())
	assert.Equal(t, commonv1.PaymentStatus_PAYMENT_COMPLETED, resp.GetPayment().GetStatus())
}

func TestCreateOrder_ValidationRejectedBeforeDownstream(t *testing.T) {
	payments := &mockPayments{}
	srv := NewOrderServer(order.NewService(payments))

	_, err := srv.CreateOrder(context.Background(), &orderv1.CreateOrderRequest{CustomerId: "cust_1"})

	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, 0, payments.calls)
}

func TestCreateOrder_PaymentDeclined(t *testing.T) {
	payments := &mockPayments{result: &domain.PaymentResult{Success: false}}
	srv := NewOrderServer(order.NewService(payments))

	resp, err := srv.CreateOrder(context.Background(), validCreateOrderRequest())

	// Declined stays an OK-status response with success=false, mirroring
	// the text protocols.
	require.NoError(t, err)
	assert.False(t, resp.GetSuccess())
	assert.NotNil(t, resp.GetOrder())
	assert.Nil(t, resp.GetPayment())
}

func TestCreateOrder_PaymentUnreachable(t *testing.T) {
	payments := &mockPayments{err: domain.NewUnavailable(errors.New("connection refused"))}
	srv := NewOrderServer(order.NewService(payments))

	_, err := srv.CreateOrder(context.Background(), validCreateOrderRequest())
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestSendNotification_Success(t *testing.T) {
	srv := NewNotificationServer(notification.NewService(clock.Nop{}, 0))

	resp, err := srv.SendNotification(context.Background(), &notificationv1.SendNotificationRequest{
		OrderId:          "ord_1",
		PaymentId:        "pay_1",
		Recipient:        "customer@example.com",
		NotificationType: commonv1.NotificationType_EMAIL,
	})
	require.NoError(t, err)

	assert.True(t, resp.GetSuccess())
	assert.Equal(t, commonv1.NotificationStatus_SENT, resp.GetNotification().GetStatus())
	assert.NotNil(t, resp.GetNotification().GetSentAt())
	assert.Contains(t, resp.GetNotification().GetMessage(), "Your order ord_1")
}

func TestSendNotification_MissingPaymentID(t *testing.T) {
	srv := NewNotificationServer(notification.NewService(clock.Nop{}, 0))

	_, err := srv.SendNotification(context.Background(), &notificationv1.SendNotificationRequest{
		OrderId:   "ord_1",
		Recipient: "customer@example.com",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
