package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/clock"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
)

type mockNotificationClient struct {
	result *domain.NotificationResult
	err    error
	got    *domain.NotificationRequest
}

func (m *mockNotificationClient) SendNotification(_ context.Context, req domain.NotificationRequest) (*domain.NotificationResult, error) {
	m.got = &req
	return m.result, m.err
}

func validRequest(t *testing.T) domain.PaymentRequest {
	t.Helper()
	req, err := domain.NewPaymentRequest("ord_1", 25.0, "USD", domain.MethodCreditCard)
	require.NoError(t, err)
	return req
}

func TestProcessPayment_Success(t *testing.T) {
	notif := &domain.Notification{NotificationID: "not_1", Status: domain.NotificationSent}
	client := &mockNotificationClient{result: &domain.NotificationResult{Success: true, Notification: notif}}
	svc := NewService("rest", client, clock.Nop{}, 0)

	res, err := svc.ProcessPayment(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, domain.PaymentCompleted, res.Payment.Status)
	assert.NotNil(t, res.Payment.ProcessedAt)
	assert.Same(t, notif, res.Notification)

	// The confirmation goes to the fixed benchmark recipient.
	require.NotNil(t, client.got)
	assert.Equal(t, "ord_1", client.got.OrderID)
	assert.Equal(t, res.Payment.PaymentID, client.got.PaymentID)
	assert.Equal(t, "customer@example.com", client.got.Recipient)
	assert.Equal(t, domain.TypeEmail, client.got.NotificationType)
}

func TestProcessPayment_NotificationErrorDoesNotFailPayment(t *testing.T) {
	client := &mockNotificationClient{err: domain.NewUnavailable(errors.New("connection refused"))}
	svc := NewService("rest", client, clock.Nop{}, 0)

	res, err := svc.ProcessPayment(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, domain.PaymentCompleted, res.Payment.Status)
	assert.Nil(t, res.Notification)
}

func TestProcessPayment_NotificationDeclineDoesNotFailPayment(t *testing.T) {
	client := &mockNotificationClient{result: &domain.NotificationResult{Success: false}}
	svc := NewService("grpc", client, clock.Nop{}, 0)

	res, err := svc.ProcessPayment(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Nil(t, res.Notification)
}

func TestProcessPayment_CancelledContext(t *testing.T) {
	client := &mockNotificationClient{result: &domain.NotificationResult{Success: true}}
	svc := NewService("rest", client, clock.Nop{}, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.ProcessPayment(ctx, validRequest(t))
	assert.Nil(t, res)
	assert.Equal(t, domain.FaultInternal, domain.KindOf(err))
}
