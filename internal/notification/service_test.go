package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/clock"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
)

func TestSendNotification_Success(t *testing.T) {
	svc := NewService(clock.Nop{}, 0)

	req, err := domain.NewNotificationRequest("ord_1", "pay_1", "customer@example.com", domain.TypeEmail)
	require.NoError(t, err)

	res, err := svc.SendNotification(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, domain.NotificationSent, res.Notification.Status)
	assert.NotNil(t, res.Notification.SentAt)
	assert.Equal(t, "Your order ord_1 has been confirmed. Payment pay_1 processed successfully.",
		res.Notification.Message)
	assert.GreaterOrEqual(t, res.ProcessingTimeMS, 0.0)
}

func TestSendNotification_CancelledContext(t *testing.T) {
	svc := NewService(clock.Nop{}, 0)

	req, err := domain.NewNotificationRequest("ord_1", "pay_1", "customer@example.com", domain.TypeEmail)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.SendNotification(ctx, req)
	assert.Nil(t, res)
	assert.Equal(t, domain.FaultInternal, domain.KindOf(err))
}
