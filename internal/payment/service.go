// Package payment implements the payment core: simulate the gateway
// charge, then fire the confirmation notification. The notification leg is
// deliberately decoupled: its failure is logged and metered but never fails
// the payment.
package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/clock"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
)

const (
	defaultRecipient = "customer@example.com"
)

type NotificationClient interface {
	SendNotification(ctx context.Context, req domain.NotificationRequest) (*domain.NotificationResult, error)
}

type Service struct {
	// protocol labels the swallowed notification_failed errors; each
	// binding constructs its own Service instance.
	protocol      string
	notifications NotificationClient
	sleeper       clock.Sleeper
	delay         time.Duration
}

func NewService(protocol string, notifications NotificationClient, sleeper clock.Sleeper, delay time.Duration) *Service {
	return &Service{
		protocol:      protocol,
		notifications: notifications,
		sleeper:       sleeper,
		delay:         delay,
	}
}

// ProcessPayment charges an already-validated request and attempts exactly
// one notification. The payment leg itself has no decline rule today, but
// the success flag keeps a declined payment representable on the wire.
func (s *Service) ProcessPayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
	start := time.Now()

	pay := domain.NewPayment(req)

	// Simulated gateway round trip; the single suspension point of the
	// payment leg.
	if err := s.sleeper.Sleep(ctx, s.delay); err != nil {
		return nil, domain.NewInternal(err)
	}

	now := time.Now().UTC()
	pay.Status = domain.PaymentCompleted
	pay.ProcessedAt = &now

	notifReq, err := domain.NewNotificationRequest(pay.OrderID, pay.PaymentID, defaultRecipient, domain.TypeEmail)
	if err != nil {
		return nil, domain.NewInternal(err)
	}

	var notif *domain.Notification
	notifRes, err := s.notifications.SendNotification(ctx, notifReq)
	switch {
	case err != nil:
		slog.ErrorContext(ctx, "notification call failed", "order_id", pay.OrderID, "error", err)
		metrics.RecordError(s.protocol, "payment", domain.FaultNotificationFailed)
	case !notifRes.Success:
		slog.WarnContext(ctx, "notification not sent", "order_id", pay.OrderID)
		metrics.RecordError(s.protocol, "payment", domain.FaultNotificationFailed)
	default:
		notif = notifRes.Notification
	}

	return &domain.PaymentResult{
		Success:          true,
		Payment:          &pay,
		Notification:     notif,
		ProcessingTimeMS: float64(time.Since(start)) / float64(time.Millisecond),
	}, nil
}
