// Package notification implements the chain's terminal service. No
// downstream calls are made from here.
package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/clock"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
)

type Service struct {
	sleeper clock.Sleeper
	delay   time.Duration
}

func NewService(sleeper clock.Sleeper, delay time.Duration) *Service {
	return &Service{sleeper: sleeper, delay: delay}
}

// SendNotification synthesizes the confirmation message and simulates the
// send, marking the notification sent on success.
func (s *Service) SendNotification(ctx context.Context, req domain.NotificationRequest) (*domain.NotificationResult, error) {
	start := time.Now()

	notif := domain.NewNotification(req)

	if err := s.sleeper.Sleep(ctx, s.delay); err != nil {
		return nil, domain.NewInternal(err)
	}

	now := time.Now().UTC()
	notif.Status = domain.NotificationSent
	notif.SentAt = &now

	slog.InfoContext(ctx, "notification sent",
		"notification_id", notif.NotificationID,
		"order_id", notif.OrderID,
		"recipient", notif.Recipient,
	)

	return &domain.NotificationResult{
		Success:          true,
		Notification:     &notif,
		ProcessingTimeMS: float64(time.Since(start)) / float64(time.Millisecond),
	}, nil
}
