package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type NotificationRequest struct {
	OrderID          string
	PaymentID        string
	Recipient        string
	NotificationType NotificationType
}

func NewNotificationRequest(orderID, paymentID, recipient string, typ NotificationType) (NotificationRequest, error) {
	if orderID == "" {
		return NotificationRequest{}, NewValidation("order_id is required")
	}
	if paymentID == "" {
		return NotificationRequest{}, NewValidation("payment_id is required")
	}
	if _, err := ParseNotificationType(string(typ)); err != nil {
		return NotificationRequest{}, err
	}
	return NotificationRequest{
		OrderID:          orderID,
		PaymentID:        paymentID,
		Recipient:        recipient,
		NotificationType: typ,
	}, nil
}

type Notification struct {
	NotificationID   string
	OrderID          string
	PaymentID        string
	Recipient        string
	NotificationType NotificationType
	Message          string
	Status           NotificationStatus
	CreatedAt        time.Time
	SentAt           *time.Time
	DeliveredAt      *time.Time
	ErrorMessage     string
}

// NewNotification builds a pending notification with the deterministic
// confirmation message every binding must produce verbatim.
func NewNotification(req NotificationRequest) Notification {
	return Notification{
		NotificationID:   uuid.NewString(),
		OrderID:          req.OrderID,
		PaymentID:        req.PaymentID,
		Recipient:        req.Recipient,
		NotificationType: req.NotificationType,
		Message: fmt.Sprintf(
			"Your order %s has been confirmed. Payment %s processed successfully.",
			req.OrderID, req.PaymentID,
		),
		Status:    NotificationPending,
		CreatedAt: time.Now().UTC(),
	}
}

type NotificationResult struct {
	Success          bool
	Notification     *Notification
	ProcessingTimeMS float64
}
