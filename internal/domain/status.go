package domain

import "fmt"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderPaid       OrderStatus = "paid"
	OrderCompleted  OrderStatus = "completed"
	OrderFailed     OrderStatus = "failed"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case OrderPending, OrderProcessing, OrderPaid, OrderCompleted, OrderFailed:
		return st, nil
	default:
		return "", NewValidation(fmt.Sprintf("unknown order status %q", s))
	}
}

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch st := PaymentStatus(s); st {
	case PaymentPending, PaymentProcessing, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return st, nil
	default:
		return "", NewValidation(fmt.Sprintf("unknown payment status %q", s))
	}
}

type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodDebitCard    PaymentMethod = "debit_card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodPaypal       PaymentMethod = "paypal"
)

// ParsePaymentMethod validates a wire-level payment method string once at
// the transport boundary. Unknown values never propagate further in.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case MethodCreditCard, MethodDebitCard, MethodBankTransfer, MethodPaypal:
		return m, nil
	default:
		return "", NewValidation(fmt.Sprintf("unknown payment method %q", s))
	}
}

type NotificationType string

const (
	TypeEmail NotificationType = "email"
	TypeSMS   NotificationType = "sms"
	TypePush  NotificationType = "push"
)

func ParseNotificationType(s string) (NotificationType, error) {
	switch t := NotificationType(s); t {
	case TypeEmail, TypeSMS, TypePush:
		return t, nil
	default:
		return "", NewValidation(fmt.Sprintf("unknown notification type %q", s))
	}
}

type NotificationStatus string

const (
	NotificationPending   NotificationStatus = "pending"
	NotificationSent      NotificationStatus = "sent"
	NotificationDelivered NotificationStatus = "delivered"
	NotificationFailed    NotificationStatus = "failed"
)

func ParseNotificationStatus(s string) (NotificationStatus, error) {
	switch st := NotificationStatus(s); st {
	case NotificationPending, NotificationSent, NotificationDelivered, NotificationFailed:
		return st, nil
	default:
		return "", NewValidation(fmt.Sprintf("unknown notification status %q", s))
	}
}
