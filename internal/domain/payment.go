package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const DefaultCurrency = "USD"

type PaymentRequest struct {
	OrderID       string
	Amount        float64
	Currency      string
	PaymentMethod PaymentMethod
}

func NewPaymentRequest(orderID string, amount float64, currency string, method PaymentMethod) (PaymentRequest, error) {
	if orderID == "" {
		return PaymentRequest{}, NewValidation("order_id is required")
	}
	if amount < 0 {
		return PaymentRequest{}, NewValidation(fmt.Sprintf("amount must not be negative, got %g", amount))
	}
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return PaymentRequest{}, err
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return PaymentRequest{
		OrderID:       orderID,
		Amount:        amount,
		Currency:      currency,
		PaymentMethod: method,
	}, nil
}

type Payment struct {
	PaymentID     string
	OrderID       string
	Amount        float64
	Currency      string
	PaymentMethod PaymentMethod
	Status        PaymentStatus
	TransactionID string
	CreatedAt     time.Time
	ProcessedAt   *time.Time
	ErrorMessage  string
}

// NewPayment opens a processing payment with a fresh transaction token.
func NewPayment(req PaymentRequest) Payment {
	return Payment{
		PaymentID:     uuid.NewString(),
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: req.PaymentMethod,
		Status:        PaymentProcessing,
		TransactionID: newTransactionID(),
		CreatedAt:     time.Now().UTC(),
	}
}

// newTransactionID produces the txn_<12 hex> gateway token format.
func newTransactionID() string {
	id := uuid.New()
	return fmt.Sprintf("txn_%x", id[:6])
}

type PaymentResult struct {
	Success          bool
	Payment          *Payment
	Notification     *Notification
	ProcessingTimeMS float64
}
