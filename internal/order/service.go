// Package order implements the order core: build the order, charge it,
// report the aggregate. The same Service backs all three protocol bindings;
// only the injected PaymentClient differs.
package order

import (
	"context"
	"log/slog"
	"time"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
)

// PaymentClient is the downstream port. Each binding provides an adapter
// speaking its own transport; adapters classify connectivity failures as
// domain.FaultConnection so the core never sees raw transport errors.
type PaymentClient interface {
	ProcessPayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error)
}

type Service struct {
	payments PaymentClient
}

func NewService(payments PaymentClient) *Service {
	return &Service{payments: payments}
}

// CreateOrder builds a pending order from an already-validated request and
// issues exactly one payment call. A payment business failure fails the
// whole order; this coupling is the contract, in contrast to the
// payment→notification leg which is decoupled.
func (s *Service) CreateOrder(ctx context.Context, req domain.OrderCreate) (*domain.OrderResult, error) {
	start := time.Now()

	ord := domain.OrderFromCreate(req)
	slog.InfoContext(ctx, "created order", "order_id", ord.OrderID, "total_amount", ord.TotalAmount)

	payReq, err := domain.NewPaymentRequest(ord.OrderID, ord.TotalAmount, domain.DefaultCurrency, domain.MethodCreditCard)
	if err != nil {
		return nil, domain.NewInternal(err)
	}

	payRes, err := s.payments.ProcessPayment(ctx, payReq)
	if err != nil {
		slog.ErrorContext(ctx, "payment call failed", "order_id", ord.OrderID, "error", err)
		return nil, err
	}
	if !payRes.Success {
		slog.WarnContext(ctx, "payment declined", "order_id", ord.OrderID)
		return &domain.OrderResult{Success: false, Order: &ord}, domain.NewPaymentFailed()
	}

	return &domain.OrderResult{
		Success:               true,
		Order:                 &ord,
		Payment:               payRes.Payment,
		Notification:          payRes.Notification,
		TotalProcessingTimeMS: float64(time.Since(start)) / float64(time.Millisecond),
	}, nil
}
