package jsonrpc

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/payment"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/wire"
)

func RegisterPayment(s *Server, svc *payment.Service) {
	s.Register("process_payment", processPaymentMethod(svc))
}

func processPaymentMethod(svc *payment.Service) HandlerFunc {
	return func(ctx context.Context, params json.RawMessage) (any, *ErrorObject) {
		defer metrics.Track(protocol, "payment", "process_payment")()

		var req wire.PaymentRequest
		if err := json.Unmarshal(params, &req); err != nil {
			metrics.RecordError(protocol, "payment", domain.FaultValidation)
			return nil, NewError(CodeInvalidParams, "invalid params")
		}

		pr, err := req.ToDomain()
		if err != nil {
			metrics.RecordError(protocol, "payment", domain.FaultValidation)
			return nil, NewError(CodeInvalidParams, err.Error())
		}

		res, err := svc.ProcessPayment(ctx, pr)
		if err != nil {
			metrics.RecordError(protocol, "payment", domain.KindOf(err))
			slog.ErrorContext(ctx, "process payment failed", "error", err)
			return nil, NewError(CodeServerError, "internal error")
		}

		return wire.PaymentResponse{
			Success:          res.Success,
			Payment:          wire.FromPayment(res.Payment),
			Notification:     wire.FromNotification(res.Notification),
			ProcessingTimeMS: res.ProcessingTimeMS,
		}, nil
	}
}
