package jsonrpc

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/order"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/wire"
)

// RegisterOrder adds the order methods to the server's registry.
func RegisterOrder(s *Server, svc *order.Service) {
	s.Register("create_order", createOrderMethod(svc))
}

func createOrderMethod(svc *order.Service) HandlerFunc {
	return func(ctx context.Context, params json.RawMessage) (any, *ErrorObject) {
		defer metrics.Track(protocol, "order", "create_order")()

		var req wire.CreateOrderRequest
		if err := json.Unmarshal(params, &req); err != nil {
			metrics.RecordError(protocol, "order", domain.FaultValidation)
			return nil, NewError(CodeInvalidParams, "invalid params")
		}

		oc, err := req.ToDomain()
		if err != nil {
			metrics.RecordError(protocol, "order", domain.FaultValidation)
			return nil, NewError(CodeInvalidParams, err.Error())
		}

		res, err := svc.CreateOrder(ctx, oc)
		if err != nil {
			kind := domain.KindOf(err)
			metrics.RecordError(protocol, "order", kind)
			switch kind {
			case domain.FaultPaymentFailed:
				return nil, NewError(CodeServerError, "payment failed")
			case domain.FaultConnection:
				return nil, NewError(CodeUpstreamUnavailable, "payment service unavailable")
			default:
				slog.ErrorContext(ctx, "create order failed", "error", err)
				return nil, NewError(CodeServerError, "internal error")
			}
		}

		return wire.OrderResponse{
			Success:               true,
			Order:                 wire.FromOrder(res.Order),
			Payment:               wire.FromPayment(res.Payment),
			Notification:          wire.FromNotification(res.Notification),
			TotalProcessingTimeMS: res.TotalProcessingTimeMS,
		}, nil
	}
}
