package jsonrpc

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/notification"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/wire"
)

func RegisterNotification(s *Server, svc *notification.Service) {
	s.Register("send_notification", sendNotificationMethod(svc))
}

func sendNotificationMethod(svc *notification.Service) HandlerFunc {
	return func(ctx context.Context, params json.RawMessage) (any, *ErrorObject) {
		defer metrics.Track(protocol, "notification", "send_notification")()

		var req wire.NotificationRequest
		if err := json.Unmarshal(params, &req); err != nil {
			metrics.RecordError(protocol, "notification", domain.FaultValidation)
			return nil, NewError(CodeInvalidParams, "invalid params")
		}

		nr, err := req.ToDomain()
		if err != nil {
			metrics.RecordError(protocol, "notification", domain.FaultValidation)
			return nil, NewError(CodeInvalidParams, err.Error())
		}

		res, err := svc.SendNotification(ctx, nr)
		if err != nil {
			metrics.RecordError(protocol, "notification", domain.KindOf(err))
			slog.ErrorContext(ctx, "send notification failed", "error", err)
			return nil, NewError(CodeServerError, "internal error")
		}

		return wire.NotificationResponse{
			Success:          res.Success,
			Notification:     wire.FromNotification(res.Notification),
			ProcessingTimeMS: res.ProcessingTimeMS,
		}, nil
	}
}
