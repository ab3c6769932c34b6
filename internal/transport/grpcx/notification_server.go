package grpcx

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	notificationv1 "github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/notification/v1"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/notification"
)

type NotificationServer struct {
	notificationv1.UnimplementedNotificationServiceServer
	svc *notification.Service
}

func NewNotificationServer(svc *notification.Service) *NotificationServer {
	return &NotificationServer{svc: svc}
}

func (s *NotificationServer) SendNotification(ctx context.Context, req *notificationv1.SendNotificationRequest) (*notificationv1.SendNotificationResponse, error) {
	defer metrics.Track(protocol, "notification", "send_notification")()

	typ, ok := notificationTypeFromProto[req.GetNotificationType()]
	if !ok {
		metrics.RecordError(protocol, "notification", domain.FaultValidation)
		return nil, status.Errorf(codes.InvalidArgument, "unknown notification type %v", req.GetNotificationType())
	}
	sendReq, err := domain.NewNotificationRequest(req.GetOrderId(), req.GetPaymentId(), req.GetRecipient(), typ)
	if err != nil {
		metrics.RecordError(protocol, "notification", domain.KindOf(err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := s.svc.SendNotification(ctx, sendReq)
	if err != nil {
		metrics.RecordError(protocol, "notification", domain.KindOf(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &notificationv1.SendNotificationResponse{
		Success:          res.Success,
		Notification:     fromNotification(res.Notification),
		ProcessingTimeMs: res.ProcessingTimeMS,
	}, nil
}
