package grpcx

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	paymentv1 "github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/payment/v1"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/payment"
)

type PaymentServer struct {
	paymentv1.UnimplementedPaymentServiceServer
	svc *payment.Service
}

func NewPaymentServer(svc *payment.Service) *PaymentServer {
	return &PaymentServer{svc: svc}
}

func (s *PaymentServer) ProcessPayment(ctx context.Context, req *paymentv1.ProcessPaymentRequest) (*paymentv1.ProcessPaymentResponse, error) {
	defer metrics.Track(protocol, "payment", "process_payment")()

	method, ok := paymentMethodFromProto[req.GetPaymentMethod()]
	if !ok {
		metrics.RecordError(protocol, "payment", domain.FaultValidation)
		return nil, status.Errorf(codes.InvalidArgument, "unknown payment method %v", req.GetPaymentMethod())
	}
	payReq, err := domain.NewPaymentRequest(req.GetOrderId(), req.GetAmount(), req.GetCurrency(), method)
	if err != nil {
		metrics.RecordError(protocol, "payment", domain.KindOf(err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := s.svc.ProcessPayment(ctx, payReq)
	if err != nil {
		metrics.RecordError(protocol, "payment", domain.KindOf(err))
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &paymentv1.ProcessPaymentResponse{
		Success:          res.Success,
		Payment:          fromPayment(res.Payment),
		Notification:     fromNotification(res.Notification),
		ProcessingTimeMs: res.ProcessingTimeMS,
	}, nil
}
