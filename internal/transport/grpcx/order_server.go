package grpcx

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	orderv1 "github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/order/v1"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/order"
)

type OrderServer struct {
	orderv1.UnimplementedOrderServiceServer
	svc *order.Service
}

func NewOrderServer(svc *order.Service) *OrderServer {
	return &OrderServer{svc: svc}
}

func (s *OrderServer) CreateOrder(ctx context.Context, req *orderv1.CreateOrderRequest) (*orderv1.CreateOrderResponse, error) {
	defer metrics.Track(protocol, "order", "create_order")()

	create, err := toOrderCreate(req)
	if err != nil {
		metrics.RecordError(protocol, "order", domain.KindOf(err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := s.svc.CreateOrder(ctx, create)
	if err != nil {
		kind := domain.KindOf(err)
		metrics.RecordError(protocol, "order", kind)
		switch kind {
		case domain.FaultPaymentFailed:
			// Business failure travels in the response body, not the
			// status code, same as the text protocols.
			return &orderv1.CreateOrderResponse{
				Success: false,
				Order:   fromOrder(res.Order),
			}, nil
		case domain.FaultConnection:
			return nil, status.Error(codes.Unavailable, "payment service unavailable")
		default:
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	return &orderv1.CreateOrderResponse{
		Success:               true,
		Order:                 fromOrder(res.Order),
		Payment:               fromPayment(res.Payment),
		Notification:          fromNotification(res.Notification),
		TotalProcessingTimeMs: res.TotalProcessingTimeMS,
	}, nil
}

func toOrderCreate(req *orderv1.CreateOrderRequest) (domain.OrderCreate, error) {
	items := make([]domain.OrderItem, 0, len(req.GetItems()))
	for _, it := range req.GetItems() {
		item, err := domain.NewOrderItem(it.GetProductId(), it.GetProductName(), int(it.GetQuantity()), it.GetUnitPrice())
		if err != nil {
			return domain.OrderCreate{}, err
		}
		items = append(items, item)
	}
	return domain.NewOrderCreate(req.GetCustomerId(), items, req.GetShippingAddress())
}
