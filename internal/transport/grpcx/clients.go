package grpcx

import (
	"context"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	notificationv1 "github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/notification/v1"
	paymentv1 "github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/payment/v1"
)

// Dial opens a long-lived channel to a downstream service. The
// connection is created once at startup and shared across requests; gRPC
// multiplexes calls over it.
func Dial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             5 * time.Second,
			PermitWithoutStream: true,
		}),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxMessageSize),
			grpc.MaxCallSendMsgSize(maxMessageSize),
		),
	)
}

// classify maps a gRPC call error onto the fault taxonomy. Connectivity
// and deadline failures are retryable from the caller's point of view,
// everything else is internal.
func classify(err error) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return domain.NewUnavailable(err)
	default:
		return domain.NewInternal(err)
	}
}

// PaymentClient adapts the generated payment stub to the order core's port.
type PaymentClient struct {
	stub    paymentv1.PaymentServiceClient
	timeout time.Duration
}

func NewPaymentClient(conn *grpc.ClientConn, timeout time.Duration) *PaymentClient {
	return &PaymentClient{stub: paymentv1.NewPaymentServiceClient(conn), timeout: timeout}
}

func (p *PaymentClient) ProcessPayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
	ctx, cancel := context.WithTimeout(withRequestID(ctx), p.timeout)
	defer cancel()

	resp, err := p.stub.ProcessPayment(ctx, &paymentv1.ProcessPaymentRequest{
		OrderId:       req.OrderID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: paymentMethodToProto[req.PaymentMethod],
	})
	if err != nil {
		return nil, classify(err)
	}
	return &domain.PaymentResult{
		Success:          resp.GetSuccess(),
		Payment:          toPayment(resp.GetPayment()),
		Notification:     toNotification(resp.GetNotification()),
		ProcessingTimeMS: resp.GetProcessingTimeMs(),
	}, nil
}

// NotificationClient adapts the generated notification stub to the payment
// core's port.
type NotificationClient struct {
	stub    notificationv1.NotificationServiceClient
	timeout time.Duration
}

func NewNotificationClient(conn *grpc.ClientConn, timeout time.Duration) *NotificationClient {
	return &NotificationClient{stub: notificationv1.NewNotificationServiceClient(conn), timeout: timeout}
}

func (n *NotificationClient) SendNotification(ctx context.Context, req domain.NotificationRequest) (*domain.NotificationResult, error) {
	ctx, cancel := context.WithTimeout(withRequestID(ctx), n.timeout)
	defer cancel()

	resp, err := n.stub.SendNotification(ctx, &notificationv1.SendNotificationRequest{
		OrderId:          req.OrderID,
		PaymentId:        req.PaymentID,
		Recipient:        req.Recipient,
		NotificationType: notificationTypeToProto[req.NotificationType],
	})
	if err != nil {
		return nil, classify(err)
	}
	return &domain.NotificationResult{
		Success:          resp.GetSuccess(),
		Notification:     toNotification(resp.GetNotification()),
		ProcessingTimeMS: resp.GetProcessingTimeMs(),
	}, nil
}
