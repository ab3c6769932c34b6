package grpcx

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	commonv1 "github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/common/v1"
)

var (
	orderStatusToProto = map[domain.OrderStatus]commonv1.OrderStatus{
		domain.OrderPending:    commonv1.OrderStatus_PENDING,
		domain.OrderProcessing: commonv1.OrderStatus_PROCESSING,
		domain.OrderPaid:       commonv1.OrderStatus_PAID,
		domain.OrderCompleted:  commonv1.OrderStatus_COMPLETED,
		domain.OrderFailed:     commonv1.OrderStatus_FAILED,
	}

	paymentStatusToProto = map[domain.PaymentStatus]commonv1.PaymentStatus{
		domain.PaymentPending:    commonv1.PaymentStatus_PAYMENT_PENDING,
		domain.PaymentProcessing: commonv1.PaymentStatus_PAYMENT_PROCESSING,
		domain.PaymentCompleted:  commonv1.PaymentStatus_PAYMENT_COMPLETED,
		domain.PaymentFailed:     commonv1.PaymentStatus_PAYMENT_FAILED,
		domain.PaymentRefunded:   commonv1.PaymentStatus_PAYMENT_REFUNDED,
	}
	paymentStatusFromProto = map[commonv1.PaymentStatus]domain.PaymentStatus{
		commonv1.PaymentStatus_PAYMENT_PENDING:    domain.PaymentPending,
		commonv1.PaymentStatus_PAYMENT_PROCESSING: domain.PaymentProcessing,
		commonv1.PaymentStatus_PAYMENT_COMPLETED:  domain.PaymentCompleted,
		commonv1.PaymentStatus_PAYMENT_FAILED:     domain.PaymentFailed,
		commonv1.PaymentStatus_PAYMENT_REFUNDED:   domain.PaymentRefunded,
	}

	paymentMethodToProto = map[domain.PaymentMethod]commonv1.PaymentMethod{
		domain.MethodCreditCard:   commonv1.PaymentMethod_CREDIT_CARD,
		domain.MethodDebitCard:    commonv1.PaymentMethod_DEBIT_CARD,
		domain.MethodBankTransfer: commonv1.PaymentMethod_BANK_TRANSFER,
		domain.MethodPaypal:       commonv1.PaymentMethod_PAYPAL,
	}
	paymentMethodFromProto = map[commonv1.PaymentMethod]domain.PaymentMethod{
		commonv1.PaymentMethod_CREDIT_CARD:   domain.MethodCreditCard,
		commonv1.PaymentMethod_DEBIT_CARD:    domain.MethodDebitCard,
		commonv1.PaymentMethod_BANK_TRANSFER: domain.MethodBankTransfer,
		commonv1.PaymentMethod_PAYPAL:        domain.MethodPaypal,
	}

	notificationTypeToProto = map[domain.NotificationType]commonv1.NotificationType{
		domain.TypeEmail: commonv1.NotificationType_EMAIL,
		domain.TypeSMS:   commonv1.NotificationType_SMS,
		domain.TypePush:  commonv1.NotificationType_PUSH,
	}
	notificationTypeFromProto = map[commonv1.NotificationType]domain.NotificationType{
		commonv1.NotificationType_EMAIL: domain.TypeEmail,
		commonv1.NotificationType_SMS:   domain.TypeSMS,
		commonv1.NotificationType_PUSH:  domain.TypePush,
	}

	notificationStatusToProto = map[domain.NotificationStatus]commonv1.NotificationStatus{
		domain.NotificationPending:   commonv1.NotificationStatus_NOTIFICATION_PENDING,
		domain.NotificationSent:      commonv1.NotificationStatus_SENT,
		domain.NotificationDelivered: commonv1.NotificationStatus_DELIVERED,
		domain.NotificationFailed:    commonv1.NotificationStatus_NOTIFICATION_FAILED,
	}
	notificationStatusFromProto = map[commonv1.NotificationStatus]domain.NotificationStatus{
		commonv1.NotificationStatus_NOTIFICATION_PENDING: domain.NotificationPending,
		commonv1.NotificationStatus_SENT:                 domain.NotificationSent,
		commonv1.NotificationStatus_DELIVERED:            domain.NotificationDelivered,
		commonv1.NotificationStatus_NOTIFICATION_FAILED:  domain.NotificationFailed,
	}
)

func fromOrder(o *domain.Order) *commonv1.Order {
	if o == nil {
		return nil
	}
	items := make([]*commonv1.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = &commonv1.OrderItem{
			ProductId:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    int32(it.Quantity),
			UnitPrice:   it.UnitPrice,
		}
	}
	out := &commonv1.Order{
		OrderId:         o.OrderID,
		CustomerId:      o.CustomerID,
		Items:           items,
		ShippingAddress: o.ShippingAddress,
		TotalAmount:     o.TotalAmount,
		Status:          orderStatusToProto[o.Status],
		CreatedAt:       timestamppb.New(o.CreatedAt),
	}
	if o.UpdatedAt != nil {
		out.UpdatedAt = timestamppb.New(*o.UpdatedAt)
	}
	return out
}

func fromPayment(p *domain.Payment) *commonv1.Payment {
	if p == nil {
		return nil
	}
	out := &commonv1.Payment{
		PaymentId:     p.PaymentID,
		OrderId:       p.OrderID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentMethod: paymentMethodToProto[p.PaymentMethod],
		Status:        paymentStatusToProto[p.Status],
		TransactionId: p.TransactionID,
		CreatedAt:     timestamppb.New(p.CreatedAt),
		ErrorMessage:  p.ErrorMessage,
	}
	if p.ProcessedAt != nil {
		out.ProcessedAt = timestamppb.New(*p.ProcessedAt)
	}
	return out
}

func fromNotification(n *domain.Notification) *commonv1.Notification {
	if n == nil {
		return nil
	}
	out := &commonv1.Notification{
		NotificationId:   n.NotificationID,
		OrderId:          n.OrderID,
		PaymentId:        n.PaymentID,
		Recipient:        n.Recipient,
		NotificationType: notificationTypeToProto[n.NotificationType],
		Message:          n.Message,
		Status:           notificationStatusToProto[n.Status],
		CreatedAt:        timestamppb.New(n.CreatedAt),
		ErrorMessage:     n.ErrorMessage,
	}
	if n.SentAt != nil {
		out.SentAt = timestamppb.New(*n.SentAt)
	}
	if n.DeliveredAt != nil {
		out.DeliveredAt = timestamppb.New(*n.DeliveredAt)
	}
	return out
}

func toPayment(p *commonv1.Payment) *domain.Payment {
	if p == nil {
		return nil
	}
	out := &domain.Payment{
		PaymentID:     p.GetPaymentId(),
		OrderID:       p.GetOrderId(),
		Amount:        p.GetAmount(),
		Currency:      p.GetCurrency(),
		PaymentMethod: paymentMethodFromProto[p.GetPaymentMethod()],
		Status:        paymentStatusFromProto[p.GetStatus()],
		TransactionID: p.GetTransactionId(),
		ErrorMessage:  p.GetErrorMessage(),
	}
	if ts := p.GetCreatedAt(); ts != nil {
		out.CreatedAt = ts.AsTime()
	}
	if ts := p.GetProcessedAt(); ts != nil {
		t := ts.AsTime()
		out.ProcessedAt = &t
	}
	return out
}

func toNotification(n *commonv1.Notification) *domain.Notification {
	if n == nil {
		return nil
	}
	out := &domain.Notification{
		NotificationID:   n.GetNotificationId(),
		OrderID:          n.GetOrderId(),
		PaymentID:        n.GetPaymentId(),
		Recipient:        n.GetRecipient(),
		NotificationType: notificationTypeFromProto[n.GetNotificationType()],
		Message:          n.GetMessage(),
		Status:           notificationStatusFromProto[n.GetStatus()],
		ErrorMessage:     n.GetErrorMessage(),
	}
	if ts := n.GetCreatedAt(); ts != nil {
		out.CreatedAt = ts.AsTime()
	}
	if ts := n.GetSentAt(); ts != nil {
		t := ts.AsTime()
		out.SentAt = &t
	}
	if ts := n.GetDeliveredAt(); ts != nil {
		t := ts.AsTime()
		out.DeliveredAt = &t
	}
	return out
}
