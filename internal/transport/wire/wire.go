// Package wire holds the JSON shapes shared by the REST and JSON-RPC
// bindings, plus the domain conversions. Both text protocols must encode
// entities identically so payload-size comparisons are apples to apples.
package wire

import (
	"time"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
)

type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type CreateOrderRequest struct {
	CustomerID      string      `json:"customer_id"`
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shipping_address"`
}

func (r CreateOrderRequest) ToDomain() (domain.OrderCreate, error) {
	items := make([]domain.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		item, err := domain.NewOrderItem(it.ProductID, it.ProductName, it.Quantity, it.UnitPrice)
		if err != nil {
			return domain.OrderCreate{}, err
		}
		items = append(items, item)
	}
	return domain.NewOrderCreate(r.CustomerID, items, r.ShippingAddress)
}

type Order struct {
	OrderID         string      `json:"order_id"`
	CustomerID      string      `json:"customer_id"`
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shipping_address"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       *time.Time  `json:"updated_at"`
}

type Payment struct {
	PaymentID     string     `json:"payment_id"`
	OrderID       string     `json:"order_id"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	PaymentMethod string     `json:"payment_method"`
	Status        string     `json:"status"`
	TransactionID string     `json:"transaction_id"`
	CreatedAt     time.Time  `json:"created_at"`
	ProcessedAt   *time.Time `json:"processed_at"`
	ErrorMessage  string     `json:"error_message,omitempty"`
}

type Notification struct {
	NotificationID   string     `json:"notification_id"`
	OrderID          string     `json:"order_id"`
	PaymentID        string     `json:"payment_id"`
	Recipient        string     `json:"recipient"`
	NotificationType string     `json:"notification_type"`
	Message          string     `json:"message"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	SentAt           *time.Time `json:"sent_at"`
	DeliveredAt      *time.Time `json:"delivered_at"`
	ErrorMessage     string     `json:"error_message,omitempty"`
}

type OrderResponse struct {
	Success               bool          `json:"success"`
	Order                 *Order        `json:"order,omitempty"`
	Payment               *Payment      `json:"payment,omitempty"`
	Notification          *Notification `json:"notification,omitempty"`
	TotalProcessingTimeMS float64       `json:"total_processing_time_ms"`
}

type PaymentRequest struct {
	OrderID       string  `json:"order_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"payment_method"`
}

func (r PaymentRequest) ToDomain() (domain.PaymentRequest, error) {
	method, err := domain.ParsePaymentMethod(r.PaymentMethod)
	if err != nil {
		return domain.PaymentRequest{}, err
	}
	return domain.NewPaymentRequest(r.OrderID, r.Amount, r.Currency, method)
}

type PaymentResponse struct {
	Success          bool          `json:"success"`
	Payment          *Payment      `json:"payment,omitempty"`
	Notification     *Notification `json:"notification,omitempty"`
	ProcessingTimeMS float64       `json:"processing_time_ms"`
}

type NotificationRequest struct {
	OrderID          string `json:"order_id"`
	PaymentID        string `json:"payment_id"`
	Recipient        string `json:"recipient"`
	NotificationType string `json:"notification_type"`
}

func (r NotificationRequest) ToDomain() (domain.NotificationRequest, error) {
	typ, err := domain.ParseNotificationType(r.NotificationType)
	if err != nil {
		return domain.NotificationRequest{}, err
	}
	return domain.NewNotificationRequest(r.OrderID, r.PaymentID, r.Recipient, typ)
}

type NotificationResponse struct {
	Success          bool          `json:"success"`
	Notification     *Notification `json:"notification,omitempty"`
	ProcessingTimeMS float64       `json:"processing_time_ms"`
}

func FromOrder(o *domain.Order) *Order {
	if o == nil {
		return nil
	}
	items := make([]OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	return &Order{
		OrderID:         o.OrderID,
		CustomerID:      o.CustomerID,
		Items:           items,
		ShippingAddress: o.ShippingAddress,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func FromPayment(p *domain.Payment) *Payment {
	if p == nil {
		return nil
	}
	return &Payment{
		PaymentID:     p.PaymentID,
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentMethod: string(p.PaymentMethod),
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
		ProcessedAt:   p.ProcessedAt,
		ErrorMessage:  p.ErrorMessage,
	}
}

func FromNotification(n *domain.Notification) *Notification {
	if n == nil {
		return nil
	}
	return &Notification{
		NotificationID:   n.NotificationID,
		OrderID:          n.OrderID,
		PaymentID:        n.PaymentID,
		Recipient:        n.Recipient,
		NotificationType: string(n.NotificationType),
		Message:          n.Message,
		Status:           string(n.Status),
		CreatedAt:        n.CreatedAt,
		SentAt:           n.SentAt,
		DeliveredAt:      n.DeliveredAt,
		ErrorMessage:     n.ErrorMessage,
	}
}

func (p *Payment) ToDomain() (*domain.Payment, error) {
	if p == nil {
		return nil, nil
	}
	status, err := domain.ParsePaymentStatus(p.Status)
	if err != nil {
		return nil, err
	}
	method, err := domain.ParsePaymentMethod(p.PaymentMethod)
	if err != nil {
		return nil, err
	}
	return &domain.Payment{
		PaymentID:     p.PaymentID,
		OrderID:       p.OrderID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentMethod: method,
		Status:        status,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
		ProcessedAt:   p.ProcessedAt,
		ErrorMessage:  p.ErrorMessage,
	}, nil
}

func (n *Notification) ToDomain() (*domain.Notification, error) {
	if n == nil {
		return nil, nil
	}
	status, err := domain.ParseNotificationStatus(n.Status)
	if err != nil {
		return nil, err
	}
	typ, err := domain.ParseNotificationType(n.NotificationType)
	if err != nil {
		return nil, err
	}
	return &domain.Notification{
		NotificationID:   n.NotificationID,
		OrderID:          n.OrderID,
		PaymentID:        n.PaymentID,
		Recipient:        n.Recipient,
		NotificationType: typ,
		Message:          n.Message,
		Status:           status,
		CreatedAt:        n.CreatedAt,
		SentAt:           n.SentAt,
		DeliveredAt:      n.DeliveredAt,
		ErrorMessage:     n.ErrorMessage,
	}, nil
}
