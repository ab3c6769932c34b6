package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   float64
}

// NewOrderItem validates the item invariants at construction time. A
// quantity below 1 or a negative price can never reach the services.
func NewOrderItem(productID, productName string, quantity int, unitPrice float64) (OrderItem, error) {
	if productID == "" {
		return OrderItem{}, NewValidation("product_id is required")
	}
	if quantity < 1 {
		return OrderItem{}, NewValidation(fmt.Sprintf("quantity must be at least 1, got %d", quantity))
	}
	if unitPrice < 0 {
		return OrderItem{}, NewValidation(fmt.Sprintf("unit_price must not be negative, got %g", unitPrice))
	}
	return OrderItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}, nil
}

func (i OrderItem) TotalPrice() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// OrderCreate is the validated order-creation request, identical for all
// three protocol bindings.
type OrderCreate struct {
	CustomerID      string
	Items           []OrderItem
	ShippingAddress string
}

func NewOrderCreate(customerID string, items []OrderItem, shippingAddress string) (OrderCreate, error) {
	if customerID == "" {
		return OrderCreate{}, NewValidation("customer_id is required")
	}
	if len(items) == 0 {
		return OrderCreate{}, NewValidation("items must not be empty")
	}
	return OrderCreate{
		CustomerID:      customerID,
		Items:           items,
		ShippingAddress: shippingAddress,
	}, nil
}

type Order struct {
	OrderID         string
	CustomerID      string
	Items           []OrderItem
	ShippingAddress string
	TotalAmount     float64
	Status          OrderStatus
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// OrderFromCreate builds a pending Order from a validated creation request.
// The total is the exact float64 sum of the per-item subtotals so every
// binding reports the same amount.
func OrderFromCreate(c OrderCreate) Order {
	var total float64
	for _, item := range c.Items {
		total += item.TotalPrice()
	}
	return Order{
		OrderID:         uuid.NewString(),
		CustomerID:      c.CustomerID,
		Items:           c.Items,
		ShippingAddress: c.ShippingAddress,
		TotalAmount:     total,
		Status:          OrderPending,
		CreatedAt:       time.Now().UTC(),
	}
}

// OrderResult is the aggregate returned to the original caller.
type OrderResult struct {
	Success               bool
	Order                 *Order
	Payment               *Payment
	Notification          *Notification
	TotalProcessingTimeMS float64
}
