package domain

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItem_Validation(t *testing.T) {
	_, err := NewOrderItem("", "Widget", 1, 9.99)
	assert.Equal(t, FaultValidation, KindOf(err))

	_, err = NewOrderItem("prod_1", "Widget", 0, 9.99)
	assert.Equal(t, FaultValidation, KindOf(err))

	_, err = NewOrderItem("prod_1", "Widget", 1, -0.01)
	assert.Equal(t, FaultValidation, KindOf(err))

	item, err := NewOrderItem("prod_1", "Widget", 2, 9.99)
	require.NoError(t, err)
	assert.Equal(t, "prod_1", item.ProductID)
}

func TestNewOrderCreate_Validation(t *testing.T) {
	item, err := NewOrderItem("prod_1", "Widget", 1, 1.0)
	require.NoError(t, err)

	_, err = NewOrderCreate("", []OrderItem{item}, "addr")
	assert.Equal(t, FaultValidation, KindOf(err))

	_, err = NewOrderCreate("cust_1", nil, "addr")
	assert.Equal(t, FaultValidation, KindOf(err))
}

func TestOrderFromCreate_TotalIsExactItemSum(t *testing.T) {
	items := []OrderItem{
		{ProductID: "prod_1", Quantity: 2, UnitPrice: 10.0},
		{ProductID: "prod_2", Quantity: 1, UnitPrice: 5.5},
	}
	create, err := NewOrderCreate("cust_1", items, "addr")
	require.NoError(t, err)

	ord := OrderFromCreate(create)
	assert.Equal(t, 25.5, ord.TotalAmount)
	assert.Equal(t, OrderPending, ord.Status)
	assert.NotEmpty(t, ord.OrderID)
	assert.Nil(t, ord.UpdatedAt)
}

func TestNewPaymentRequest_DefaultsCurrency(t *testing.T) {
	req, err := NewPaymentRequest("ord_1", 10.0, "", MethodCreditCard)
	require.NoError(t, err)
	assert.Equal(t, DefaultCurrency, req.Currency)

	_, err = NewPaymentRequest("", 10.0, "USD", MethodCreditCard)
	assert.Equal(t, FaultValidation, KindOf(err))

	_, err = NewPaymentRequest("ord_1", -1, "USD", MethodCreditCard)
	assert.Equal(t, FaultValidation, KindOf(err))

	_, err = NewPaymentRequest("ord_1", 10.0, "USD", PaymentMethod("cash"))
	assert.Equal(t, FaultValidation, KindOf(err))
}

func TestNewPayment_TransactionIDFormat(t *testing.T) {
	req, err := NewPaymentRequest("ord_1", 10.0, "USD", MethodCreditCard)
	require.NoError(t, err)

	pay := NewPayment(req)
	assert.Regexp(t, regexp.MustCompile(`^txn_[0-9a-f]{12}$`), pay.TransactionID)
	assert.Equal(t, PaymentProcessing, pay.Status)
	assert.Nil(t, pay.ProcessedAt)
}

func TestNewNotification_MessageText(t *testing.T) {
	req, err := NewNotificationRequest("ord_1", "pay_1", "customer@example.com", TypeEmail)
	require.NoError(t, err)

	notif := NewNotification(req)
	assert.Equal(t, "Your order ord_1 has been confirmed. Payment pay_1 processed successfully.", notif.Message)
	assert.Equal(t, NotificationPending, notif.Status)
}

func TestParseStatus_RejectsUnknown(t *testing.T) {
	_, err := ParseOrderStatus("shipped")
	assert.Equal(t, FaultValidation, KindOf(err))

	_, err = ParsePaymentStatus("declined")
	assert.Equal(t, FaultValidation, KindOf(err))

	_, err = ParseNotificationType("fax")
	assert.Equal(t, FaultValidation, KindOf(err))

	st, err := ParsePaymentStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, PaymentCompleted, st)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, FaultPaymentFailed, KindOf(NewPaymentFailed()))
	assert.Equal(t, FaultConnection, KindOf(NewUnavailable(errors.New("refused"))))
	assert.Equal(t, FaultInternal, KindOf(errors.New("anything else")))

	wrapped := NewUnavailable(errors.New("refused"))
	var fault *Fault
	require.ErrorAs(t, wrapped, &fault)
	assert.Equal(t, FaultConnection, fault.Kind)
}
