package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/clock"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/payment"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/wire"
)

type mockNotifications struct {
	result *domain.NotificationResult
	err    error
}

func (m *mockNotifications) SendNotification(_ context.Context, _ domain.NotificationRequest) (*domain.NotificationResult, error) {
	return m.result, m.err
}

func newPaymentRouter(notifications payment.NotificationClient) http.Handler {
	svc := payment.NewService("rest", notifications, clock.Nop{}, 0)
	return NewRouter("payment", NewPaymentHandler(svc).Mount)
}

func TestProcessPayment_Success(t *testing.T) {
	notifications := &mockNotifications{result: &domain.NotificationResult{
		Success:      true,
		Notification: &domain.Notification{NotificationID: "not_1", Status: domain.NotificationSent, NotificationType: domain.TypeEmail},
	}}
	router := newPaymentRouter(notifications)

	body := `{"order_id": "ord_1", "amount": 25.0, "currency": "USD", "payment_method": "credit_card"}`
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp wire.PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Payment)
	assert.Equal(t, "completed", resp.Payment.Status)
	assert.NotNil(t, resp.Notification)
}

func TestProcessPayment_UnknownMethodRejected(t *testing.T) {
	router := newPaymentRouter(&mockNotifications{})

	body := `{"order_id": "ord_1", "amount": 25.0, "currency": "USD", "payment_method": "cash"}`
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
