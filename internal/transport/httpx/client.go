package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/wire"
)

// newHTTPClient builds the single pooled client a service process keeps for
// its downstream peer. Connection setup must not recur per request or it
// would skew the benchmark toward protocols with cheaper handshakes.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        200,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// PaymentClient is the REST adapter for the order core's payment port.
type PaymentClient struct {
	baseURL string
	hc      *http.Client
}

func NewPaymentClient(baseURL string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{baseURL: baseURL, hc: newHTTPClient(timeout)}
}

func (c *PaymentClient) ProcessPayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
	var resp wire.PaymentResponse
	if err := postJSON(ctx, c.hc, c.baseURL+"/payments", wire.PaymentRequest{
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: string(req.PaymentMethod),
	}, &resp); err != nil {
		return nil, err
	}

	pay, err := resp.Payment.ToDomain()
	if err != nil {
		return nil, domain.NewInternal(err)
	}
	notif, err := resp.Notification.ToDomain()
	if err != nil {
		return nil, domain.NewInternal(err)
	}
	return &domain.PaymentResult{
		Success:          resp.Success,
		Payment:          pay,
		Notification:     notif,
		ProcessingTimeMS: resp.ProcessingTimeMS,
	}, nil
}

// NotificationClient is the REST adapter for the payment core's
// notification port.
type NotificationClient struct {
	baseURL string
	hc      *http.Client
}

func NewNotificationClient(baseURL string, timeout time.Duration) *NotificationClient {
	return &NotificationClient{baseURL: baseURL, hc: newHTTPClient(timeout)}
}

func (c *NotificationClient) SendNotification(ctx context.Context, req domain.NotificationRequest) (*domain.NotificationResult, error) {
	var resp wire.NotificationResponse
	if err := postJSON(ctx, c.hc, c.baseURL+"/notifications", wire.NotificationRequest{
		OrderID:          req.OrderID,
		PaymentID:        req.PaymentID,
		Recipient:        req.Recipient,
		NotificationType: string(req.NotificationType),
	}, &resp); err != nil {
		return nil, err
	}

	notif, err := resp.Notification.ToDomain()
	if err != nil {
		return nil, domain.NewInternal(err)
	}
	return &domain.NotificationResult{
		Success:          resp.Success,
		Notification:     notif,
		ProcessingTimeMS: resp.ProcessingTimeMS,
	}, nil
}

// postJSON performs one POST and classifies the outcome: network-level
// failures and 503s become FaultConnection, every other non-200 is an
// internal fault. A business failure arrives as 200 with success=false and
// is decoded like any other response.
func postJSON(ctx context.Context, hc *http.Client, url string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return domain.NewInternal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return domain.NewInternal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return domain.NewUnavailable(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewUnavailable(err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.Unmarshal(data, out); err != nil {
			return domain.NewInternal(err)
		}
		return nil
	case resp.StatusCode == http.StatusServiceUnavailable:
		return domain.NewUnavailable(fmt.Errorf("downstream returned 503: %s", data))
	default:
		return domain.NewInternal(fmt.Errorf("downstream returned %d: %s", resp.StatusCode, data))
	}
}
