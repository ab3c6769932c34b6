package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/domain"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/wire"
)

// RPCError is a structured error returned by the remote endpoint, as
// opposed to a transport failure reaching it.
type RPCError struct {
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// Client issues JSON-RPC 2.0 calls over a pooled HTTP connection. Request
// ids are a process-local sequence; the server echoes them back untouched.
type Client struct {
	url string
	hc  *http.Client
	seq atomic.Int64
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		hc: &http.Client{
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
		},
	}
}

// Call performs one request/response round trip. Transport failures come
// back wrapped as domain.FaultConnection; a response envelope with an
// error member comes back as *RPCError.
func (c *Client) Call(ctx context.Context, method string, params, result any) error {
	rawParams, err := json.Marshal(params)
	if err != nil {
		return domain.NewInternal(err)
	}

	id := c.seq.Add(1)
	body, err := json.Marshal(Request{
		Jsonrpc: Version,
		Method:  method,
		Params:  rawParams,
		ID:      json.RawMessage(strconv.FormatInt(id, 10)),
	})
	if err != nil {
		return domain.NewInternal(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return domain.NewInternal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.hc.Do(req)
	if err != nil {
		return domain.NewUnavailable(err)
	}
	defer httpResp.Body.Close()

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return domain.NewUnavailable(err)
	}
	if resp.Error != nil {
		return &RPCError{Code: resp.Error.Code, Message: resp.Error.Message}
	}

	raw, err := json.Marshal(resp.Result)
	if err != nil {
		return domain.NewInternal(err)
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return domain.NewInternal(err)
	}
	return nil
}

// PaymentClient is the JSON-RPC adapter for the order core's payment port.
// A remote error envelope is a business failure; only connectivity-class
// errors (including a propagated -32001) map to FaultConnection.
type PaymentClient struct {
	c *Client
}

func NewPaymentClient(url string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{c: NewClient(url, timeout)}
}

func (p *PaymentClient) ProcessPayment(ctx context.Context, req domain.PaymentRequest) (*domain.PaymentResult, error) {
	var resp wire.PaymentResponse
	err := p.c.Call(ctx, "process_payment", wire.PaymentRequest{
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		PaymentMethod: string(req.PaymentMethod),
	}, &resp)
	if err != nil {
		var rpcErr *RPCError
		if errors.As(err, &rpcErr) {
			if rpcErr.Code == CodeUpstreamUnavailable {
				return nil, domain.NewUnavailable(rpcErr)
			}
			return &domain.PaymentResult{Success: false}, nil
		}
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

// NotificationClient is the JSON-RPC adapter for the payment core's
// notification port.
type NotificationClient struct {
	c *Client
}

func NewNotificationClient(url string, timeout time.Duration) *NotificationClient {
	return &NotificationClient{c: NewClient(url, timeout)}
}

func (n *NotificationClient) SendNotification(ctx context.Context, req domain.NotificationRequest) (*domain.NotificationResult, error) {
	var resp wire.NotificationResponse
	err := n.c.Call(ctx, "send_notification", wire.NotificationRequest{
		OrderID:          req.OrderID,
		PaymentID:        req.PaymentID,
		Recipient:        req.Recipient,
		NotificationType: string(req.NotificationType),
	}, &resp)
	if err != nil {
		var rpcErr *RPCError
		if errors.As(err, &rpcErr) {
			return &domain.NotificationResult{Success: false}, nil
		}
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
