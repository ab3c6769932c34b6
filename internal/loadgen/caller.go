package loadgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"

	commonv1 "github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/common/v1"
	orderv1 "github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/order/v1"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/grpcx"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/jsonrpc"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/wire"
)

// Outcome is one call as the driver saw it. A transport failure comes back
// as a separate error; OK false without one is a business decline.
type Outcome struct {
	OK            bool
	RequestBytes  int
	ResponseBytes int
}

// Caller submits one order over a specific protocol. Implementations hold
// their connections for the life of the run.
type Caller interface {
	Protocol() string
	CreateOrder(ctx context.Context, order wire.CreateOrderRequest) (Outcome, error)
	Close() error
}

// NewCaller builds the driver for a protocol name as passed on the command
// line.
func NewCaller(protocol, target string, timeout time.Duration) (Caller, error) {
	switch protocol {
	case "rest":
		return newRESTCaller(target, timeout), nil
	case "jsonrpc":
		return newJSONRPCCaller(target, timeout), nil
	case "grpc":
		return newGRPCCaller(target, timeout)
	default:
		return nil, fmt.Errorf("unknown protocol %q (want rest, jsonrpc or grpc)", protocol)
	}
}

type restCaller struct {
	base string
	hc   *http.Client
}

func newRESTCaller(base string, timeout time.Duration) *restCaller {
	return &restCaller{
		base: base,
		hc: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        200,
				MaxIdleConnsPerHost: 200,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (c *restCaller) Protocol() string { return "rest" }

func (c *restCaller) CreateOrder(ctx context.Context, order wire.CreateOrderRequest) (Outcome, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return Outcome{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/orders", bytes.NewReader(body))
	if err != nil {
		return Outcome{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return Outcome{RequestBytes: len(body)}, err
	}
	defer resp.Body.Close()

	var out wire.OrderResponse
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&out); err != nil {
		return Outcome{RequestBytes: len(body)}, err
	}
	respBytes, _ := json.Marshal(out)

	if resp.StatusCode != http.StatusOK {
		return Outcome{RequestBytes: len(body), ResponseBytes: len(respBytes)},
			fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return Outcome{
		OK:            out.Success,
		RequestBytes:  len(body),
		ResponseBytes: len(respBytes),
	}, nil
}

func (c *restCaller) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

type jsonrpcCaller struct {
	client *jsonrpc.Client
}

func newJSONRPCCaller(url string, timeout time.Duration) *jsonrpcCaller {
	return &jsonrpcCaller{client: jsonrpc.NewClient(url, timeout)}
}

func (c *jsonrpcCaller) Protocol() string { return "jsonrpc" }

func (c *jsonrpcCaller) CreateOrder(ctx context.Context, order wire.CreateOrderRequest) (Outcome, error) {
	reqBytes, err := json.Marshal(order)
	if err != nil {
		return Outcome{}, err
	}

	var out wire.OrderResponse
	if err := c.client.Call(ctx, "create_order", order, &out); err != nil {
		var rpcErr *jsonrpc.RPCError
		if errors.As(err, &rpcErr) {
			// The server answered; a payment decline arrives as a -32000
			// error envelope and counts as a failed order, not a broken
			// transport.
			return Outcome{RequestBytes: len(reqBytes)}, nil
		}
		return Outcome{RequestBytes: len(reqBytes)}, err
	}

	respBytes, _ := json.Marshal(out)
	return Outcome{
		OK:            out.Success,
		RequestBytes:  len(reqBytes),
		ResponseBytes: len(respBytes),
	}, nil
}

func (c *jsonrpcCaller) Close() error { return nil }

type grpcCaller struct {
	conn    *grpc.ClientConn
	stub    orderv1.OrderServiceClient
	timeout time.Duration
}

func newGRPCCaller(target string, timeout time.Duration) (*grpcCaller, error) {
	conn, err := grpcx.Dial(target)
	if err != nil {
		return nil, err
	}
	return &grpcCaller{
		conn:    conn,
		stub:    orderv1.NewOrderServiceClient(conn),
		timeout: timeout,
	}, nil
}

func (c *grpcCaller) Protocol() string { return "grpc" }

func (c *grpcCaller) CreateOrder(ctx context.Context, order wire.CreateOrderRequest) (Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := toProtoOrder(order)
	resp, err := c.stub.CreateOrder(ctx, req)
	if err != nil {
		return Outcome{RequestBytes: proto.Size(req)}, err
	}
	return Outcome{
		OK:            resp.GetSuccess(),
		RequestBytes:  proto.Size(req),
		ResponseBytes: proto.Size(resp),
	}, nil
}

func (c *grpcCaller) Close() error {
	return c.conn.Close()
}

func toProtoOrder(order wire.CreateOrderRequest) *orderv1.CreateOrderRequest {
	items := make([]*commonv1.OrderItem, len(order.Items))
	for i, it := range order.Items {
		items[i] = &commonv1.OrderItem{
			ProductId:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    int32(it.Quantity),
			UnitPrice:   it.UnitPrice,
		}
	}
	return &orderv1.CreateOrderRequest{
		CustomerId:      order.CustomerID,
		Items:           items,
		ShippingAddress: order.ShippingAddress,
	}
}
