package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/config"
	orderv1 "github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/order/v1"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/order"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/pkg/telemetry"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/grpcx"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/httpx"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/jsonrpc"
)

// The order process hosts the same business chain three times, one binding
// per protocol, each with its own downstream payment client so a protocol
// chain never crosses transports.
func main() {
	cfg := config.Order()
	telemetry.InitLogger(cfg.Name)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.SetupTracer(ctx, cfg.Name+"-service", cfg.OTLPEndpoint)
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	restSvc := order.NewService(httpx.NewPaymentClient(cfg.DownstreamRESTURL, cfg.ClientTimeout))
	restServer := &http.Server{
		Addr:    ":" + cfg.RESTPort,
		Handler: httpx.NewRouter(cfg.Name, httpx.NewOrderHandler(restSvc).Mount),
	}

	rpcSvc := order.NewService(jsonrpc.NewPaymentClient(cfg.DownstreamJSONRPCURL, cfg.ClientTimeout))
	rpc := jsonrpc.NewServer(cfg.Name)
	jsonrpc.RegisterOrder(rpc, rpcSvc)
	rpcServer := &http.Server{Addr: ":" + cfg.JSONRPCPort, Handler: rpc.Router()}

	conn, err := grpcx.Dial(cfg.DownstreamGRPCAddr)
	if err != nil {
		slog.Error("failed to create payment channel", "addr", cfg.DownstreamGRPCAddr, "error", err)
		os.Exit(1)
	}
	defer conn.Close()
	grpcSvc := order.NewService(grpcx.NewPaymentClient(conn, cfg.ClientTimeout))
	grpcServer := grpcx.NewServer(cfg.Name)
	orderv1.RegisterOrderServiceServer(grpcServer, grpcx.NewOrderServer(grpcSvc))

	metricsServer := &http.Server{Addr: ":" + cfg.MetricsPort, Handler: metrics.Handler()}

	serveHTTP("rest", restServer)
	serveHTTP("jsonrpc", rpcServer)
	serveHTTP("metrics", metricsServer)
	serveGRPC(cfg.GRPCPort, grpcServer)

	slog.Info("order service running",
		"rest", cfg.RESTPort, "jsonrpc", cfg.JSONRPCPort, "grpc", cfg.GRPCPort, "metrics", cfg.MetricsPort)

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = restServer.Shutdown(shutdownCtx)
	_ = rpcServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}

func serveHTTP(name string, srv *http.Server) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http server failed", "server", name, "addr", srv.Addr, "error", err)
			os.Exit(1)
		}
	}()
}

func serveGRPC(port string, srv *grpc.Server) {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		slog.Error("failed to listen", "port", port, "error", err)
		os.Exit(1)
	}
	go func() {
		if err := srv.Serve(lis); err != nil {
			slog.Error("grpc server failed", "port", port, "error", err)
			os.Exit(1)
		}
	}()
}
