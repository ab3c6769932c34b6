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

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/clock"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/config"
	paymentv1 "github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/payment/v1"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/payment"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/pkg/telemetry"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/grpcx"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/httpx"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/jsonrpc"
)

func main() {
	cfg := config.Payment()
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

	sleeper := clock.Real{}

	restSvc := payment.NewService("rest",
		httpx.NewNotificationClient(cfg.DownstreamRESTURL, cfg.ClientTimeout),
		sleeper, cfg.ProcessingDelay)
	restServer := &http.Server{
		Addr:    ":" + cfg.RESTPort,
		Handler: httpx.NewRouter(cfg.Name, httpx.NewPaymentHandler(restSvc).Mount),
	}

	rpcSvc := payment.NewService("jsonrpc",
		jsonrpc.NewNotificationClient(cfg.DownstreamJSONRPCURL, cfg.ClientTimeout),
		sleeper, cfg.ProcessingDelay)
	rpc := jsonrpc.NewServer(cfg.Name)
	jsonrpc.RegisterPayment(rpc, rpcSvc)
	rpcServer := &http.Server{Addr: ":" + cfg.JSONRPCPort, Handler: rpc.Router()}

	conn, err := grpcx.Dial(cfg.DownstreamGRPCAddr)
	if err != nil {
		slog.Error("failed to create notification channel", "addr", cfg.DownstreamGRPCAddr, "error", err)
		os.Exit(1)
	}
	defer conn.Close()
	grpcSvc := payment.NewService("grpc",
		grpcx.NewNotificationClient(conn, cfg.ClientTimeout),
		sleeper, cfg.ProcessingDelay)
	grpcServer := grpcx.NewServer(cfg.Name)
	paymentv1.RegisterPaymentServiceServer(grpcServer, grpcx.NewPaymentServer(grpcSvc))

	metricsServer := &http.Server{Addr: ":" + cfg.MetricsPort, Handler: metrics.Handler()}

	serveHTTP("rest", restServer)
	serveHTTP("jsonrpc", rpcServer)
	serveHTTP("metrics", metricsServer)
	serveGRPC(cfg.GRPCPort, grpcServer)

	slog.Info("payment service running",
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
