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
	notificationv1 "github.com/Michal-Suhak/microservices-communication-benchmark/internal/genproto/notification/v1"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/metrics"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/notification"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/pkg/telemetry"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/grpcx"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/httpx"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/transport/jsonrpc"
)

// The notification process is the leaf of the chain, so a single core
// instance can back all three bindings.
func main() {
	cfg := config.Notification()
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

	svc := notification.NewService(clock.Real{}, cfg.ProcessingDelay)

	restServer := &http.Server{
		Addr:    ":" + cfg.RESTPort,
		Handler: httpx.NewRouter(cfg.Name, httpx.NewNotificationHandler(svc).Mount),
	}

	rpc := jsonrpc.NewServer(cfg.Name)
	jsonrpc.RegisterNotification(rpc, svc)
	rpcServer := &http.Server{Addr: ":" + cfg.JSONRPCPort, Handler: rpc.Router()}

	grpcServer := grpcx.NewServer(cfg.Name)
	notificationv1.RegisterNotificationServiceServer(grpcServer, grpcx.NewNotificationServer(svc))

	metricsServer := &http.Server{Addr: ":" + cfg.MetricsPort, Handler: metrics.Handler()}

	serveHTTP("rest", restServer)
	serveHTTP("jsonrpc", rpcServer)
	serveHTTP("metrics", metricsServer)
	serveGRPC(cfg.GRPCPort, grpcServer)

	slog.Info("notification service running",
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
