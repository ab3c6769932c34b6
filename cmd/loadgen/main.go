package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/loadgen"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/loadgen/runlog"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/loadgen/runlog/sqlite"
	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/pkg/telemetry"
)

func main() {
	var (
		protocol = flag.String("protocol", "rest", "protocol to drive: rest, jsonrpc or grpc")
		target   = flag.String("target", "", "target endpoint (default depends on protocol)")
		workers  = flag.Int("workers", 10, "concurrent workers")
		duration = flag.Duration("duration", 30*time.Second, "run duration")
		timeout  = flag.Duration("timeout", 30*time.Second, "per-call timeout")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "base random seed")
		runlogDB = flag.String("runlog", "", "SQLite file recording run summaries (empty disables)")
	)
	flag.Parse()

	telemetry.InitLogger("loadgen")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := *target
	if addr == "" {
		addr = defaultTarget(*protocol)
	}

	caller, err := loadgen.NewCaller(*protocol, addr, *timeout)
	if err != nil {
		slog.Error("cannot build driver", "error", err)
		os.Exit(1)
	}
	defer caller.Close()

	started := time.Now().UTC()
	report := loadgen.NewRunner(caller, *workers, *duration, *seed).Run(ctx)
	report.Log()
	fmt.Print(report.String())

	if *runlogDB != "" {
		if err := saveRun(report.Summarize(uuid.NewString(), *workers, *duration, *seed, started), *runlogDB); err != nil {
			slog.Error("failed to record run", "path", *runlogDB, "error", err)
			os.Exit(1)
		}
	}
}

func saveRun(run *runlog.Run, path string) error {
	repo, err := sqlite.Open(path)
	if err != nil {
		return err
	}
	defer repo.Close()
	return repo.Save(context.Background(), run)
}

func defaultTarget(protocol string) string {
	switch protocol {
	case "jsonrpc":
		return "http://localhost:8011"
	case "grpc":
		return "localhost:8021"
	default:
		return "http://localhost:8001"
	}
}
