// Package sqlite provides a SQLite-backed implementation of
// runlog.Repository.
//
// WAL mode is enabled on Open so a tailing reader (e.g. a results
// dashboard) never blocks the writer.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/loadgen/runlog"

	// Register the pure-Go SQLite driver. modernc.org/sqlite avoids CGO,
	// which keeps the driver buildable in minimal container images.
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS benchmark_runs (
    id                  INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id              TEXT    NOT NULL,
    protocol            TEXT    NOT NULL,
    workers             INTEGER NOT NULL,
    duration_ms         INTEGER NOT NULL,
    seed                INTEGER NOT NULL,
    calls               INTEGER NOT NULL,
    succeeded           INTEGER NOT NULL,
    errors              INTEGER NOT NULL,
    p50_ms              REAL    NOT NULL,
    p90_ms              REAL    NOT NULL,
    p99_ms              REAL    NOT NULL,
    mean_request_bytes  REAL    NOT NULL,
    mean_response_bytes REAL    NOT NULL,

    -- RFC3339 stored as TEXT, SQLite idiom.
    started_at          TEXT    NOT NULL
);

-- The comparison query: all runs of one protocol in time order.
CREATE INDEX IF NOT EXISTS idx_benchmark_runs_protocol ON benchmark_runs(protocol, started_at);
`

// Repository is the SQLite implementation of runlog.Repository.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the database at the given path and applies the
// schema.
func Open(path string) (*Repository, error) {
	// busy_timeout waits for locks instead of failing immediately.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	// "sqlite", not "sqlite3", for the modernc driver.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Save inserts one run summary.
func (r *Repository) Save(ctx context.Context, run *runlog.Run) error {
	const q = `
		INSERT INTO benchmark_runs
			(run_id, protocol, workers, duration_ms, seed, calls, succeeded, errors,
			 p50_ms, p90_ms, p99_ms, mean_request_bytes, mean_response_bytes, started_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		run.RunID,
		run.Protocol,
		run.Workers,
		run.Duration.Milliseconds(),
		run.Seed,
		run.Calls,
		run.Succeeded,
		run.Errors,
		run.P50MS,
		run.P90MS,
		run.P99MS,
		run.MeanRequestBytes,
		run.MeanResponseBytes,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save run %q: %w", run.RunID, err)
	}
	return nil
}

// Recent returns the newest runs, most recent first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]runlog.Run, error) {
	const q = `
		SELECT run_id, protocol, workers, duration_ms, seed, calls, succeeded, errors,
		       p50_ms, p90_ms, p99_ms, mean_request_bytes, mean_response_bytes, started_at
		FROM   benchmark_runs
		ORDER  BY started_at DESC, id DESC
		LIMIT  ?`

	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list runs: %w", err)
	}
	defer rows.Close()

	var runs []runlog.Run
	for rows.Next() {
		var run runlog.Run
		var durationMS int64
		var startedAt string
		if err := rows.Scan(
			&run.RunID,
			&run.Protocol,
			&run.Workers,
			&durationMS,
			&run.Seed,
			&run.Calls,
			&run.Succeeded,
			&run.Errors,
			&run.P50MS,
			&run.P90MS,
			&run.P99MS,
			&run.MeanRequestBytes,
			&run.MeanResponseBytes,
			&startedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scan run: %w", err)
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("sqlite: parse started_at %q: %w", startedAt, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
