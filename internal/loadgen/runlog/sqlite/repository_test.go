package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Michal-Suhak/microservices-communication-benchmark/internal/loadgen/runlog"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSaveAndRecent(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	first := &runlog.Run{
		RunID:             "run_1",
		Protocol:          "rest",
		Workers:           10,
		Duration:          30 * time.Second,
		Seed:              42,
		Calls:             1000,
		Succeeded:         990,
		Errors:            10,
		P50MS:             12.5,
		P90MS:             30.0,
		P99MS:             88.0,
		MeanRequestBytes:  240,
		MeanResponseBytes: 910,
		StartedAt:         time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, first))

	second := &runlog.Run{
		RunID:     "run_2",
		Protocol:  "grpc",
		Workers:   10,
		Duration:  30 * time.Second,
		StartedAt: time.Date(2026, 8, 1, 11, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, second))

	runs, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Most recent first.
	assert.Equal(t, "run_2", runs[0].RunID)
	assert.Equal(t, "run_1", runs[1].RunID)

	got := runs[1]
	assert.Equal(t, *first, got)
}

func TestRecent_Limit(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, &runlog.Run{
			RunID:     "run",
			Protocol:  "jsonrpc",
			StartedAt: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}))
	}

	runs, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestRecent_Empty(t *testing.T) {
	repo := openTestRepo(t)

	runs, err := repo.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
