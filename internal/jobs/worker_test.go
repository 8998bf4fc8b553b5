package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/core"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/store/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBaseWorker_RunsImmediatelyAndStopsOnCancel(t *testing.T) {
	w := NewBaseWorker("test", time.Hour, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Poll(ctx, func(context.Context) error {
			calls++
			return nil
		})
	}()

	// The first run happens before the first tick.
	require.Eventually(t, func() bool { return calls == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
	assert.Equal(t, 1, calls)
}

func TestEstimateExpiryWorker(t *testing.T) {
	repo := memory.NewEstimateRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, core.Estimate{
		ID:        "stale",
		Status:    core.EstimateStatusActive,
		CreatedAt: now.Add(-8 * 24 * time.Hour),
		ExpiresAt: now.Add(-24 * time.Hour),
	}))
	require.NoError(t, repo.Create(ctx, core.Estimate{
		ID:        "fresh",
		Status:    core.EstimateStatusActive,
		CreatedAt: now,
		ExpiresAt: now.Add(7 * 24 * time.Hour),
	}))

	w := NewEstimateExpiryWorker(repo, time.Hour, testLogger())
	require.NoError(t, w.expireStale(ctx))

	stale, err := repo.Get(ctx, "stale")
	require.NoError(t, err)
	assert.Equal(t, core.EstimateStatusExpired, stale.Status)

	fresh, err := repo.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, core.EstimateStatusActive, fresh.Status)
}

func TestSessionSweeper(t *testing.T) {
	repo := memory.NewSessionRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, core.Session{ID: "idle", UpdatedAt: now.Add(-2 * time.Hour)}))
	require.NoError(t, repo.Create(ctx, core.Session{ID: "live", UpdatedAt: now}))

	w := NewSessionSweeper(repo, 30*time.Minute, time.Hour, testLogger())
	require.NoError(t, w.sweep(ctx))

	_, err := repo.Get(ctx, "idle")
	assert.ErrorIs(t, err, core.ErrSessionNotFound)
	_, err = repo.Get(ctx, "live")
	assert.NoError(t, err)
}
