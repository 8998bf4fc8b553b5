package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/core"
)

// SessionSweeper evicts questionnaire sessions that have been idle past
// their TTL. Abandoned widgets would otherwise pin memory forever.
type SessionSweeper struct {
	BaseWorker
	sessions core.SessionRepo
	ttl      time.Duration
}

// NewSessionSweeper creates a new session sweeper.
func NewSessionSweeper(
	sessions core.SessionRepo,
	ttl time.Duration,
	interval time.Duration,
	log *slog.Logger,
) *SessionSweeper {
	return &SessionSweeper{
		BaseWorker: NewBaseWorker("session-sweeper", interval, log),
		sessions:   sessions,
		ttl:        ttl,
	}
}

// Start begins the worker polling loop.
func (w *SessionSweeper) Start(ctx context.Context) {
	w.Poll(ctx, w.sweep)
}

// Name returns the worker name.
func (w *SessionSweeper) Name() string {
	return w.name
}

func (w *SessionSweeper) sweep(ctx context.Context) error {
	cutoff := w.clock().Add(-w.ttl)
	count, err := w.sessions.DeleteIdle(ctx, cutoff)
	if err != nil {
		return err
	}
	if count > 0 {
		w.log.Info("idle sessions evicted", "count", count)
	}
	return nil
}
