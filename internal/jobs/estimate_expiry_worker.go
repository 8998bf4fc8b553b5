package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/core"
)

// EstimateExpiryWorker flips saved estimates to expired once their
// validity window has passed.
type EstimateExpiryWorker struct {
	BaseWorker
	estimates core.EstimateRepo
}

// NewEstimateExpiryWorker creates a new expiry worker.
func NewEstimateExpiryWorker(
	estimates core.EstimateRepo,
	interval time.Duration,
	log *slog.Logger,
) *EstimateExpiryWorker {
	return &EstimateExpiryWorker{
		BaseWorker: NewBaseWorker("estimate-expiry", interval, log),
		estimates:  estimates,
	}
}

// Start begins the worker polling loop.
func (w *EstimateExpiryWorker) Start(ctx context.Context) {
	w.Poll(ctx, w.expireStale)
}

// Name returns the worker name.
func (w *EstimateExpiryWorker) Name() string {
	return w.name
}

func (w *EstimateExpiryWorker) expireStale(ctx context.Context) error {
	count, err := w.estimates.ExpireEstimates(ctx, w.clock())
	if err != nil {
		return err
	}
	if count > 0 {
		w.log.Info("estimates expired", "count", count)
	}
	return nil
}
