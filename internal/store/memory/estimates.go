package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/core"
)

// EstimateRepo is the dev/test estimate store; mongo and dynamo implement
// the same interface for deployments.
type EstimateRepo struct {
	mu        sync.RWMutex
	estimates map[string]core.Estimate
}

func NewEstimateRepo() *EstimateRepo {
	return &EstimateRepo{estimates: make(map[string]core.Estimate)}
}

func (r *EstimateRepo) Create(_ context.Context, e core.Estimate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.estimates[e.ID]; exists {
		return core.ErrConflict
	}
	r.estimates[e.ID] = e
	return nil
}

func (r *EstimateRepo) Get(_ context.Context, id string) (core.Estimate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.estimates[id]
	if !ok {
		return core.Estimate{}, core.ErrEstimateNotFound
	}
	return e, nil
}

func (r *EstimateRepo) FindRecent(_ context.Context, limit int) ([]core.Estimate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.Estimate, 0, len(r.estimates))
	for _, e := range r.estimates {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *EstimateRepo) ExpireEstimates(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, e := range r.estimates {
		if e.Status == core.EstimateStatusActive && e.ExpiresAt.Before(before) {
			e.Status = core.EstimateStatusExpired
			r.estimates[id] = e
			n++
		}
	}
	return n, nil
}
