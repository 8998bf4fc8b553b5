package core

import (
	"context"
	"fmt"
	"time"

	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/platform/ids"
)

type EstimateService interface {
	// Snapshot persists the pricing result of a session that has reached the
	// results phase.
	Snapshot(ctx context.Context, s *Session) (Estimate, error)

	// Get retrieves an estimate by ID.
	Get(ctx context.Context, id string) (Estimate, error)

	// ListRecent returns the most recently saved estimates.
	ListRecent(ctx context.Context, limit int) ([]Estimate, error)
}

type estimateService struct {
	engine    *PricingEngine
	estimates EstimateRepo
	clock     func() time.Time
}

func NewEstimateService(engine *PricingEngine, estimates EstimateRepo) EstimateService {
	return &estimateService{
		engine:    engine,
		estimates: estimates,
		clock:     time.Now,
	}
}

func (svc *estimateService) Snapshot(ctx context.Context, s *Session) (Estimate, error) {
	if s.Phase != PhaseResults {
		return Estimate{}, ErrEstimateNotReady
	}

	result := svc.engine.Calculate(s.Drivers, s.Vehicles, s.PolicyAnswers)
	state := s.PolicyAnswers.First(PolicyQuestionState)
	if state == "" {
		state = DefaultState
	}

	now := svc.clock()
	est := Estimate{
		ID:           ids.New(),
		SessionID:    s.ID,
		State:        state,
		DriverCount:  len(s.Drivers),
		VehicleCount: len(s.Vehicles),
		Result:       result,
		Status:       EstimateStatusActive,
		CreatedAt:    now,
		ExpiresAt:    now.AddDate(0, 0, EstimateValidityDays),
	}

	if err := svc.estimates.Create(ctx, est); err != nil {
		return Estimate{}, err
	}
	return est, nil
}

func (svc *estimateService) Get(ctx context.Context, id string) (Estimate, error) {
	if id == "" {
		return Estimate{}, fmt.Errorf("%w: missing estimate ID", ErrValidation)
	}
	return svc.estimates.Get(ctx, id)
}

func (svc *estimateService) ListRecent(ctx context.Context, limit int) ([]Estimate, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return svc.estimates.FindRecent(ctx, limit)
}
