package core

import (
	"context"
	"fmt"
	"time"
)

type EstimateStatus string

const (
	EstimateStatusActive  EstimateStatus = "active"
	EstimateStatusExpired EstimateStatus = "expired"
)

// EstimateValidityDays is how long a saved estimate remains quotable.
const EstimateValidityDays = 7

// Estimate is a terminal snapshot of a completed questionnaire. Only the
// derived result and a few counters are persisted; the respondent's answers
// never leave the session.
type Estimate struct {
	ID           string         `json:"id"`
	SessionID    string         `json:"session_id"`
	State        string         `json:"state"`
	DriverCount  int            `json:"driver_count"`
	VehicleCount int            `json:"vehicle_count"`
	Result       PricingResult  `json:"result"`
	Status       EstimateStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	ExpiresAt    time.Time      `json:"expires_at"`
}

type EstimateRepo interface {
	Create(ctx context.Context, e Estimate) error
	Get(ctx context.Context, id string) (Estimate, error)
	FindRecent(ctx context.Context, limit int) ([]Estimate, error)

	// ExpireEstimates marks active estimates past the cutoff as expired and
	// returns how many were updated.
	ExpireEstimates(ctx context.Context, before time.Time) (int64, error)
}

// IsExpired checks the estimate against a point in time.
func (e Estimate) IsExpired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

var (
	ErrEstimateNotFound = fmt.Errorf("%w: estimate not found", ErrNotFound)
	ErrEstimateNotReady = fmt.Errorf("%w: questionnaire is not complete", ErrInvalidState)
)
