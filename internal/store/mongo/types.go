package mongo

import (
	"time"

	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/core"
)

const (
	collEstimates = "estimates"
)

// estimateDoc is the persisted shape of a core.Estimate. The pricing result
// is stored as a nested document so the snapshot survives catalog changes.
type estimateDoc struct {
	ID           string              `bson:"_id"`
	SessionID    string              `bson:"session_id"`
	State        string              `bson:"state"`
	DriverCount  int                 `bson:"driver_count"`
	VehicleCount int                 `bson:"vehicle_count"`
	Result       core.PricingResult  `bson:"result"`
	Status       core.EstimateStatus `bson:"status"`
	CreatedAt    time.Time           `bson:"created_at"`
	ExpiresAt    time.Time           `bson:"expires_at"`
}

func toEstimateDoc(e core.Estimate) estimateDoc {
	return estimateDoc{
		ID:           e.ID,
		SessionID:    e.SessionID,
		State:        e.State,
		DriverCount:  e.DriverCount,
		VehicleCount: e.VehicleCount,
		Result:       e.Result,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
		ExpiresAt:    e.ExpiresAt,
	}
}

func (d estimateDoc) toEstimate() core.Estimate {
	return core.Estimate{
		ID:           d.ID,
		SessionID:    d.SessionID,
		State:        d.State,
		DriverCount:  d.DriverCount,
		VehicleCount: d.VehicleCount,
		Result:       d.Result,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
		ExpiresAt:    d.ExpiresAt,
	}
}
