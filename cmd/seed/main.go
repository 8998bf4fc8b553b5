package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/core"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/platform/config"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/platform/ids"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/platform/logging"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/store/dynamo"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/store/memory"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/store/mongo"
)

// Seeds the estimate store with a few demo snapshots so the admin listing
// has data to show in a fresh environment.
func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var estimates core.EstimateRepo
	switch cfg.DBType {
	case "mongo":
		client, err := mongo.NewClient(cfg)
		if err != nil {
			log.Error("failed to connect to MongoDB", "err", err)
			return
		}
		defer client.Close(ctx)
		if err := client.EnsureIndexes(ctx); err != nil {
			log.Error("failed to ensure indexes", "err", err)
			return
		}
		estimates = mongo.NewEstimateRepo(client, 5*time.Second)
	case "dynamodb":
		client, err := dynamo.NewClient(ctx, cfg)
		if err != nil {
			log.Error("failed to connect to DynamoDB", "err", err)
			return
		}
		if err := dynamo.EnsureTables(ctx, client.DB, log); err != nil {
			log.Error("failed to ensure tables", "err", err)
			return
		}
		estimates = dynamo.NewEstimateRepo(client.DB)
	default:
		log.Warn("DB_TYPE is memory, seeding is a no-op across restarts")
		estimates = memory.NewEstimateRepo()
	}

	engine := core.MustPricingEngine()

	log.Info("seeding estimates")
	seedEstimates(ctx, engine, estimates, log)
	log.Info("done seeding")
}

type demoRespondent struct {
	name     string
	state    string
	drivers  []core.Driver
	vehicles []core.Vehicle
	policy   core.Answers
}

func seedEstimates(ctx context.Context, engine *core.PricingEngine, repo core.EstimateRepo, log *slog.Logger) {
	respondents := []demoRespondent{
		{
			name:  "clean-record-tulsa",
			state: "OK",
			drivers: []core.Driver{{
				ID:        "driver-1",
				IsPrimary: true,
				Answers: core.Answers{
					"driver-relationship":       {"self"},
					"driver-age":                {"36-55"},
					"driver-gender":             {"female"},
					"driver-marital":            {"married"},
					"driver-credit":             {"good"},
					"driver-years-licensed":     {"10+"},
					"driver-accidents":          {"none"},
					"driver-violations":         {"none"},
					"driver-dui":                {"none"},
					"driver-children-household": {"none"},
					"driver-rideshare":          {"no"},
				},
			}},
			vehicles: []core.Vehicle{{
				ID:        "vehicle-1",
				IsPrimary: true,
				Answers: core.Answers{
					"vehicle-year":                 {"2018-2020"},
					"vehicle-type":                 {"sedan"},
					"vehicle-make":                 {"toyota"},
					"vehicle-value":                {"10k-20k"},
					"vehicle-use":                  {"commute-short"},
					"vehicle-mileage":              {"10k-15k"},
					"vehicle-coverage":             {"full-coverage"},
					"vehicle-comp-deductible":      {"500"},
					"vehicle-collision-deductible": {"500"},
					"vehicle-safety":               {"backup-camera", "auto-braking"},
					"vehicle-anti-theft":           {"alarm"},
				},
			}},
			policy: core.Answers{
				"state":              {"OK"},
				"territory":          {"suburban"},
				"garage":             {"garage"},
				"prior-insurance":    {"5yr+"},
				"prior-carrier":      {"state-farm"},
				"prior-limits":       {"100-300"},
				"liability-limits":   {"100-300-100"},
				"uninsured-motorist": {"match-liability"},
				"discounts":          {"homeowner", "paperless"},
			},
		},
		{
			name:  "high-risk-texas",
			state: "TX",
			drivers: []core.Driver{{
				ID:        "driver-1",
				IsPrimary: true,
				Answers: core.Answers{
					"driver-relationship":       {"self"},
					"driver-age":                {"21-25"},
					"driver-gender":             {"male"},
					"driver-marital":            {"single"},
					"driver-credit":             {"poor"},
					"driver-years-licensed":     {"3-5"},
					"driver-accidents":          {"two"},
					"driver-violations":         {"multiple"},
					"driver-dui":                {"one-recent"},
					"driver-children-household": {"none"},
					"driver-rideshare":          {"no"},
				},
			}},
			vehicles: []core.Vehicle{{
				ID:        "vehicle-1",
				IsPrimary: true,
				Answers: core.Answers{
					"vehicle-year":                 {"2021-2023"},
					"vehicle-type":                 {"sports"},
					"vehicle-make":                 {"bmw-mercedes"},
					"vehicle-value":                {"35k-50k"},
					"vehicle-use":                  {"commute-long"},
					"vehicle-mileage":              {"15k-20k"},
					"vehicle-coverage":             {"full-coverage"},
					"vehicle-comp-deductible":      {"500"},
					"vehicle-collision-deductible": {"500"},
					"vehicle-safety":               {"basic"},
					"vehicle-anti-theft":           {"none"},
				},
			}},
			policy: core.Answers{
				"state":              {"TX"},
				"territory":          {"major-city"},
				"garage":             {"street"},
				"prior-insurance":    {"none"},
				"prior-carrier":      {"none"},
				"prior-limits":       {"none"},
				"liability-limits":   {"30-60-25"},
				"uninsured-motorist": {"reject"},
				"discounts":          {"none"},
			},
		},
	}

	for _, dr := range respondents {
		result := engine.Calculate(dr.drivers, dr.vehicles, dr.policy)
		now := time.Now()
		est := core.Estimate{
			ID:           ids.New(),
			SessionID:    "seed-" + dr.name,
			State:        dr.state,
			DriverCount:  len(dr.drivers),
			VehicleCount: len(dr.vehicles),
			Result:       result,
			Status:       core.EstimateStatusActive,
			CreatedAt:    now,
			ExpiresAt:    now.AddDate(0, 0, core.EstimateValidityDays),
		}
		if err := repo.Create(ctx, est); err != nil {
			log.Error("failed to seed estimate", "name", dr.name, "err", err)
			continue
		}
		log.Info("seeded estimate",
			"name", dr.name,
			"estimate_id", est.ID,
			"monthly_premium", result.MonthlyPremium,
			"risk_tier", result.RiskTier)
	}
}
