package core

import (
	"math"
	"math/rand"
	"sort"
	"strings"
)

type RiskTier string

const (
	RiskTierPreferred   RiskTier = "preferred"
	RiskTierStandard    RiskTier = "standard"
	RiskTierNonStandard RiskTier = "non-standard"
	RiskTierHighRisk    RiskTier = "high-risk"
)

const (
	// MinMonthlyPremium is the hard floor applied regardless of how
	// favorable the inputs are.
	MinMonthlyPremium = 50

	// MultiCarDiscountStep is the per-extra-vehicle discount, capped at
	// MultiCarDiscountMaxCars extra vehicles.
	MultiCarDiscountStep    = 0.08
	MultiCarDiscountMaxCars = 3

	// CarrierRecommendationLimit caps the ranked carrier panel.
	CarrierRecommendationLimit = 4

	// MaxCarrierFit clamps the synthetic fit score.
	MaxCarrierFit = 98
)

// Breakdown itemizes the rate factors behind the premium. Factor fields are
// rounded percentage deltas from neutral; discounts are positive numbers.
type Breakdown struct {
	BasePremium      int `json:"base_premium"`
	DriverFactors    int `json:"driver_factors"`
	VehicleFactors   int `json:"vehicle_factors"`
	LocationFactors  int `json:"location_factors"`
	Discounts        int `json:"discounts"`
	MultiCarDiscount int `json:"multi_car_discount"`
}

type CarrierRecommendation struct {
	Carrier string `json:"carrier"`
	Premium int    `json:"premium"`
	Fit     int    `json:"fit"`
}

type VehiclePremium struct {
	VehicleID   string `json:"vehicle_id"`
	Description string `json:"description"`
	Premium     int    `json:"premium"`
}

type DriverImpact struct {
	DriverID    string `json:"driver_id"`
	Description string `json:"description"`
	Impact      int    `json:"impact"`
}

// PricingResult is a derived, disposable value recomputed from scratch on
// every respondent mutation. It is never persisted by the engine itself.
type PricingResult struct {
	MonthlyPremium         int                     `json:"monthly_premium"`
	AnnualPremium          int                     `json:"annual_premium"`
	Breakdown              Breakdown               `json:"breakdown"`
	RiskTier               RiskTier                `json:"risk_tier"`
	CarrierRecommendations []CarrierRecommendation `json:"carrier_recommendations"`
	SR22Required           bool                    `json:"sr22_required"`
	HighRiskDrivers        []string                `json:"high_risk_drivers"`
	PerVehiclePremiums     []VehiclePremium        `json:"per_vehicle_premiums"`
	PerDriverImpact        []DriverImpact          `json:"per_driver_impact"`
}

// PricingEngine folds a respondent and the configuration tables into a
// PricingResult. Aside from the carrier-panel jitter (injectable for tests)
// the computation is a deterministic pure function of its inputs.
type PricingEngine struct {
	catalog  *Catalog
	states   map[string]StateConfig
	carriers []CarrierScoring
	rand     func() float64 // uniform in [0, 1)
}

type EngineOption func(*PricingEngine)

// WithRandSource replaces the jitter source used for carrier fit and
// premium variation. Tests inject a fixed source to pin exact values.
func WithRandSource(r func() float64) EngineOption {
	return func(e *PricingEngine) { e.rand = r }
}

// WithCatalog replaces the built-in question tables.
func WithCatalog(c *Catalog) EngineOption {
	return func(e *PricingEngine) { e.catalog = c }
}

// WithCarriers replaces the carrier scoring table.
func WithCarriers(carriers []CarrierScoring) EngineOption {
	return func(e *PricingEngine) { e.carriers = carriers }
}

// NewPricingEngine validates the catalog and returns a ready engine.
func NewPricingEngine(opts ...EngineOption) (*PricingEngine, error) {
	e := &PricingEngine{
		catalog:  DefaultCatalog(),
		states:   StateConfigs,
		carriers: Carriers,
		rand:     rand.Float64,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.catalog.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// MustPricingEngine panics on an invalid catalog; for wiring at startup.
func MustPricingEngine(opts ...EngineOption) *PricingEngine {
	e, err := NewPricingEngine(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Catalog exposes the engine's validated question tables.
func (e *PricingEngine) Catalog() *Catalog { return e.catalog }

// Carriers exposes the carrier scoring table.
func (e *PricingEngine) Carriers() []CarrierScoring { return e.carriers }

// Calculate prices the respondent. Inputs are not mutated and no error is
// possible for catalog-constrained answers; unknown question or option ids
// contribute a neutral factor so an estimate always renders.
func (e *PricingEngine) Calculate(drivers []Driver, vehicles []Vehicle, policy Answers) PricingResult {
	stateConfig := StateConfigFor(policy.First(PolicyQuestionState))
	basePremium := stateConfig.AvgBasePremium

	// 1) Aggregate driver score; track impact and high-risk flags.
	totalDriverScore := 0.0
	perDriverImpact := make([]DriverImpact, 0, len(drivers))
	highRiskDrivers := []string{}
	sr22Required := false
	for _, d := range drivers {
		score := e.entityScore(e.catalog.Driver, d.Answers)
		totalDriverScore += score
		perDriverImpact = append(perDriverImpact, DriverImpact{
			DriverID:    d.ID,
			Description: driverLabel(d),
			Impact:      roundInt((score - 1) * 100),
		})
		if d.HighRisk() {
			highRiskDrivers = append(highRiskDrivers, d.ID)
		}
		if d.NeedsSR22() {
			sr22Required = true
		}
	}
	avgDriverScore := 1.0
	if len(drivers) > 0 {
		avgDriverScore = totalDriverScore / float64(len(drivers))
	}

	// 2) Aggregate vehicle score; display-only per-vehicle premiums.
	totalVehicleScore := 0.0
	perVehiclePremiums := make([]VehiclePremium, 0, len(vehicles))
	for _, v := range vehicles {
		score := e.entityScore(e.catalog.Vehicle, v.Answers)
		totalVehicleScore += score
		perVehiclePremiums = append(perVehiclePremiums, VehiclePremium{
			VehicleID:   v.ID,
			Description: vehicleLabel(v),
			Premium:     roundInt(basePremium * score * avgDriverScore),
		})
	}
	avgVehicleScore := 1.0
	if len(vehicles) > 0 {
		avgVehicleScore = totalVehicleScore / float64(len(vehicles))
	}

	// 3) Policy-level factors: the discounts question folds into its own
	// score, everything else into the location score.
	locationScore, discountScore := 1.0, 1.0
	for _, q := range e.catalog.Policy {
		if !policy.Has(q.ID) {
			continue
		}
		if q.ID == PolicyQuestionDiscounts {
			discountScore *= modifier(q, policy)
		} else {
			locationScore *= modifier(q, policy)
		}
	}

	// 4) Multi-car discount saturates at three extra vehicles.
	multiCarDiscount := 0.0
	if len(vehicles) > 1 {
		extra := min(len(vehicles)-1, MultiCarDiscountMaxCars)
		multiCarDiscount = MultiCarDiscountStep * float64(extra)
	}

	rawPremium := basePremium * avgDriverScore * avgVehicleScore *
		locationScore * discountScore * (1 - multiCarDiscount)
	monthlyPremium := roundInt(math.Max(rawPremium, MinMonthlyPremium))

	// 5) Risk tier. High-risk dominates every other condition.
	riskTier := RiskTierStandard
	switch {
	case len(highRiskDrivers) > 0:
		riskTier = RiskTierHighRisk
	case avgDriverScore > 1.4:
		riskTier = RiskTierNonStandard
	case avgDriverScore < 0.95 && avgVehicleScore < 1.0:
		riskTier = RiskTierPreferred
	}

	return PricingResult{
		MonthlyPremium: monthlyPremium,
		AnnualPremium:  monthlyPremium * 12,
		Breakdown: Breakdown{
			BasePremium:      roundInt(basePremium),
			DriverFactors:    roundInt((avgDriverScore - 1) * 100),
			VehicleFactors:   roundInt((avgVehicleScore - 1) * 100),
			LocationFactors:  roundInt((locationScore - 1) * 100),
			Discounts:        roundInt((1 - discountScore) * 100),
			MultiCarDiscount: roundInt(multiCarDiscount * 100),
		},
		RiskTier:               riskTier,
		CarrierRecommendations: e.rankCarriers(riskTier, monthlyPremium),
		SR22Required:           sr22Required,
		HighRiskDrivers:        highRiskDrivers,
		PerVehiclePremiums:     perVehiclePremiums,
		PerDriverImpact:        perDriverImpact,
	}
}

// entityScore multiplies the risk modifiers of every answered question in
// the table. Unanswered questions contribute 1.0.
func (e *PricingEngine) entityScore(questions []Question, answers Answers) float64 {
	score := 1.0
	for _, q := range questions {
		if answers.Has(q.ID) {
			score *= modifier(q, answers)
		}
	}
	return score
}

// rankCarriers scores each carrier against the risk tier, applies display
// jitter, and returns the top carriers by fit. The displayed premium is
// simulated variation around the computed premium, not derived from the
// carrier's weighting coefficients.
func (e *PricingEngine) rankCarriers(tier RiskTier, monthlyPremium int) []CarrierRecommendation {
	recs := make([]CarrierRecommendation, 0, len(e.carriers))
	for _, c := range e.carriers {
		fit := 50
		if containsTag(c.PreferredRiskProfile, string(tier)) {
			fit += 25
		}
		if tier == RiskTierHighRisk && containsTag(c.PreferredRiskProfile, ProfileSR22) {
			fit += 20
		}
		if tier == RiskTierPreferred && containsTag(c.PreferredRiskProfile, ProfileGoodCredit) {
			fit += 15
		}
		premiumMod := 0.85 + e.rand()*0.3
		fit = min(fit+int(e.rand()*15), MaxCarrierFit)
		recs = append(recs, CarrierRecommendation{
			Carrier: c.Name,
			Premium: roundInt(float64(monthlyPremium) * premiumMod),
			Fit:     fit,
		})
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Fit > recs[j].Fit })
	if len(recs) > CarrierRecommendationLimit {
		recs = recs[:CarrierRecommendationLimit]
	}
	return recs
}

func driverLabel(d Driver) string {
	rel := d.Answers.First(QuestionDriverRelationship)
	switch rel {
	case "self":
		return "Primary Driver"
	case "":
		return "Driver"
	default:
		return rel
	}
}

func vehicleLabel(v Vehicle) string {
	label := strings.TrimSpace(v.Answers.First(QuestionVehicleMake) + " " + v.Answers.First(QuestionVehicleType))
	if label == "" {
		return "Vehicle"
	}
	return label
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func roundInt(x float64) int {
	return int(math.Round(x))
}
