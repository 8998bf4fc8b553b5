package core

// Carrier risk-profile tags matched against the computed risk tier.
const (
	ProfileSR22       = "sr22"
	ProfileGoodCredit = "good-credit"
)

// CarrierScoring is a carrier's weighting profile. The weighting
// coefficients and the loyalty/bundle discounts are carried for display and
// future use; the implemented ranking only consults PreferredRiskProfile.
type CarrierScoring struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	CreditWeight         float64  `json:"credit_weight"`
	DrivingHistoryWeight float64  `json:"driving_history_weight"`
	VehicleWeight        float64  `json:"vehicle_weight"`
	LoyaltyDiscount      float64  `json:"loyalty_discount"`
	BundleDiscount       float64  `json:"bundle_discount"`
	PreferredRiskProfile []string `json:"preferred_risk_profile"`
}

// Carriers is the scoring table used to rank recommendations.
var Carriers = []CarrierScoring{
	{
		ID: "progressive", Name: "Progressive",
		CreditWeight: 0.25, DrivingHistoryWeight: 0.35, VehicleWeight: 0.25,
		LoyaltyDiscount: 0.05, BundleDiscount: 0.12,
		PreferredRiskProfile: []string{"young-drivers", "non-standard"},
	},
	{
		ID: "geico", Name: "GEICO",
		CreditWeight: 0.30, DrivingHistoryWeight: 0.30, VehicleWeight: 0.25,
		LoyaltyDiscount: 0.08, BundleDiscount: 0.15,
		PreferredRiskProfile: []string{"good-credit", "clean-record"},
	},
	{
		ID: "state-farm", Name: "State Farm",
		CreditWeight: 0.20, DrivingHistoryWeight: 0.35, VehicleWeight: 0.20,
		LoyaltyDiscount: 0.12, BundleDiscount: 0.18,
		PreferredRiskProfile: []string{"families", "homeowners"},
	},
	{
		ID: "allstate", Name: "Allstate",
		CreditWeight: 0.28, DrivingHistoryWeight: 0.32, VehicleWeight: 0.22,
		LoyaltyDiscount: 0.10, BundleDiscount: 0.20,
		PreferredRiskProfile: []string{"mature-drivers", "good-credit"},
	},
	{
		ID: "bristol-west", Name: "Bristol West",
		CreditWeight: 0.15, DrivingHistoryWeight: 0.40, VehicleWeight: 0.30,
		LoyaltyDiscount: 0.03, BundleDiscount: 0.05,
		PreferredRiskProfile: []string{"non-standard", "sr22", "high-risk"},
	},
	{
		ID: "safeco", Name: "Safeco",
		CreditWeight: 0.22, DrivingHistoryWeight: 0.33, VehicleWeight: 0.28,
		LoyaltyDiscount: 0.07, BundleDiscount: 0.14,
		PreferredRiskProfile: []string{"standard", "homeowners"},
	},
}
