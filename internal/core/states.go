package core

// DefaultState is the fallback rating jurisdiction when the respondent has
// not answered the state question yet.
const DefaultState = "OK"

// CoverageLimits are the jurisdiction's minimum required limits in dollars.
type CoverageLimits struct {
	Bodily   int `json:"bodily"`
	Property int `json:"property"`
	PIP      int `json:"pip,omitempty"`
}

// StateConfig holds per-jurisdiction rating configuration.
type StateConfig struct {
	Code                 string             `json:"code"`
	Name                 string             `json:"name"`
	CreditScoreAllowed   bool               `json:"credit_score_allowed"`
	MinCoverageLimits    CoverageLimits     `json:"min_coverage_limits"`
	RequiredCoverages    []string           `json:"required_coverages"`
	AvgBasePremium       float64            `json:"avg_base_premium"`
	TerritoryMultipliers map[string]float64 `json:"territory_multipliers"`
}

// StateConfigs is the jurisdiction table. Lookups for unknown codes fall
// back to DefaultState.
var StateConfigs = map[string]StateConfig{
	"OK": {
		Code:               "OK",
		Name:               "Oklahoma",
		CreditScoreAllowed: true,
		MinCoverageLimits:  CoverageLimits{Bodily: 25000, Property: 25000},
		RequiredCoverages:  []string{"liability"},
		AvgBasePremium:     165,
		TerritoryMultipliers: map[string]float64{
			"tulsa": 1.12, "oklahoma-city": 1.15, "suburban": 0.95, "rural": 0.85,
		},
	},
	"TX": {
		Code:               "TX",
		Name:               "Texas",
		CreditScoreAllowed: true,
		MinCoverageLimits:  CoverageLimits{Bodily: 30000, Property: 25000, PIP: 2500},
		RequiredCoverages:  []string{"liability", "pip"},
		AvgBasePremium:     185,
		TerritoryMultipliers: map[string]float64{
			"houston": 1.25, "dallas": 1.22, "austin": 1.15, "suburban": 0.92, "rural": 0.80,
		},
	},
	"CA": {
		Code:               "CA",
		Name:               "California",
		CreditScoreAllowed: false,
		MinCoverageLimits:  CoverageLimits{Bodily: 15000, Property: 5000},
		RequiredCoverages:  []string{"liability"},
		AvgBasePremium:     210,
		TerritoryMultipliers: map[string]float64{
			"los-angeles": 1.35, "san-francisco": 1.30, "suburban": 0.90, "rural": 0.75,
		},
	},
	"FL": {
		Code:               "FL",
		Name:               "Florida",
		CreditScoreAllowed: true,
		MinCoverageLimits:  CoverageLimits{Bodily: 10000, Property: 10000, PIP: 10000},
		RequiredCoverages:  []string{"liability", "pip"},
		AvgBasePremium:     220,
		TerritoryMultipliers: map[string]float64{
			"miami": 1.45, "orlando": 1.20, "tampa": 1.22, "suburban": 0.95, "rural": 0.82,
		},
	},
	"NY": {
		Code:               "NY",
		Name:               "New York",
		CreditScoreAllowed: true,
		MinCoverageLimits:  CoverageLimits{Bodily: 25000, Property: 10000, PIP: 50000},
		RequiredCoverages:  []string{"liability", "pip", "uninsured"},
		AvgBasePremium:     195,
		TerritoryMultipliers: map[string]float64{
			"new-york-city": 1.55, "buffalo": 1.15, "suburban": 0.88, "rural": 0.78,
		},
	},
}

// StateConfigFor resolves the jurisdiction for a state code, falling back to
// the default jurisdiction for empty or unknown codes.
func StateConfigFor(code string) StateConfig {
	if cfg, ok := StateConfigs[code]; ok {
		return cfg
	}
	return StateConfigs[DefaultState]
}
