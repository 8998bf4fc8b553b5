package core

// PolicyQuestionDiscounts is the one policy question whose modifiers fold
// into the discount score instead of the location score.
const PolicyQuestionDiscounts = "discounts"

// PolicyQuestionState selects the rating jurisdiction.
const PolicyQuestionState = "state"

// PolicyQuestions is answered once for the whole respondent.
var PolicyQuestions = []Question{
	{
		ID:       PolicyQuestionState,
		Category: CategoryPolicy,
		Prompt:   "Which state?",
		Weight:   0.12,
		Options: []QuestionOption{
			{ID: "OK", Label: "Oklahoma", RiskModifier: 0.95},
			{ID: "TX", Label: "Texas", RiskModifier: 1.05},
			{ID: "CA", Label: "California", RiskModifier: 1.20},
			{ID: "FL", Label: "Florida", RiskModifier: 1.25},
			{ID: "NY", Label: "New York", RiskModifier: 1.15},
		},
	},
	{
		ID:       "territory",
		Category: CategoryPolicy,
		Prompt:   "Area type?",
		Weight:   0.08,
		Options: []QuestionOption{
			{ID: "major-city", Label: "Major City / Downtown", RiskModifier: 1.30},
			{ID: "urban", Label: "Urban Area", RiskModifier: 1.15},
			{ID: "suburban", Label: "Suburban", RiskModifier: 0.95},
			{ID: "small-town", Label: "Small Town", RiskModifier: 0.88},
			{ID: "rural", Label: "Rural", RiskModifier: 0.80},
		},
	},
	{
		ID:       "garage",
		Category: CategoryPolicy,
		Prompt:   "Where do you park overnight?",
		Weight:   0.03,
		Options: []QuestionOption{
			{ID: "garage", Label: "Private Garage", RiskModifier: 0.92},
			{ID: "carport", Label: "Carport", RiskModifier: 0.96},
			{ID: "driveway", Label: "Driveway", RiskModifier: 1.0},
			{ID: "street", Label: "Street Parking", RiskModifier: 1.10},
		},
	},
	{
		ID:       "prior-insurance",
		Category: CategoryPolicy,
		Prompt:   "How long continuously insured?",
		Weight:   0.08,
		Options: []QuestionOption{
			{ID: "none", Label: "Currently Uninsured", RiskModifier: 1.45, Description: "Lapse surcharge applies"},
			{ID: "less-6mo", Label: "Less than 6 months", RiskModifier: 1.25},
			{ID: "6mo-1yr", Label: "6 months - 1 year", RiskModifier: 1.10},
			{ID: "1-3yr", Label: "1-3 years", RiskModifier: 1.0},
			{ID: "3-5yr", Label: "3-5 years", RiskModifier: 0.92},
			{ID: "5yr+", Label: "5+ years", RiskModifier: 0.85, Description: "Best loyalty discount"},
		},
	},
	{
		ID:       "prior-carrier",
		Category: CategoryPolicy,
		Prompt:   "Current or most recent insurance company?",
		Weight:   0.04,
		Options: []QuestionOption{
			{ID: "progressive", Label: "Progressive", RiskModifier: 0.98},
			{ID: "geico", Label: "GEICO", RiskModifier: 0.98},
			{ID: "state-farm", Label: "State Farm", RiskModifier: 0.96, Description: "Preferred carrier history"},
			{ID: "allstate", Label: "Allstate", RiskModifier: 0.97},
			{ID: "usaa", Label: "USAA", RiskModifier: 0.95, Description: "Excellent carrier history"},
			{ID: "farmers", Label: "Farmers", RiskModifier: 0.97},
			{ID: "non-standard", Label: "Bristol West/Dairyland/etc", RiskModifier: 1.08, Description: "Non-standard carrier"},
			{ID: "other", Label: "Other/Unknown", RiskModifier: 1.0},
			{ID: "none", Label: "No prior insurance", RiskModifier: 1.15},
		},
	},
	{
		ID:       "prior-limits",
		Category: CategoryPolicy,
		Prompt:   "Your current/prior liability limits?",
		Subtext:  "Higher prior limits = lower rates with most carriers",
		Weight:   0.06,
		Options: []QuestionOption{
			{ID: "state-min", Label: "State Minimum", RiskModifier: 1.15, Description: "25/50/25 or similar"},
			{ID: "50-100", Label: "50/100/50", RiskModifier: 1.05},
			{ID: "100-300", Label: "100/300/100", RiskModifier: 0.95, Description: "Most common"},
			{ID: "250-500", Label: "250/500/250", RiskModifier: 0.90},
			{ID: "500-csl", Label: "$500K+ or CSL", RiskModifier: 0.85, Description: "Premium coverage"},
			{ID: "unknown", Label: "Not sure", RiskModifier: 1.05},
			{ID: "none", Label: "No prior insurance", RiskModifier: 1.20},
		},
	},
	{
		ID:       "liability-limits",
		Category: CategoryPolicy,
		Prompt:   "What liability limits do you want?",
		Subtext:  "Protects you if you cause an accident (Bodily Injury/Property Damage)",
		Weight:   0.10,
		Options: []QuestionOption{
			{ID: "25-50-25", Label: "25/50/25", RiskModifier: 0.75, Description: "OK minimum - basic protection"},
			{ID: "30-60-25", Label: "30/60/25", RiskModifier: 0.78, Description: "TX minimum"},
			{ID: "50-100-50", Label: "50/100/50", RiskModifier: 0.88, Description: "Good protection"},
			{ID: "100-300-100", Label: "100/300/100", RiskModifier: 1.0, Description: "Recommended - Most popular"},
			{ID: "250-500-100", Label: "250/500/100", RiskModifier: 1.12, Description: "Better protection"},
			{ID: "250-500-250", Label: "250/500/250", RiskModifier: 1.18, Description: "Strong protection"},
			{ID: "500-500-500", Label: "500/500/500", RiskModifier: 1.28, Description: "Maximum protection"},
			{ID: "100-csl", Label: "$100K CSL", RiskModifier: 0.92, Description: "Combined single limit"},
			{ID: "300-csl", Label: "$300K CSL", RiskModifier: 1.05},
			{ID: "500-csl", Label: "$500K CSL", RiskModifier: 1.22},
		},
	},
	{
		ID:       "uninsured-motorist",
		Category: CategoryPolicy,
		Prompt:   "Uninsured/Underinsured Motorist coverage?",
		Subtext:  "Protects you if hit by someone without adequate insurance",
		Weight:   0.05,
		Options: []QuestionOption{
			{ID: "reject", Label: "Reject/Decline", RiskModifier: 0.85, Description: "Not recommended"},
			{ID: "state-min", Label: "State Minimum", RiskModifier: 0.90},
			{ID: "match-liability", Label: "Match Liability Limits", RiskModifier: 1.0, Description: "Recommended"},
			{ID: "stacked", Label: "Stacked Coverage", RiskModifier: 1.15, Description: "Maximum protection"},
		},
	},
	{
		ID:          PolicyQuestionDiscounts,
		Category:    CategoryPolicy,
		Prompt:      "Available discounts? (Select all)",
		Weight:      0.08,
		MultiSelect: true,
		Options: []QuestionOption{
			{ID: "none", Label: "None", RiskModifier: 1.0},
			{ID: "homeowner", Label: "Homeowner", RiskModifier: 0.92},
			{ID: "bundle", Label: "Bundle Home/Renters", RiskModifier: 0.85},
			{ID: "pay-in-full", Label: "Pay in Full", RiskModifier: 0.95},
			{ID: "paperless", Label: "Paperless / EFT", RiskModifier: 0.97},
			{ID: "military", Label: "Military/Veteran", RiskModifier: 0.88},
			{ID: "defensive-driving", Label: "Defensive Driving", RiskModifier: 0.92},
		},
	},
}
