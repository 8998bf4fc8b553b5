package core

// DriverQuestions is asked once per driver. Catalog order is presentation
// order; no reordering happens at runtime.
var DriverQuestions = []Question{
	{
		ID:       "driver-relationship",
		Category: CategoryDriver,
		Prompt:   "Who is this driver?",
		Weight:   0.02,
		Options: []QuestionOption{
			{ID: "self", Label: "Me (Primary)", RiskModifier: 1.0},
			{ID: "spouse", Label: "Spouse", RiskModifier: 0.95},
			{ID: "child", Label: "Child", RiskModifier: 1.15},
			{ID: "other", Label: "Other Household Member", RiskModifier: 1.05},
		},
	},
	{
		ID:       "driver-age",
		Category: CategoryDriver,
		Prompt:   "How old is this driver?",
		Subtext:  "Age significantly affects premium rates",
		Weight:   0.15,
		Options: []QuestionOption{
			{ID: "16-17", Label: "16-17", RiskModifier: 2.15, Description: "Teen driver surcharge"},
			{ID: "18-20", Label: "18-20", RiskModifier: 1.75, Description: "Young driver rates"},
			{ID: "21-25", Label: "21-25", RiskModifier: 1.35},
			{ID: "26-35", Label: "26-35", RiskModifier: 1.0, Description: "Prime rates"},
			{ID: "36-55", Label: "36-55", RiskModifier: 0.92, Description: "Experienced driver"},
			{ID: "56-65", Label: "56-65", RiskModifier: 0.95},
			{ID: "65+", Label: "65+", RiskModifier: 1.08},
		},
	},
	{
		ID:       "driver-gender",
		Category: CategoryDriver,
		Prompt:   "What is this driver's gender?",
		Weight:   0.05,
		Options: []QuestionOption{
			{ID: "male", Label: "Male", RiskModifier: 1.05},
			{ID: "female", Label: "Female", RiskModifier: 0.95},
			{ID: "non-binary", Label: "Non-binary", RiskModifier: 1.0},
		},
	},
	{
		ID:       "driver-marital",
		Category: CategoryDriver,
		Prompt:   "Marital status?",
		Weight:   0.04,
		Options: []QuestionOption{
			{ID: "single", Label: "Single", RiskModifier: 1.05},
			{ID: "married", Label: "Married", RiskModifier: 0.92},
			{ID: "divorced", Label: "Divorced", RiskModifier: 1.0},
			{ID: "widowed", Label: "Widowed", RiskModifier: 0.95},
		},
	},
	{
		ID:       "driver-credit",
		Category: CategoryDriver,
		Prompt:   "Credit score range?",
		Subtext:  "Most states use credit-based insurance scores",
		Weight:   0.20,
		Options: []QuestionOption{
			{ID: "excellent", Label: "Excellent (750+)", RiskModifier: 0.75, Description: "Best rates"},
			{ID: "good", Label: "Good (700-749)", RiskModifier: 0.90},
			{ID: "fair", Label: "Fair (650-699)", RiskModifier: 1.10},
			{ID: "poor", Label: "Poor (550-649)", RiskModifier: 1.35},
			{ID: "very-poor", Label: "Very Poor (<550)", RiskModifier: 1.65, Description: "Non-standard"},
			{ID: "no-credit", Label: "No Credit History", RiskModifier: 1.25},
		},
	},
	{
		ID:       "driver-years-licensed",
		Category: CategoryDriver,
		Prompt:   "Years licensed?",
		Weight:   0.08,
		Options: []QuestionOption{
			{ID: "less-than-1", Label: "Less than 1 year", RiskModifier: 1.55},
			{ID: "1-3", Label: "1-3 years", RiskModifier: 1.25},
			{ID: "3-5", Label: "3-5 years", RiskModifier: 1.08},
			{ID: "5-10", Label: "5-10 years", RiskModifier: 0.98},
			{ID: "10+", Label: "10+ years", RiskModifier: 0.90},
		},
	},
	{
		ID:       "driver-accidents",
		Category: CategoryDriver,
		Prompt:   "At-fault accidents in last 5 years?",
		Weight:   0.18,
		Options: []QuestionOption{
			{ID: "none", Label: "None", RiskModifier: 0.90, Description: "Clean record"},
			{ID: "one-minor", Label: "1 Minor", RiskModifier: 1.15},
			{ID: "one-major", Label: "1 Major", RiskModifier: 1.45},
			{ID: "two", Label: "2 Accidents", RiskModifier: 1.75},
			{ID: "three-plus", Label: "3+ Accidents", RiskModifier: 2.25, Description: "High-risk"},
		},
	},
	{
		ID:       "driver-violations",
		Category: CategoryDriver,
		Prompt:   "Moving violations in last 3 years?",
		Weight:   0.15,
		Options: []QuestionOption{
			{ID: "none", Label: "None", RiskModifier: 0.92},
			{ID: "one-minor", Label: "1 Minor", RiskModifier: 1.08},
			{ID: "one-major", Label: "1 Major (15+ over)", RiskModifier: 1.25},
			{ID: "two-minor", Label: "2 Minor", RiskModifier: 1.20},
			{ID: "multiple", Label: "Multiple", RiskModifier: 1.55},
		},
	},
	{
		ID:       "driver-dui",
		Category: CategoryDriver,
		Prompt:   "Any DUI/DWI in last 10 years?",
		Weight:   0.20,
		Options: []QuestionOption{
			{ID: "none", Label: "No", RiskModifier: 1.0},
			{ID: "one-old", Label: "Yes, 5+ years ago", RiskModifier: 1.65, Description: "May need SR-22"},
			{ID: "one-recent", Label: "Yes, within 5 years", RiskModifier: 2.25, Description: "SR-22 required"},
			{ID: "multiple", Label: "Multiple", RiskModifier: 3.0, Description: "High-risk specialist"},
		},
	},
	{
		ID:       "driver-good-student",
		Category: CategoryDriver,
		Prompt:   "Eligible for good student discount?",
		Subtext:  "B average or better for drivers under 25",
		Weight:   0.04,
		ConditionalOn: &Condition{
			QuestionID: "driver-age",
			AnswerIDs:  []string{"16-17", "18-20", "21-25"},
		},
		Options: []QuestionOption{
			{ID: "yes", Label: "Yes (B average+)", RiskModifier: 0.88, Description: "Up to 12% off"},
			{ID: "no", Label: "No", RiskModifier: 1.0},
			{ID: "not-student", Label: "Not a student", RiskModifier: 1.0},
		},
	},
	{
		ID:       "driver-children-household",
		Category: CategoryDriver,
		Prompt:   "Any licensed children (16+) in household?",
		Subtext:  "All licensed drivers must be listed or they will not be covered",
		Weight:   0.05,
		Options: []QuestionOption{
			{ID: "none", Label: "No licensed children", RiskModifier: 1.0},
			{ID: "one-listed", Label: "Yes, 1 child (already listed)", RiskModifier: 1.0},
			{ID: "two-plus-listed", Label: "Yes, 2+ (already listed)", RiskModifier: 1.0},
			{ID: "yes-unlisted", Label: "Yes, but NOT listed above", RiskModifier: 1.25, Description: "Must add to policy"},
			{ID: "excluded", Label: "Yes, will exclude from policy", RiskModifier: 1.0, Description: "They cannot drive your vehicles"},
		},
	},
	{
		ID:       "driver-rideshare",
		Category: CategoryDriver,
		Prompt:   "Do you drive for Uber, Lyft, or delivery apps?",
		Subtext:  "Personal auto policies typically do not cover rideshare/delivery",
		Weight:   0.06,
		Options: []QuestionOption{
			{ID: "no", Label: "No", RiskModifier: 1.0},
			{ID: "uber-lyft", Label: "Yes - Uber/Lyft", RiskModifier: 1.35, Description: "Need rideshare endorsement"},
			{ID: "delivery", Label: "Yes - DoorDash/Instacart/etc", RiskModifier: 1.25, Description: "Need delivery coverage"},
			{ID: "both", Label: "Yes - Both rideshare & delivery", RiskModifier: 1.45, Description: "Commercial coverage recommended"},
		},
	},
}
