package core

// VehicleQuestions is asked once per vehicle.
var VehicleQuestions = []Question{
	{
		ID:       "vehicle-year",
		Category: CategoryVehicle,
		Prompt:   "What year is this vehicle?",
		Weight:   0.08,
		Options: []QuestionOption{
			{ID: "2024-2025", Label: "2024-2025", RiskModifier: 1.18, Description: "New vehicle"},
			{ID: "2021-2023", Label: "2021-2023", RiskModifier: 1.08},
			{ID: "2018-2020", Label: "2018-2020", RiskModifier: 1.0},
			{ID: "2014-2017", Label: "2014-2017", RiskModifier: 0.90},
			{ID: "2010-2013", Label: "2010-2013", RiskModifier: 0.82},
			{ID: "pre-2010", Label: "Before 2010", RiskModifier: 0.75},
		},
	},
	{
		ID:       "vehicle-type",
		Category: CategoryVehicle,
		Prompt:   "What type of vehicle?",
		Weight:   0.10,
		Options: []QuestionOption{
			{ID: "sedan", Label: "Sedan", RiskModifier: 0.95},
			{ID: "suv", Label: "SUV / Crossover", RiskModifier: 1.08},
			{ID: "truck", Label: "Pickup Truck", RiskModifier: 1.05},
			{ID: "minivan", Label: "Minivan", RiskModifier: 0.92},
			{ID: "sports", Label: "Sports Car", RiskModifier: 1.45},
			{ID: "luxury", Label: "Luxury Vehicle", RiskModifier: 1.35},
			{ID: "electric", Label: "Electric Vehicle", RiskModifier: 1.12},
			{ID: "hybrid", Label: "Hybrid", RiskModifier: 1.02},
		},
	},
	{
		ID:       "vehicle-make",
		Category: CategoryVehicle,
		Prompt:   "Vehicle make?",
		Weight:   0.06,
		Options: []QuestionOption{
			{ID: "toyota", Label: "Toyota", RiskModifier: 0.92, Description: "Lower theft rates"},
			{ID: "honda", Label: "Honda", RiskModifier: 0.94},
			{ID: "ford", Label: "Ford", RiskModifier: 1.0},
			{ID: "chevrolet", Label: "Chevrolet", RiskModifier: 1.02},
			{ID: "nissan", Label: "Nissan", RiskModifier: 0.98},
			{ID: "hyundai-kia", Label: "Hyundai / Kia", RiskModifier: 1.08, Description: "Higher theft risk"},
			{ID: "bmw-mercedes", Label: "BMW / Mercedes", RiskModifier: 1.25},
			{ID: "other", Label: "Other", RiskModifier: 1.0},
		},
	},
	{
		ID:       "vehicle-value",
		Category: CategoryVehicle,
		Prompt:   "Estimated vehicle value?",
		Weight:   0.06,
		Options: []QuestionOption{
			{ID: "under-10k", Label: "Under $10,000", RiskModifier: 0.85},
			{ID: "10k-20k", Label: "$10,000 - $20,000", RiskModifier: 0.95},
			{ID: "20k-35k", Label: "$20,000 - $35,000", RiskModifier: 1.05},
			{ID: "35k-50k", Label: "$35,000 - $50,000", RiskModifier: 1.18},
			{ID: "over-50k", Label: "Over $50,000", RiskModifier: 1.35},
		},
	},
	{
		ID:       "vehicle-use",
		Category: CategoryVehicle,
		Prompt:   "Primary use?",
		Weight:   0.04,
		Options: []QuestionOption{
			{ID: "pleasure", Label: "Pleasure / Weekend", RiskModifier: 0.88},
			{ID: "commute-short", Label: "Commute (Under 15 mi)", RiskModifier: 0.98},
			{ID: "commute-long", Label: "Commute (15+ mi)", RiskModifier: 1.08},
			{ID: "business", Label: "Business Use", RiskModifier: 1.15},
			{ID: "rideshare", Label: "Rideshare/Delivery", RiskModifier: 1.45},
		},
	},
	{
		ID:       "vehicle-mileage",
		Category: CategoryVehicle,
		Prompt:   "Annual mileage?",
		Weight:   0.06,
		Options: []QuestionOption{
			{ID: "under-5k", Label: "Under 5,000", RiskModifier: 0.85, Description: "Low mileage discount"},
			{ID: "5k-10k", Label: "5,000 - 10,000", RiskModifier: 0.92},
			{ID: "10k-15k", Label: "10,000 - 15,000", RiskModifier: 1.0, Description: "Average"},
			{ID: "15k-20k", Label: "15,000 - 20,000", RiskModifier: 1.08},
			{ID: "over-20k", Label: "Over 20,000", RiskModifier: 1.18},
		},
	},
	{
		ID:       "vehicle-coverage",
		Category: CategoryVehicle,
		Prompt:   "What coverage type do you need?",
		Weight:   0.10,
		Options: []QuestionOption{
			{ID: "liability-only", Label: "Liability Only", RiskModifier: 0.50, Description: "State minimum - no comp/collision"},
			{ID: "liability-uninsured", Label: "Liability + Uninsured", RiskModifier: 0.65, Description: "Good for older vehicles"},
			{ID: "full-coverage", Label: "Full Coverage", RiskModifier: 1.0, Description: "Comp + Collision included"},
		},
	},
	{
		ID:       "vehicle-comp-deductible",
		Category: CategoryVehicle,
		Prompt:   "Comprehensive deductible?",
		Subtext:  "Covers theft, weather, animals, vandalism",
		Weight:   0.06,
		ConditionalOn: &Condition{
			QuestionID: "vehicle-coverage",
			AnswerIDs:  []string{"full-coverage"},
		},
		Options: []QuestionOption{
			{ID: "100", Label: "$100 Deductible", RiskModifier: 1.25, Description: "Lowest out-of-pocket"},
			{ID: "250", Label: "$250 Deductible", RiskModifier: 1.15},
			{ID: "500", Label: "$500 Deductible", RiskModifier: 1.0, Description: "Most common"},
			{ID: "1000", Label: "$1,000 Deductible", RiskModifier: 0.88},
			{ID: "1500", Label: "$1,500 Deductible", RiskModifier: 0.82},
			{ID: "2000", Label: "$2,000 Deductible", RiskModifier: 0.78, Description: "Lowest premium"},
			{ID: "2500", Label: "$2,500 Deductible", RiskModifier: 0.72},
		},
	},
	{
		ID:       "vehicle-collision-deductible",
		Category: CategoryVehicle,
		Prompt:   "Collision deductible?",
		Subtext:  "Covers damage from accidents",
		Weight:   0.06,
		ConditionalOn: &Condition{
			QuestionID: "vehicle-coverage",
			AnswerIDs:  []string{"full-coverage"},
		},
		Options: []QuestionOption{
			{ID: "100", Label: "$100 Deductible", RiskModifier: 1.28, Description: "Lowest out-of-pocket"},
			{ID: "250", Label: "$250 Deductible", RiskModifier: 1.18},
			{ID: "500", Label: "$500 Deductible", RiskModifier: 1.0, Description: "Most common"},
			{ID: "1000", Label: "$1,000 Deductible", RiskModifier: 0.85},
			{ID: "1500", Label: "$1,500 Deductible", RiskModifier: 0.78},
			{ID: "2000", Label: "$2,000 Deductible", RiskModifier: 0.72, Description: "Lowest premium"},
			{ID: "2500", Label: "$2,500 Deductible", RiskModifier: 0.68},
		},
	},
	{
		ID:          "vehicle-safety",
		Category:    CategoryVehicle,
		Prompt:      "Safety features? (Select all)",
		Subtext:     "Advanced safety features reduce rates",
		Weight:      0.05,
		MultiSelect: true,
		Options: []QuestionOption{
			{ID: "basic", Label: "Basic Only", RiskModifier: 1.0},
			{ID: "backup-camera", Label: "Backup Camera", RiskModifier: 0.98},
			{ID: "blind-spot", Label: "Blind Spot Monitor", RiskModifier: 0.96},
			{ID: "auto-braking", Label: "Auto Emergency Braking", RiskModifier: 0.92},
			{ID: "lane-assist", Label: "Lane Departure Warning", RiskModifier: 0.95},
		},
	},
	{
		ID:       "vehicle-anti-theft",
		Category: CategoryVehicle,
		Prompt:   "Anti-theft devices?",
		Weight:   0.03,
		Options: []QuestionOption{
			{ID: "none", Label: "None", RiskModifier: 1.0},
			{ID: "alarm", Label: "Car Alarm", RiskModifier: 0.97},
			{ID: "gps", Label: "GPS Tracking", RiskModifier: 0.94},
			{ID: "comprehensive", Label: "Multiple Systems", RiskModifier: 0.90},
		},
	},
}
