package core

// Entity limits for the questionnaire.
const (
	MaxDrivers  = 6
	MaxVehicles = 5
)

// Question ids consulted by the engine's high-risk and SR-22 rules.
const (
	QuestionDriverRelationship = "driver-relationship"
	QuestionDriverDUI          = "driver-dui"
	QuestionDriverAccidents    = "driver-accidents"
	QuestionVehicleType        = "vehicle-type"
	QuestionVehicleMake        = "vehicle-make"
)

// Driver is one household driver being rated. Exactly one driver per
// respondent is primary.
type Driver struct {
	ID        string  `json:"id"`
	IsPrimary bool    `json:"is_primary"`
	Answers   Answers `json:"answers"`
}

// Vehicle is one insured vehicle.
type Vehicle struct {
	ID        string  `json:"id"`
	IsPrimary bool    `json:"is_primary"`
	Answers   Answers `json:"answers"`
}

// HighRisk reports whether the driver trips the high-risk rules: any DUI
// answer other than "none", or two-plus at-fault accidents.
func (d Driver) HighRisk() bool {
	if dui := d.Answers.First(QuestionDriverDUI); dui != "" && dui != "none" {
		return true
	}
	acc := d.Answers.First(QuestionDriverAccidents)
	return acc == "two" || acc == "three-plus"
}

// NeedsSR22 reports whether the driver's DUI history requires an SR-22
// filing. Flagged, not filed, by this system.
func (d Driver) NeedsSR22() bool {
	dui := d.Answers.First(QuestionDriverDUI)
	return dui == "one-recent" || dui == "multiple"
}

