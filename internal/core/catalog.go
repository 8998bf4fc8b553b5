package core

import "fmt"

type QuestionCategory string

const (
	CategoryDriver  QuestionCategory = "driver"
	CategoryVehicle QuestionCategory = "vehicle"
	CategoryPolicy  QuestionCategory = "policy"
)

// QuestionOption is one selectable answer. RiskModifier is multiplicative:
// 1.0 is neutral, below 1.0 lowers the premium, above 1.0 raises it.
type QuestionOption struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	Description  string  `json:"description,omitempty"`
	RiskModifier float64 `json:"risk_modifier"`
}

// Condition gates a question's visibility on a prior answer.
type Condition struct {
	QuestionID string   `json:"question_id"`
	AnswerIDs  []string `json:"answer_ids"`
}

type Question struct {
	ID          string           `json:"id"`
	Category    QuestionCategory `json:"category"`
	Prompt      string           `json:"prompt"`
	Subtext     string           `json:"subtext,omitempty"`
	// Weight is declarative only. Scoring multiplies risk modifiers with
	// equal influence; the weight is carried for catalog documentation.
	Weight        float64         `json:"weight"`
	MultiSelect   bool            `json:"multi_select,omitempty"`
	ConditionalOn *Condition      `json:"conditional_on,omitempty"`
	Options       []QuestionOption `json:"options"`
}

// Option returns the option with the given id, if present.
func (q Question) Option(id string) (QuestionOption, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return QuestionOption{}, false
}

// Sentinel returns the id of the question's "none/basic" option for
// multi-select questions, or "" if the question has no sentinel.
func (q Question) Sentinel() string {
	for _, o := range q.Options {
		if o.ID == "none" || o.ID == "basic" {
			return o.ID
		}
	}
	return ""
}

// Answers maps a question id to the selected option id(s). Single-select
// questions hold exactly one value; multi-select questions hold one or more.
type Answers map[string][]string

// First returns the first selected option id, or "" when unanswered.
func (a Answers) First(questionID string) string {
	if vs := a[questionID]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Has reports whether the question has a non-empty answer.
func (a Answers) Has(questionID string) bool {
	return len(a[questionID]) > 0
}

func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, vs := range a {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

// Catalog bundles the three question tables. It is immutable after Validate.
type Catalog struct {
	Driver  []Question
	Vehicle []Question
	Policy  []Question
}

// DefaultCatalog returns the built-in question tables.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Driver:  DriverQuestions,
		Vehicle: VehicleQuestions,
		Policy:  PolicyQuestions,
	}
}

// Questions returns the table for a category.
func (c *Catalog) Questions(cat QuestionCategory) []Question {
	switch cat {
	case CategoryDriver:
		return c.Driver
	case CategoryVehicle:
		return c.Vehicle
	case CategoryPolicy:
		return c.Policy
	}
	return nil
}

// Validate checks the catalog invariants: unique question ids, non-empty
// option lists, strictly positive risk modifiers, and conditionals that
// reference an earlier question in the same table.
func (c *Catalog) Validate() error {
	seen := map[string]bool{}
	for _, table := range [][]Question{c.Driver, c.Vehicle, c.Policy} {
		inTable := map[string]bool{}
		for _, q := range table {
			if q.ID == "" {
				return fmt.Errorf("%w: question with empty id", ErrValidation)
			}
			if seen[q.ID] {
				return fmt.Errorf("%w: duplicate question id %q", ErrValidation, q.ID)
			}
			seen[q.ID] = true
			if len(q.Options) == 0 {
				return fmt.Errorf("%w: question %q has no options", ErrValidation, q.ID)
			}
			optIDs := map[string]bool{}
			for _, o := range q.Options {
				if optIDs[o.ID] {
					return fmt.Errorf("%w: question %q has duplicate option %q", ErrValidation, q.ID, o.ID)
				}
				optIDs[o.ID] = true
				// The engine multiplies modifiers, so a zero or negative value
				// would corrupt every downstream computation.
				if o.RiskModifier <= 0 {
					return fmt.Errorf("%w: question %q option %q has non-positive risk modifier %v",
						ErrValidation, q.ID, o.ID, o.RiskModifier)
				}
			}
			if cond := q.ConditionalOn; cond != nil {
				if !inTable[cond.QuestionID] {
					return fmt.Errorf("%w: question %q depends on unknown or later question %q",
						ErrValidation, q.ID, cond.QuestionID)
				}
				if len(cond.AnswerIDs) == 0 {
					return fmt.Errorf("%w: question %q has a condition with no answer ids", ErrValidation, q.ID)
				}
			}
			inTable[q.ID] = true
		}
	}
	return nil
}

// ActiveQuestions filters a question table down to the questions currently
// visible for the given answers: unconditional questions always pass, and a
// conditional question passes only if its controlling answer is present and
// intersects the condition's answer ids. Catalog order is preserved.
//
// A previously recorded answer for a question that becomes hidden is not
// cleared here; callers decide whether stale answers remain in scoring.
func ActiveQuestions(questions []Question, answers Answers) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.ConditionalOn == nil {
			out = append(out, q)
			continue
		}
		selected := answers[q.ConditionalOn.QuestionID]
		if len(selected) == 0 {
			continue
		}
		if intersects(selected, q.ConditionalOn.AnswerIDs) {
			out = append(out, q)
		}
	}
	return out
}

// modifier resolves the multiplicative contribution of one answered question:
// the product of the selected options' risk modifiers. Unanswered questions
// and unresolvable option ids contribute a neutral 1.0 so the estimate is
// always renderable.
func modifier(q Question, answers Answers) float64 {
	score := 1.0
	for _, id := range answers[q.ID] {
		if opt, ok := q.Option(id); ok {
			score *= opt.RiskModifier
		}
	}
	return score
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
