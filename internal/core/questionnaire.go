package core

import (
	"context"
	"fmt"
	"time"

	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/platform/ids"
)

type Phase string

const (
	PhaseDriverCount    Phase = "drivers-count"
	PhaseDriverDetails  Phase = "driver-details"
	PhaseVehicleCount   Phase = "vehicles-count"
	PhaseVehicleDetails Phase = "vehicle-details"
	PhasePolicy         Phase = "policy"
	PhaseResults        Phase = "results"
)

// Session is one respondent's in-progress questionnaire. It lives only in
// process memory; the respondent model is never written to shared storage.
type Session struct {
	ID              string    `json:"id"`
	Phase           Phase     `json:"phase"`
	Drivers         []Driver  `json:"drivers"`
	Vehicles        []Vehicle `json:"vehicles"`
	PolicyAnswers   Answers   `json:"policy_answers"`
	ActiveDriverID  string    `json:"active_driver_id"`
	ActiveVehicleID string    `json:"active_vehicle_id"`
	QuestionIndex   int       `json:"question_index"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SessionRepo interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context, id string) error

	// DeleteIdle evicts sessions not updated since the cutoff and returns
	// how many were removed.
	DeleteIdle(ctx context.Context, before time.Time) (int, error)
}

var (
	ErrSessionNotFound   = fmt.Errorf("%w: session not found", ErrNotFound)
	ErrNoCurrentQuestion = fmt.Errorf("%w: no question at this phase", ErrInvalidState)
	ErrUnanswered        = fmt.Errorf("%w: current question is unanswered", ErrValidation)
	ErrPrimaryRemoval    = fmt.Errorf("%w: primary entity cannot be removed", ErrValidation)
)

// Questionnaire drives the phase state machine over a Session. All methods
// mutate the session in place and are synchronous; a session must not be
// shared across goroutines without external coordination.
type Questionnaire struct {
	catalog *Catalog
	clock   func() time.Time
}

func NewQuestionnaire(catalog *Catalog) *Questionnaire {
	return &Questionnaire{catalog: catalog, clock: time.Now}
}

// NewSession starts a fresh single-driver, single-vehicle questionnaire.
// The primary driver's relationship answer is seeded to "self".
func (qn *Questionnaire) NewSession() Session {
	now := qn.clock()
	s := Session{
		ID:        ids.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	qn.reset(&s)
	return s
}

// Restart returns the session to the initial single-driver, single-vehicle
// state at the drivers-count phase.
func (qn *Questionnaire) Restart(s *Session) {
	qn.reset(s)
	qn.touch(s)
}

func (qn *Questionnaire) reset(s *Session) {
	s.Phase = PhaseDriverCount
	s.Drivers = []Driver{{
		ID:        "driver-1",
		IsPrimary: true,
		Answers:   Answers{QuestionDriverRelationship: {"self"}},
	}}
	s.Vehicles = []Vehicle{{ID: "vehicle-1", IsPrimary: true, Answers: Answers{}}}
	s.PolicyAnswers = Answers{}
	s.ActiveDriverID = "driver-1"
	s.ActiveVehicleID = "vehicle-1"
	s.QuestionIndex = 0
}

func (qn *Questionnaire) touch(s *Session) {
	s.UpdatedAt = qn.clock()
}

// ActiveQuestionList returns the currently visible questions for the
// session's phase and active entity.
func (qn *Questionnaire) ActiveQuestionList(s *Session) []Question {
	switch s.Phase {
	case PhaseDriverDetails:
		if d, ok := findDriver(s.Drivers, s.ActiveDriverID); ok {
			return ActiveQuestions(qn.catalog.Driver, d.Answers)
		}
	case PhaseVehicleDetails:
		if v, ok := findVehicle(s.Vehicles, s.ActiveVehicleID); ok {
			return ActiveQuestions(qn.catalog.Vehicle, v.Answers)
		}
	case PhasePolicy:
		return ActiveQuestions(qn.catalog.Policy, s.PolicyAnswers)
	}
	return nil
}

// CurrentQuestion returns the question at the session's cursor.
func (qn *Questionnaire) CurrentQuestion(s *Session) (Question, bool) {
	active := qn.ActiveQuestionList(s)
	if s.QuestionIndex < 0 || s.QuestionIndex >= len(active) {
		return Question{}, false
	}
	return active[s.QuestionIndex], true
}

// CurrentAnswer returns the recorded answer for the current question.
func (qn *Questionnaire) CurrentAnswer(s *Session) []string {
	q, ok := qn.CurrentQuestion(s)
	if !ok {
		return nil
	}
	return qn.answersFor(s)[q.ID]
}

// CanContinue reports whether forward navigation is allowed: count phases
// always can, detail phases require a non-empty answer for the current
// question, the results phase is terminal.
func (qn *Questionnaire) CanContinue(s *Session) bool {
	switch s.Phase {
	case PhaseDriverCount, PhaseVehicleCount:
		return true
	case PhaseResults:
		return false
	}
	return len(qn.CurrentAnswer(s)) > 0
}

// Select records an option for the current question. Multi-select questions
// get sentinel semantics: picking the sentinel clears everything else,
// picking a non-sentinel removes the sentinel, and deselecting the last
// non-sentinel reverts the answer to the sentinel.
func (qn *Questionnaire) Select(s *Session, optionID string) error {
	q, ok := qn.CurrentQuestion(s)
	if !ok {
		return ErrNoCurrentQuestion
	}
	if _, ok := q.Option(optionID); !ok {
		return fmt.Errorf("%w: option %q is not valid for question %q", ErrValidation, optionID, q.ID)
	}

	answers := qn.answersFor(s)
	if !q.MultiSelect {
		answers[q.ID] = []string{optionID}
		qn.touch(s)
		return nil
	}

	sentinel := q.Sentinel()
	curr := answers[q.ID]
	switch {
	case optionID == sentinel && sentinel != "":
		answers[q.ID] = []string{sentinel}
	case containsTag(curr, optionID):
		next := removeTag(curr, optionID)
		if len(next) == 0 && sentinel != "" {
			next = []string{sentinel}
		}
		answers[q.ID] = next
	default:
		next := curr
		if sentinel != "" {
			next = removeTag(next, sentinel)
		}
		answers[q.ID] = append(next, optionID)
	}
	qn.touch(s)
	return nil
}

// Next advances the cursor: within an entity's question list, then to the
// next entity, then to the next phase. Completing the policy phase lands the
// session on results.
func (qn *Questionnaire) Next(s *Session) error {
	switch s.Phase {
	case PhaseDriverCount:
		s.Phase = PhaseDriverDetails
		s.ActiveDriverID = s.Drivers[0].ID
		s.QuestionIndex = 0
		qn.touch(s)
		return nil
	case PhaseVehicleCount:
		s.Phase = PhaseVehicleDetails
		s.ActiveVehicleID = s.Vehicles[0].ID
		s.QuestionIndex = 0
		qn.touch(s)
		return nil
	case PhaseResults:
		return fmt.Errorf("%w: session is complete", ErrInvalidState)
	}

	if !qn.CanContinue(s) {
		return ErrUnanswered
	}
	active := qn.ActiveQuestionList(s)
	if s.QuestionIndex < len(active)-1 {
		s.QuestionIndex++
		qn.touch(s)
		return nil
	}

	switch s.Phase {
	case PhaseDriverDetails:
		if idx := driverIndex(s.Drivers, s.ActiveDriverID); idx < len(s.Drivers)-1 {
			s.ActiveDriverID = s.Drivers[idx+1].ID
			s.QuestionIndex = 0
		} else {
			s.Phase = PhaseVehicleCount
			s.QuestionIndex = 0
		}
	case PhaseVehicleDetails:
		if idx := vehicleIndex(s.Vehicles, s.ActiveVehicleID); idx < len(s.Vehicles)-1 {
			s.ActiveVehicleID = s.Vehicles[idx+1].ID
			s.QuestionIndex = 0
		} else {
			s.Phase = PhasePolicy
			s.QuestionIndex = 0
		}
	case PhasePolicy:
		s.Phase = PhaseResults
		s.QuestionIndex = 0
	}
	qn.touch(s)
	return nil
}

// Back moves to the previous question, or to the previous entity's last
// currently active question, or to the count screen. Visibility is
// recomputed against the target entity's own answers.
func (qn *Questionnaire) Back(s *Session) error {
	if s.QuestionIndex > 0 {
		s.QuestionIndex--
		qn.touch(s)
		return nil
	}

	switch s.Phase {
	case PhaseDriverDetails:
		if idx := driverIndex(s.Drivers, s.ActiveDriverID); idx > 0 {
			prev := s.Drivers[idx-1]
			s.ActiveDriverID = prev.ID
			s.QuestionIndex = lastIndex(ActiveQuestions(qn.catalog.Driver, prev.Answers))
		} else {
			s.Phase = PhaseDriverCount
			s.QuestionIndex = 0
		}
	case PhaseVehicleDetails:
		if idx := vehicleIndex(s.Vehicles, s.ActiveVehicleID); idx > 0 {
			prev := s.Vehicles[idx-1]
			s.ActiveVehicleID = prev.ID
			s.QuestionIndex = lastIndex(ActiveQuestions(qn.catalog.Vehicle, prev.Answers))
		} else {
			s.Phase = PhaseVehicleCount
			s.QuestionIndex = 0
		}
	case PhaseVehicleCount:
		last := s.Drivers[len(s.Drivers)-1]
		s.Phase = PhaseDriverDetails
		s.ActiveDriverID = last.ID
		s.QuestionIndex = lastIndex(ActiveQuestions(qn.catalog.Driver, last.Answers))
	case PhasePolicy:
		last := s.Vehicles[len(s.Vehicles)-1]
		s.Phase = PhaseVehicleDetails
		s.ActiveVehicleID = last.ID
		s.QuestionIndex = lastIndex(ActiveQuestions(qn.catalog.Vehicle, last.Answers))
	default:
		return fmt.Errorf("%w: cannot go back from %s", ErrInvalidState, s.Phase)
	}
	qn.touch(s)
	return nil
}

// SetDriverCount re-materializes the driver list with stable ids
// driver-1..N. Entities within the new bound keep their answers; entities
// beyond it are discarded. Index 0 stays primary with relationship "self".
func (qn *Questionnaire) SetDriverCount(s *Session, count int) error {
	if s.Phase != PhaseDriverCount {
		return fmt.Errorf("%w: driver count can only be set from the %s screen", ErrInvalidState, PhaseDriverCount)
	}
	if count < 1 || count > MaxDrivers {
		return fmt.Errorf("%w: driver count must be between 1 and %d", ErrValidation, MaxDrivers)
	}
	next := make([]Driver, count)
	for i := range next {
		next[i] = Driver{
			ID:        fmt.Sprintf("driver-%d", i+1),
			IsPrimary: i == 0,
			Answers:   Answers{},
		}
		if i < len(s.Drivers) {
			next[i].Answers = s.Drivers[i].Answers.Clone()
		}
	}
	if !next[0].Answers.Has(QuestionDriverRelationship) {
		next[0].Answers[QuestionDriverRelationship] = []string{"self"}
	}
	s.Drivers = next
	s.ActiveDriverID = next[0].ID
	qn.touch(s)
	return nil
}

// SetVehicleCount mirrors SetDriverCount for vehicles (ids vehicle-1..M).
func (qn *Questionnaire) SetVehicleCount(s *Session, count int) error {
	if s.Phase != PhaseVehicleCount {
		return fmt.Errorf("%w: vehicle count can only be set from the %s screen", ErrInvalidState, PhaseVehicleCount)
	}
	if count < 1 || count > MaxVehicles {
		return fmt.Errorf("%w: vehicle count must be between 1 and %d", ErrValidation, MaxVehicles)
	}
	next := make([]Vehicle, count)
	for i := range next {
		next[i] = Vehicle{
			ID:        fmt.Sprintf("vehicle-%d", i+1),
			IsPrimary: i == 0,
			Answers:   Answers{},
		}
		if i < len(s.Vehicles) {
			next[i].Answers = s.Vehicles[i].Answers.Clone()
		}
	}
	s.Vehicles = next
	s.ActiveVehicleID = next[0].ID
	qn.touch(s)
	return nil
}

// AddDriver appends a driver with a fresh unique id and empty answers.
func (qn *Questionnaire) AddDriver(s *Session) (Driver, error) {
	if len(s.Drivers) >= MaxDrivers {
		return Driver{}, fmt.Errorf("%w: at most %d drivers", ErrValidation, MaxDrivers)
	}
	d := Driver{ID: "driver-" + ids.Short(), Answers: Answers{}}
	s.Drivers = append(s.Drivers, d)
	qn.touch(s)
	return d, nil
}

// RemoveDriver removes a non-primary driver. If the removed driver was
// active, the first remaining driver becomes active and the cursor resets.
func (qn *Questionnaire) RemoveDriver(s *Session, id string) error {
	idx := driverIndex(s.Drivers, id)
	if idx < 0 {
		return fmt.Errorf("%w: driver %q", ErrNotFound, id)
	}
	if s.Drivers[idx].IsPrimary {
		return ErrPrimaryRemoval
	}
	s.Drivers = append(s.Drivers[:idx], s.Drivers[idx+1:]...)
	if s.ActiveDriverID == id {
		s.ActiveDriverID = s.Drivers[0].ID
		s.QuestionIndex = 0
	}
	qn.touch(s)
	return nil
}

// AddVehicle appends a vehicle with a fresh unique id and empty answers.
func (qn *Questionnaire) AddVehicle(s *Session) (Vehicle, error) {
	if len(s.Vehicles) >= MaxVehicles {
		return Vehicle{}, fmt.Errorf("%w: at most %d vehicles", ErrValidation, MaxVehicles)
	}
	v := Vehicle{ID: "vehicle-" + ids.Short(), Answers: Answers{}}
	s.Vehicles = append(s.Vehicles, v)
	qn.touch(s)
	return v, nil
}

// RemoveVehicle mirrors RemoveDriver.
func (qn *Questionnaire) RemoveVehicle(s *Session, id string) error {
	idx := vehicleIndex(s.Vehicles, id)
	if idx < 0 {
		return fmt.Errorf("%w: vehicle %q", ErrNotFound, id)
	}
	if s.Vehicles[idx].IsPrimary {
		return ErrPrimaryRemoval
	}
	s.Vehicles = append(s.Vehicles[:idx], s.Vehicles[idx+1:]...)
	if s.ActiveVehicleID == id {
		s.ActiveVehicleID = s.Vehicles[0].ID
		s.QuestionIndex = 0
	}
	qn.touch(s)
	return nil
}

// ActivateDriver switches the active driver tab and resets the cursor.
func (qn *Questionnaire) ActivateDriver(s *Session, id string) error {
	if driverIndex(s.Drivers, id) < 0 {
		return fmt.Errorf("%w: driver %q", ErrNotFound, id)
	}
	s.ActiveDriverID = id
	s.QuestionIndex = 0
	qn.touch(s)
	return nil
}

// ActivateVehicle switches the active vehicle tab and resets the cursor.
func (qn *Questionnaire) ActivateVehicle(s *Session, id string) error {
	if vehicleIndex(s.Vehicles, id) < 0 {
		return fmt.Errorf("%w: vehicle %q", ErrNotFound, id)
	}
	s.ActiveVehicleID = id
	s.QuestionIndex = 0
	qn.touch(s)
	return nil
}

// Progress counts answered questions against the full catalog across all
// entities, for the host page's progress bar.
func (qn *Questionnaire) Progress(s *Session) (completed, total int) {
	for _, d := range s.Drivers {
		total += len(qn.catalog.Driver)
		completed += len(d.Answers)
	}
	for _, v := range s.Vehicles {
		total += len(qn.catalog.Vehicle)
		completed += len(v.Answers)
	}
	total += len(qn.catalog.Policy)
	completed += len(s.PolicyAnswers)
	return completed, total
}

// answersFor returns the answer map the current phase writes into.
func (qn *Questionnaire) answersFor(s *Session) Answers {
	switch s.Phase {
	case PhaseDriverDetails:
		if i := driverIndex(s.Drivers, s.ActiveDriverID); i >= 0 {
			return s.Drivers[i].Answers
		}
	case PhaseVehicleDetails:
		if i := vehicleIndex(s.Vehicles, s.ActiveVehicleID); i >= 0 {
			return s.Vehicles[i].Answers
		}
	case PhasePolicy:
		return s.PolicyAnswers
	}
	return Answers{}
}

func driverIndex(drivers []Driver, id string) int {
	for i, d := range drivers {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func vehicleIndex(vehicles []Vehicle, id string) int {
	for i, v := range vehicles {
		if v.ID == id {
			return i
		}
	}
	return -1
}

func findDriver(drivers []Driver, id string) (Driver, bool) {
	if i := driverIndex(drivers, id); i >= 0 {
		return drivers[i], true
	}
	return Driver{}, false
}

func findVehicle(vehicles []Vehicle, id string) (Vehicle, bool) {
	if i := vehicleIndex(vehicles, id); i >= 0 {
		return vehicles[i], true
	}
	return Vehicle{}, false
}

func removeTag(tags []string, tag string) []string {
	out := tags[:0]
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}

func lastIndex(questions []Question) int {
	if len(questions) == 0 {
		return 0
	}
	return len(questions) - 1
}
