package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuestionnaire(t *testing.T) *Questionnaire {
	t.Helper()
	catalog := DefaultCatalog()
	require.NoError(t, catalog.Validate())
	return NewQuestionnaire(catalog)
}

// answerPhase drives the session through the current details or policy phase
// by selecting the first option of each visible question.
func answerPhase(t *testing.T, qn *Questionnaire, s *Session) {
	t.Helper()
	start := s.Phase
	for i := 0; s.Phase == start && i < 200; i++ {
		q, ok := qn.CurrentQuestion(s)
		require.True(t, ok, "phase %s index %d has no question", s.Phase, s.QuestionIndex)
		require.NoError(t, qn.Select(s, q.Options[0].ID))
		require.NoError(t, qn.Next(s))
	}
	require.NotEqual(t, start, s.Phase, "phase did not advance")
}

func TestNewSession_Defaults(t *testing.T) {
	qn := newTestQuestionnaire(t)
	s := qn.NewSession()

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, PhaseDriverCount, s.Phase)

	require.Len(t, s.Drivers, 1)
	assert.Equal(t, "driver-1", s.Drivers[0].ID)
	assert.True(t, s.Drivers[0].IsPrimary)
	assert.Equal(t, "self", s.Drivers[0].Answers.First(QuestionDriverRelationship))

	require.Len(t, s.Vehicles, 1)
	assert.Equal(t, "vehicle-1", s.Vehicles[0].ID)
	assert.True(t, s.Vehicles[0].IsPrimary)

	assert.Equal(t, "driver-1", s.ActiveDriverID)
	assert.Equal(t, "vehicle-1", s.ActiveVehicleID)
	assert.Equal(t, 0, s.QuestionIndex)
}

func TestQuestionnaire_FullWalkthrough(t *testing.T) {
	qn := newTestQuestionnaire(t)
	s := qn.NewSession()

	// Count screens always allow forward navigation.
	assert.True(t, qn.CanContinue(&s))
	require.NoError(t, qn.Next(&s))
	assert.Equal(t, PhaseDriverDetails, s.Phase)

	answerPhase(t, qn, &s)
	assert.Equal(t, PhaseVehicleCount, s.Phase)

	require.NoError(t, qn.Next(&s))
	assert.Equal(t, PhaseVehicleDetails, s.Phase)

	answerPhase(t, qn, &s)
	assert.Equal(t, PhasePolicy, s.Phase)

	answerPhase(t, qn, &s)
	assert.Equal(t, PhaseResults, s.Phase)

	// Results is terminal.
	assert.False(t, qn.CanContinue(&s))
	assert.ErrorIs(t, qn.Next(&s), ErrInvalidState)

	completed, total := qn.Progress(&s)
	assert.Positive(t, completed)
	assert.GreaterOrEqual(t, total, completed)
}

func TestQuestionnaire_MultipleEntities(t *testing.T) {
	qn := newTestQuestionnaire(t)
	s := qn.NewSession()

	require.NoError(t, qn.SetDriverCount(&s, 2))
	require.NoError(t, qn.Next(&s))

	// Fill driver-1; the cursor should hand over to driver-2, still in the
	// details phase.
	for s.ActiveDriverID == "driver-1" {
		q, ok := qn.CurrentQuestion(&s)
		require.True(t, ok)
		require.NoError(t, qn.Select(&s, q.Options[0].ID))
		require.NoError(t, qn.Next(&s))
	}
	assert.Equal(t, PhaseDriverDetails, s.Phase)
	assert.Equal(t, "driver-2", s.ActiveDriverID)
	assert.Equal(t, 0, s.QuestionIndex)

	answerPhase(t, qn, &s)
	assert.Equal(t, PhaseVehicleCount, s.Phase)
}

func TestQuestionnaire_NextRequiresAnswer(t *testing.T) {
	qn := newTestQuestionnaire(t)
	s := qn.NewSession()
	require.NoError(t, qn.Next(&s))
	require.Equal(t, PhaseDriverDetails, s.Phase)

	// The first driver question (relationship) is pre-seeded, so skip past
	// it to an unanswered one.
	require.NoError(t, qn.Next(&s))
	assert.ErrorIs(t, qn.Next(&s), ErrUnanswered)
	assert.False(t, qn.CanContinue(&s))
}

func TestQuestionnaire_Back(t *testing.T) {
	qn := newTestQuestionnaire(t)

	t.Run("within a question list", func(t *testing.T) {
		s := qn.NewSession()
		require.NoError(t, qn.Next(&s))
		require.NoError(t, qn.Next(&s)) // relationship is pre-answered
		require.Equal(t, 1, s.QuestionIndex)

		require.NoError(t, qn.Back(&s))
		assert.Equal(t, 0, s.QuestionIndex)
		assert.Equal(t, PhaseDriverDetails, s.Phase)
	})

	t.Run("to the count screen", func(t *testing.T) {
		s := qn.NewSession()
		require.NoError(t, qn.Next(&s))
		require.NoError(t, qn.Back(&s))
		assert.Equal(t, PhaseDriverCount, s.Phase)
	})

	t.Run("cannot go back from the first screen", func(t *testing.T) {
		s := qn.NewSession()
		assert.ErrorIs(t, qn.Back(&s), ErrInvalidState)
	})

	t.Run("to the previous entity's last active question", func(t *testing.T) {
		s := qn.NewSession()
		require.NoError(t, qn.SetDriverCount(&s, 2))
		require.NoError(t, qn.Next(&s))
		for s.ActiveDriverID == "driver-1" {
			q, ok := qn.CurrentQuestion(&s)
			require.True(t, ok)
			require.NoError(t, qn.Select(&s, q.Options[0].ID))
			require.NoError(t, qn.Next(&s))
		}
		require.Equal(t, "driver-2", s.ActiveDriverID)

		require.NoError(t, qn.Back(&s))
		assert.Equal(t, "driver-1", s.ActiveDriverID)
		assert.Equal(t, len(qn.ActiveQuestionList(&s))-1, s.QuestionIndex)
	})

	t.Run("from vehicle count to the last driver", func(t *testing.T) {
		s := qn.NewSession()
		require.NoError(t, qn.Next(&s))
		answerPhase(t, qn, &s)
		require.Equal(t, PhaseVehicleCount, s.Phase)

		require.NoError(t, qn.Back(&s))
		assert.Equal(t, PhaseDriverDetails, s.Phase)
		assert.Equal(t, "driver-1", s.ActiveDriverID)
		assert.Equal(t, len(qn.ActiveQuestionList(&s))-1, s.QuestionIndex)
	})
}

func TestQuestionnaire_ConditionalVisibility(t *testing.T) {
	qn := newTestQuestionnaire(t)
	s := qn.NewSession()
	require.NoError(t, qn.Next(&s))

	// A young age answer makes the good-student question visible; an older
	// one hides it again while the stale answer is preserved.
	baseline := len(qn.ActiveQuestionList(&s))

	// Move to the age question and answer young.
	require.NoError(t, qn.Next(&s))
	q, _ := qn.CurrentQuestion(&s)
	require.Equal(t, "driver-age", q.ID)
	require.NoError(t, qn.Select(&s, "18-20"))
	assert.Equal(t, baseline+1, len(qn.ActiveQuestionList(&s)))

	require.NoError(t, qn.Select(&s, "36-55"))
	assert.Equal(t, baseline, len(qn.ActiveQuestionList(&s)))
}

func TestQuestionnaire_MultiSelect(t *testing.T) {
	qn := newTestQuestionnaire(t)
	s := qn.NewSession()

	// Jump the cursor straight to the policy discounts question.
	s.Phase = PhasePolicy
	active := qn.ActiveQuestionList(&s)
	for i, q := range active {
		if q.ID == PolicyQuestionDiscounts {
			s.QuestionIndex = i
		}
	}
	q, ok := qn.CurrentQuestion(&s)
	require.True(t, ok)
	require.Equal(t, PolicyQuestionDiscounts, q.ID)

	require.NoError(t, qn.Select(&s, "homeowner"))
	assert.Equal(t, []string{"homeowner"}, s.PolicyAnswers[PolicyQuestionDiscounts])

	require.NoError(t, qn.Select(&s, "paperless"))
	assert.Equal(t, []string{"homeowner", "paperless"}, s.PolicyAnswers[PolicyQuestionDiscounts])

	// The sentinel clears everything else.
	require.NoError(t, qn.Select(&s, "none"))
	assert.Equal(t, []string{"none"}, s.PolicyAnswers[PolicyQuestionDiscounts])

	// Picking a real option removes the sentinel.
	require.NoError(t, qn.Select(&s, "military"))
	assert.Equal(t, []string{"military"}, s.PolicyAnswers[PolicyQuestionDiscounts])

	// Deselecting the last real option reverts to the sentinel.
	require.NoError(t, qn.Select(&s, "military"))
	assert.Equal(t, []string{"none"}, s.PolicyAnswers[PolicyQuestionDiscounts])

	// Unknown options are rejected.
	assert.ErrorIs(t, qn.Select(&s, "not-an-option"), ErrValidation)
}

func TestQuestionnaire_SetDriverCount(t *testing.T) {
	qn := newTestQuestionnaire(t)

	t.Run("grows with stable ids and preserved answers", func(t *testing.T) {
		s := qn.NewSession()
		s.Drivers[0].Answers["driver-age"] = []string{"26-35"}

		require.NoError(t, qn.SetDriverCount(&s, 3))
		require.Len(t, s.Drivers, 3)
		assert.Equal(t, []string{"driver-1", "driver-2", "driver-3"},
			[]string{s.Drivers[0].ID, s.Drivers[1].ID, s.Drivers[2].ID})
		assert.Equal(t, "26-35", s.Drivers[0].Answers.First("driver-age"))
		assert.True(t, s.Drivers[0].IsPrimary)
		assert.False(t, s.Drivers[1].IsPrimary)
		assert.Empty(t, s.Drivers[2].Answers)
	})

	t.Run("shrink discards the tail", func(t *testing.T) {
		s := qn.NewSession()
		require.NoError(t, qn.SetDriverCount(&s, 3))
		s.Drivers[2].Answers["driver-age"] = []string{"16-17"}

		require.NoError(t, qn.SetDriverCount(&s, 1))
		require.Len(t, s.Drivers, 1)
		assert.Equal(t, "self", s.Drivers[0].Answers.First(QuestionDriverRelationship))
	})

	t.Run("bounds", func(t *testing.T) {
		s := qn.NewSession()
		assert.ErrorIs(t, qn.SetDriverCount(&s, 0), ErrValidation)
		assert.ErrorIs(t, qn.SetDriverCount(&s, MaxDrivers+1), ErrValidation)
		assert.NoError(t, qn.SetDriverCount(&s, MaxDrivers))
	})

	t.Run("only from the count screen", func(t *testing.T) {
		s := qn.NewSession()
		require.NoError(t, qn.Next(&s))
		assert.ErrorIs(t, qn.SetDriverCount(&s, 2), ErrInvalidState)
	})
}

func TestQuestionnaire_SetVehicleCount(t *testing.T) {
	qn := newTestQuestionnaire(t)
	s := qn.NewSession()
	s.Phase = PhaseVehicleCount

	require.NoError(t, qn.SetVehicleCount(&s, MaxVehicles))
	require.Len(t, s.Vehicles, MaxVehicles)
	assert.Equal(t, "vehicle-1", s.Vehicles[0].ID)
	assert.True(t, s.Vehicles[0].IsPrimary)

	assert.ErrorIs(t, qn.SetVehicleCount(&s, 0), ErrValidation)
	assert.ErrorIs(t, qn.SetVehicleCount(&s, MaxVehicles+1), ErrValidation)
}

func TestQuestionnaire_AddRemoveActivate(t *testing.T) {
	qn := newTestQuestionnaire(t)

	t.Run("add respects the limit", func(t *testing.T) {
		s := qn.NewSession()
		for len(s.Drivers) < MaxDrivers {
			_, err := qn.AddDriver(&s)
			require.NoError(t, err)
		}
		_, err := qn.AddDriver(&s)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("added ids are unique", func(t *testing.T) {
		s := qn.NewSession()
		d1, err := qn.AddDriver(&s)
		require.NoError(t, err)
		d2, err := qn.AddDriver(&s)
		require.NoError(t, err)
		assert.NotEqual(t, d1.ID, d2.ID)
	})

	t.Run("primary cannot be removed", func(t *testing.T) {
		s := qn.NewSession()
		assert.ErrorIs(t, qn.RemoveDriver(&s, "driver-1"), ErrPrimaryRemoval)
		assert.ErrorIs(t, qn.RemoveVehicle(&s, "vehicle-1"), ErrPrimaryRemoval)
	})

	t.Run("removing the active driver falls back to the first", func(t *testing.T) {
		s := qn.NewSession()
		d, err := qn.AddDriver(&s)
		require.NoError(t, err)
		require.NoError(t, qn.ActivateDriver(&s, d.ID))
		require.Equal(t, d.ID, s.ActiveDriverID)

		require.NoError(t, qn.RemoveDriver(&s, d.ID))
		assert.Equal(t, "driver-1", s.ActiveDriverID)
		assert.Equal(t, 0, s.QuestionIndex)
	})

	t.Run("unknown ids", func(t *testing.T) {
		s := qn.NewSession()
		assert.ErrorIs(t, qn.RemoveDriver(&s, "nope"), ErrNotFound)
		assert.ErrorIs(t, qn.ActivateDriver(&s, "nope"), ErrNotFound)
		assert.ErrorIs(t, qn.RemoveVehicle(&s, "nope"), ErrNotFound)
		assert.ErrorIs(t, qn.ActivateVehicle(&s, "nope"), ErrNotFound)
	})
}

func TestQuestionnaire_Restart(t *testing.T) {
	qn := newTestQuestionnaire(t)
	s := qn.NewSession()
	require.NoError(t, qn.SetDriverCount(&s, 3))
	require.NoError(t, qn.Next(&s))
	answerPhase(t, qn, &s)

	qn.Restart(&s)

	assert.Equal(t, PhaseDriverCount, s.Phase)
	require.Len(t, s.Drivers, 1)
	require.Len(t, s.Vehicles, 1)
	assert.Equal(t, "self", s.Drivers[0].Answers.First(QuestionDriverRelationship))
	assert.Empty(t, s.PolicyAnswers)
	assert.Equal(t, 0, s.QuestionIndex)
}
