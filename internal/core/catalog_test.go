package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Validates(t *testing.T) {
	require.NoError(t, DefaultCatalog().Validate())
}

func TestCatalogValidate_Rejections(t *testing.T) {
	option := func(id string) []QuestionOption {
		return []QuestionOption{{ID: id, Label: id, RiskModifier: 1.0}}
	}

	tests := []struct {
		name    string
		catalog Catalog
	}{
		{
			name: "empty question id",
			catalog: Catalog{Driver: []Question{
				{ID: "", Prompt: "?", Options: option("a")},
			}},
		},
		{
			name: "duplicate question id across tables",
			catalog: Catalog{
				Driver: []Question{{ID: "q1", Prompt: "?", Options: option("a")}},
				Policy: []Question{{ID: "q1", Prompt: "?", Options: option("a")}},
			},
		},
		{
			name: "no options",
			catalog: Catalog{Driver: []Question{
				{ID: "q1", Prompt: "?"},
			}},
		},
		{
			name: "duplicate option id",
			catalog: Catalog{Driver: []Question{
				{ID: "q1", Prompt: "?", Options: []QuestionOption{
					{ID: "a", RiskModifier: 1.0},
					{ID: "a", RiskModifier: 1.1},
				}},
			}},
		},
		{
			name: "zero risk modifier",
			catalog: Catalog{Driver: []Question{
				{ID: "q1", Prompt: "?", Options: []QuestionOption{{ID: "a", RiskModifier: 0}}},
			}},
		},
		{
			name: "negative risk modifier",
			catalog: Catalog{Driver: []Question{
				{ID: "q1", Prompt: "?", Options: []QuestionOption{{ID: "a", RiskModifier: -0.5}}},
			}},
		},
		{
			name: "conditional on unknown question",
			catalog: Catalog{Driver: []Question{
				{ID: "q1", Prompt: "?", Options: option("a"),
					ConditionalOn: &Condition{QuestionID: "nope", AnswerIDs: []string{"a"}}},
			}},
		},
		{
			name: "conditional on later question",
			catalog: Catalog{Driver: []Question{
				{ID: "q1", Prompt: "?", Options: option("a"),
					ConditionalOn: &Condition{QuestionID: "q2", AnswerIDs: []string{"a"}}},
				{ID: "q2", Prompt: "?", Options: option("a")},
			}},
		},
		{
			name: "conditional in a different table",
			catalog: Catalog{
				Driver:  []Question{{ID: "q1", Prompt: "?", Options: option("a")}},
				Vehicle: []Question{{ID: "q2", Prompt: "?", Options: option("a"),
					ConditionalOn: &Condition{QuestionID: "q1", AnswerIDs: []string{"a"}}}},
			},
		},
		{
			name: "condition with no answer ids",
			catalog: Catalog{Driver: []Question{
				{ID: "q1", Prompt: "?", Options: option("a")},
				{ID: "q2", Prompt: "?", Options: option("a"),
					ConditionalOn: &Condition{QuestionID: "q1"}},
			}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.catalog.Validate(), ErrValidation)
		})
	}
}

func TestActiveQuestions_Conditionals(t *testing.T) {
	catalog := DefaultCatalog()

	findQ := func(qs []Question, id string) bool {
		for _, q := range qs {
			if q.ID == id {
				return true
			}
		}
		return false
	}

	t.Run("good student hidden without an age answer", func(t *testing.T) {
		active := ActiveQuestions(catalog.Driver, Answers{})
		assert.False(t, findQ(active, "driver-good-student"))
	})

	t.Run("good student shown for young drivers", func(t *testing.T) {
		for _, age := range []string{"16-17", "18-20", "21-25"} {
			active := ActiveQuestions(catalog.Driver, Answers{"driver-age": {age}})
			assert.True(t, findQ(active, "driver-good-student"), "age=%s", age)
		}
	})

	t.Run("good student hidden for older drivers", func(t *testing.T) {
		active := ActiveQuestions(catalog.Driver, Answers{"driver-age": {"36-55"}})
		assert.False(t, findQ(active, "driver-good-student"))
	})

	t.Run("deductibles only with full coverage", func(t *testing.T) {
		liability := ActiveQuestions(catalog.Vehicle, Answers{"vehicle-coverage": {"liability-only"}})
		assert.False(t, findQ(liability, "vehicle-comp-deductible"))
		assert.False(t, findQ(liability, "vehicle-collision-deductible"))

		full := ActiveQuestions(catalog.Vehicle, Answers{"vehicle-coverage": {"full-coverage"}})
		assert.True(t, findQ(full, "vehicle-comp-deductible"))
		assert.True(t, findQ(full, "vehicle-collision-deductible"))
	})

	t.Run("catalog order is preserved", func(t *testing.T) {
		active := ActiveQuestions(catalog.Driver, Answers{"driver-age": {"18-20"}})
		ids := make([]string, 0, len(active))
		for _, q := range active {
			ids = append(ids, q.ID)
		}
		// good-student appears in its catalog position, not appended
		require.Contains(t, ids, "driver-good-student")
		assert.Less(t,
			indexOf(ids, "driver-good-student"),
			indexOf(ids, "driver-rideshare"))
	})
}

func indexOf(ss []string, s string) int {
	for i, v := range ss {
		if v == s {
			return i
		}
	}
	return -1
}

func TestQuestionSentinel(t *testing.T) {
	catalog := DefaultCatalog()

	var discounts, safety Question
	for _, q := range catalog.Policy {
		if q.ID == PolicyQuestionDiscounts {
			discounts = q
		}
	}
	for _, q := range catalog.Vehicle {
		if q.ID == "vehicle-safety" {
			safety = q
		}
	}

	assert.Equal(t, "none", discounts.Sentinel())
	assert.Equal(t, "basic", safety.Sentinel())

	plain := Question{Options: []QuestionOption{{ID: "a", RiskModifier: 1.0}}}
	assert.Equal(t, "", plain.Sentinel())
}

func TestAnswers(t *testing.T) {
	a := Answers{"q1": {"x", "y"}}

	assert.Equal(t, "x", a.First("q1"))
	assert.Equal(t, "", a.First("missing"))
	assert.True(t, a.Has("q1"))
	assert.False(t, a.Has("missing"))

	clone := a.Clone()
	clone["q1"][0] = "mutated"
	clone["q2"] = []string{"z"}
	assert.Equal(t, "x", a.First("q1"), "clone must not share backing arrays")
	assert.False(t, a.Has("q2"))
}
