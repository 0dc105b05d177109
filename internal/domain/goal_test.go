package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestUnit(t *testing.T) {
	tests := []struct {
		goalType GoalType
		want     string
	}{
		{GoalWeightLoss, "kg"},
		{GoalMuscleGain, "kg"},
		{GoalEndurance, "mins"},
		{GoalFlexibility, "cm"},
		{GoalGeneralFitness, ""},
		{GoalType("Yoga"), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SuggestUnit(tt.goalType), "unit for %q", tt.goalType)
	}
}

func TestGoalTypeIsValid(t *testing.T) {
	for _, gt := range GoalTypes() {
		assert.True(t, gt.IsValid(), "%q should be valid", gt)
	}
	assert.False(t, GoalType("weight loss").IsValid(), "matching is case-sensitive")
	assert.False(t, GoalType("").IsValid())
}

func TestCheckInStatusIsValid(t *testing.T) {
	assert.True(t, CheckInScheduled.IsValid())
	assert.True(t, CheckInCompleted.IsValid())
	assert.True(t, CheckInCancelled.IsValid())
	assert.False(t, CheckInStatus("done").IsValid())
}

func TestMetricValue(t *testing.T) {
	w, bf := 80.5, 22.1
	entry := ProgressEntry{Weight: &w, BodyFat: &bf}

	assert.Equal(t, &w, entry.MetricValue(MetricWeight))
	assert.Equal(t, &bf, entry.MetricValue(MetricBodyFat))
	assert.Nil(t, entry.MetricValue(Metric("height")))

	empty := ProgressEntry{}
	assert.Nil(t, empty.MetricValue(MetricWeight))
}

func TestClientFullNameAndGoals(t *testing.T) {
	c := Client{
		FirstName: "Alex",
		LastName:  "Johnson",
		Goals: []Goal{
			{Type: GoalWeightLoss},
			{Type: GoalEndurance},
		},
	}
	assert.Equal(t, "Alex Johnson", c.FullName())
	assert.True(t, c.HasGoalOfType(GoalEndurance))
	assert.False(t, c.HasGoalOfType(GoalFlexibility))
}

func TestValidationErrorsAccumulate(t *testing.T) {
	var fields ValidationErrors
	fields = fields.Add("email", "Invalid email address")
	fields = fields.Add("firstName", "First name is required")

	assert.Len(t, fields, 2)
	assert.Contains(t, fields.Error(), "email")
}

func TestMacrosSum(t *testing.T) {
	m := Macros{Protein: 30, Carbs: 45, Fats: 25}
	assert.Equal(t, 100, m.Sum())
}
