package domain

import "time"

// GoalType categorizes a tracked fitness objective.
type GoalType string

const (
	GoalWeightLoss     GoalType = "Weight Loss"
	GoalMuscleGain     GoalType = "Muscle Gain"
	GoalEndurance      GoalType = "Endurance"
	GoalFlexibility    GoalType = "Flexibility"
	GoalGeneralFitness GoalType = "General Fitness"
)

// GoalTypes lists every valid goal type, in display order.
func GoalTypes() []GoalType {
	return []GoalType{
		GoalWeightLoss,
		GoalMuscleGain,
		GoalEndurance,
		GoalFlexibility,
		GoalGeneralFitness,
	}
}

// IsValid reports whether t is one of the enumerated goal types.
func (t GoalType) IsValid() bool {
	switch t {
	case GoalWeightLoss, GoalMuscleGain, GoalEndurance, GoalFlexibility, GoalGeneralFitness:
		return true
	}
	return false
}

// GoalStatus tracks the lifecycle of a goal.
type GoalStatus string

const (
	GoalNotStarted GoalStatus = "Not Started"
	GoalInProgress GoalStatus = "In Progress"
	GoalCompleted  GoalStatus = "Completed"
)

// Goal is a tracked fitness objective belonging to one client.
// Progress is a manually asserted percentage (0-100); it is deliberately not
// derived from StartValue/CurrentValue/TargetValue.
type Goal struct {
	ID           string     `bson:"id" json:"id"`
	ClientID     string     `bson:"clientId" json:"clientId"`
	Type         GoalType   `bson:"type" json:"type"`
	Description  string     `bson:"description" json:"description"`
	TargetDate   time.Time  `bson:"targetDate" json:"targetDate"`
	Status       GoalStatus `bson:"status" json:"status"`
	Progress     int        `bson:"progress" json:"progress"`
	StartValue   *float64   `bson:"startValue,omitempty" json:"startValue,omitempty"`
	CurrentValue *float64   `bson:"currentValue,omitempty" json:"currentValue,omitempty"`
	TargetValue  *float64   `bson:"targetValue,omitempty" json:"targetValue,omitempty"`
	Unit         string     `bson:"unit,omitempty" json:"unit,omitempty"`
}

// SuggestUnit returns the measurement unit conventionally used for a goal
// type. The suggestion is a default only; forms may override it.
func SuggestUnit(t GoalType) string {
	switch t {
	case GoalWeightLoss, GoalMuscleGain:
		return "kg"
	case GoalEndurance:
		return "mins"
	case GoalFlexibility:
		return "cm"
	default:
		return ""
	}
}
