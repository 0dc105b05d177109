package domain

// Exercise is one entry in a workout plan's ordered exercise list.
type Exercise struct {
	Name   string   `bson:"name" json:"name"`
	Sets   int      `bson:"sets" json:"sets"`
	Reps   int      `bson:"reps" json:"reps"`
	Weight *float64 `bson:"weight,omitempty" json:"weight,omitempty"` // kg
}

// WorkoutPlan is a reusable training prescription, optionally assigned to a
// client. Frequency is workouts per week.
type WorkoutPlan struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description" json:"description"`
	Frequency   int        `bson:"frequency" json:"frequency"`
	Exercises   []Exercise `bson:"exercises" json:"exercises"`
}
