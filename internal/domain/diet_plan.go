package domain

// Macros is a macronutrient split expressed as whole percentages. A valid
// split sums to exactly 100; this is enforced at validation time, not here.
type Macros struct {
	Protein int `bson:"protein" json:"protein"`
	Carbs   int `bson:"carbs" json:"carbs"`
	Fats    int `bson:"fats" json:"fats"`
}

// Sum returns protein + carbs + fats.
func (m Macros) Sum() int {
	return m.Protein + m.Carbs + m.Fats
}

// Meal is one entry in a diet plan's ordered meal list.
type Meal struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
}

// DietPlan is a reusable nutrition prescription, optionally assigned to a
// client.
type DietPlan struct {
	ID            string `bson:"_id,omitempty" json:"id"`
	Name          string `bson:"name" json:"name"`
	Description   string `bson:"description" json:"description"`
	DailyCalories int    `bson:"dailyCalories" json:"dailyCalories"`
	Macros        Macros `bson:"macros" json:"macros"`
	Meals         []Meal `bson:"meals" json:"meals"`
}
