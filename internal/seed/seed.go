// Package seed holds the hand-authored demo dataset the in-memory store is
// loaded with at startup. It stands in for a real backend.
package seed

import (
	"coachdesk/internal/domain"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := date(year, month, day)
	return &t
}

func f(v float64) *float64 {
	return &v
}

// Clients returns the demo client roster with goals, progress entries and
// assigned plans.
func Clients() []domain.Client {
	return []domain.Client{
		{
			ID:            "1",
			FirstName:     "Alex",
			LastName:      "Johnson",
			Email:         "alex.johnson@example.com",
			Phone:         "555-123-4567",
			DateOfBirth:   datePtr(1990, time.May, 15),
			JoinDate:      date(2023, time.January, 10),
			Gender:        domain.GenderMale,
			Height:        f(180),
			CurrentWeight: f(85),
			InitialWeight: f(95),
			Goals: []domain.Goal{
				{
					ID:           "g1",
					ClientID:     "1",
					Type:         domain.GoalWeightLoss,
					Description:  "Lose 15kg and improve overall fitness",
					TargetDate:   date(2023, time.July, 10),
					Status:       domain.GoalInProgress,
					Progress:     65,
					StartValue:   f(95),
					CurrentValue: f(85),
					TargetValue:  f(80),
					Unit:         "kg",
				},
			},
			ProgressEntries: []domain.ProgressEntry{
				{
					ID: "p1", ClientID: "1", Date: date(2023, time.January, 15),
					Weight: f(95), BodyFat: f(28), Notes: "Initial assessment",
					Measurements: &domain.Measurements{Chest: f(105), Waist: f(98), Hips: f(110), Arms: f(38), Thighs: f(65)},
				},
				{
					ID: "p2", ClientID: "1", Date: date(2023, time.February, 15),
					Weight: f(92), BodyFat: f(26), Notes: "Making good progress",
					Measurements: &domain.Measurements{Chest: f(104), Waist: f(96), Hips: f(108), Arms: f(38), Thighs: f(64)},
				},
				{
					ID: "p3", ClientID: "1", Date: date(2023, time.March, 15),
					Weight: f(88), BodyFat: f(25), Notes: "Consistent progress, focusing on strength training now",
					Measurements: &domain.Measurements{Chest: f(103), Waist: f(92), Hips: f(105), Arms: f(39), Thighs: f(62)},
				},
				{
					ID: "p4", ClientID: "1", Date: date(2023, time.April, 15),
					Weight: f(85), BodyFat: f(23), Notes: "Energy levels improving, sleep quality better",
					Measurements: &domain.Measurements{Chest: f(102), Waist: f(89), Hips: f(102), Arms: f(40), Thighs: f(60)},
				},
			},
			Notes: "Alex is very motivated but needs guidance on proper nutrition. Responds well to positive reinforcement.",
			DietPlan: &domain.DietPlan{
				ID:            "d1",
				Name:          "Low Carb Fat Loss",
				Description:   "Focus on protein and healthy fats with limited carbs",
				DailyCalories: 2200,
				Macros:        domain.Macros{Protein: 40, Carbs: 20, Fats: 40},
				Meals: []domain.Meal{
					{Name: "Breakfast", Description: "Protein smoothie with berries and almond milk"},
					{Name: "Lunch", Description: "Grilled chicken salad with olive oil dressing"},
					{Name: "Dinner", Description: "Baked salmon with asparagus and quinoa"},
				},
			},
			WorkoutPlan: &domain.WorkoutPlan{
				ID:          "w1",
				Name:        "Fat Loss Circuit Program",
				Description: "High intensity circuit training with strength elements",
				Frequency:   4,
				Exercises: []domain.Exercise{
					{Name: "Squats", Sets: 4, Reps: 12, Weight: f(70)},
					{Name: "Bench Press", Sets: 3, Reps: 10, Weight: f(60)},
					{Name: "Deadlifts", Sets: 4, Reps: 8, Weight: f(100)},
				},
			},
			NextCheckIn: datePtr(2023, time.May, 15),
		},
		{
			ID:            "2",
			FirstName:     "Sarah",
			LastName:      "Miller",
			Email:         "sarah.miller@example.com",
			Phone:         "555-987-6543",
			DateOfBirth:   datePtr(1988, time.October, 20),
			JoinDate:      date(2022, time.November, 5),
			Gender:        domain.GenderFemale,
			Height:        f(165),
			CurrentWeight: f(62),
			InitialWeight: f(60),
			Goals: []domain.Goal{
				{
					ID:           "g2",
					ClientID:     "2",
					Type:         domain.GoalMuscleGain,
					Description:  "Build strength and add lean muscle mass",
					TargetDate:   date(2023, time.August, 5),
					Status:       domain.GoalInProgress,
					Progress:     45,
					StartValue:   f(60),
					CurrentValue: f(62),
					TargetValue:  f(65),
					Unit:         "kg",
				},
			},
			ProgressEntries: []domain.ProgressEntry{
				{
					ID: "p5", ClientID: "2", Date: date(2022, time.November, 10),
					Weight: f(60), BodyFat: f(22), Notes: "Initial assessment - good baseline fitness",
					Measurements: &domain.Measurements{Chest: f(88), Waist: f(70), Hips: f(92), Arms: f(28), Thighs: f(52)},
				},
				{
					ID: "p6", ClientID: "2", Date: date(2022, time.December, 10),
					Weight: f(61), BodyFat: f(21.5), Notes: "Starting to see muscle definition in arms and shoulders",
					Measurements: &domain.Measurements{Chest: f(89), Waist: f(70), Hips: f(92), Arms: f(29), Thighs: f(53)},
				},
				{
					ID: "p7", ClientID: "2", Date: date(2023, time.January, 10),
					Weight: f(62), BodyFat: f(21), Notes: "Strength improving across all lifts",
					Measurements: &domain.Measurements{Chest: f(90), Waist: f(70), Hips: f(92), Arms: f(30), Thighs: f(54)},
				},
			},
			Notes: "Sarah is focused on gaining strength without bulking too much. Prefers morning workouts.",
			DietPlan: &domain.DietPlan{
				ID:            "d2",
				Name:          "Clean Bulking Plan",
				Description:   "Moderate caloric surplus with focus on protein timing",
				DailyCalories: 2300,
				Macros:        domain.Macros{Protein: 35, Carbs: 45, Fats: 20},
				Meals: []domain.Meal{
					{Name: "Breakfast", Description: "Oatmeal with whey protein and banana"},
					{Name: "Lunch", Description: "Turkey and sweet potato bowl with vegetables"},
					{Name: "Dinner", Description: "Lean beef stir fry with brown rice"},
				},
			},
			WorkoutPlan: &domain.WorkoutPlan{
				ID:          "w2",
				Name:        "Hypertrophy Focus",
				Description: "Progressive overload program targeting all major muscle groups",
				Frequency:   5,
				Exercises: []domain.Exercise{
					{Name: "Barbell Rows", Sets: 4, Reps: 10, Weight: f(40)},
					{Name: "Overhead Press", Sets: 3, Reps: 8, Weight: f(30)},
					{Name: "Hip Thrusts", Sets: 4, Reps: 12, Weight: f(60)},
				},
			},
			NextCheckIn: datePtr(2023, time.February, 10),
		},
		{
			ID:            "3",
			FirstName:     "Michael",
			LastName:      "Chen",
			Email:         "michael.chen@example.com",
			Phone:         "555-456-7890",
			DateOfBirth:   datePtr(1992, time.March, 8),
			JoinDate:      date(2023, time.March, 20),
			Gender:        domain.GenderMale,
			Height:        f(175),
			CurrentWeight: f(70),
			InitialWeight: f(70),
			Goals: []domain.Goal{
				{
					ID:          "g3",
					ClientID:    "3",
					Type:        domain.GoalEndurance,
					Description: "Train for first half-marathon",
					TargetDate:  date(2023, time.October, 15),
					Status:      domain.GoalInProgress,
					Progress:    30,
					Unit:        "km",
				},
			},
			ProgressEntries: []domain.ProgressEntry{
				{
					ID: "p8", ClientID: "3", Date: date(2023, time.March, 25),
					Weight: f(70), BodyFat: f(18), Notes: "Initial assessment - good cardiovascular fitness already",
					Measurements: &domain.Measurements{Chest: f(95), Waist: f(80), Hips: f(94), Arms: f(33), Thighs: f(55)},
				},
				{
					ID: "p9", ClientID: "3", Date: date(2023, time.April, 25),
					Weight: f(69), BodyFat: f(17.5), Notes: "Completed 5K in personal best time",
					Measurements: &domain.Measurements{Chest: f(95), Waist: f(79), Hips: f(94), Arms: f(33), Thighs: f(55)},
				},
			},
			Notes: "Michael is training for his first half-marathon. Need to focus on gradual distance increases and recovery.",
			DietPlan: &domain.DietPlan{
				ID:            "d3",
				Name:          "Endurance Nutrition Plan",
				Description:   "Higher carb intake with focus on fueling workouts and recovery",
				DailyCalories: 2600,
				Macros:        domain.Macros{Protein: 25, Carbs: 55, Fats: 20},
				Meals: []domain.Meal{
					{Name: "Breakfast", Description: "Overnight oats with fruit and nut butter"},
					{Name: "Lunch", Description: "Whole grain pasta with chicken and vegetables"},
					{Name: "Dinner", Description: "Fish with roasted vegetables and quinoa"},
				},
			},
			WorkoutPlan: &domain.WorkoutPlan{
				ID:          "w3",
				Name:        "Half-Marathon Training",
				Description: "Progressive running program with strength conditioning",
				Frequency:   4,
				Exercises: []domain.Exercise{
					{Name: "Long Run", Sets: 1, Reps: 1},
					{Name: "Interval Training", Sets: 6, Reps: 400},
					{Name: "Tempo Run", Sets: 1, Reps: 1},
				},
			},
			NextCheckIn: datePtr(2023, time.May, 25),
		},
		{
			ID:            "4",
			FirstName:     "Jessica",
			LastName:      "Williams",
			Email:         "jessica.williams@example.com",
			Phone:         "555-222-3333",
			DateOfBirth:   datePtr(1985, time.November, 12),
			JoinDate:      date(2023, time.February, 1),
			Gender:        domain.GenderFemale,
			Height:        f(170),
			CurrentWeight: f(75),
			InitialWeight: f(82),
			Goals: []domain.Goal{
				{
					ID:           "g4",
					ClientID:     "4",
					Type:         domain.GoalWeightLoss,
					Description:  "Lose weight and tone up for wedding",
					TargetDate:   date(2023, time.August, 15),
					Status:       domain.GoalInProgress,
					Progress:     70,
					StartValue:   f(82),
					CurrentValue: f(75),
					TargetValue:  f(68),
					Unit:         "kg",
				},
			},
			ProgressEntries: []domain.ProgressEntry{
				{
					ID: "p10", ClientID: "4", Date: date(2023, time.February, 5),
					Weight: f(82), BodyFat: f(30), Notes: "Initial assessment",
					Measurements: &domain.Measurements{Chest: f(98), Waist: f(85), Hips: f(102), Arms: f(34), Thighs: f(60)},
				},
				{
					ID: "p11", ClientID: "4", Date: date(2023, time.March, 5),
					Weight: f(79), BodyFat: f(28), Notes: "Good progress in first month",
					Measurements: &domain.Measurements{Chest: f(96), Waist: f(83), Hips: f(100), Arms: f(33), Thighs: f(58)},
				},
				{
					ID: "p12", ClientID: "4", Date: date(2023, time.April, 5),
					Weight: f(75), BodyFat: f(26), Notes: "Consistent progress, clothes fitting better",
					Measurements: &domain.Measurements{Chest: f(94), Waist: f(79), Hips: f(97), Arms: f(32), Thighs: f(56)},
				},
			},
			Notes: "Jessica is preparing for her wedding in August. Highly motivated but needs encouragement during plateaus.",
			DietPlan: &domain.DietPlan{
				ID:            "d4",
				Name:          "Wedding Prep Plan",
				Description:   "Balanced deficit with focus on satiety and nutrition",
				DailyCalories: 1800,
				Macros:        domain.Macros{Protein: 35, Carbs: 35, Fats: 30},
				Meals: []domain.Meal{
					{Name: "Breakfast", Description: "Greek yogurt with berries and granola"},
					{Name: "Lunch", Description: "Mediterranean salad with grilled chicken"},
					{Name: "Dinner", Description: "Zucchini noodles with turkey meatballs"},
				},
			},
			WorkoutPlan: &domain.WorkoutPlan{
				ID:          "w4",
				Name:        "Bridal Bootcamp",
				Description: "Full body toning with cardio acceleration",
				Frequency:   4,
				Exercises: []domain.Exercise{
					{Name: "Walking Lunges", Sets: 3, Reps: 20},
					{Name: "Push-ups", Sets: 3, Reps: 15},
					{Name: "HIIT Cardio", Sets: 1, Reps: 20},
				},
			},
			NextCheckIn: datePtr(2023, time.May, 5),
		},
		{
			ID:            "5",
			FirstName:     "David",
			LastName:      "Garcia",
			Email:         "david.garcia@example.com",
			Phone:         "555-789-0123",
			DateOfBirth:   datePtr(1978, time.July, 23),
			JoinDate:      date(2022, time.October, 10),
			Gender:        domain.GenderMale,
			Height:        f(178),
			CurrentWeight: f(88),
			InitialWeight: f(94),
			Goals: []domain.Goal{
				{
					ID:          "g5",
					ClientID:    "5",
					Type:        domain.GoalGeneralFitness,
					Description: "Improve overall health and reduce blood pressure",
					TargetDate:  date(2023, time.June, 10),
					Status:      domain.GoalInProgress,
					Progress:    60,
				},
			},
			ProgressEntries: []domain.ProgressEntry{
				{
					ID: "p13", ClientID: "5", Date: date(2022, time.October, 15),
					Weight: f(94), BodyFat: f(29), Notes: "Initial assessment, BP: 145/95",
					Measurements: &domain.Measurements{Chest: f(110), Waist: f(102), Hips: f(105), Arms: f(37), Thighs: f(60)},
				},
				{
					ID: "p14", ClientID: "5", Date: date(2022, time.December, 15),
					Weight: f(91), BodyFat: f(27), Notes: "BP improved to 140/90, energy improving",
					Measurements: &domain.Measurements{Chest: f(108), Waist: f(99), Hips: f(104), Arms: f(37), Thighs: f(59)},
				},
				{
					ID: "p15", ClientID: "5", Date: date(2023, time.February, 15),
					Weight: f(88), BodyFat: f(25), Notes: "BP now 135/85, consistently attending 3x weekly",
					Measurements: &domain.Measurements{Chest: f(106), Waist: f(96), Hips: f(102), Arms: f(38), Thighs: f(58)},
				},
			},
			Notes: "David is focused on improving his health after doctor's recommendation. Has history of high blood pressure.",
			DietPlan: &domain.DietPlan{
				ID:            "d5",
				Name:          "Heart Health Focus",
				Description:   "DASH-inspired plan with low sodium options",
				DailyCalories: 2100,
				Macros:        domain.Macros{Protein: 25, Carbs: 50, Fats: 25},
				Meals: []domain.Meal{
					{Name: "Breakfast", Description: "Steel cut oats with cinnamon and apple"},
					{Name: "Lunch", Description: "Quinoa bowl with beans and vegetables"},
					{Name: "Dinner", Description: "Baked white fish with herbs and roasted vegetables"},
				},
			},
			WorkoutPlan: &domain.WorkoutPlan{
				ID:          "w5",
				Name:        "Cardiac Health Program",
				Description: "Combination of moderate cardio and strength training",
				Frequency:   3,
				Exercises: []domain.Exercise{
					{Name: "Walking/Jogging", Sets: 1, Reps: 30},
					{Name: "Resistance Band Work", Sets: 3, Reps: 15},
					{Name: "Rowing Machine", Sets: 3, Reps: 5},
				},
			},
			NextCheckIn: datePtr(2023, time.April, 15),
		},
	}
}

// DietPlans returns the standalone diet plan catalog, matching the plans
// assigned to the demo clients.
func DietPlans() []domain.DietPlan {
	var plans []domain.DietPlan
	for _, c := range Clients() {
		if c.DietPlan != nil {
			plans = append(plans, *c.DietPlan)
		}
	}
	return plans
}

// WorkoutPlans returns the standalone workout plan catalog.
func WorkoutPlans() []domain.WorkoutPlan {
	var plans []domain.WorkoutPlan
	for _, c := range Clients() {
		if c.WorkoutPlan != nil {
			plans = append(plans, *c.WorkoutPlan)
		}
	}
	return plans
}

// CheckIns returns seeded review sessions derived from the clients' next
// check-in dates.
func CheckIns() []domain.CheckIn {
	durations := map[string]int{"1": 30, "2": 45, "3": 30, "4": 60, "5": 45}

	var checkIns []domain.CheckIn
	for _, c := range Clients() {
		if c.NextCheckIn == nil {
			continue
		}
		checkIns = append(checkIns, domain.CheckIn{
			ID:       "ci" + c.ID,
			ClientID: c.ID,
			Date:     *c.NextCheckIn,
			Status:   domain.CheckInScheduled,
			Duration: durations[c.ID],
		})
	}
	return checkIns
}
