package service

import (
	"coachdesk/internal/domain"
	"coachdesk/internal/repository"
	"context"
	"errors"
	"fmt"
)

// --- Error Definitions ---
var (
	ErrDietPlanNotFound    = errors.New("diet plan not found")
	ErrWorkoutPlanNotFound = errors.New("workout plan not found")
)

// MealInput is one meal of a draft diet plan.
type MealInput struct {
	Name        string
	Description string
}

// DietPlanInput is a draft diet plan. Macro percentages must sum to exactly
// 100; the mismatch is reported against the protein field.
type DietPlanInput struct {
	ID            string
	Name          string
	Description   string
	DailyCalories int
	Protein       int
	Carbs         int
	Fats          int
	Meals         []MealInput
}

// ExerciseInput is one exercise of a draft workout plan.
type ExerciseInput struct {
	Name   string
	Sets   int
	Reps   int
	Weight *float64
}

// WorkoutPlanInput is a draft workout plan.
type WorkoutPlanInput struct {
	ID          string
	Name        string
	Description string
	Frequency   int
	Exercises   []ExerciseInput
}

// PlanService owns the standalone diet and workout plan catalogs. Deletion is
// supported only here; plans assigned to a client are replaced through the
// client operations.
type PlanService interface {
	ListDietPlans(ctx context.Context) ([]domain.DietPlan, error)
	CreateDietPlan(ctx context.Context, input DietPlanInput) (*domain.DietPlan, error)
	UpdateDietPlan(ctx context.Context, id string, input DietPlanInput) (*domain.DietPlan, error)
	DeleteDietPlan(ctx context.Context, id string) error

	ListWorkoutPlans(ctx context.Context) ([]domain.WorkoutPlan, error)
	CreateWorkoutPlan(ctx context.Context, input WorkoutPlanInput) (*domain.WorkoutPlan, error)
	UpdateWorkoutPlan(ctx context.Context, id string, input WorkoutPlanInput) (*domain.WorkoutPlan, error)
	DeleteWorkoutPlan(ctx context.Context, id string) error
}

// planService implements the PlanService interface.
type planService struct {
	dietRepo    repository.DietPlanRepository
	workoutRepo repository.WorkoutPlanRepository
}

// NewPlanService creates a new instance of planService.
func NewPlanService(dietRepo repository.DietPlanRepository, workoutRepo repository.WorkoutPlanRepository) PlanService {
	return &planService{
		dietRepo:    dietRepo,
		workoutRepo: workoutRepo,
	}
}

func (s *planService) ListDietPlans(ctx context.Context) ([]domain.DietPlan, error) {
	return s.dietRepo.List(ctx)
}

func (s *planService) CreateDietPlan(ctx context.Context, input DietPlanInput) (*domain.DietPlan, error) {
	if fields := validateDietPlanInput(input); len(fields) > 0 {
		return nil, fields
	}

	plan := buildDietPlan(orNewID(input.ID), input)
	if _, err := s.dietRepo.Create(ctx, &plan); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return s.dietRepo.GetByID(ctx, plan.ID)
		}
		return nil, err
	}
	return &plan, nil
}

func (s *planService) UpdateDietPlan(ctx context.Context, id string, input DietPlanInput) (*domain.DietPlan, error) {
	if fields := validateDietPlanInput(input); len(fields) > 0 {
		return nil, fields
	}

	plan := buildDietPlan(id, input)
	if err := s.dietRepo.Update(ctx, &plan); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDietPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (s *planService) DeleteDietPlan(ctx context.Context, id string) error {
	if err := s.dietRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDietPlanNotFound
		}
		return err
	}
	return nil
}

func (s *planService) ListWorkoutPlans(ctx context.Context) ([]domain.WorkoutPlan, error) {
	return s.workoutRepo.List(ctx)
}

func (s *planService) CreateWorkoutPlan(ctx context.Context, input WorkoutPlanInput) (*domain.WorkoutPlan, error) {
	if fields := validateWorkoutPlanInput(input); len(fields) > 0 {
		return nil, fields
	}

	plan := buildWorkoutPlan(orNewID(input.ID), input)
	if _, err := s.workoutRepo.Create(ctx, &plan); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return s.workoutRepo.GetByID(ctx, plan.ID)
		}
		return nil, err
	}
	return &plan, nil
}

func (s *planService) UpdateWorkoutPlan(ctx context.Context, id string, input WorkoutPlanInput) (*domain.WorkoutPlan, error) {
	if fields := validateWorkoutPlanInput(input); len(fields) > 0 {
		return nil, fields
	}

	plan := buildWorkoutPlan(id, input)
	if err := s.workoutRepo.Update(ctx, &plan); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (s *planService) DeleteWorkoutPlan(ctx context.Context, id string) error {
	if err := s.workoutRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutPlanNotFound
		}
		return err
	}
	return nil
}

func validateDietPlanInput(input DietPlanInput) domain.ValidationErrors {
	var fields domain.ValidationErrors

	if input.Name == "" {
		fields = fields.Add("name", "Plan name is required")
	}
	if input.Description == "" {
		fields = fields.Add("description", "Description is required")
	}
	if input.DailyCalories < 500 {
		fields = fields.Add("dailyCalories", "Must be at least 500")
	} else if input.DailyCalories > 10000 {
		fields = fields.Add("dailyCalories", "Must not exceed 10000")
	}

	macroRangeOK := true
	for _, m := range []struct {
		field string
		value int
	}{
		{"macros.protein", input.Protein},
		{"macros.carbs", input.Carbs},
		{"macros.fats", input.Fats},
	} {
		if m.value < 0 {
			fields = fields.Add(m.field, "Must be at least 0")
			macroRangeOK = false
		} else if m.value > 100 {
			fields = fields.Add(m.field, "Must not exceed 100")
			macroRangeOK = false
		}
	}
	// The sum constraint is reported against the protein field, matching
	// where the form highlights the mismatch.
	if macroRangeOK && input.Protein+input.Carbs+input.Fats != 100 {
		fields = fields.Add("macros.protein", "Macros must sum to 100%")
	}

	if len(input.Meals) == 0 {
		fields = fields.Add("meals", "At least one meal is required")
	}
	for i, meal := range input.Meals {
		if meal.Name == "" {
			fields = fields.Add(fmt.Sprintf("meals[%d].name", i), "Meal name is required")
		}
		if meal.Description == "" {
			fields = fields.Add(fmt.Sprintf("meals[%d].description", i), "Meal description is required")
		}
	}
	return fields
}

func validateWorkoutPlanInput(input WorkoutPlanInput) domain.ValidationErrors {
	var fields domain.ValidationErrors

	if input.Name == "" {
		fields = fields.Add("name", "Plan name is required")
	}
	if input.Description == "" {
		fields = fields.Add("description", "Description is required")
	}
	if input.Frequency < 1 {
		fields = fields.Add("frequency", "Must be at least 1 workout per week")
	} else if input.Frequency > 14 {
		fields = fields.Add("frequency", "Must not exceed 14 workouts per week")
	}

	if len(input.Exercises) == 0 {
		fields = fields.Add("exercises", "At least one exercise is required")
	}
	for i, ex := range input.Exercises {
		if ex.Name == "" {
			fields = fields.Add(fmt.Sprintf("exercises[%d].name", i), "Exercise name is required")
		}
		if ex.Sets < 1 {
			fields = fields.Add(fmt.Sprintf("exercises[%d].sets", i), "Sets must be at least 1")
		}
		if ex.Reps < 1 {
			fields = fields.Add(fmt.Sprintf("exercises[%d].reps", i), "Reps must be at least 1")
		}
	}
	return fields
}

func buildDietPlan(id string, input DietPlanInput) domain.DietPlan {
	meals := make([]domain.Meal, len(input.Meals))
	for i, m := range input.Meals {
		meals[i] = domain.Meal{Name: m.Name, Description: m.Description}
	}
	return domain.DietPlan{
		ID:            id,
		Name:          input.Name,
		Description:   input.Description,
		DailyCalories: input.DailyCalories,
		Macros:        domain.Macros{Protein: input.Protein, Carbs: input.Carbs, Fats: input.Fats},
		Meals:         meals,
	}
}

func buildWorkoutPlan(id string, input WorkoutPlanInput) domain.WorkoutPlan {
	exercises := make([]domain.Exercise, len(input.Exercises))
	for i, ex := range input.Exercises {
		exercises[i] = domain.Exercise{Name: ex.Name, Sets: ex.Sets, Reps: ex.Reps, Weight: ex.Weight}
	}
	return domain.WorkoutPlan{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Frequency:   input.Frequency,
		Exercises:   exercises,
	}
}
