package memory

import (
	"coachdesk/internal/domain"
	"coachdesk/internal/repository"
	"context"
	"errors"
	"sync"
)

// memoryDietPlanRepository implements repository.DietPlanRepository.
type memoryDietPlanRepository struct {
	mu    sync.RWMutex
	plans []domain.DietPlan
}

// NewMemoryDietPlanRepository creates an empty in-memory diet plan catalog.
func NewMemoryDietPlanRepository() repository.DietPlanRepository {
	return &memoryDietPlanRepository{}
}

func (r *memoryDietPlanRepository) Create(ctx context.Context, plan *domain.DietPlan) (string, error) {
	if plan.ID == "" {
		return "", errors.New("diet plan id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.plans {
		if r.plans[i].ID == plan.ID {
			return "", repository.ErrConflict
		}
	}
	r.plans = append(r.plans, *cloneDietPlan(plan))
	return plan.ID, nil
}

func (r *memoryDietPlanRepository) GetByID(ctx context.Context, id string) (*domain.DietPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.plans {
		if r.plans[i].ID == id {
			return cloneDietPlan(&r.plans[i]), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryDietPlanRepository) List(ctx context.Context) ([]domain.DietPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.DietPlan, len(r.plans))
	for i := range r.plans {
		out[i] = *cloneDietPlan(&r.plans[i])
	}
	return out, nil
}

func (r *memoryDietPlanRepository) Update(ctx context.Context, plan *domain.DietPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.plans {
		if r.plans[i].ID == plan.ID {
			r.plans[i] = *cloneDietPlan(plan)
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes exactly the plan with the given id, leaving every other
// plan untouched.
func (r *memoryDietPlanRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.plans {
		if r.plans[i].ID == id {
			r.plans = append(r.plans[:i], r.plans[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// memoryWorkoutPlanRepository implements repository.WorkoutPlanRepository.
type memoryWorkoutPlanRepository struct {
	mu    sync.RWMutex
	plans []domain.WorkoutPlan
}

// NewMemoryWorkoutPlanRepository creates an empty in-memory workout plan
// catalog.
func NewMemoryWorkoutPlanRepository() repository.WorkoutPlanRepository {
	return &memoryWorkoutPlanRepository{}
}

func (r *memoryWorkoutPlanRepository) Create(ctx context.Context, plan *domain.WorkoutPlan) (string, error) {
	if plan.ID == "" {
		return "", errors.New("workout plan id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.plans {
		if r.plans[i].ID == plan.ID {
			return "", repository.ErrConflict
		}
	}
	r.plans = append(r.plans, *cloneWorkoutPlan(plan))
	return plan.ID, nil
}

func (r *memoryWorkoutPlanRepository) GetByID(ctx context.Context, id string) (*domain.WorkoutPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.plans {
		if r.plans[i].ID == id {
			return cloneWorkoutPlan(&r.plans[i]), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryWorkoutPlanRepository) List(ctx context.Context) ([]domain.WorkoutPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.WorkoutPlan, len(r.plans))
	for i := range r.plans {
		out[i] = *cloneWorkoutPlan(&r.plans[i])
	}
	return out, nil
}

func (r *memoryWorkoutPlanRepository) Update(ctx context.Context, plan *domain.WorkoutPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.plans {
		if r.plans[i].ID == plan.ID {
			r.plans[i] = *cloneWorkoutPlan(plan)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memoryWorkoutPlanRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.plans {
		if r.plans[i].ID == id {
			r.plans = append(r.plans[:i], r.plans[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func cloneDietPlan(p *domain.DietPlan) *domain.DietPlan {
	out := *p
	out.Meals = make([]domain.Meal, len(p.Meals))
	copy(out.Meals, p.Meals)
	return &out
}

func cloneWorkoutPlan(p *domain.WorkoutPlan) *domain.WorkoutPlan {
	out := *p
	out.Exercises = make([]domain.Exercise, len(p.Exercises))
	for i, ex := range p.Exercises {
		ex.Weight = cloneFloat(ex.Weight)
		out.Exercises[i] = ex
	}
	return &out
}
