package repository

import (
	"coachdesk/internal/domain"
	"context"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrConflict     = RepositoryError("already exists")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors from other failures.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ClientRepository defines the interface for interacting with client records.
// Update replaces the whole record; there is no partial-field protocol.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
}

// DietPlanRepository defines the interface for the diet plan catalog.
type DietPlanRepository interface {
	Create(ctx context.Context, plan *domain.DietPlan) (string, error)
	GetByID(ctx context.Context, id string) (*domain.DietPlan, error)
	List(ctx context.Context) ([]domain.DietPlan, error)
	Update(ctx context.Context, plan *domain.DietPlan) error
	Delete(ctx context.Context, id string) error
}

// WorkoutPlanRepository defines the interface for the workout plan catalog.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (string, error)
	GetByID(ctx context.Context, id string) (*domain.WorkoutPlan, error)
	List(ctx context.Context) ([]domain.WorkoutPlan, error)
	Update(ctx context.Context, plan *domain.WorkoutPlan) error
	Delete(ctx context.Context, id string) error
}

// CheckInRepository defines the interface for scheduled check-ins. Check-ins
// are never deleted; status transitions happen in place.
type CheckInRepository interface {
	Create(ctx context.Context, checkIn *domain.CheckIn) (string, error)
	GetByID(ctx context.Context, id string) (*domain.CheckIn, error)
	List(ctx context.Context) ([]domain.CheckIn, error)
	UpdateStatus(ctx context.Context, id string, status domain.CheckInStatus) error
}
