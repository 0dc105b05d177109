package memory

import (
	"coachdesk/internal/domain"
	"coachdesk/internal/repository"
	"context"
	"errors"
	"sync"
)

// memoryCheckInRepository implements repository.CheckInRepository.
type memoryCheckInRepository struct {
	mu       sync.RWMutex
	checkIns []domain.CheckIn
}

// NewMemoryCheckInRepository creates an empty in-memory check-in repository.
func NewMemoryCheckInRepository() repository.CheckInRepository {
	return &memoryCheckInRepository{}
}

func (r *memoryCheckInRepository) Create(ctx context.Context, checkIn *domain.CheckIn) (string, error) {
	if checkIn.ID == "" {
		return "", errors.New("check-in id is required")
	}
	if checkIn.ClientID == "" {
		return "", errors.New("check-in client id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.checkIns {
		if r.checkIns[i].ID == checkIn.ID {
			return "", repository.ErrConflict
		}
	}
	r.checkIns = append(r.checkIns, *checkIn)
	return checkIn.ID, nil
}

func (r *memoryCheckInRepository) GetByID(ctx context.Context, id string) (*domain.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.checkIns {
		if r.checkIns[i].ID == id {
			out := r.checkIns[i]
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memoryCheckInRepository) List(ctx context.Context) ([]domain.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.CheckIn, len(r.checkIns))
	copy(out, r.checkIns)
	return out, nil
}

// UpdateStatus transitions the record's status field in place.
func (r *memoryCheckInRepository) UpdateStatus(ctx context.Context, id string, status domain.CheckInStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.checkIns {
		if r.checkIns[i].ID == id {
			r.checkIns[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}
