package memory

import (
	"coachdesk/internal/domain"
	"coachdesk/internal/repository"
	"context"
	"errors"
	"sync"
	"time"
)

// memoryClientRepository implements repository.ClientRepository with an
// in-process, mutex-guarded slice. Insertion order is preserved so listings
// keep the order records were added in.
type memoryClientRepository struct {
	mu      sync.RWMutex
	clients []domain.Client
}

// NewMemoryClientRepository creates an empty in-memory client repository.
func NewMemoryClientRepository() repository.ClientRepository {
	return &memoryClientRepository{}
}

// Create inserts a new client. The caller supplies the id; inserting an id
// that already exists returns ErrConflict, which makes rapid double-submits
// with the same generated id a no-op instead of a duplicate record.
func (r *memoryClientRepository) Create(ctx context.Context, client *domain.Client) (string, error) {
	if client.ID == "" {
		return "", errors.New("client id is required")
	}
	if client.Email == "" {
		return "", errors.New("client email is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.clients {
		if r.clients[i].ID == client.ID {
			return "", repository.ErrConflict
		}
	}

	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	r.clients = append(r.clients, *cloneClient(client))
	return client.ID, nil
}

// GetByID retrieves a client by id. The returned record is a deep copy;
// mutating it does not touch the store.
func (r *memoryClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.clients {
		if r.clients[i].ID == id {
			return cloneClient(&r.clients[i]), nil
		}
	}
	return nil, repository.ErrNotFound
}

// List returns all clients in insertion order.
func (r *memoryClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Client, len(r.clients))
	for i := range r.clients {
		out[i] = *cloneClient(&r.clients[i])
	}
	return out, nil
}

// Update replaces the stored record wholesale.
func (r *memoryClientRepository) Update(ctx context.Context, client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.clients {
		if r.clients[i].ID == client.ID {
			client.CreatedAt = r.clients[i].CreatedAt
			client.UpdatedAt = time.Now().UTC()
			r.clients[i] = *cloneClient(client)
			return nil
		}
	}
	return repository.ErrNotFound
}

// cloneClient deep-copies a client so stored records never alias slices or
// pointers held by callers.
func cloneClient(c *domain.Client) *domain.Client {
	out := *c
	out.DateOfBirth = cloneTime(c.DateOfBirth)
	out.NextCheckIn = cloneTime(c.NextCheckIn)
	out.Height = cloneFloat(c.Height)
	out.CurrentWeight = cloneFloat(c.CurrentWeight)
	out.InitialWeight = cloneFloat(c.InitialWeight)

	out.Goals = make([]domain.Goal, len(c.Goals))
	for i, g := range c.Goals {
		g.StartValue = cloneFloat(g.StartValue)
		g.CurrentValue = cloneFloat(g.CurrentValue)
		g.TargetValue = cloneFloat(g.TargetValue)
		out.Goals[i] = g
	}

	out.ProgressEntries = make([]domain.ProgressEntry, len(c.ProgressEntries))
	for i, p := range c.ProgressEntries {
		p.Weight = cloneFloat(p.Weight)
		p.BodyFat = cloneFloat(p.BodyFat)
		if p.Measurements != nil {
			m := domain.Measurements{
				Chest:  cloneFloat(p.Measurements.Chest),
				Waist:  cloneFloat(p.Measurements.Waist),
				Hips:   cloneFloat(p.Measurements.Hips),
				Arms:   cloneFloat(p.Measurements.Arms),
				Thighs: cloneFloat(p.Measurements.Thighs),
			}
			p.Measurements = &m
		}
		out.ProgressEntries[i] = p
	}

	if c.DietPlan != nil {
		dp := cloneDietPlan(c.DietPlan)
		out.DietPlan = dp
	}
	if c.WorkoutPlan != nil {
		wp := cloneWorkoutPlan(c.WorkoutPlan)
		out.WorkoutPlan = wp
	}
	return &out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
