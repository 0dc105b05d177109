package service

import (
	"coachdesk/internal/domain"
	"coachdesk/internal/repository"
	"context"
	"errors"
	"sort"
	"time"
)

// --- Error Definitions ---
var (
	ErrCheckInNotFound = errors.New("check-in not found")
	ErrInvalidStatus   = errors.New("invalid check-in status")
)

// ScheduleCheckInInput is a draft check-in as submitted by the scheduling form.
type ScheduleCheckInInput struct {
	ID       string // optional; supplied by retrying clients for idempotency
	ClientID string
	Date     *time.Time
	Duration int
	Notes    string
}

// CheckInView is a check-in with the client's display name resolved at read
// time, so renamed clients never show a stale name.
type CheckInView struct {
	domain.CheckIn
	ClientName string `json:"clientName"`
}

// CheckInService owns scheduled review sessions.
type CheckInService interface {
	ListCheckIns(ctx context.Context) ([]CheckInView, error)
	ScheduleCheckIn(ctx context.Context, input ScheduleCheckInInput) (*CheckInView, error)
	UpdateStatus(ctx context.Context, id string, status domain.CheckInStatus) (*CheckInView, error)
}

// checkInService implements the CheckInService interface.
type checkInService struct {
	checkInRepo repository.CheckInRepository
	clientRepo  repository.ClientRepository
	now         func() time.Time
}

// NewCheckInService creates a new instance of checkInService.
func NewCheckInService(checkInRepo repository.CheckInRepository, clientRepo repository.ClientRepository) CheckInService {
	return &checkInService{
		checkInRepo: checkInRepo,
		clientRepo:  clientRepo,
		now:         time.Now,
	}
}

// ListCheckIns returns all check-ins ascending by date, each with the client
// name resolved from the current client record.
func (s *checkInService) ListCheckIns(ctx context.Context) ([]CheckInView, error) {
	checkIns, err := s.checkInRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(checkIns, func(i, j int) bool {
		return checkIns[i].Date.Before(checkIns[j].Date)
	})

	views := make([]CheckInView, len(checkIns))
	for i, ci := range checkIns {
		views[i] = s.resolveView(ctx, ci)
	}
	return views, nil
}

// ScheduleCheckIn validates the draft and inserts a new check-in with status
// scheduled. The id is generated before the insert; a retry carrying the same
// id returns the already-created record.
func (s *checkInService) ScheduleCheckIn(ctx context.Context, input ScheduleCheckInInput) (*CheckInView, error) {
	var fields domain.ValidationErrors

	if input.Date == nil {
		fields = fields.Add("date", "A date is required")
	} else if input.Date.Before(startOfDay(s.now())) {
		fields = fields.Add("date", "Date cannot be in the past")
	}
	if input.Duration < 5 {
		fields = fields.Add("duration", "Duration must be at least 5 minutes")
	} else if input.Duration > 120 {
		fields = fields.Add("duration", "Duration must not exceed 120 minutes")
	}
	if len(fields) > 0 {
		return nil, fields
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	checkIn := &domain.CheckIn{
		ID:       orNewID(input.ID),
		ClientID: client.ID,
		Date:     *input.Date,
		Status:   domain.CheckInScheduled,
		Notes:    input.Notes,
		Duration: input.Duration,
	}

	if _, err := s.checkInRepo.Create(ctx, checkIn); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			existing, getErr := s.checkInRepo.GetByID(ctx, checkIn.ID)
			if getErr != nil {
				return nil, getErr
			}
			view := s.resolveView(ctx, *existing)
			return &view, nil
		}
		return nil, err
	}

	view := CheckInView{CheckIn: *checkIn, ClientName: client.FullName()}
	return &view, nil
}

// UpdateStatus transitions an existing check-in's status in place.
func (s *checkInService) UpdateStatus(ctx context.Context, id string, status domain.CheckInStatus) (*CheckInView, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	if err := s.checkInRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCheckInNotFound
		}
		return nil, err
	}

	checkIn, err := s.checkInRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.resolveView(ctx, *checkIn)
	return &view, nil
}

// resolveView looks up the client's current name. A missing client (should
// not happen, but the association is non-owning) falls back to an empty name
// rather than failing the listing.
func (s *checkInService) resolveView(ctx context.Context, ci domain.CheckIn) CheckInView {
	view := CheckInView{CheckIn: ci}
	if client, err := s.clientRepo.GetByID(ctx, ci.ClientID); err == nil {
		view.ClientName = client.FullName()
	}
	return view
}
