package service

import (
	"coachdesk/internal/domain"
	"coachdesk/internal/repository/memory"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCheckInService(t *testing.T) (*checkInService, *domain.Client) {
	t.Helper()
	ctx := context.Background()

	clientRepo := memory.NewMemoryClientRepository()
	client := &domain.Client{
		ID:        "client-1",
		FirstName: "Alex",
		LastName:  "Johnson",
		Email:     "alex.johnson@example.com",
		JoinDate:  testNow.AddDate(0, -2, 0),
	}
	_, err := clientRepo.Create(ctx, client)
	require.NoError(t, err)

	return &checkInService{
		checkInRepo: memory.NewMemoryCheckInRepository(),
		clientRepo:  clientRepo,
		now:         func() time.Time { return testNow },
	}, client
}

func TestScheduleCheckIn(t *testing.T) {
	s, client := newTestCheckInService(t)
	ctx := context.Background()

	date := testNow.AddDate(0, 0, 7)
	view, err := s.ScheduleCheckIn(ctx, ScheduleCheckInInput{
		ClientID: client.ID,
		Date:     &date,
		Duration: 30,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, domain.CheckInScheduled, view.Status)
	assert.Equal(t, "Alex Johnson", view.ClientName)
	assert.Empty(t, view.Notes)
	assert.Equal(t, 30, view.Duration)
}

func TestScheduleCheckInValidation(t *testing.T) {
	s, client := newTestCheckInService(t)
	ctx := context.Background()

	// No date, duration too short.
	_, err := s.ScheduleCheckIn(ctx, ScheduleCheckInInput{ClientID: client.ID, Duration: 3})
	var fields domain.ValidationErrors
	require.ErrorAs(t, err, &fields)
	byField := map[string]string{}
	for _, fe := range fields {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "A date is required", byField["date"])
	assert.Equal(t, "Duration must be at least 5 minutes", byField["duration"])

	// Past date, duration too long.
	past := testNow.AddDate(0, 0, -1)
	_, err = s.ScheduleCheckIn(ctx, ScheduleCheckInInput{ClientID: client.ID, Date: &past, Duration: 180})
	fields = nil
	require.ErrorAs(t, err, &fields)
	byField = map[string]string{}
	for _, fe := range fields {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "Date cannot be in the past", byField["date"])
	assert.Equal(t, "Duration must not exceed 120 minutes", byField["duration"])
}

func TestScheduleCheckInUnknownClient(t *testing.T) {
	s, _ := newTestCheckInService(t)

	date := testNow.AddDate(0, 0, 1)
	_, err := s.ScheduleCheckIn(context.Background(), ScheduleCheckInInput{
		ClientID: "missing",
		Date:     &date,
		Duration: 30,
	})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestScheduleCheckInIdempotentRetry(t *testing.T) {
	s, client := newTestCheckInService(t)
	ctx := context.Background()

	date := testNow.AddDate(0, 0, 7)
	input := ScheduleCheckInInput{ID: "ci-retry", ClientID: client.ID, Date: &date, Duration: 45}

	first, err := s.ScheduleCheckIn(ctx, input)
	require.NoError(t, err)
	second, err := s.ScheduleCheckIn(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := s.ListCheckIns(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListCheckInsSortedWithResolvedNames(t *testing.T) {
	s, client := newTestCheckInService(t)
	ctx := context.Background()

	later := testNow.AddDate(0, 0, 10)
	sooner := testNow.AddDate(0, 0, 2)
	_, err := s.ScheduleCheckIn(ctx, ScheduleCheckInInput{ID: "ci-later", ClientID: client.ID, Date: &later, Duration: 30})
	require.NoError(t, err)
	_, err = s.ScheduleCheckIn(ctx, ScheduleCheckInInput{ID: "ci-sooner", ClientID: client.ID, Date: &sooner, Duration: 30})
	require.NoError(t, err)

	views, err := s.ListCheckIns(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "ci-sooner", views[0].ID, "listing is ascending by date")
	assert.Equal(t, "ci-later", views[1].ID)

	// Rename the client; existing check-ins pick up the new name on read.
	stored, err := s.clientRepo.GetByID(ctx, client.ID)
	require.NoError(t, err)
	stored.FirstName = "Alexandra"
	require.NoError(t, s.clientRepo.Update(ctx, stored))

	views, err = s.ListCheckIns(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alexandra Johnson", views[0].ClientName)
}

func TestUpdateCheckInStatus(t *testing.T) {
	s, client := newTestCheckInService(t)
	ctx := context.Background()

	date := testNow.AddDate(0, 0, 3)
	view, err := s.ScheduleCheckIn(ctx, ScheduleCheckInInput{ClientID: client.ID, Date: &date, Duration: 60})
	require.NoError(t, err)

	updated, err := s.UpdateStatus(ctx, view.ID, domain.CheckInCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckInCompleted, updated.Status)
	assert.Equal(t, "Alex Johnson", updated.ClientName)

	_, err = s.UpdateStatus(ctx, view.ID, domain.CheckInStatus("done"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = s.UpdateStatus(ctx, "missing", domain.CheckInCancelled)
	assert.ErrorIs(t, err, ErrCheckInNotFound)
}

func TestResolveViewMissingClient(t *testing.T) {
	s, _ := newTestCheckInService(t)

	view := s.resolveView(context.Background(), domain.CheckIn{ID: "ci-1", ClientID: "gone"})
	assert.Empty(t, view.ClientName, "orphaned check-ins list with an empty name instead of failing")
}
