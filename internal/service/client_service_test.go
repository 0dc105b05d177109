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

var testNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestClientService() *clientService {
	return &clientService{
		clientRepo: memory.NewMemoryClientRepository(),
		now:        func() time.Time { return testNow },
	}
}

func validClientInput() ClientInput {
	return ClientInput{
		FirstName:     "Alex",
		LastName:      "Johnson",
		Email:         "alex.johnson@example.com",
		Phone:         "555-0101",
		Height:        "180",
		CurrentWeight: "85.5",
	}
}

func TestCreateClient(t *testing.T) {
	s := newTestClientService()
	ctx := context.Background()

	client, err := s.CreateClient(ctx, validClientInput())
	require.NoError(t, err)
	require.NotNil(t, client)

	assert.NotEmpty(t, client.ID)
	assert.Equal(t, "Alex Johnson", client.FullName())
	assert.Equal(t, domain.GenderOther, client.Gender, "gender defaults to other")
	assert.Equal(t, testNow, client.JoinDate)
	require.NotNil(t, client.Height)
	assert.Equal(t, 180.0, *client.Height)
	require.NotNil(t, client.CurrentWeight)
	assert.Equal(t, 85.5, *client.CurrentWeight)
	require.NotNil(t, client.InitialWeight)
	assert.Equal(t, 85.5, *client.InitialWeight, "initial weight mirrors the intake weight")
	assert.Empty(t, client.Goals)
	assert.Empty(t, client.ProgressEntries)
}

func TestCreateClientValidation(t *testing.T) {
	s := newTestClientService()
	ctx := context.Background()

	input := ClientInput{Email: "not-an-email", CurrentWeight: "heavy"}
	_, err := s.CreateClient(ctx, input)
	require.Error(t, err)

	fields, ok := err.(domain.ValidationErrors)
	require.True(t, ok, "expected field errors, got %v", err)

	byField := map[string]string{}
	for _, fe := range fields {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "First name is required", byField["firstName"])
	assert.Equal(t, "Last name is required", byField["lastName"])
	assert.Equal(t, "Invalid email address", byField["email"])
	assert.Equal(t, "Must be a number", byField["currentWeight"])
}

func TestCreateClientIdempotentRetry(t *testing.T) {
	s := newTestClientService()
	ctx := context.Background()

	input := validClientInput()
	input.ID = "client-retry-1"

	first, err := s.CreateClient(ctx, input)
	require.NoError(t, err)

	// Same submission again, e.g. a double-clicked save button.
	second, err := s.CreateClient(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := s.ListClients(ctx, "", nil)
	require.NoError(t, err)
	assert.Len(t, all, 1, "retry must not insert a duplicate")
}

func TestUpdateClientPreservesOwnedData(t *testing.T) {
	s := newTestClientService()
	ctx := context.Background()

	client, err := s.CreateClient(ctx, validClientInput())
	require.NoError(t, err)

	target := testNow.AddDate(0, 3, 0)
	_, err = s.AddGoal(ctx, client.ID, GoalInput{
		Type:        domain.GoalWeightLoss,
		Description: "Lose 10kg",
		TargetDate:  &target,
	})
	require.NoError(t, err)

	input := validClientInput()
	input.FirstName = "Alexander"
	updated, err := s.UpdateClient(ctx, client.ID, input)
	require.NoError(t, err)

	assert.Equal(t, "Alexander", updated.FirstName)
	assert.Len(t, updated.Goals, 1, "editing profile fields must not drop goals")
}

func TestUpdateClientNotFound(t *testing.T) {
	s := newTestClientService()
	_, err := s.UpdateClient(context.Background(), "missing", validClientInput())
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestAddGoalDefaults(t *testing.T) {
	s := newTestClientService()
	ctx := context.Background()

	client, err := s.CreateClient(ctx, validClientInput())
	require.NoError(t, err)

	target := testNow.AddDate(0, 2, 0)
	goal, err := s.AddGoal(ctx, client.ID, GoalInput{
		Type:        domain.GoalWeightLoss,
		Description: "Drop to 78kg",
		TargetDate:  &target,
		StartValue:  "85.5",
		TargetValue: "78",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.GoalNotStarted, goal.Status)
	assert.Equal(t, 0, goal.Progress)
	assert.Equal(t, "kg", goal.Unit, "unit falls back to the goal-type suggestion")
	require.NotNil(t, goal.CurrentValue)
	assert.Equal(t, *goal.StartValue, *goal.CurrentValue, "current value starts at the start value")
}

func TestAddGoalTargetDate(t *testing.T) {
	s := newTestClientService()
	ctx := context.Background()

	client, err := s.CreateClient(ctx, validClientInput())
	require.NoError(t, err)

	// Yesterday is rejected.
	yesterday := testNow.AddDate(0, 0, -1)
	_, err = s.AddGoal(ctx, client.ID, GoalInput{
		Type:        domain.GoalEndurance,
		Description: "Run 5k",
		TargetDate:  &yesterday,
	})
	var fields domain.ValidationErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "targetDate", fields[0].Field)
	assert.Equal(t, "Target date cannot be in the past", fields[0].Message)

	// Earlier today is still today, not the past.
	earlierToday := time.Date(2024, 6, 15, 0, 30, 0, 0, time.UTC)
	goal, err := s.AddGoal(ctx, client.ID, GoalInput{
		Type:        domain.GoalEndurance,
		Description: "Run 5k",
		TargetDate:  &earlierToday,
	})
	require.NoError(t, err)
	assert.Equal(t, "mins", goal.Unit)
}

func TestAddProgressEntryUpdatesCurrentWeight(t *testing.T) {
	s := newTestClientService()
	ctx := context.Background()

	client, err := s.CreateClient(ctx, validClientInput())
	require.NoError(t, err)

	w := 83.2
	date := testNow.AddDate(0, 0, -2)
	entry, err := s.AddProgressEntry(ctx, client.ID, ProgressEntryInput{
		Date:   &date,
		Weight: &w,
		Notes:  "good week",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)

	reloaded, err := s.GetClient(ctx, client.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.CurrentWeight)
	assert.Equal(t, 83.2, *reloaded.CurrentWeight, "latest weighed entry becomes the current weight")
	assert.Len(t, reloaded.ProgressEntries, 1)
}

func TestAddProgressEntryRequiresDate(t *testing.T) {
	s := newTestClientService()
	ctx := context.Background()

	client, err := s.CreateClient(ctx, validClientInput())
	require.NoError(t, err)

	_, err = s.AddProgressEntry(ctx, client.ID, ProgressEntryInput{})
	var fields domain.ValidationErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "date", fields[0].Field)
}

func TestFilterClients(t *testing.T) {
	gt := domain.GoalWeightLoss
	clients := []domain.Client{
		{ID: "1", FirstName: "Alex", LastName: "Johnson", Email: "alex@example.com",
			Goals: []domain.Goal{{Type: domain.GoalWeightLoss}}},
		{ID: "2", FirstName: "Sarah", LastName: "Miller", Email: "sarah@example.com",
			Goals: []domain.Goal{{Type: domain.GoalEndurance}}},
		{ID: "3", FirstName: "Michael", LastName: "Chen", Email: "mchen@example.com"},
	}

	// No filters: the list comes back unchanged, same order.
	out := FilterClients(clients, "", nil)
	require.Len(t, out, 3)
	assert.Equal(t, "1", out[0].ID)
	assert.Equal(t, "3", out[2].ID)

	// Case-insensitive name search.
	out = FilterClients(clients, "sArAh", nil)
	require.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)

	// Email search.
	out = FilterClients(clients, "mchen@", nil)
	require.Len(t, out, 1)
	assert.Equal(t, "3", out[0].ID)

	// Goal-type filter.
	out = FilterClients(clients, "", &gt)
	require.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)

	// Both filters must match.
	out = FilterClients(clients, "sarah", &gt)
	assert.Empty(t, out)
}

func TestBuildChartSeries(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	entries := []domain.ProgressEntry{
		{ID: "b", Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), Weight: f(84)},
		{ID: "a", Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Weight: f(86)},
		{ID: "c", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), BodyFat: f(21)},
	}

	series := BuildChartSeries(entries, domain.MetricWeight)
	assert.True(t, series.HasData)
	assert.Equal(t, "kg", series.Unit)
	require.Len(t, series.Points, 2, "entries without the metric are dropped")
	assert.Equal(t, "Jan 05", series.Points[0].Label)
	assert.Equal(t, 86.0, series.Points[0].Value)
	assert.Equal(t, "Feb 10", series.Points[1].Label)

	series = BuildChartSeries(entries, domain.MetricBodyFat)
	assert.Equal(t, "%", series.Unit)
	require.Len(t, series.Points, 1)
	assert.Equal(t, 21.0, series.Points[0].Value)

	series = BuildChartSeries(nil, domain.MetricWeight)
	assert.False(t, series.HasData, "empty input is an explicit no-data state")
	assert.Empty(t, series.Points)
}

func TestSetDietPlanKeepsAssignedID(t *testing.T) {
	s := newTestClientService()
	ctx := context.Background()

	client, err := s.CreateClient(ctx, validClientInput())
	require.NoError(t, err)

	input := DietPlanInput{
		Name:          "Cutting Phase",
		Description:   "Moderate deficit",
		DailyCalories: 2100,
		Protein:       40, Carbs: 35, Fats: 25,
		Meals: []MealInput{{Name: "Breakfast", Description: "Oats and eggs"}},
	}
	first, err := s.SetDietPlan(ctx, client.ID, input)
	require.NoError(t, err)

	// Replacing without an explicit id keeps the existing assignment's id.
	input.DailyCalories = 2000
	second, err := s.SetDietPlan(ctx, client.ID, input)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2000, second.DailyCalories)

	reloaded, err := s.GetClient(ctx, client.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.DietPlan)
	assert.Equal(t, 2000, reloaded.DietPlan.DailyCalories)
}
