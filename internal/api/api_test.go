package api

import (
	"bytes"
	"coachdesk/internal/repository/memory"
	"coachdesk/internal/seed"
	"coachdesk/internal/service"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	clientRepo := memory.NewMemoryClientRepository()
	dietRepo := memory.NewMemoryDietPlanRepository()
	workoutRepo := memory.NewMemoryWorkoutPlanRepository()
	checkInRepo := memory.NewMemoryCheckInRepository()

	for _, c := range seed.Clients() {
		_, err := clientRepo.Create(ctx, &c)
		require.NoError(t, err)
	}
	for _, p := range seed.DietPlans() {
		_, err := dietRepo.Create(ctx, &p)
		require.NoError(t, err)
	}
	for _, p := range seed.WorkoutPlans() {
		_, err := workoutRepo.Create(ctx, &p)
		require.NoError(t, err)
	}
	for _, ci := range seed.CheckIns() {
		_, err := checkInRepo.Create(ctx, &ci)
		require.NoError(t, err)
	}

	router := gin.New()
	SetupRoutes(
		router,
		service.NewClientService(clientRepo),
		service.NewPlanService(dietRepo, workoutRepo),
		service.NewCheckInService(checkInRepo, clientRepo),
		service.NewDashboardService(clientRepo),
		nil, // no photo storage in tests
	)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestPing(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestGetDashboard(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Stats struct {
			TotalClients int `json:"totalClients"`
			ActiveGoals  int `json:"activeGoals"`
		} `json:"stats"`
		UpcomingCheckIns []json.RawMessage `json:"upcomingCheckIns"`
		RecentClients    []ClientSummary   `json:"recentClients"`
	}
	decodeBody(t, w, &resp)

	assert.Equal(t, 5, resp.Stats.TotalClients)
	assert.Positive(t, resp.Stats.ActiveGoals)
	require.Len(t, resp.RecentClients, 4)
	// Seed join dates are fixed; the most recent joiner comes first.
	for i := 1; i < len(resp.RecentClients); i++ {
		assert.False(t, resp.RecentClients[i-1].JoinDate.Before(resp.RecentClients[i].JoinDate),
			"recent clients must be newest first")
	}
}

func TestListClientsFilters(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/clients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []json.RawMessage
	decodeBody(t, w, &all)
	assert.Len(t, all, 5)

	w = doRequest(t, router, http.MethodGet, "/api/v1/clients?search=sarah", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var filtered []struct {
		FirstName string `json:"firstName"`
	}
	decodeBody(t, w, &filtered)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Sarah", filtered[0].FirstName)

	w = doRequest(t, router, http.MethodGet, "/api/v1/clients?goalType=Weight+Loss", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var byGoal []json.RawMessage
	decodeBody(t, w, &byGoal)
	assert.NotEmpty(t, byGoal)

	w = doRequest(t, router, http.MethodGet, "/api/v1/clients?goalType=Bodybuilding", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetClient(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/clients/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var client struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	decodeBody(t, w, &client)
	assert.Equal(t, "Alex", client.FirstName)
	assert.Equal(t, "Johnson", client.LastName)

	w = doRequest(t, router, http.MethodGet, "/api/v1/clients/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateClientValidationResponse(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/clients", ClientRequest{
		FirstName: "New",
		Email:     "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string `json:"error"`
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "validation failed", resp.Error)

	fields := map[string]string{}
	for _, fe := range resp.Fields {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "Last name is required", fields["lastName"])
	assert.Equal(t, "Invalid email address", fields["email"])
}

func TestCreateClientRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/clients", ClientRequest{
		FirstName:     "Nina",
		LastName:      "Petrova",
		Email:         "nina.petrova@example.com",
		Height:        "170",
		CurrentWeight: "64",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID     string `json:"id"`
		Gender string `json:"gender"`
	}
	decodeBody(t, w, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "other", created.Gender)

	w = doRequest(t, router, http.MethodGet, "/api/v1/clients/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetProgressChart(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/clients/1/progress/chart?metric=bodyFat", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var series struct {
		Metric  string `json:"metric"`
		Unit    string `json:"unit"`
		HasData bool   `json:"hasData"`
		Points  []struct {
			Label string  `json:"label"`
			Value float64 `json:"value"`
		} `json:"points"`
	}
	decodeBody(t, w, &series)
	assert.Equal(t, "bodyFat", series.Metric)
	assert.Equal(t, "%", series.Unit)
	assert.True(t, series.HasData)
	require.NotEmpty(t, series.Points)
	assert.Equal(t, "Jan 15", series.Points[0].Label)

	w = doRequest(t, router, http.MethodGet, "/api/v1/clients/1/progress/chart?metric=steps", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleCheckInEndpoint(t *testing.T) {
	router := newTestRouter(t)

	future := time.Now().UTC().AddDate(0, 0, 7)
	w := doRequest(t, router, http.MethodPost, "/api/v1/check-ins", ScheduleCheckInRequest{
		ClientID: "1",
		Date:     &future,
		Duration: 30,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID         string `json:"id"`
		ClientName string `json:"clientName"`
		Status     string `json:"status"`
	}
	decodeBody(t, w, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Alex Johnson", created.ClientName)
	assert.Equal(t, "scheduled", created.Status)

	// Past date is rejected with field errors.
	past := time.Now().UTC().AddDate(0, 0, -2)
	w = doRequest(t, router, http.MethodPost, "/api/v1/check-ins", ScheduleCheckInRequest{
		ClientID: "1",
		Date:     &past,
		Duration: 30,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing clientId fails binding before the service runs.
	w = doRequest(t, router, http.MethodPost, "/api/v1/check-ins", map[string]any{"duration": 30})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCheckInStatusEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPatch, "/api/v1/check-ins/ci1/status", UpdateCheckInStatusRequest{
		Status: "completed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Status string `json:"status"`
	}
	decodeBody(t, w, &updated)
	assert.Equal(t, "completed", updated.Status)

	w = doRequest(t, router, http.MethodPatch, "/api/v1/check-ins/ci1/status", UpdateCheckInStatusRequest{
		Status: "done",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPatch, "/api/v1/check-ins/nope/status", UpdateCheckInStatusRequest{
		Status: "cancelled",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDietPlanCatalogEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/diet-plans", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var plans []struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &plans)
	require.NotEmpty(t, plans)
	before := len(plans)

	w = doRequest(t, router, http.MethodDelete, "/api/v1/diet-plans/"+plans[0].ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/diet-plans", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &plans)
	assert.Len(t, plans, before-1)

	w = doRequest(t, router, http.MethodDelete, "/api/v1/diet-plans/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateWorkoutPlanEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/workout-plans", WorkoutPlanRequest{
		Name:        "Starting Strength",
		Description: "Linear progression for novices",
		Frequency:   3,
		Exercises: []ExerciseRequest{
			{Name: "Squat", Sets: 3, Reps: 5},
			{Name: "Press", Sets: 3, Reps: 5},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// An invalid draft never reaches the catalog.
	w = doRequest(t, router, http.MethodPost, "/api/v1/workout-plans", WorkoutPlanRequest{
		Name:      "Broken",
		Frequency: 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPhotoEndpointsWithoutStorage(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/clients/1/photo/upload-url", PhotoUploadURLRequest{
		ContentType: "image/jpeg",
	})
	assert.Equal(t, http.StatusNotImplemented, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/clients/1/photo", nil)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}
