package api

import (
	"coachdesk/internal/domain"
	"coachdesk/internal/service"
	"coachdesk/internal/storage"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ClientHandler holds the client service and the optional photo storage.
type ClientHandler struct {
	clientService service.ClientService
	fileStorage   storage.FileStorage // nil when photo storage is not configured
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService, fileStorage storage.FileStorage) *ClientHandler {
	return &ClientHandler{clientService: clientService, fileStorage: fileStorage}
}

// --- DTOs for API (Data Transfer Objects) ---

// ClientRequest is the JSON body for creating or replacing a client. Height
// and currentWeight are text fields, matching the intake form; the service
// coerces them to numbers.
type ClientRequest struct {
	ID            string        `json:"id"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Gender        domain.Gender `json:"gender"`
	DateOfBirth   *time.Time    `json:"dateOfBirth"`
	Height        string        `json:"height"`
	CurrentWeight string        `json:"currentWeight"`
	Notes         string        `json:"notes"`
}

// GoalRequest is the JSON body for adding a goal to a client.
type GoalRequest struct {
	ID          string          `json:"id"`
	Type        domain.GoalType `json:"type"`
	Description string          `json:"description"`
	TargetDate  *time.Time      `json:"targetDate"`
	StartValue  string          `json:"startValue"`
	TargetValue string          `json:"targetValue"`
	Unit        string          `json:"unit"`
}

// ProgressEntryRequest is the JSON body for appending a measurement snapshot.
type ProgressEntryRequest struct {
	ID           string               `json:"id"`
	Date         *time.Time           `json:"date"`
	Weight       *float64             `json:"weight"`
	BodyFat      *float64             `json:"bodyFat"`
	Notes        string               `json:"notes"`
	Measurements *domain.Measurements `json:"measurements"`
}

// ClientSummary is the compact card shown in listings.
type ClientSummary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	JoinDate    time.Time  `json:"joinDate"`
	GoalCount   int        `json:"goalCount"`
	PrimaryGoal string     `json:"primaryGoal,omitempty"`
	NextCheckIn *time.Time `json:"nextCheckIn,omitempty"`
}

// MapClientToSummary converts a domain.Client to its listing card.
func MapClientToSummary(c *domain.Client) ClientSummary {
	summary := ClientSummary{
		ID:          c.ID,
		Name:        c.FullName(),
		Email:       c.Email,
		JoinDate:    c.JoinDate,
		GoalCount:   len(c.Goals),
		NextCheckIn: c.NextCheckIn,
	}
	if len(c.Goals) > 0 {
		summary.PrimaryGoal = string(c.Goals[0].Type)
	}
	return summary
}

// --- Handler Methods ---

// ListClients returns clients matching the search and goal-type filters.
// No filters returns the full roster in store order.
func (h *ClientHandler) ListClients(c *gin.Context) {
	search := c.Query("search")

	var goalType *domain.GoalType
	if raw := c.Query("goalType"); raw != "" {
		gt := domain.GoalType(raw)
		if !gt.IsValid() {
			abortWithError(c, http.StatusBadRequest, "Unknown goal type: "+raw)
			return
		}
		goalType = &gt
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), search, goalType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClient returns a single client, or the not-found empty state.
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.clientService.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient validates the draft and adds it to the roster.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), clientInputFromRequest(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// UpdateClient replaces the editable fields of an existing client.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), c.Param("id"), clientInputFromRequest(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// AddGoal appends a validated goal to the client.
func (h *ClientHandler) AddGoal(c *gin.Context) {
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	goal, err := h.clientService.AddGoal(c.Request.Context(), c.Param("id"), service.GoalInput{
		ID:          req.ID,
		Type:        req.Type,
		Description: req.Description,
		TargetDate:  req.TargetDate,
		StartValue:  req.StartValue,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// AddProgressEntry appends a measurement snapshot to the client.
func (h *ClientHandler) AddProgressEntry(c *gin.Context) {
	var req ProgressEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	entry, err := h.clientService.AddProgressEntry(c.Request.Context(), c.Param("id"), service.ProgressEntryInput{
		ID:           req.ID,
		Date:         req.Date,
		Weight:       req.Weight,
		BodyFat:      req.BodyFat,
		Notes:        req.Notes,
		Measurements: req.Measurements,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetProgressChart returns the plottable series for one metric.
func (h *ClientHandler) GetProgressChart(c *gin.Context) {
	metric := domain.Metric(c.DefaultQuery("metric", string(domain.MetricWeight)))
	if !metric.IsValid() {
		abortWithError(c, http.StatusBadRequest, "Metric must be weight or bodyFat")
		return
	}

	series, err := h.clientService.ChartSeries(c.Request.Context(), c.Param("id"), metric)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// SetDietPlan assigns or replaces the client's diet plan.
func (h *ClientHandler) SetDietPlan(c *gin.Context) {
	var req DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := h.clientService.SetDietPlan(c.Request.Context(), c.Param("id"), dietPlanInputFromRequest(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// SetWorkoutPlan assigns or replaces the client's workout plan.
func (h *ClientHandler) SetWorkoutPlan(c *gin.Context) {
	var req WorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := h.clientService.SetWorkoutPlan(c.Request.Context(), c.Param("id"), workoutPlanInputFromRequest(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// PhotoUploadURLRequest carries the MIME type the client will upload with.
type PhotoUploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// CreatePhotoUploadURL issues a presigned PUT URL for the client's photo and
// records the object key on the record.
func (h *ClientHandler) CreatePhotoUploadURL(c *gin.Context) {
	if h.fileStorage == nil {
		abortWithError(c, http.StatusNotImplemented, "Photo storage is not configured.")
		return
	}

	var req PhotoUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	client, err := h.clientService.GetClient(ctx, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	objectKey := fmt.Sprintf("clients/%s/photo", client.ID)
	uploadURL, err := h.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, req.ContentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if err := h.clientService.SetPhotoObjectKey(ctx, client.ID, objectKey); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"uploadUrl": uploadURL, "objectKey": objectKey})
}

// GetPhotoURL issues a presigned GET URL for the client's stored photo.
func (h *ClientHandler) GetPhotoURL(c *gin.Context) {
	if h.fileStorage == nil {
		abortWithError(c, http.StatusNotImplemented, "Photo storage is not configured.")
		return
	}

	ctx := c.Request.Context()
	client, err := h.clientService.GetClient(ctx, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if client.PhotoObjectKey == "" {
		abortWithError(c, http.StatusNotFound, "Client has no photo.")
		return
	}

	downloadURL, err := h.fileStorage.GeneratePresignedDownloadURL(ctx, client.PhotoObjectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": downloadURL})
}

func clientInputFromRequest(req ClientRequest) service.ClientInput {
	return service.ClientInput{
		ID:            req.ID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Gender:        req.Gender,
		DateOfBirth:   req.DateOfBirth,
		Height:        req.Height,
		CurrentWeight: req.CurrentWeight,
		Notes:         req.Notes,
	}
}
