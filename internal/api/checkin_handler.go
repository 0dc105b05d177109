package api

import (
	"coachdesk/internal/domain"
	"coachdesk/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CheckInHandler holds the check-in service dependency.
type CheckInHandler struct {
	checkInService service.CheckInService
}

// NewCheckInHandler creates a new CheckInHandler.
func NewCheckInHandler(checkInService service.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInService: checkInService}
}

// ScheduleCheckInRequest is the JSON body for scheduling a review session.
type ScheduleCheckInRequest struct {
	ID       string     `json:"id"`
	ClientID string     `json:"clientId" binding:"required"`
	Date     *time.Time `json:"date"`
	Duration int        `json:"duration"`
	Notes    string     `json:"notes"`
}

// UpdateCheckInStatusRequest is the JSON body for an in-place status change.
type UpdateCheckInStatusRequest struct {
	Status domain.CheckInStatus `json:"status" binding:"required"`
}

// ListCheckIns returns all check-ins ascending by date.
func (h *CheckInHandler) ListCheckIns(c *gin.Context) {
	checkIns, err := h.checkInService.ListCheckIns(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkIns)
}

// ScheduleCheckIn validates the draft and schedules a new session.
func (h *CheckInHandler) ScheduleCheckIn(c *gin.Context) {
	var req ScheduleCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	checkIn, err := h.checkInService.ScheduleCheckIn(c.Request.Context(), service.ScheduleCheckInInput{
		ID:       req.ID,
		ClientID: req.ClientID,
		Date:     req.Date,
		Duration: req.Duration,
		Notes:    req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, checkIn)
}

// UpdateStatus transitions an existing check-in's status in place, without
// going through the scheduling flow.
func (h *CheckInHandler) UpdateStatus(c *gin.Context) {
	var req UpdateCheckInStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	checkIn, err := h.checkInService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkIn)
}
