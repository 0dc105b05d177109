package api

import (
	"coachdesk/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the dashboard service dependency.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardResponse bundles everything the overview screen renders.
type DashboardResponse struct {
	Stats            service.DashboardStats    `json:"stats"`
	UpcomingCheckIns []service.UpcomingCheckIn `json:"upcomingCheckIns"`
	RecentClients    []ClientSummary           `json:"recentClients"`
}

// GetDashboard returns the headline stats, the next scheduled reviews and the
// most recently joined clients in one response.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.dashboardService.Stats(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	upcoming, err := h.dashboardService.UpcomingCheckIns(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	recent, err := h.dashboardService.RecentClients(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	summaries := make([]ClientSummary, len(recent))
	for i := range recent {
		summaries[i] = MapClientToSummary(&recent[i])
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Stats:            *stats,
		UpcomingCheckIns: upcoming,
		RecentClients:    summaries,
	})
}
