package api

import (
	"coachdesk/internal/service"
	"coachdesk/internal/storage"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every handler onto the router. fileStorage may be nil;
// photo endpoints then answer 501.
func SetupRoutes(
	router *gin.Engine,
	clientService service.ClientService,
	planService service.PlanService,
	checkInService service.CheckInService,
	dashboardService service.DashboardService,
	fileStorage storage.FileStorage,
) {
	clientHandler := NewClientHandler(clientService, fileStorage)
	planHandler := NewPlanHandler(planService)
	checkInHandler := NewCheckInHandler(checkInService)
	dashboardHandler := NewDashboardHandler(dashboardService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/dashboard", dashboardHandler.GetDashboard)

		clientGroup := apiV1.Group("/clients")
		{
			clientGroup.GET("", clientHandler.ListClients)
			clientGroup.POST("", clientHandler.CreateClient)
			clientGroup.GET("/:id", clientHandler.GetClient)
			clientGroup.PUT("/:id", clientHandler.UpdateClient)

			clientGroup.POST("/:id/goals", clientHandler.AddGoal)
			clientGroup.POST("/:id/progress", clientHandler.AddProgressEntry)
			clientGroup.GET("/:id/progress/chart", clientHandler.GetProgressChart)

			clientGroup.PUT("/:id/diet-plan", clientHandler.SetDietPlan)
			clientGroup.PUT("/:id/workout-plan", clientHandler.SetWorkoutPlan)

			clientGroup.POST("/:id/photo/upload-url", clientHandler.CreatePhotoUploadURL)
			clientGroup.GET("/:id/photo", clientHandler.GetPhotoURL)
		}

		dietGroup := apiV1.Group("/diet-plans")
		{
			dietGroup.GET("", planHandler.ListDietPlans)
			dietGroup.POST("", planHandler.CreateDietPlan)
			dietGroup.PUT("/:id", planHandler.UpdateDietPlan)
			dietGroup.DELETE("/:id", planHandler.DeleteDietPlan)
		}

		workoutGroup := apiV1.Group("/workout-plans")
		{
			workoutGroup.GET("", planHandler.ListWorkoutPlans)
			workoutGroup.POST("", planHandler.CreateWorkoutPlan)
			workoutGroup.PUT("/:id", planHandler.UpdateWorkoutPlan)
			workoutGroup.DELETE("/:id", planHandler.DeleteWorkoutPlan)
		}

		checkInGroup := apiV1.Group("/check-ins")
		{
			checkInGroup.GET("", checkInHandler.ListCheckIns)
			checkInGroup.POST("", checkInHandler.ScheduleCheckIn)
			checkInGroup.PATCH("/:id/status", checkInHandler.UpdateStatus)
		}
	}
}
