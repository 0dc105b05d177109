package api

import (
	"coachdesk/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlanHandler holds the plan catalog service dependency.
type PlanHandler struct {
	planService service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// --- DTOs for API (Data Transfer Objects) ---

// MacrosRequest is the macronutrient split of a diet plan draft.
type MacrosRequest struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// MealRequest is one meal of a diet plan draft.
type MealRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DietPlanRequest is the JSON body for creating or replacing a diet plan.
type DietPlanRequest struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	DailyCalories int           `json:"dailyCalories"`
	Macros        MacrosRequest `json:"macros"`
	Meals         []MealRequest `json:"meals"`
}

// ExerciseRequest is one exercise of a workout plan draft.
type ExerciseRequest struct {
	Name   string   `json:"name"`
	Sets   int      `json:"sets"`
	Reps   int      `json:"reps"`
	Weight *float64 `json:"weight"`
}

// WorkoutPlanRequest is the JSON body for creating or replacing a workout plan.
type WorkoutPlanRequest struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Frequency   int               `json:"frequency"`
	Exercises   []ExerciseRequest `json:"exercises"`
}

// --- Diet plan handlers ---

func (h *PlanHandler) ListDietPlans(c *gin.Context) {
	plans, err := h.planService.ListDietPlans(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) CreateDietPlan(c *gin.Context) {
	var req DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := h.planService.CreateDietPlan(c.Request.Context(), dietPlanInputFromRequest(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *PlanHandler) UpdateDietPlan(c *gin.Context) {
	var req DietPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := h.planService.UpdateDietPlan(c.Request.Context(), c.Param("id"), dietPlanInputFromRequest(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) DeleteDietPlan(c *gin.Context) {
	if err := h.planService.DeleteDietPlan(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Workout plan handlers ---

func (h *PlanHandler) ListWorkoutPlans(c *gin.Context) {
	plans, err := h.planService.ListWorkoutPlans(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) CreateWorkoutPlan(c *gin.Context) {
	var req WorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := h.planService.CreateWorkoutPlan(c.Request.Context(), workoutPlanInputFromRequest(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *PlanHandler) UpdateWorkoutPlan(c *gin.Context) {
	var req WorkoutPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := h.planService.UpdateWorkoutPlan(c.Request.Context(), c.Param("id"), workoutPlanInputFromRequest(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) DeleteWorkoutPlan(c *gin.Context) {
	if err := h.planService.DeleteWorkoutPlan(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func dietPlanInputFromRequest(req DietPlanRequest) service.DietPlanInput {
	meals := make([]service.MealInput, len(req.Meals))
	for i, m := range req.Meals {
		meals[i] = service.MealInput{Name: m.Name, Description: m.Description}
	}
	return service.DietPlanInput{
		ID:            req.ID,
		Name:          req.Name,
		Description:   req.Description,
		DailyCalories: req.DailyCalories,
		Protein:       req.Macros.Protein,
		Carbs:         req.Macros.Carbs,
		Fats:          req.Macros.Fats,
		Meals:         meals,
	}
}

func workoutPlanInputFromRequest(req WorkoutPlanRequest) service.WorkoutPlanInput {
	exercises := make([]service.ExerciseInput, len(req.Exercises))
	for i, ex := range req.Exercises {
		exercises[i] = service.ExerciseInput{Name: ex.Name, Sets: ex.Sets, Reps: ex.Reps, Weight: ex.Weight}
	}
	return service.WorkoutPlanInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Frequency:   req.Frequency,
		Exercises:   exercises,
	}
}
