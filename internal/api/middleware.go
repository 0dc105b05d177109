package api

import (
	"coachdesk/internal/domain"
	"coachdesk/internal/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request handled")
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithValidationErrors rejects the submission with every violated
// constraint attached to its field. The store is untouched.
func abortWithValidationErrors(c *gin.Context, fields domain.ValidationErrors) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":  "validation failed",
		"fields": fields,
	})
}

// respondServiceError maps service errors onto the API error taxonomy:
// validation -> 400 with field messages, unknown id -> 404 empty state,
// anything else -> 500 with the detail kept in the server log.
func respondServiceError(c *gin.Context, err error) {
	var fields domain.ValidationErrors
	if errors.As(err, &fields) {
		abortWithValidationErrors(c, fields)
		return
	}

	switch {
	case errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrDietPlanNotFound),
		errors.Is(err, service.ErrWorkoutPlanNotFound),
		errors.Is(err, service.ErrCheckInNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithField("path", c.Request.URL.Path).Errorf("request failed: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Internal server error.")
	}
}
