package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /api/health.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "Travel Planner API",
	})
}
