package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Root serves the service descriptor.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Open DGymBook API - Simple Gym Management System",
		"version": "1.0.0",
		"endpoints": gin.H{
			"gyms":        "/api/gyms",
			"members":     "/api/:gymId/members",
			"plans":       "/api/:gymId/plans",
			"memberships": "/api/:gymId/memberships",
		},
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
