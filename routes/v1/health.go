package v1

import (
	"net/http"

	"coderfest/config"

	"github.com/gin-gonic/gin"
)

// healthCheck reports service liveness
// @Summary Health check
// @Description Returns the service status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": config.ServiceName,
	})
}

// RegisterHealthRoutes registers the health check endpoint
func RegisterHealthRoutes(r *gin.RouterGroup) {
	r.GET("/health", healthCheck)
}
