package v1

import (
	"coderfest/handlers/admin"
	"coderfest/handlers/registrations"
	"coderfest/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterHealthRoutes(v1)
	RegisterContactRoutes(v1)
	admin.RegisterRoutes(v1)
	registrations.RegisterRoutes(v1)

	// Register metrics and API docs endpoints
	RegisterMetricsRoutes(v1)
	RegisterSwaggerRoutes(v1)
}
