package registrations

import (
	"coderfest/config"
	"coderfest/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to registrations
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	submissionLimiter := middleware.NewRateLimiter(
		config.DefaultSubmissionRateLimit.Rate,
		config.DefaultSubmissionRateLimit.Burst,
	)

	r.POST("/register",
		middleware.APIKeyAuthMiddleware(),
		middleware.RateLimiterMiddleware(submissionLimiter),
		SubmitRegistration,
	)

	// Admin dashboard read path
	admin := r.Group("/registrations")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.GET("", GetAllRegistrations)
		admin.GET("/export", ExportRegistrations)
		admin.GET("/live", RegistrationsFeed)
	}
}
