package admin

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to admin sessions
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	adminGroup := r.Group("/admin")
	{
		adminGroup.POST("/login", Login)
	}
}
