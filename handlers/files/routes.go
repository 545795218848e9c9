package files

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the signed file download route at the engine root so
// signed URLs stay valid independently of the API version prefix
func RegisterRoutes(r *gin.Engine) {
	r.GET("/files/:name", ServeFile)
}
