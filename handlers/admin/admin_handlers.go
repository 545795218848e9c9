package admin

import (
	"crypto/subtle"
	"net/http"

	"coderfest/config"
	"coderfest/utils"
	"coderfest/utils/response"

	"github.com/gin-gonic/gin"
)

const (
	ErrInvalidCredentials  = "Invalid credentials"
	ErrAdminNotConfigured  = "Admin access is not configured"
	ErrTokenGenerateFailed = "Failed to generate token"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login exchanges the admin password for a dashboard session token
// @Summary Admin login
// @Description Issues a session token for the admin dashboard endpoints
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Admin credentials"
// @Success 200 {object} LoginResponse
// @Failure 400,401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if config.AdminPassword == "" {
		response.Error(c, http.StatusServiceUnavailable, ErrAdminNotConfigured)
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(config.AdminPassword)) != 1 {
		response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}
