package v1

import (
	"net/http"

	"coderfest/middleware"
	"coderfest/services"
	"coderfest/utils/response"

	"github.com/gin-gonic/gin"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// submitContactMessage relays a contact-form message to the organizers
// @Summary Submit a contact message
// @Description Sends the visitor's message to the event coordinator by email
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /contact [post]
// @Security Bearer
func submitContactMessage(c *gin.Context) {
	var request ContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	emailService := services.NewEmailService()
	if !emailService.Configured() {
		response.Error(c, http.StatusServiceUnavailable, "Contact form is not available")
		return
	}
	if err := emailService.SendContactMessage(request.Name, request.Email, request.Subject, request.Message); err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to send contact message", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Message sent successfully",
	})
}

// RegisterContactRoutes registers the contact form endpoint
func RegisterContactRoutes(r *gin.RouterGroup) {
	r.POST("/contact", middleware.APIKeyAuthMiddleware(), submitContactMessage)
}
