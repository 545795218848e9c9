package registrations

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/mail"
	"path/filepath"
	"time"

	"coderfest/metrics"
	"coderfest/models"
	"coderfest/realtime"
	"coderfest/services"
	"coderfest/utils"
	"coderfest/utils/response"

	"github.com/gin-gonic/gin"
)

const DatabaseTimeout = 5 * time.Second

// sendConfirmation delivers the best-effort confirmation email. It is a
// variable so tests can force deterministic failure; the submission handler
// must treat any outcome here as invisible to the response contract.
var sendConfirmation = func(reg models.Registration) error {
	svc := services.NewEmailService()
	if !svc.Configured() {
		log.Printf("Mail relay not configured - skipping confirmation for %s (team %s)", reg.LeaderEmail, reg.TeamName)
		return nil
	}
	return svc.SendRegistrationConfirmation(reg)
}

// SubmitRegistration accepts a team registration
// @Summary Submit a team registration
// @Description Validates the multipart submission, stores the payment proof, persists the registration record and sends a best-effort confirmation email
// @Tags Registrations
// @Accept multipart/form-data
// @Produce json
// @Param teamName formData string true "Team name"
// @Param leaderName formData string true "Team leader name"
// @Param leaderEmail formData string true "Team leader email"
// @Param leaderContact formData string true "Team leader contact number"
// @Param collegeName formData string true "College name"
// @Param students formData string true "JSON array of student details"
// @Param paymentProof formData file true "Payment proof image"
// @Success 200 {object} RegisterResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /register [post]
// @Security Bearer
func SubmitRegistration(c *gin.Context) {
	teamName := c.PostForm("teamName")
	leaderName := c.PostForm("leaderName")
	leaderEmail := c.PostForm("leaderEmail")
	leaderContact := c.PostForm("leaderContact")
	collegeName := c.PostForm("collegeName")
	studentsJSON := c.PostForm("students")
	proofFile, proofErr := c.FormFile("paymentProof")

	if teamName == "" || leaderName == "" || leaderEmail == "" || leaderContact == "" ||
		collegeName == "" || studentsJSON == "" || proofErr != nil {
		log.Println("Missing required fields in registration")
		metrics.RegistrationsRejected.WithLabelValues("validation").Inc()
		response.Error(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	var students []models.StudentDetail
	if err := json.Unmarshal([]byte(studentsJSON), &students); err != nil {
		log.Printf("Error parsing students JSON: %v", err)
		metrics.RegistrationsRejected.WithLabelValues("validation").Inc()
		response.Error(c, http.StatusBadRequest, ErrInvalidStudents)
		return
	}
	if len(students) < models.MinTeamSize || len(students) > models.MaxTeamSize {
		metrics.RegistrationsRejected.WithLabelValues("validation").Inc()
		response.Error(c, http.StatusBadRequest, ErrInvalidTeamSize)
		return
	}
	for _, student := range students {
		if !student.Complete() {
			metrics.RegistrationsRejected.WithLabelValues("validation").Inc()
			response.Error(c, http.StatusBadRequest, ErrIncompleteStudent)
			return
		}
	}
	if _, err := mail.ParseAddress(leaderEmail); err != nil {
		metrics.RegistrationsRejected.WithLabelValues("validation").Inc()
		response.Error(c, http.StatusBadRequest, ErrInvalidLeaderEmail)
		return
	}

	registrationID := utils.GenerateRegistrationID()
	objectName := registrationID + filepath.Ext(proofFile.Filename)

	store := services.NewProofStore()
	src, err := proofFile.Open()
	if err != nil {
		log.Printf("Error opening payment proof: %v", err)
		metrics.RegistrationsRejected.WithLabelValues("upload").Inc()
		response.ErrorWithDetails(c, http.StatusInternalServerError, ErrUploadFailed, err.Error())
		return
	}
	defer src.Close()

	uploadStart := time.Now()
	if _, err := store.Save(objectName, src); err != nil {
		log.Printf("Error uploading payment proof: %v", err)
		metrics.RegistrationsRejected.WithLabelValues("upload").Inc()
		response.ErrorWithDetails(c, http.StatusInternalServerError, ErrUploadFailed, err.Error())
		return
	}
	metrics.RecordProofUpload(uploadStart)

	// A registration without a retrievable proof reference is useless, so a
	// signing failure fails the whole request rather than degrading to an
	// empty URL.
	proofURL, err := store.SignedURL(objectName)
	if err != nil {
		log.Printf("Error signing payment proof URL: %v", err)
		metrics.RegistrationsRejected.WithLabelValues("upload").Inc()
		response.ErrorWithDetails(c, http.StatusInternalServerError, ErrUploadFailed, err.Error())
		return
	}

	registration := models.Registration{
		RegistrationID:  registrationID,
		TeamName:        teamName,
		LeaderName:      leaderName,
		LeaderEmail:     leaderEmail,
		LeaderContact:   leaderContact,
		CollegeName:     collegeName,
		Students:        students,
		PaymentProofURL: proofURL,
		RegisteredAt:    time.Now().UTC().Format(time.RFC3339),
		Status:          models.StatusConfirmed,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DatabaseTimeout)
	defer cancel()

	// The stored proof is intentionally not removed when persistence fails;
	// an orphaned file is preferable to a record pointing at nothing.
	if err := services.SaveRegistration(ctx, registration); err != nil {
		log.Printf("Error storing registration: %v", err)
		metrics.RegistrationsRejected.WithLabelValues("persistence").Inc()
		response.ErrorWithDetails(c, http.StatusInternalServerError, ErrStoreFailed, err.Error())
		return
	}
	log.Printf("Registration stored: %s", registrationID)
	metrics.RegistrationsAccepted.Inc()

	// Best-effort side effects: neither the email nor the dashboard feed may
	// alter the outcome of an already persisted registration.
	if err := sendConfirmation(registration); err != nil {
		log.Printf("Error sending confirmation email: %v", err)
		metrics.EmailFailures.Inc()
	} else {
		log.Printf("Confirmation email handled for: %s", leaderEmail)
	}
	realtime.BroadcastRegistration(registration)

	c.JSON(http.StatusOK, RegisterResponse{
		Success:        true,
		Message:        "Registration successful",
		RegistrationID: registrationID,
	})
}

// GetAllRegistrations lists every stored registration
// @Summary List all registrations
// @Description Returns the full unpaginated set of registrations, admin only
// @Tags Registrations
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /registrations [get]
// @Security Bearer
func GetAllRegistrations(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DatabaseTimeout)
	defer cancel()

	registrations, err := services.ListRegistrations(ctx)
	if err != nil {
		log.Printf("Error fetching registrations: %v", err)
		response.ErrorWithDetails(c, http.StatusInternalServerError, ErrFetchFailed, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"registrations": registrations,
	})
}
