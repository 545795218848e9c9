package registrations

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"coderfest/config"
	"coderfest/database"
	"coderfest/models"
	"coderfest/services"
	"coderfest/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registrationIDPattern = regexp.MustCompile(`^REG-\d+-[a-z0-9]+$`)

func setupTestRouter(t *testing.T) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	database.REDIS = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	config.StorageDir = t.TempDir()
	config.FileSigningKey = "test-signing-key"
	config.SignedURLMaxAge = 365 * 24 * time.Hour
	config.PublicBaseURL = "http://localhost:8080"
	config.PublicApiKey = "" // open access in tests unless a test sets one
	config.JWTSecret = "test-jwt-secret"
	config.AdminPassword = "test-admin"
	config.MailHost = "" // email skipped unless stubbed

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"))
	return r, mr
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateAdminToken()
	require.NoError(t, err)
	return token
}

type submission map[string]string

func validSubmission(teamSize int) submission {
	students := make([]models.StudentDetail, teamSize)
	for i := range students {
		students[i] = models.StudentDetail{Name: "Student", Email: "student@example.com", Contact: "9000000000"}
	}
	studentsJSON, _ := json.Marshal(students)
	return submission{
		"teamName":      "Null Pointers",
		"leaderName":    "Asha Verma",
		"leaderEmail":   "asha@example.com",
		"leaderContact": "9876543210",
		"collegeName":   "SGSIT",
		"students":      string(studentsJSON),
	}
}

// postRegistration builds the multipart request; withProof controls whether
// the paymentProof file part is attached
func postRegistration(t *testing.T, r *gin.Engine, fields submission, withProof bool) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	if withProof {
		part, err := w.CreateFormFile("paymentProof", "receipt.png")
		require.NoError(t, err)
		_, err = io.WriteString(part, "png-bytes")
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func listRegistrations(t *testing.T, r *gin.Engine) []models.Registration {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/registrations", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Success       bool                  `json:"success"`
		Registrations []models.Registration `json:"registrations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.True(t, payload.Success)
	return payload.Registrations
}

func TestSubmitRegistrationHappyPath(t *testing.T) {
	r, _ := setupTestRouter(t)

	rec := postRegistration(t, r, validSubmission(3), true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Registration successful", resp.Message)
	assert.Regexp(t, registrationIDPattern, resp.RegistrationID)

	// The proof file is stored under the registration ID
	assert.FileExists(t, filepath.Join(config.StorageDir, resp.RegistrationID+".png"))

	// A subsequent listing includes the accepted record
	regs := listRegistrations(t, r)
	require.Len(t, regs, 1)
	assert.Equal(t, resp.RegistrationID, regs[0].RegistrationID)
	assert.Equal(t, "Null Pointers", regs[0].TeamName)
	assert.Equal(t, "asha@example.com", regs[0].LeaderEmail)
	assert.Equal(t, models.StatusConfirmed, regs[0].Status)
	assert.Len(t, regs[0].Students, 3)
	assert.Contains(t, regs[0].PaymentProofURL, "/files/"+resp.RegistrationID+".png?")
}

func TestSubmitRegistrationTeamSizes(t *testing.T) {
	for _, size := range []int{3, 4, 5} {
		r, _ := setupTestRouter(t)
		rec := postRegistration(t, r, validSubmission(size), true)
		require.Equal(t, http.StatusOK, rec.Code)

		regs := listRegistrations(t, r)
		require.Len(t, regs, 1)
		assert.Len(t, regs[0].Students, size)
	}
}

func TestSubmitRegistrationMissingField(t *testing.T) {
	r, _ := setupTestRouter(t)

	for _, field := range []string{"teamName", "leaderName", "leaderEmail", "leaderContact", "collegeName", "students"} {
		fields := validSubmission(3)
		delete(fields, field)
		rec := postRegistration(t, r, fields, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "missing %s", field)
		assert.Contains(t, rec.Body.String(), ErrMissingFields)
	}

	// Missing file part
	rec := postRegistration(t, r, validSubmission(3), false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, listRegistrations(t, r), "no partial records may be persisted")
}

func TestSubmitRegistrationMalformedStudents(t *testing.T) {
	r, _ := setupTestRouter(t)

	fields := validSubmission(3)
	fields["students"] = "{not json"
	rec := postRegistration(t, r, fields, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrInvalidStudents)
}

func TestSubmitRegistrationTeamSizeBounds(t *testing.T) {
	r, _ := setupTestRouter(t)

	for _, size := range []int{2, 6} {
		rec := postRegistration(t, r, validSubmission(size), true)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "team size %d", size)
		assert.Contains(t, rec.Body.String(), ErrInvalidTeamSize)
	}
}

func TestSubmitRegistrationIncompleteStudent(t *testing.T) {
	r, _ := setupTestRouter(t)

	students := []models.StudentDetail{
		{Name: "A", Email: "a@example.com", Contact: "1"},
		{Name: "B", Email: "", Contact: "2"},
		{Name: "C", Email: "c@example.com", Contact: "3"},
	}
	studentsJSON, _ := json.Marshal(students)
	fields := validSubmission(3)
	fields["students"] = string(studentsJSON)

	rec := postRegistration(t, r, fields, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrIncompleteStudent)
}

func TestSubmitRegistrationImplausibleLeaderEmail(t *testing.T) {
	r, _ := setupTestRouter(t)

	fields := validSubmission(3)
	fields["leaderEmail"] = "not-an-email"
	rec := postRegistration(t, r, fields, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrInvalidLeaderEmail)
}

func TestSubmitRegistrationEmailFailureIsInvisible(t *testing.T) {
	r, _ := setupTestRouter(t)

	original := sendConfirmation
	defer func() { sendConfirmation = original }()
	sendConfirmation = func(reg models.Registration) error {
		return errors.New("smtp relay down")
	}

	rec := postRegistration(t, r, validSubmission(4), true)
	require.Equal(t, http.StatusOK, rec.Code, "email failure must not fail the registration")

	var resp RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	regs := listRegistrations(t, r)
	require.Len(t, regs, 1)
	assert.Equal(t, resp.RegistrationID, regs[0].RegistrationID)
	assert.Equal(t, models.StatusConfirmed, regs[0].Status)
}

func TestSubmitRegistrationPersistenceFailureLeavesOrphanedProof(t *testing.T) {
	r, mr := setupTestRouter(t)
	mr.Close()

	rec := postRegistration(t, r, validSubmission(3), true)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrStoreFailed, body["error"])
	assert.NotEmpty(t, body["details"])

	// The uploaded proof is not rolled back; the orphaned file stays behind
	entries, err := os.ReadDir(config.StorageDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSubmitRegistrationFailsWithoutSigningKey(t *testing.T) {
	r, _ := setupTestRouter(t)
	config.FileSigningKey = ""

	rec := postRegistration(t, r, validSubmission(3), true)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrUploadFailed, body["error"])
	assert.NotEmpty(t, body["details"])

	// No record without a retrievable proof reference
	ctx := context.Background()
	keys, err := database.REDIS.Keys(ctx, "registration:*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestGetAllRegistrationsRequiresAdminToken(t *testing.T) {
	r, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/registrations", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/registrations", nil)
	req.Header.Set("Authorization", "Bearer forged-token")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterRequiresAPIKeyWhenConfigured(t *testing.T) {
	r, _ := setupTestRouter(t)
	config.PublicApiKey = "anon-key"

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for name, value := range validSubmission(3) {
		require.NoError(t, w.WriteField(name, value))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func seedRegistrations(t *testing.T, regs ...models.Registration) {
	t.Helper()
	for _, reg := range regs {
		require.NoError(t, services.SaveRegistration(context.Background(), reg))
	}
}
