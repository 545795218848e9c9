package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coderfest/config"
	"coderfest/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAdminRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AdminPassword = "hunter2"
	config.JWTSecret = "test-jwt-secret"

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postLogin(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestLoginIssuesValidToken(t *testing.T) {
	r := setupAdminRouter(t)

	rec := postLogin(t, r, `{"password":"hunter2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := utils.ParseAdminToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r := setupAdminRouter(t)

	rec := postLogin(t, r, `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrInvalidCredentials)
}

func TestLoginRejectsMissingPassword(t *testing.T) {
	r := setupAdminRouter(t)

	rec := postLogin(t, r, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginUnavailableWithoutConfiguredPassword(t *testing.T) {
	r := setupAdminRouter(t)
	config.AdminPassword = ""

	rec := postLogin(t, r, `{"password":"anything"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrAdminNotConfigured)
}
