package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"coderfest/config"
	"coderfest/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func get(r *gin.Engine, authorization, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected"+query, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAPIKeyAuth(t *testing.T) {
	config.PublicApiKey = "anon-key"
	r := protectedRouter(APIKeyAuthMiddleware())

	assert.Equal(t, http.StatusOK, get(r, "Bearer anon-key", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer wrong-key", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "anon-key", "").Code, "scheme must be Bearer")
}

func TestAPIKeyAuthOpenWhenUnconfigured(t *testing.T) {
	config.PublicApiKey = ""
	r := protectedRouter(APIKeyAuthMiddleware())

	assert.Equal(t, http.StatusOK, get(r, "", "").Code)
}

func TestAdminAuth(t *testing.T) {
	config.JWTSecret = "test-jwt-secret"
	token, err := utils.GenerateAdminToken()
	require.NoError(t, err)

	r := protectedRouter(AdminAuthMiddleware())

	assert.Equal(t, http.StatusOK, get(r, "Bearer "+token, "").Code)
	assert.Equal(t, http.StatusOK, get(r, "", "?token="+token).Code, "query token accepted for WebSocket clients")
	assert.Equal(t, http.StatusUnauthorized, get(r, "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer forged", "").Code)
}
