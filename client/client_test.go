package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLoginAndList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/admin/login":
			assert.Equal(t, http.MethodPost, r.Method)
			w.Write([]byte(`{"token":"session-token"}`))
		case "/registrations":
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
			w.Write([]byte(`{"success":true,"registrations":[{"registrationId":"REG-1-a","teamName":"Byte Club"}]}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := New(server.URL, "anon-key")
	ctx := context.Background()

	token, err := c.AdminLogin(ctx, "hunter2")
	require.NoError(t, err)
	require.Equal(t, "session-token", token)

	regs, err := c.ListRegistrations(ctx, token)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "Byte Club", regs[0].TeamName)
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"Coder Fest 2025 Registration"}`))
	}))
	defer server.Close()

	assert.NoError(t, New(server.URL, "").Health(context.Background()))
}

func TestDoSurfacesNonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	err := New(server.URL, "").Health(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}
