package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/register/", "", gin.H{
		"email":       "new@example.com",
		"name":        "New Resident",
		"contact_no":  "09171234567",
		"resident_id": "R-7001",
		"password":    "s3cret-pass",
		"password2":   "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "new@example.com", data["email"])
	assert.Equal(t, "R-7001", data["resident_id"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, data, "password_hash")
}

func TestRegisterPasswordMismatchEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/register/", "", gin.H{
		"email":       "mismatch@example.com",
		"name":        "Mismatch",
		"contact_no":  "09171234567",
		"resident_id": "R-7010",
		"password":    "s3cret-pass",
		"password2":   "different-pass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateEmailEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	registerAndLogin(t, router, "dup@example.com", "R-7020")

	w := doJSON(t, router, http.MethodPost, "/register/", "", gin.H{
		"email":       "dup@example.com",
		"name":        "Second",
		"contact_no":  "09171234567",
		"resident_id": "R-7021",
		"password":    "s3cret-pass",
		"password2":   "s3cret-pass",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTokenEndpointEchoesAccountFields(t *testing.T) {
	router, _ := setupTestRouter(t)
	registerAndLogin(t, router, "echo@example.com", "R-7030")

	w := doJSON(t, router, http.MethodPost, "/token/", "", gin.H{
		"email":    "echo@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Test Resident", body["name"])
	assert.Equal(t, "R-7030", body["resident_id"])
	assert.Equal(t, "echo@example.com", body["email"])
	assert.NotEmpty(t, body["access"])
	assert.NotEmpty(t, body["refresh"])
}

func TestTokenEndpointInvalidCredentials(t *testing.T) {
	router, _ := setupTestRouter(t)
	registerAndLogin(t, router, "creds@example.com", "R-7040")

	w := doJSON(t, router, http.MethodPost, "/token/", "", gin.H{
		"email":    "creds@example.com",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenRefreshEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	_, refresh := registerAndLogin(t, router, "tokref@example.com", "R-7050")

	w := doJSON(t, router, http.MethodPost, "/token/refresh/", "", gin.H{
		"refresh": refresh,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	access, _ := body["access"].(string)
	require.NotEmpty(t, access)

	// The refreshed access token must be accepted on protected routes.
	w = doJSON(t, router, http.MethodGet, "/api/users", access, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTokenRefreshRejectsAccessToken(t *testing.T) {
	router, _ := setupTestRouter(t)
	access, _ := registerAndLogin(t, router, "accref@example.com", "R-7060")

	w := doJSON(t, router, http.MethodPost, "/token/refresh/", "", gin.H{
		"refresh": access,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
