package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callerUserID(t *testing.T, router *gin.Engine, access, residentID string) float64 {
	t.Helper()

	w := doJSON(t, router, http.MethodGet, "/api/users", access, nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decodeBody(t, w)["data"].([]interface{})
	for _, u := range users {
		user := u.(map[string]interface{})
		if user["resident_id"] == residentID {
			return user["id"].(float64)
		}
	}
	t.Fatalf("no user with resident_id %s", residentID)
	return 0
}

func TestComplaintCreateEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	access, _ := registerAndLogin(t, router, "cgen@example.com", "R-8101")
	userID := callerUserID(t, router, access, "R-8101")

	w := doJSON(t, router, http.MethodPost, "/api/complaints", access, gin.H{
		"resident":       userID,
		"complaint_type": "service",
		"complained_at":  time.Now().UTC().Format(time.RFC3339),
		"service_type":   "plumbing",
		"status":         "open",
		"remarks":        "leaking pipe by the gate",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "service", data["complaint_type"])
	assert.Equal(t, "plumbing", data["service_type"])
}

func TestComplaintInvalidTypeEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	access, _ := registerAndLogin(t, router, "cbad@example.com", "R-8110")
	userID := callerUserID(t, router, access, "R-8110")

	w := doJSON(t, router, http.MethodPost, "/api/complaints", access, gin.H{
		"resident":       userID,
		"complaint_type": "urgent",
		"complained_at":  time.Now().UTC().Format(time.RFC3339),
		"status":         "open",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestComplaintForOtherResidentForbidden(t *testing.T) {
	router, _ := setupTestRouter(t)
	ownerAccess, _ := registerAndLogin(t, router, "cown@example.com", "R-8120")
	intruderAccess, _ := registerAndLogin(t, router, "cintr@example.com", "R-8121")
	ownerID := callerUserID(t, router, ownerAccess, "R-8120")

	w := doJSON(t, router, http.MethodPost, "/api/complaints", intruderAccess, gin.H{
		"resident":       ownerID,
		"complaint_type": "general",
		"complained_at":  time.Now().UTC().Format(time.RFC3339),
		"status":         "open",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
