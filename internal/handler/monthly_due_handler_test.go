package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createHouseViaAPI(t *testing.T, router *gin.Engine, access string) float64 {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/houses", access, gin.H{
		"house_number": "12",
		"block_lot":    "B4-L7",
		"street":       "Acacia Street",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)["data"].(map[string]interface{})["id"].(float64)
}

func TestMonthlyDueCreateNormalizesMonth(t *testing.T) {
	router, _ := setupTestRouter(t)
	access, _ := registerAndLogin(t, router, "duemonth@example.com", "R-8201")
	userID := callerUserID(t, router, access, "R-8201")
	houseID := createHouseViaAPI(t, router, access)

	w := doJSON(t, router, http.MethodPost, "/api/monthly-dues", access, gin.H{
		"house":     houseID,
		"resident":  userID,
		"due_month": "2026-03-17",
		"amount":    500.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "2026-03-01", data["due_month"])
	assert.Equal(t, false, data["is_paid"])
	assert.Nil(t, data["paid_at"])
}

func TestMonthlyDueMalformedDate(t *testing.T) {
	router, _ := setupTestRouter(t)
	access, _ := registerAndLogin(t, router, "baddate@example.com", "R-8210")
	userID := callerUserID(t, router, access, "R-8210")
	houseID := createHouseViaAPI(t, router, access)

	w := doJSON(t, router, http.MethodPost, "/api/monthly-dues", access, gin.H{
		"house":     houseID,
		"resident":  userID,
		"due_month": "March 2026",
		"amount":    500.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMonthlyDueUnknownHouseEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)
	access, _ := registerAndLogin(t, router, "duenohouse@example.com", "R-8220")
	userID := callerUserID(t, router, access, "R-8220")

	w := doJSON(t, router, http.MethodPost, "/api/monthly-dues", access, gin.H{
		"house":     999,
		"resident":  userID,
		"due_month": "2026-04-01",
		"amount":    500.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
