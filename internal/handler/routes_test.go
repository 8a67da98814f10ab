package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"hoa-be-svc/internal/config"
	"hoa-be-svc/internal/middleware"
	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
	"hoa-be-svc/internal/service"
	"hoa-be-svc/pkg/logger"
)

// setupTestRouter wires the full stack against an in-memory database
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.House{},
		&models.User{},
		&models.Vendor{},
		&models.VehiclePass{},
		&models.Alert{},
		&models.CCTVRequest{},
		&models.MonthlyDue{},
		&models.Payment{},
		&models.Complaint{},
	))

	log := logger.NewLogger("error", "text")
	jwtCfg := config.JWTConfig{
		Secret:     "test-secret",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}

	userRepo := repository.NewUserRepository(db)
	houseRepo := repository.NewHouseRepository(db)

	authService := service.NewAuthService(userRepo, houseRepo, jwtCfg, log)
	userService := service.NewUserService(userRepo, houseRepo, log)
	houseService := service.NewHouseService(houseRepo, log)
	vendorService := service.NewVendorService(repository.NewVendorRepository(db), log)
	vehiclePassService := service.NewVehiclePassService(repository.NewVehiclePassRepository(db), log)
	alertService := service.NewAlertService(repository.NewAlertRepository(db), log)
	cctvRequestService := service.NewCCTVRequestService(repository.NewCCTVRequestRepository(db), log)
	monthlyDueService := service.NewMonthlyDueService(repository.NewMonthlyDueRepository(db), houseRepo, log)
	paymentService := service.NewPaymentService(repository.NewPaymentRepository(db), log)
	complaintService := service.NewComplaintService(repository.NewComplaintRepository(db), log)
	dashboardService := service.NewDashboardService(repository.NewDashboardRepository(db), log)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	SetupRoutes(router, authService, userService, houseService, vendorService, vehiclePassService, alertService, cctvRequestService, monthlyDueService, paymentService, complaintService, dashboardService, log)

	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// registerAndLogin creates an account through the API and returns its token pair
func registerAndLogin(t *testing.T, router *gin.Engine, email, residentID string) (string, string) {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/register/", "", gin.H{
		"email":       email,
		"name":        "Test Resident",
		"contact_no":  "09171234567",
		"resident_id": residentID,
		"password":    "s3cret-pass",
		"password2":   "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/token/", "", gin.H{
		"email":    email,
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	access, _ := body["access"].(string)
	refresh, _ := body["refresh"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	return access, refresh
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := setupTestRouter(t)

	paths := []string{
		"/api/users",
		"/api/houses",
		"/api/vendors",
		"/api/vehicle-passes",
		"/api/alerts",
		"/api/cctv-requests",
		"/api/monthly-dues",
		"/api/payments",
		"/api/complaints",
		"/api/dashboard/summary",
	}
	for _, path := range paths {
		w := doJSON(t, router, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestProtectedRouteRejectsRefreshToken(t *testing.T) {
	router, _ := setupTestRouter(t)
	_, refresh := registerAndLogin(t, router, "refuse@example.com", "R-9001")

	w := doJSON(t, router, http.MethodGet, "/api/users", refresh, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteRejectsGarbageToken(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/users", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnknownRouteReturns404(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/nothing-here", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
