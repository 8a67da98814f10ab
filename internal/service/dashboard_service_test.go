package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
)

func TestCommunitySummary(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	houseRepo := repository.NewHouseRepository(db)
	authSvc := NewAuthService(userRepo, houseRepo, testJWTConfig(), testLogger())
	svc := NewDashboardService(repository.NewDashboardRepository(db), testLogger())

	user := registerTestUser(t, authSvc, "summary@example.com", "R-6001")
	house := createTestHouse(t, db)

	now := time.Now().UTC()
	paidAt := now
	require.NoError(t, db.Create(&models.Vendor{ResidentID: user.ID, BusinessName: "Water Refill"}).Error)
	require.NoError(t, db.Create(&models.VehiclePass{ResidentID: user.ID, VehiclePassID: "VP-6001"}).Error)
	require.NoError(t, db.Create(&models.Alert{ResidentID: user.ID, ReportedAt: now, Status: "open"}).Error)
	require.NoError(t, db.Create(&models.Complaint{ResidentID: user.ID, ComplaintType: models.ComplaintTypeGeneral, ComplainedAt: now, Status: "open"}).Error)
	require.NoError(t, db.Create(&models.MonthlyDue{HouseID: house.ID, ResidentID: user.ID, DueMonth: now, Amount: 500}).Error)
	require.NoError(t, db.Create(&models.MonthlyDue{HouseID: house.ID, ResidentID: user.ID, DueMonth: now.AddDate(0, 1, 0), Amount: 750}).Error)
	require.NoError(t, db.Create(&models.MonthlyDue{HouseID: house.ID, ResidentID: user.ID, DueMonth: now.AddDate(0, 2, 0), Amount: 300, IsPaid: true, PaidAt: &paidAt}).Error)

	summary, err := svc.GetCommunitySummary()
	require.NoError(t, err)

	assert.EqualValues(t, 1, summary.TotalResidents)
	assert.EqualValues(t, 1, summary.TotalHouses)
	assert.EqualValues(t, 1, summary.TotalVendors)
	assert.EqualValues(t, 1, summary.TotalVehiclePasses)
	assert.EqualValues(t, 1, summary.TotalAlerts)
	assert.EqualValues(t, 1, summary.TotalComplaints)
	assert.EqualValues(t, 2, summary.UnpaidDues)
	assert.InDelta(t, 1250, summary.OutstandingAmount, 0.001)
}
