package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
)

func newTestUserService(t *testing.T) (UserService, AuthService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	houseRepo := repository.NewHouseRepository(db)
	authSvc := NewAuthService(userRepo, houseRepo, testJWTConfig(), testLogger())
	return NewUserService(userRepo, houseRepo, testLogger()), authSvc, db
}

// A fresh account owns nothing yet; the insert must succeed on its own and
// the resident identifier must migrate as a string column.
func TestUserInsertWithoutOwnedRecords(t *testing.T) {
	_, _, db := newTestUserService(t)

	user := &models.User{
		Username:     "standalone@example.com",
		Email:        "standalone@example.com",
		Name:         "Standalone",
		ResidentNo:   "R-1060",
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(user).Error)

	columns, err := db.Migrator().ColumnTypes(&models.User{})
	require.NoError(t, err)
	var residentType string
	for _, col := range columns {
		if col.Name() == "resident_id" {
			residentType = strings.ToLower(col.DatabaseTypeName())
		}
	}
	assert.Equal(t, "text", residentType)
}

func TestComplaintDeleteLeavesUserIntact(t *testing.T) {
	_, authSvc, db := newTestUserService(t)
	user := registerTestUser(t, authSvc, "keepme@example.com", "R-1070")

	complaint := &models.Complaint{
		ResidentID:    user.ID,
		ComplaintType: models.ComplaintTypeGeneral,
		ComplainedAt:  time.Now().UTC(),
		Status:        "open",
	}
	require.NoError(t, db.Create(complaint).Error)
	require.NoError(t, db.Delete(complaint).Error)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserUpdateSelf(t *testing.T) {
	svc, authSvc, db := newTestUserService(t)
	user := registerTestUser(t, authSvc, "update@example.com", "R-1001")
	house := createTestHouse(t, db)

	newName := "Renamed Resident"
	newEmail := "Renamed@Example.com"
	updated, err := svc.Update(user.ID, user.ID, UserUpdate{
		Name:    &newName,
		Email:   &newEmail,
		HouseID: &house.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Resident", updated.Name)
	assert.Equal(t, "renamed@example.com", updated.Email)
	assert.Equal(t, "renamed@example.com", updated.Username)
	require.NotNil(t, updated.HouseID)
	assert.Equal(t, house.ID, *updated.HouseID)
}

func TestUserUpdateOtherAccountForbidden(t *testing.T) {
	svc, authSvc, _ := newTestUserService(t)
	owner := registerTestUser(t, authSvc, "owner@example.com", "R-1010")
	other := registerTestUser(t, authSvc, "other@example.com", "R-1011")

	newName := "Hijacked"
	_, err := svc.Update(other.ID, owner.ID, UserUpdate{Name: &newName})

	var fErr *ForbiddenError
	assert.ErrorAs(t, err, &fErr)
}

func TestUserUpdateEmailConflict(t *testing.T) {
	svc, authSvc, _ := newTestUserService(t)
	registerTestUser(t, authSvc, "taken@example.com", "R-1020")
	user := registerTestUser(t, authSvc, "mine@example.com", "R-1021")

	taken := "taken@example.com"
	_, err := svc.Update(user.ID, user.ID, UserUpdate{Email: &taken})

	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "email", cErr.Field)
}

func TestUserUpdateClearHouse(t *testing.T) {
	svc, authSvc, db := newTestUserService(t)
	user := registerTestUser(t, authSvc, "clearhouse@example.com", "R-1030")
	house := createTestHouse(t, db)

	_, err := svc.Update(user.ID, user.ID, UserUpdate{HouseID: &house.ID})
	require.NoError(t, err)

	updated, err := svc.Update(user.ID, user.ID, UserUpdate{ClearHouse: true})
	require.NoError(t, err)
	assert.Nil(t, updated.HouseID)
}

func TestUserDeleteOtherAccountForbidden(t *testing.T) {
	svc, authSvc, _ := newTestUserService(t)
	owner := registerTestUser(t, authSvc, "delowner@example.com", "R-1040")
	other := registerTestUser(t, authSvc, "delother@example.com", "R-1041")

	err := svc.Delete(other.ID, owner.ID)

	var fErr *ForbiddenError
	assert.ErrorAs(t, err, &fErr)
}

func TestUserDeleteCascadesOwnedRecords(t *testing.T) {
	svc, authSvc, db := newTestUserService(t)
	user := registerTestUser(t, authSvc, "cascade@example.com", "R-1050")
	house := createTestHouse(t, db)

	now := time.Now().UTC()
	require.NoError(t, db.Create(&models.Vendor{ResidentID: user.ID, BusinessName: "Sari-sari Store"}).Error)
	require.NoError(t, db.Create(&models.VehiclePass{ResidentID: user.ID, VehiclePassID: "VP-1050", Amount: 150, ModeOfPayment: "cash", VehicleModel: "Vios", PlateNumber: "ABC 123"}).Error)
	require.NoError(t, db.Create(&models.Alert{ResidentID: user.ID, ReportedAt: now, Reason: "stray dog", Status: "open", NotifiedParty: "guard"}).Error)
	require.NoError(t, db.Create(&models.CCTVRequest{ResidentID: user.ID, RequestedAt: now, Reason: "lost package", Status: "pending", NotifiedParty: "admin"}).Error)
	require.NoError(t, db.Create(&models.MonthlyDue{HouseID: house.ID, ResidentID: user.ID, DueMonth: now, Amount: 500}).Error)
	require.NoError(t, db.Create(&models.Payment{ResidentID: user.ID, MethodOfPayment: "gcash", Amount: 500, PaidAt: now}).Error)
	require.NoError(t, db.Create(&models.Complaint{ResidentID: user.ID, ComplaintType: models.ComplaintTypeGeneral, ComplainedAt: now, Status: "open"}).Error)

	require.NoError(t, svc.Delete(user.ID, user.ID))

	for _, model := range []interface{}{
		&models.Vendor{},
		&models.VehiclePass{},
		&models.Alert{},
		&models.CCTVRequest{},
		&models.MonthlyDue{},
		&models.Payment{},
		&models.Complaint{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Where("resident_id = ?", user.ID).Count(&count).Error)
		assert.Zero(t, count)
	}
}
