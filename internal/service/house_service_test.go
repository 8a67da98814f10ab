package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
)

func newTestHouseService(t *testing.T) (HouseService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	return NewHouseService(repository.NewHouseRepository(db), testLogger()), db
}

func TestHouseCRUD(t *testing.T) {
	svc, _ := newTestHouseService(t)

	house := &models.House{HouseNumber: "7", BlockLot: "B1-L3", Street: "Mahogany Drive"}
	require.NoError(t, svc.Create(house))
	require.NotZero(t, house.ID)

	got, err := svc.Get(house.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mahogany Drive", got.Street)

	updated, err := svc.Update(house.ID, &models.House{HouseNumber: "7A", BlockLot: "B1-L3", Street: "Mahogany Drive"})
	require.NoError(t, err)
	assert.Equal(t, "7A", updated.HouseNumber)

	houses, total, err := svc.List(1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, houses, 1)

	require.NoError(t, svc.Delete(house.ID))
	_, err = svc.Get(house.ID)
	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestHouseGetUnknown(t *testing.T) {
	svc, _ := newTestHouseService(t)

	_, err := svc.Get(404)
	var nfErr *NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestHouseDeleteClearsResidentAssignment(t *testing.T) {
	svc, db := newTestHouseService(t)

	userRepo := repository.NewUserRepository(db)
	houseRepo := repository.NewHouseRepository(db)
	authSvc := NewAuthService(userRepo, houseRepo, testJWTConfig(), testLogger())

	house := createTestHouse(t, db)
	user := registerTestUser(t, authSvc, "sethouse@example.com", "R-2001")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("house_id", house.ID).Error)

	require.NoError(t, svc.Delete(house.ID))

	stored, err := userRepo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.HouseID)
}
