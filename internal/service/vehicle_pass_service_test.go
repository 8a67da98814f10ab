package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
)

func newTestVehiclePassService(t *testing.T) (VehiclePassService, AuthService) {
	t.Helper()

	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	houseRepo := repository.NewHouseRepository(db)
	authSvc := NewAuthService(userRepo, houseRepo, testJWTConfig(), testLogger())
	return NewVehiclePassService(repository.NewVehiclePassRepository(db), testLogger()), authSvc
}

func testVehiclePass(residentID uint, passID string) *models.VehiclePass {
	return &models.VehiclePass{
		ResidentID:    residentID,
		VehiclePassID: passID,
		Amount:        150,
		ModeOfPayment: "cash",
		VehicleModel:  "Toyota Vios",
		PlateNumber:   "NBC 1234",
	}
}

func TestVehiclePassCreateAndGet(t *testing.T) {
	svc, authSvc := newTestVehiclePassService(t)
	user := registerTestUser(t, authSvc, "pass@example.com", "R-3001")

	pass := testVehiclePass(user.ID, "VP-3001")
	require.NoError(t, svc.Create(user.ID, pass))
	require.NotZero(t, pass.ID)

	got, err := svc.Get(user.ID, pass.ID)
	require.NoError(t, err)
	assert.Equal(t, "VP-3001", got.VehiclePassID)
}

func TestVehiclePassDuplicatePassID(t *testing.T) {
	svc, authSvc := newTestVehiclePassService(t)
	user := registerTestUser(t, authSvc, "duppass@example.com", "R-3010")

	require.NoError(t, svc.Create(user.ID, testVehiclePass(user.ID, "VP-3010")))

	err := svc.Create(user.ID, testVehiclePass(user.ID, "VP-3010"))
	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "vehicle_pass_id", cErr.Field)
}

func TestVehiclePassUpdateKeepsOwnPassID(t *testing.T) {
	svc, authSvc := newTestVehiclePassService(t)
	user := registerTestUser(t, authSvc, "samepass@example.com", "R-3020")

	pass := testVehiclePass(user.ID, "VP-3020")
	require.NoError(t, svc.Create(user.ID, pass))

	input := testVehiclePass(user.ID, "VP-3020")
	input.PlateNumber = "XYZ 9876"
	updated, err := svc.Update(user.ID, pass.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "XYZ 9876", updated.PlateNumber)
}

func TestVehiclePassUpdateToTakenPassID(t *testing.T) {
	svc, authSvc := newTestVehiclePassService(t)
	user := registerTestUser(t, authSvc, "takenpass@example.com", "R-3030")

	require.NoError(t, svc.Create(user.ID, testVehiclePass(user.ID, "VP-3030")))
	second := testVehiclePass(user.ID, "VP-3031")
	require.NoError(t, svc.Create(user.ID, second))

	_, err := svc.Update(user.ID, second.ID, testVehiclePass(user.ID, "VP-3030"))
	var cErr *ConflictError
	assert.ErrorAs(t, err, &cErr)
}

func TestVehiclePassOwnershipEnforced(t *testing.T) {
	svc, authSvc := newTestVehiclePassService(t)
	owner := registerTestUser(t, authSvc, "passowner@example.com", "R-3040")
	intruder := registerTestUser(t, authSvc, "passintruder@example.com", "R-3041")

	pass := testVehiclePass(owner.ID, "VP-3040")
	require.NoError(t, svc.Create(owner.ID, pass))

	var fErr *ForbiddenError

	err := svc.Create(intruder.ID, testVehiclePass(owner.ID, "VP-3042"))
	assert.ErrorAs(t, err, &fErr)

	_, err = svc.Get(intruder.ID, pass.ID)
	assert.ErrorAs(t, err, &fErr)

	_, err = svc.Update(intruder.ID, pass.ID, testVehiclePass(owner.ID, "VP-3043"))
	assert.ErrorAs(t, err, &fErr)

	err = svc.Delete(intruder.ID, pass.ID)
	assert.ErrorAs(t, err, &fErr)
}

func TestVehiclePassListScopedToCaller(t *testing.T) {
	svc, authSvc := newTestVehiclePassService(t)
	first := registerTestUser(t, authSvc, "listone@example.com", "R-3050")
	second := registerTestUser(t, authSvc, "listtwo@example.com", "R-3051")

	require.NoError(t, svc.Create(first.ID, testVehiclePass(first.ID, "VP-3050")))
	require.NoError(t, svc.Create(first.ID, testVehiclePass(first.ID, "VP-3051")))
	require.NoError(t, svc.Create(second.ID, testVehiclePass(second.ID, "VP-3052")))

	passes, total, err := svc.List(first.ID, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, p := range passes {
		assert.Equal(t, first.ID, p.ResidentID)
	}
}
