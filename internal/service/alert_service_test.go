package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
)

func TestAlertRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	houseRepo := repository.NewHouseRepository(db)
	authSvc := NewAuthService(userRepo, houseRepo, testJWTConfig(), testLogger())
	svc := NewAlertService(repository.NewAlertRepository(db), testLogger())

	user := registerTestUser(t, authSvc, "alert@example.com", "R-2101")

	reportedAt := time.Date(2026, time.August, 20, 18, 45, 0, 0, time.UTC)
	alert := &models.Alert{
		ResidentID:    user.ID,
		ReportedAt:    reportedAt,
		Reason:        "suspicious vehicle near the clubhouse",
		Status:        "open",
		NotifiedParty: "gate guard",
	}
	require.NoError(t, svc.Create(user.ID, alert))

	got, err := svc.Get(user.ID, alert.ID)
	require.NoError(t, err)
	assert.Equal(t, alert.ResidentID, got.ResidentID)
	assert.True(t, got.ReportedAt.Equal(reportedAt))
	assert.Equal(t, alert.Reason, got.Reason)
	assert.Equal(t, alert.Status, got.Status)
	assert.Equal(t, alert.NotifiedParty, got.NotifiedParty)
}

func TestAlertOwnershipEnforced(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	houseRepo := repository.NewHouseRepository(db)
	authSvc := NewAuthService(userRepo, houseRepo, testJWTConfig(), testLogger())
	svc := NewAlertService(repository.NewAlertRepository(db), testLogger())

	owner := registerTestUser(t, authSvc, "alertowner@example.com", "R-2110")
	intruder := registerTestUser(t, authSvc, "alertintruder@example.com", "R-2111")

	alert := &models.Alert{
		ResidentID: owner.ID,
		ReportedAt: time.Now().UTC(),
		Reason:     "loud party",
		Status:     "open",
	}
	require.NoError(t, svc.Create(owner.ID, alert))

	var fErr *ForbiddenError
	_, err := svc.Get(intruder.ID, alert.ID)
	assert.ErrorAs(t, err, &fErr)
}
