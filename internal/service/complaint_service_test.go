package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
)

func newTestComplaintService(t *testing.T) (ComplaintService, AuthService) {
	t.Helper()

	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	houseRepo := repository.NewHouseRepository(db)
	authSvc := NewAuthService(userRepo, houseRepo, testJWTConfig(), testLogger())
	return NewComplaintService(repository.NewComplaintRepository(db), testLogger()), authSvc
}

func TestComplaintCreateValidTypes(t *testing.T) {
	svc, authSvc := newTestComplaintService(t)
	user := registerTestUser(t, authSvc, "complaint@example.com", "R-5001")

	for _, complaintType := range []string{models.ComplaintTypeGeneral, models.ComplaintTypeService} {
		err := svc.Create(user.ID, &models.Complaint{
			ResidentID:    user.ID,
			ComplaintType: complaintType,
			ComplainedAt:  time.Now().UTC(),
			Status:        "open",
		})
		assert.NoError(t, err)
	}
}

func TestComplaintCreateInvalidType(t *testing.T) {
	svc, authSvc := newTestComplaintService(t)
	user := registerTestUser(t, authSvc, "badtype@example.com", "R-5010")

	err := svc.Create(user.ID, &models.Complaint{
		ResidentID:    user.ID,
		ComplaintType: "urgent",
		ComplainedAt:  time.Now().UTC(),
		Status:        "open",
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "complaint_type", vErr.Field)
}

func TestComplaintUpdateInvalidType(t *testing.T) {
	svc, authSvc := newTestComplaintService(t)
	user := registerTestUser(t, authSvc, "updtype@example.com", "R-5020")

	complaint := &models.Complaint{
		ResidentID:    user.ID,
		ComplaintType: models.ComplaintTypeService,
		ComplainedAt:  time.Now().UTC(),
		ServiceType:   "plumbing",
		Status:        "open",
	}
	require.NoError(t, svc.Create(user.ID, complaint))

	_, err := svc.Update(user.ID, complaint.ID, &models.Complaint{
		ResidentID:    user.ID,
		ComplaintType: "escalated",
		ComplainedAt:  complaint.ComplainedAt,
		Status:        "open",
	})

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestComplaintOwnershipEnforced(t *testing.T) {
	svc, authSvc := newTestComplaintService(t)
	owner := registerTestUser(t, authSvc, "cowner@example.com", "R-5030")
	intruder := registerTestUser(t, authSvc, "cintruder@example.com", "R-5031")

	complaint := &models.Complaint{
		ResidentID:    owner.ID,
		ComplaintType: models.ComplaintTypeGeneral,
		ComplainedAt:  time.Now().UTC(),
		Status:        "open",
	}
	require.NoError(t, svc.Create(owner.ID, complaint))

	var fErr *ForbiddenError
	_, err := svc.Get(intruder.ID, complaint.ID)
	assert.ErrorAs(t, err, &fErr)

	err = svc.Create(intruder.ID, &models.Complaint{
		ResidentID:    owner.ID,
		ComplaintType: models.ComplaintTypeGeneral,
		ComplainedAt:  time.Now().UTC(),
		Status:        "open",
	})
	assert.ErrorAs(t, err, &fErr)
}
