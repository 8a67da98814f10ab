package service

import (
	"errors"

	"gorm.io/gorm"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
	"hoa-be-svc/pkg/logger"
)

// ComplaintService interface defines complaint service methods
type ComplaintService interface {
	Create(callerID uint, complaint *models.Complaint) error
	Get(callerID, id uint) (*models.Complaint, error)
	List(callerID uint, page, perPage int) ([]models.Complaint, int64, error)
	Update(callerID, id uint, input *models.Complaint) (*models.Complaint, error)
	Delete(callerID, id uint) error
}

// complaintService implements ComplaintService interface
type complaintService struct {
	complaintRepo repository.ComplaintRepository
	logger        *logger.Logger
}

// NewComplaintService creates a new complaint service
func NewComplaintService(complaintRepo repository.ComplaintRepository, logger *logger.Logger) ComplaintService {
	return &complaintService{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (s *complaintService) Create(callerID uint, complaint *models.Complaint) error {
	if complaint.ResidentID != callerID {
		return NewForbiddenError("You may only file complaints for your own account.")
	}
	if err := validateComplaintType(complaint.ComplaintType); err != nil {
		return err
	}
	if err := s.complaintRepo.Create(complaint); err != nil {
		s.logger.WithError(err).Error("Failed to create complaint")
		return err
	}
	s.logger.WithFields(map[string]interface{}{
		"complaint_id":   complaint.ID,
		"complaint_type": complaint.ComplaintType,
	}).Info("Complaint filed successfully")
	return nil
}

func (s *complaintService) Get(callerID, id uint) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("complaint")
		}
		return nil, err
	}
	if complaint.ResidentID != callerID {
		return nil, NewForbiddenError("You may only access your own complaints.")
	}
	return complaint, nil
}

func (s *complaintService) List(callerID uint, page, perPage int) ([]models.Complaint, int64, error) {
	return s.complaintRepo.ListByResident(callerID, (page-1)*perPage, perPage)
}

func (s *complaintService) Update(callerID, id uint, input *models.Complaint) (*models.Complaint, error) {
	complaint, err := s.Get(callerID, id)
	if err != nil {
		return nil, err
	}

	if err := validateComplaintType(input.ComplaintType); err != nil {
		return nil, err
	}

	complaint.ComplaintType = input.ComplaintType
	complaint.ComplainedAt = input.ComplainedAt
	complaint.ServiceType = input.ServiceType
	complaint.TriggerType = input.TriggerType
	complaint.Status = input.Status
	complaint.Remarks = input.Remarks

	if err := s.complaintRepo.Update(complaint); err != nil {
		s.logger.WithError(err).WithField("complaint_id", id).Error("Failed to update complaint")
		return nil, err
	}
	return complaint, nil
}

func (s *complaintService) Delete(callerID, id uint) error {
	if _, err := s.Get(callerID, id); err != nil {
		return err
	}
	if err := s.complaintRepo.Delete(id); err != nil {
		s.logger.WithError(err).WithField("complaint_id", id).Error("Failed to delete complaint")
		return err
	}
	return nil
}

func validateComplaintType(complaintType string) error {
	switch complaintType {
	case models.ComplaintTypeGeneral, models.ComplaintTypeService:
		return nil
	default:
		return NewValidationError("complaint_type", "Complaint type must be one of: general, service.")
	}
}
