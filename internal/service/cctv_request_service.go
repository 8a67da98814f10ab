package service

import (
	"errors"

	"gorm.io/gorm"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
	"hoa-be-svc/pkg/logger"
)

// CCTVRequestService interface defines CCTV request service methods
type CCTVRequestService interface {
	Create(callerID uint, request *models.CCTVRequest) error
	Get(callerID, id uint) (*models.CCTVRequest, error)
	List(callerID uint, page, perPage int) ([]models.CCTVRequest, int64, error)
	Update(callerID, id uint, input *models.CCTVRequest) (*models.CCTVRequest, error)
	Delete(callerID, id uint) error
}

// cctvRequestService implements CCTVRequestService interface
type cctvRequestService struct {
	requestRepo repository.CCTVRequestRepository
	logger      *logger.Logger
}

// NewCCTVRequestService creates a new CCTV request service
func NewCCTVRequestService(requestRepo repository.CCTVRequestRepository, logger *logger.Logger) CCTVRequestService {
	return &cctvRequestService{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (s *cctvRequestService) Create(callerID uint, request *models.CCTVRequest) error {
	if request.ResidentID != callerID {
		return NewForbiddenError("You may only file CCTV requests for your own account.")
	}
	if err := s.requestRepo.Create(request); err != nil {
		s.logger.WithError(err).Error("Failed to create CCTV request")
		return err
	}
	s.logger.WithField("cctv_request_id", request.ID).Info("CCTV request created successfully")
	return nil
}

func (s *cctvRequestService) Get(callerID, id uint) (*models.CCTVRequest, error) {
	request, err := s.requestRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("cctv request")
		}
		return nil, err
	}
	if request.ResidentID != callerID {
		return nil, NewForbiddenError("You may only access your own CCTV requests.")
	}
	return request, nil
}

func (s *cctvRequestService) List(callerID uint, page, perPage int) ([]models.CCTVRequest, int64, error) {
	return s.requestRepo.ListByResident(callerID, (page-1)*perPage, perPage)
}

func (s *cctvRequestService) Update(callerID, id uint, input *models.CCTVRequest) (*models.CCTVRequest, error) {
	request, err := s.Get(callerID, id)
	if err != nil {
		return nil, err
	}

	request.RequestedAt = input.RequestedAt
	request.Reason = input.Reason
	request.Status = input.Status
	request.NotifiedParty = input.NotifiedParty

	if err := s.requestRepo.Update(request); err != nil {
		s.logger.WithError(err).WithField("cctv_request_id", id).Error("Failed to update CCTV request")
		return nil, err
	}
	return request, nil
}

func (s *cctvRequestService) Delete(callerID, id uint) error {
	if _, err := s.Get(callerID, id); err != nil {
		return err
	}
	if err := s.requestRepo.Delete(id); err != nil {
		s.logger.WithError(err).WithField("cctv_request_id", id).Error("Failed to delete CCTV request")
		return err
	}
	return nil
}
