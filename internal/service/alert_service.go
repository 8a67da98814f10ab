package service

import (
	"errors"

	"gorm.io/gorm"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
	"hoa-be-svc/pkg/logger"
)

// AlertService interface defines alert service methods
type AlertService interface {
	Create(callerID uint, alert *models.Alert) error
	Get(callerID, id uint) (*models.Alert, error)
	List(callerID uint, page, perPage int) ([]models.Alert, int64, error)
	Update(callerID, id uint, input *models.Alert) (*models.Alert, error)
	Delete(callerID, id uint) error
}

// alertService implements AlertService interface
type alertService struct {
	alertRepo repository.AlertRepository
	logger    *logger.Logger
}

// NewAlertService creates a new alert service
func NewAlertService(alertRepo repository.AlertRepository, logger *logger.Logger) AlertService {
	return &alertService{
		alertRepo: alertRepo,
		logger:    logger,
	}
}

func (s *alertService) Create(callerID uint, alert *models.Alert) error {
	if alert.ResidentID != callerID {
		return NewForbiddenError("You may only report alerts for your own account.")
	}
	if err := s.alertRepo.Create(alert); err != nil {
		s.logger.WithError(err).Error("Failed to create alert")
		return err
	}
	s.logger.WithField("alert_id", alert.ID).Info("Alert created successfully")
	return nil
}

func (s *alertService) Get(callerID, id uint) (*models.Alert, error) {
	alert, err := s.alertRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("alert")
		}
		return nil, err
	}
	if alert.ResidentID != callerID {
		return nil, NewForbiddenError("You may only access your own alerts.")
	}
	return alert, nil
}

func (s *alertService) List(callerID uint, page, perPage int) ([]models.Alert, int64, error) {
	return s.alertRepo.ListByResident(callerID, (page-1)*perPage, perPage)
}

func (s *alertService) Update(callerID, id uint, input *models.Alert) (*models.Alert, error) {
	alert, err := s.Get(callerID, id)
	if err != nil {
		return nil, err
	}

	alert.ReportedAt = input.ReportedAt
	alert.Reason = input.Reason
	alert.Status = input.Status
	alert.NotifiedParty = input.NotifiedParty

	if err := s.alertRepo.Update(alert); err != nil {
		s.logger.WithError(err).WithField("alert_id", id).Error("Failed to update alert")
		return nil, err
	}
	return alert, nil
}

func (s *alertService) Delete(callerID, id uint) error {
	if _, err := s.Get(callerID, id); err != nil {
		return err
	}
	if err := s.alertRepo.Delete(id); err != nil {
		s.logger.WithError(err).WithField("alert_id", id).Error("Failed to delete alert")
		return err
	}
	return nil
}
