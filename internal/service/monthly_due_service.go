package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
	"hoa-be-svc/pkg/logger"
)

// MonthlyDueService interface defines monthly due service methods
type MonthlyDueService interface {
	Create(callerID uint, due *models.MonthlyDue) error
	Get(callerID, id uint) (*models.MonthlyDue, error)
	List(callerID uint, page, perPage int) ([]models.MonthlyDue, int64, error)
	Update(callerID, id uint, input *models.MonthlyDue) (*models.MonthlyDue, error)
	Delete(callerID, id uint) error
}

// monthlyDueService implements MonthlyDueService interface
type monthlyDueService struct {
	dueRepo   repository.MonthlyDueRepository
	houseRepo repository.HouseRepository
	logger    *logger.Logger
}

// NewMonthlyDueService creates a new monthly due service
func NewMonthlyDueService(dueRepo repository.MonthlyDueRepository, houseRepo repository.HouseRepository, logger *logger.Logger) MonthlyDueService {
	return &monthlyDueService{
		dueRepo:   dueRepo,
		houseRepo: houseRepo,
		logger:    logger,
	}
}

func (s *monthlyDueService) Create(callerID uint, due *models.MonthlyDue) error {
	if due.ResidentID != callerID {
		return NewForbiddenError("You may only record dues for your own account.")
	}
	if err := s.resolveHouse(due.HouseID); err != nil {
		return err
	}
	due.DueMonth = firstOfMonth(due.DueMonth)

	if err := s.dueRepo.Create(due); err != nil {
		s.logger.WithError(err).Error("Failed to create monthly due")
		return err
	}
	s.logger.WithFields(map[string]interface{}{
		"due_id":    due.ID,
		"due_month": due.DueMonth.Format("2006-01"),
	}).Info("Monthly due created successfully")
	return nil
}

func (s *monthlyDueService) Get(callerID, id uint) (*models.MonthlyDue, error) {
	due, err := s.dueRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("monthly due")
		}
		return nil, err
	}
	if due.ResidentID != callerID {
		return nil, NewForbiddenError("You may only access your own dues.")
	}
	return due, nil
}

func (s *monthlyDueService) List(callerID uint, page, perPage int) ([]models.MonthlyDue, int64, error) {
	return s.dueRepo.ListByResident(callerID, (page-1)*perPage, perPage)
}

func (s *monthlyDueService) Update(callerID, id uint, input *models.MonthlyDue) (*models.MonthlyDue, error) {
	due, err := s.Get(callerID, id)
	if err != nil {
		return nil, err
	}

	if input.HouseID != due.HouseID {
		if err := s.resolveHouse(input.HouseID); err != nil {
			return nil, err
		}
	}

	due.HouseID = input.HouseID
	due.DueMonth = firstOfMonth(input.DueMonth)
	due.Amount = input.Amount
	due.IsPaid = input.IsPaid
	due.PaidAt = input.PaidAt

	if err := s.dueRepo.Update(due); err != nil {
		s.logger.WithError(err).WithField("due_id", id).Error("Failed to update monthly due")
		return nil, err
	}
	return due, nil
}

func (s *monthlyDueService) Delete(callerID, id uint) error {
	if _, err := s.Get(callerID, id); err != nil {
		return err
	}
	if err := s.dueRepo.Delete(id); err != nil {
		s.logger.WithError(err).WithField("due_id", id).Error("Failed to delete monthly due")
		return err
	}
	return nil
}

func (s *monthlyDueService) resolveHouse(houseID uint) error {
	if _, err := s.houseRepo.GetByID(houseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewValidationError("house", "House does not exist.")
		}
		return err
	}
	return nil
}

// firstOfMonth truncates a date to the first day of its month
func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
