package service

import (
	"errors"

	"gorm.io/gorm"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
	"hoa-be-svc/pkg/logger"
)

// VehiclePassService interface defines vehicle pass service methods
type VehiclePassService interface {
	Create(callerID uint, pass *models.VehiclePass) error
	Get(callerID, id uint) (*models.VehiclePass, error)
	List(callerID uint, page, perPage int) ([]models.VehiclePass, int64, error)
	Update(callerID, id uint, input *models.VehiclePass) (*models.VehiclePass, error)
	Delete(callerID, id uint) error
}

// vehiclePassService implements VehiclePassService interface
type vehiclePassService struct {
	passRepo repository.VehiclePassRepository
	logger   *logger.Logger
}

// NewVehiclePassService creates a new vehicle pass service
func NewVehiclePassService(passRepo repository.VehiclePassRepository, logger *logger.Logger) VehiclePassService {
	return &vehiclePassService{
		passRepo: passRepo,
		logger:   logger,
	}
}

func (s *vehiclePassService) Create(callerID uint, pass *models.VehiclePass) error {
	if pass.ResidentID != callerID {
		return NewForbiddenError("You may only create vehicle passes for your own account.")
	}
	if err := s.checkPassIDUnique(pass.VehiclePassID, 0); err != nil {
		return err
	}
	if err := s.passRepo.Create(pass); err != nil {
		s.logger.WithError(err).Error("Failed to create vehicle pass")
		return err
	}
	s.logger.WithFields(map[string]interface{}{
		"id":              pass.ID,
		"vehicle_pass_id": pass.VehiclePassID,
	}).Info("Vehicle pass created successfully")
	return nil
}

func (s *vehiclePassService) Get(callerID, id uint) (*models.VehiclePass, error) {
	pass, err := s.passRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("vehicle pass")
		}
		return nil, err
	}
	if pass.ResidentID != callerID {
		return nil, NewForbiddenError("You may only access your own vehicle passes.")
	}
	return pass, nil
}

func (s *vehiclePassService) List(callerID uint, page, perPage int) ([]models.VehiclePass, int64, error) {
	return s.passRepo.ListByResident(callerID, (page-1)*perPage, perPage)
}

func (s *vehiclePassService) Update(callerID, id uint, input *models.VehiclePass) (*models.VehiclePass, error) {
	pass, err := s.Get(callerID, id)
	if err != nil {
		return nil, err
	}

	if input.VehiclePassID != pass.VehiclePassID {
		if err := s.checkPassIDUnique(input.VehiclePassID, pass.ID); err != nil {
			return nil, err
		}
	}

	pass.VehiclePassID = input.VehiclePassID
	pass.Amount = input.Amount
	pass.ModeOfPayment = input.ModeOfPayment
	pass.VehicleModel = input.VehicleModel
	pass.PlateNumber = input.PlateNumber

	if err := s.passRepo.Update(pass); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to update vehicle pass")
		return nil, err
	}
	return pass, nil
}

func (s *vehiclePassService) Delete(callerID, id uint) error {
	if _, err := s.Get(callerID, id); err != nil {
		return err
	}
	if err := s.passRepo.Delete(id); err != nil {
		s.logger.WithError(err).WithField("id", id).Error("Failed to delete vehicle pass")
		return err
	}
	return nil
}

// checkPassIDUnique fails with a conflict when another record already carries
// the given pass identifier
func (s *vehiclePassService) checkPassIDUnique(vehiclePassID string, selfID uint) error {
	existing, err := s.passRepo.GetByPassID(vehiclePassID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return NewConflictError("vehicle_pass_id", "A vehicle pass with this identifier already exists.")
	}
	return nil
}
