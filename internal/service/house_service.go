package service

import (
	"errors"

	"gorm.io/gorm"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
	"hoa-be-svc/pkg/logger"
)

// HouseService interface defines house service methods
type HouseService interface {
	Create(house *models.House) error
	Get(id uint) (*models.House, error)
	List(page, perPage int) ([]models.House, int64, error)
	Update(id uint, input *models.House) (*models.House, error)
	Delete(id uint) error
}

// houseService implements HouseService interface
type houseService struct {
	houseRepo repository.HouseRepository
	logger    *logger.Logger
}

// NewHouseService creates a new house service
func NewHouseService(houseRepo repository.HouseRepository, logger *logger.Logger) HouseService {
	return &houseService{
		houseRepo: houseRepo,
		logger:    logger,
	}
}

func (s *houseService) Create(house *models.House) error {
	if err := s.houseRepo.Create(house); err != nil {
		s.logger.WithError(err).Error("Failed to create house")
		return err
	}
	s.logger.WithField("house_id", house.ID).Info("House created successfully")
	return nil
}

func (s *houseService) Get(id uint) (*models.House, error) {
	house, err := s.houseRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("house")
		}
		return nil, err
	}
	return house, nil
}

func (s *houseService) List(page, perPage int) ([]models.House, int64, error) {
	return s.houseRepo.List((page-1)*perPage, perPage)
}

func (s *houseService) Update(id uint, input *models.House) (*models.House, error) {
	house, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	house.HouseNumber = input.HouseNumber
	house.BlockLot = input.BlockLot
	house.Street = input.Street

	if err := s.houseRepo.Update(house); err != nil {
		s.logger.WithError(err).WithField("house_id", id).Error("Failed to update house")
		return nil, err
	}
	return house, nil
}

// Delete removes the house; residents referencing it keep their accounts with
// the house link cleared
func (s *houseService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.houseRepo.Delete(id); err != nil {
		s.logger.WithError(err).WithField("house_id", id).Error("Failed to delete house")
		return err
	}
	s.logger.WithField("house_id", id).Info("House deleted successfully")
	return nil
}
