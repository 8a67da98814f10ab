package service

import (
	"errors"

	"gorm.io/gorm"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
	"hoa-be-svc/pkg/logger"
)

// VendorService interface defines vendor service methods
type VendorService interface {
	Create(callerID uint, vendor *models.Vendor) error
	Get(callerID, id uint) (*models.Vendor, error)
	List(callerID uint, page, perPage int) ([]models.Vendor, int64, error)
	Update(callerID, id uint, input *models.Vendor) (*models.Vendor, error)
	Delete(callerID, id uint) error
}

// vendorService implements VendorService interface
type vendorService struct {
	vendorRepo repository.VendorRepository
	logger     *logger.Logger
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo repository.VendorRepository, logger *logger.Logger) VendorService {
	return &vendorService{
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

func (s *vendorService) Create(callerID uint, vendor *models.Vendor) error {
	if vendor.ResidentID != callerID {
		return NewForbiddenError("You may only create vendors for your own account.")
	}
	if err := s.vendorRepo.Create(vendor); err != nil {
		s.logger.WithError(err).Error("Failed to create vendor")
		return err
	}
	s.logger.WithField("vendor_id", vendor.ID).Info("Vendor created successfully")
	return nil
}

func (s *vendorService) Get(callerID, id uint) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("vendor")
		}
		return nil, err
	}
	if vendor.ResidentID != callerID {
		return nil, NewForbiddenError("You may only access your own vendors.")
	}
	return vendor, nil
}

func (s *vendorService) List(callerID uint, page, perPage int) ([]models.Vendor, int64, error) {
	return s.vendorRepo.ListByResident(callerID, (page-1)*perPage, perPage)
}

func (s *vendorService) Update(callerID, id uint, input *models.Vendor) (*models.Vendor, error) {
	vendor, err := s.Get(callerID, id)
	if err != nil {
		return nil, err
	}

	vendor.BusinessName = input.BusinessName

	if err := s.vendorRepo.Update(vendor); err != nil {
		s.logger.WithError(err).WithField("vendor_id", id).Error("Failed to update vendor")
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) Delete(callerID, id uint) error {
	if _, err := s.Get(callerID, id); err != nil {
		return err
	}
	if err := s.vendorRepo.Delete(id); err != nil {
		s.logger.WithError(err).WithField("vendor_id", id).Error("Failed to delete vendor")
		return err
	}
	return nil
}
