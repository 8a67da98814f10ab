package repository

import (
	"hoa-be-svc/internal/models"

	"gorm.io/gorm"
)

// VendorRepository defines the interface for vendor data operations
type VendorRepository interface {
	Create(vendor *models.Vendor) error
	GetByID(id uint) (*models.Vendor, error)
	ListByResident(residentID uint, offset, limit int) ([]models.Vendor, int64, error)
	Update(vendor *models.Vendor) error
	Delete(id uint) error
}

// vendorRepository implements VendorRepository
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new instance of VendorRepository
func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(vendor *models.Vendor) error {
	return r.db.Create(vendor).Error
}

func (r *vendorRepository) GetByID(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.First(&vendor, id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) ListByResident(residentID uint, offset, limit int) ([]models.Vendor, int64, error) {
	var vendors []models.Vendor
	var total int64

	query := r.db.Model(&models.Vendor{}).Where("resident_id = ?", residentID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("id").Offset(offset).Limit(limit).Find(&vendors).Error; err != nil {
		return nil, 0, err
	}
	return vendors, total, nil
}

func (r *vendorRepository) Update(vendor *models.Vendor) error {
	return r.db.Save(vendor).Error
}

func (r *vendorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Vendor{}, id).Error
}
