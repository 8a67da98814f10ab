package repository

import (
	"hoa-be-svc/internal/models"

	"gorm.io/gorm"
)

// VehiclePassRepository defines the interface for vehicle pass data operations
type VehiclePassRepository interface {
	Create(pass *models.VehiclePass) error
	GetByID(id uint) (*models.VehiclePass, error)
	GetByPassID(vehiclePassID string) (*models.VehiclePass, error)
	ListByResident(residentID uint, offset, limit int) ([]models.VehiclePass, int64, error)
	Update(pass *models.VehiclePass) error
	Delete(id uint) error
}

// vehiclePassRepository implements VehiclePassRepository
type vehiclePassRepository struct {
	db *gorm.DB
}

// NewVehiclePassRepository creates a new instance of VehiclePassRepository
func NewVehiclePassRepository(db *gorm.DB) VehiclePassRepository {
	return &vehiclePassRepository{db: db}
}

func (r *vehiclePassRepository) Create(pass *models.VehiclePass) error {
	return r.db.Create(pass).Error
}

func (r *vehiclePassRepository) GetByID(id uint) (*models.VehiclePass, error) {
	var pass models.VehiclePass
	if err := r.db.First(&pass, id).Error; err != nil {
		return nil, err
	}
	return &pass, nil
}

func (r *vehiclePassRepository) GetByPassID(vehiclePassID string) (*models.VehiclePass, error) {
	var pass models.VehiclePass
	if err := r.db.Where("vehicle_pass_id = ?", vehiclePassID).First(&pass).Error; err != nil {
		return nil, err
	}
	return &pass, nil
}

func (r *vehiclePassRepository) ListByResident(residentID uint, offset, limit int) ([]models.VehiclePass, int64, error) {
	var passes []models.VehiclePass
	var total int64

	query := r.db.Model(&models.VehiclePass{}).Where("resident_id = ?", residentID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("id").Offset(offset).Limit(limit).Find(&passes).Error; err != nil {
		return nil, 0, err
	}
	return passes, total, nil
}

func (r *vehiclePassRepository) Update(pass *models.VehiclePass) error {
	return r.db.Save(pass).Error
}

func (r *vehiclePassRepository) Delete(id uint) error {
	return r.db.Delete(&models.VehiclePass{}, id).Error
}
