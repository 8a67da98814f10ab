package repository

import (
	"hoa-be-svc/internal/models"

	"gorm.io/gorm"
)

// HouseRepository defines the interface for house data operations
type HouseRepository interface {
	Create(house *models.House) error
	GetByID(id uint) (*models.House, error)
	List(offset, limit int) ([]models.House, int64, error)
	Update(house *models.House) error
	Delete(id uint) error
}

// houseRepository implements HouseRepository
type houseRepository struct {
	db *gorm.DB
}

// NewHouseRepository creates a new instance of HouseRepository
func NewHouseRepository(db *gorm.DB) HouseRepository {
	return &houseRepository{db: db}
}

func (r *houseRepository) Create(house *models.House) error {
	return r.db.Create(house).Error
}

func (r *houseRepository) GetByID(id uint) (*models.House, error) {
	var house models.House
	if err := r.db.First(&house, id).Error; err != nil {
		return nil, err
	}
	return &house, nil
}

func (r *houseRepository) List(offset, limit int) ([]models.House, int64, error) {
	var houses []models.House
	var total int64

	if err := r.db.Model(&models.House{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Order("id").Offset(offset).Limit(limit).Find(&houses).Error; err != nil {
		return nil, 0, err
	}
	return houses, total, nil
}

func (r *houseRepository) Update(house *models.House) error {
	return r.db.Save(house).Error
}

// Delete removes the house; residents keep their rows with house_id cleared
// through the schema's ON DELETE SET NULL constraint.
func (r *houseRepository) Delete(id uint) error {
	return r.db.Delete(&models.House{}, id).Error
}
