package repository

import (
	"hoa-be-svc/internal/models"

	"gorm.io/gorm"
)

// AlertRepository defines the interface for alert data operations
type AlertRepository interface {
	Create(alert *models.Alert) error
	GetByID(id uint) (*models.Alert, error)
	ListByResident(residentID uint, offset, limit int) ([]models.Alert, int64, error)
	Update(alert *models.Alert) error
	Delete(id uint) error
}

// alertRepository implements AlertRepository
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new instance of AlertRepository
func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(alert *models.Alert) error {
	return r.db.Create(alert).Error
}

func (r *alertRepository) GetByID(id uint) (*models.Alert, error) {
	var alert models.Alert
	if err := r.db.First(&alert, id).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *alertRepository) ListByResident(residentID uint, offset, limit int) ([]models.Alert, int64, error) {
	var alerts []models.Alert
	var total int64

	query := r.db.Model(&models.Alert{}).Where("resident_id = ?", residentID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("reported_at desc").Offset(offset).Limit(limit).Find(&alerts).Error; err != nil {
		return nil, 0, err
	}
	return alerts, total, nil
}

func (r *alertRepository) Update(alert *models.Alert) error {
	return r.db.Save(alert).Error
}

func (r *alertRepository) Delete(id uint) error {
	return r.db.Delete(&models.Alert{}, id).Error
}
