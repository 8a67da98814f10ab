package repository

import (
	"hoa-be-svc/internal/models"

	"gorm.io/gorm"
)

// MonthlyDueRepository defines the interface for monthly due data operations
type MonthlyDueRepository interface {
	Create(due *models.MonthlyDue) error
	GetByID(id uint) (*models.MonthlyDue, error)
	ListByResident(residentID uint, offset, limit int) ([]models.MonthlyDue, int64, error)
	Update(due *models.MonthlyDue) error
	Delete(id uint) error
}

// monthlyDueRepository implements MonthlyDueRepository
type monthlyDueRepository struct {
	db *gorm.DB
}

// NewMonthlyDueRepository creates a new instance of MonthlyDueRepository
func NewMonthlyDueRepository(db *gorm.DB) MonthlyDueRepository {
	return &monthlyDueRepository{db: db}
}

func (r *monthlyDueRepository) Create(due *models.MonthlyDue) error {
	return r.db.Create(due).Error
}

func (r *monthlyDueRepository) GetByID(id uint) (*models.MonthlyDue, error) {
	var due models.MonthlyDue
	if err := r.db.First(&due, id).Error; err != nil {
		return nil, err
	}
	return &due, nil
}

func (r *monthlyDueRepository) ListByResident(residentID uint, offset, limit int) ([]models.MonthlyDue, int64, error) {
	var dues []models.MonthlyDue
	var total int64

	query := r.db.Model(&models.MonthlyDue{}).Where("resident_id = ?", residentID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("due_month desc").Offset(offset).Limit(limit).Find(&dues).Error; err != nil {
		return nil, 0, err
	}
	return dues, total, nil
}

func (r *monthlyDueRepository) Update(due *models.MonthlyDue) error {
	return r.db.Save(due).Error
}

func (r *monthlyDueRepository) Delete(id uint) error {
	return r.db.Delete(&models.MonthlyDue{}, id).Error
}
