package repository

import (
	"hoa-be-svc/internal/models"

	"gorm.io/gorm"
)

// ComplaintRepository defines the interface for complaint data operations
type ComplaintRepository interface {
	Create(complaint *models.Complaint) error
	GetByID(id uint) (*models.Complaint, error)
	ListByResident(residentID uint, offset, limit int) ([]models.Complaint, int64, error)
	Update(complaint *models.Complaint) error
	Delete(id uint) error
}

// complaintRepository implements ComplaintRepository
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new instance of ComplaintRepository
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

func (r *complaintRepository) Create(complaint *models.Complaint) error {
	return r.db.Create(complaint).Error
}

func (r *complaintRepository) GetByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := r.db.First(&complaint, id).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) ListByResident(residentID uint, offset, limit int) ([]models.Complaint, int64, error) {
	var complaints []models.Complaint
	var total int64

	query := r.db.Model(&models.Complaint{}).Where("resident_id = ?", residentID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("complained_at desc").Offset(offset).Limit(limit).Find(&complaints).Error; err != nil {
		return nil, 0, err
	}
	return complaints, total, nil
}

func (r *complaintRepository) Update(complaint *models.Complaint) error {
	return r.db.Save(complaint).Error
}

func (r *complaintRepository) Delete(id uint) error {
	return r.db.Delete(&models.Complaint{}, id).Error
}
