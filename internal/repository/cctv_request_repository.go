package repository

import (
	"hoa-be-svc/internal/models"

	"gorm.io/gorm"
)

// CCTVRequestRepository defines the interface for CCTV request data operations
type CCTVRequestRepository interface {
	Create(request *models.CCTVRequest) error
	GetByID(id uint) (*models.CCTVRequest, error)
	ListByResident(residentID uint, offset, limit int) ([]models.CCTVRequest, int64, error)
	Update(request *models.CCTVRequest) error
	Delete(id uint) error
}

// cctvRequestRepository implements CCTVRequestRepository
type cctvRequestRepository struct {
	db *gorm.DB
}

// NewCCTVRequestRepository creates a new instance of CCTVRequestRepository
func NewCCTVRequestRepository(db *gorm.DB) CCTVRequestRepository {
	return &cctvRequestRepository{db: db}
}

func (r *cctvRequestRepository) Create(request *models.CCTVRequest) error {
	return r.db.Create(request).Error
}

func (r *cctvRequestRepository) GetByID(id uint) (*models.CCTVRequest, error) {
	var request models.CCTVRequest
	if err := r.db.First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *cctvRequestRepository) ListByResident(residentID uint, offset, limit int) ([]models.CCTVRequest, int64, error) {
	var requests []models.CCTVRequest
	var total int64

	query := r.db.Model(&models.CCTVRequest{}).Where("resident_id = ?", residentID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("requested_at desc").Offset(offset).Limit(limit).Find(&requests).Error; err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *cctvRequestRepository) Update(request *models.CCTVRequest) error {
	return r.db.Save(request).Error
}

func (r *cctvRequestRepository) Delete(id uint) error {
	return r.db.Delete(&models.CCTVRequest{}, id).Error
}
