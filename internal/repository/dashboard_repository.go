package repository

import (
	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/models/response"

	"gorm.io/gorm"
)

// DashboardRepository defines the interface for dashboard data operations
type DashboardRepository interface {
	GetCommunitySummary() (*response.CommunitySummaryResponse, error)
}

// dashboardRepository implements DashboardRepository
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetCommunitySummary retrieves community-wide aggregate counts
func (r *dashboardRepository) GetCommunitySummary() (*response.CommunitySummaryResponse, error) {
	var summary response.CommunitySummaryResponse

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.User{}, &summary.TotalResidents},
		{&models.House{}, &summary.TotalHouses},
		{&models.Vendor{}, &summary.TotalVendors},
		{&models.VehiclePass{}, &summary.TotalVehiclePasses},
		{&models.Alert{}, &summary.TotalAlerts},
		{&models.Complaint{}, &summary.TotalComplaints},
	}
	for _, c := range counts {
		if err := r.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := r.db.Model(&models.MonthlyDue{}).
		Where("is_paid = ?", false).
		Count(&summary.UnpaidDues).Error; err != nil {
		return nil, err
	}

	var outstanding struct {
		Total float64
	}
	if err := r.db.Model(&models.MonthlyDue{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("is_paid = ?", false).
		Scan(&outstanding).Error; err != nil {
		return nil, err
	}
	summary.OutstandingAmount = outstanding.Total

	return &summary, nil
}
