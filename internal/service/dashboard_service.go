package service

import (
	"hoa-be-svc/internal/models/response"
	"hoa-be-svc/internal/repository"
	"hoa-be-svc/pkg/logger"
)

// DashboardService interface defines dashboard service methods
type DashboardService interface {
	GetCommunitySummary() (*response.CommunitySummaryResponse, error)
}

// dashboardService implements DashboardService interface
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	logger        *logger.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo repository.DashboardRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		logger:        logger,
	}
}

// GetCommunitySummary gets community-wide aggregate counts
func (s *dashboardService) GetCommunitySummary() (*response.CommunitySummaryResponse, error) {
	summary, err := s.dashboardRepo.GetCommunitySummary()
	if err != nil {
		s.logger.WithError(err).Error("Failed to get community summary")
		return nil, err
	}
	return summary, nil
}
