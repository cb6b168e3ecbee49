package service

import (
	"waterbill-be-svc/internal/models/response"
	"waterbill-be-svc/internal/repository"
	"waterbill-be-svc/pkg/logger"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	GetDashboardSummary() (*response.DashboardSummaryResponse, error)
}

// dashboardService implements DashboardService
type dashboardService struct {
	dashboardRepo repository.DashboardRepository
	logger        *logger.Logger
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(dashboardRepo repository.DashboardRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		dashboardRepo: dashboardRepo,
		logger:        logger,
	}
}

// GetDashboardSummary retrieves the admin dashboard summary
func (s *dashboardService) GetDashboardSummary() (*response.DashboardSummaryResponse, error) {
	summary, err := s.dashboardRepo.GetDashboardSummary()
	if err != nil {
		s.logger.WithError(err).Error("Failed to get dashboard summary")
		return nil, err
	}

	return summary, nil
}
