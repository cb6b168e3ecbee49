package repository

import (
	"gorm.io/gorm"

	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/internal/models/response"
)

// DashboardRepository defines the interface for dashboard data operations
type DashboardRepository interface {
	GetDashboardSummary() (*response.DashboardSummaryResponse, error)
}

// dashboardRepository implements DashboardRepository
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new instance of DashboardRepository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetDashboardSummary aggregates headline figures for the admin dashboard
func (r *dashboardRepository) GetDashboardSummary() (*response.DashboardSummaryResponse, error) {
	var summary response.DashboardSummaryResponse

	if err := r.db.Model(&models.User{}).Where("role = ?", models.RoleResident).Count(&summary.TotalResidents).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).Where("role = ?", models.RoleCollector).Count(&summary.TotalCollectors).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Billing{}).Where("status = ?", models.BillingStatusUnpaid).Count(&summary.TotalUnpaidBills).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Billing{}).Where("status = ?", models.BillingStatusPaid).Count(&summary.TotalPaidBills).Error; err != nil {
		return nil, err
	}

	query := `
		SELECT
			COALESCE((SELECT SUM(total_amount) FROM billings WHERE status = 'unpaid'), 0) AS unpaid_amount,
			COALESCE((SELECT SUM(amount) FROM deposits), 0) AS total_deposits,
			COALESCE((SELECT SUM(amount) FROM withdrawals), 0) AS total_withdrawals
	`

	if err := r.db.Raw(query).Scan(&summary).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}
