package repository

import (
	"strings"

	"gorm.io/gorm"

	"waterbill-be-svc/internal/models"
)

// BillingRepository defines the interface for billing data operations
type BillingRepository interface {
	GetBillingByID(id uint) (*models.Billing, error)
	GetUnpaidBillings() ([]*models.Billing, error)
	GetBillings(status string, search string, page int, limit int) ([]*models.Billing, int64, error)
	GetBillingsForExport(status string) ([]*models.Billing, error)
	CreateBilling(billing *models.Billing) error
	ConfirmPayment(ids []uint) error
}

// billingRepository implements BillingRepository
type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository creates a new instance of BillingRepository
func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{
		db: db,
	}
}

// GetBillingByID retrieves a billing record by ID
func (r *billingRepository) GetBillingByID(id uint) (*models.Billing, error) {
	var billing models.Billing

	err := r.db.Where("id = ?", id).First(&billing).Error
	if err != nil {
		return nil, err
	}

	return &billing, nil
}

// GetUnpaidBillings retrieves every billing record whose status is exactly
// "unpaid". The full matching set is returned; the reminder pipeline does
// its own windowing.
func (r *billingRepository) GetUnpaidBillings() ([]*models.Billing, error) {
	var billings []*models.Billing

	err := r.db.Where("status = ?", models.BillingStatusUnpaid).Find(&billings).Error
	if err != nil {
		return nil, err
	}

	return billings, nil
}

// GetBillings retrieves billing records with optional status filter,
// account-number search and pagination
func (r *billingRepository) GetBillings(status string, search string, page int, limit int) ([]*models.Billing, int64, error) {
	var billings []*models.Billing
	var total int64

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	query := r.db.Model(&models.Billing{})
	if strings.TrimSpace(status) != "" {
		query = query.Where("status = ?", status)
	}
	if strings.TrimSpace(search) != "" {
		query = query.Where("account_number ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&billings).Error
	if err != nil {
		return nil, 0, err
	}

	return billings, total, nil
}

// GetBillingsForExport retrieves billing records for Excel export, optionally
// filtered by status
func (r *billingRepository) GetBillingsForExport(status string) ([]*models.Billing, error) {
	var billings []*models.Billing

	query := r.db.Model(&models.Billing{})
	if strings.TrimSpace(status) != "" {
		query = query.Where("status = ?", status)
	}

	err := query.Order("account_number, id").Find(&billings).Error
	if err != nil {
		return nil, err
	}

	return billings, nil
}

// CreateBilling creates a new billing record
func (r *billingRepository) CreateBilling(billing *models.Billing) error {
	return r.db.Create(billing).Error
}

// ConfirmPayment marks the given billing IDs as paid in a single transaction
func (r *billingRepository) ConfirmPayment(ids []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Billing{}).
			Where("id IN ?", ids).
			Update("status", models.BillingStatusPaid).Error
	})
}
