package repository

import (
	"gorm.io/gorm"

	"waterbill-be-svc/internal/models"
)

// TransactionRepository defines the interface for deposit and withdrawal data operations
type TransactionRepository interface {
	GetDeposits(page int, limit int) ([]*models.Deposit, int64, error)
	CreateDeposit(deposit *models.Deposit) error
	GetWithdrawals(page int, limit int) ([]*models.Withdrawal, int64, error)
	CreateWithdrawal(withdrawal *models.Withdrawal) error
}

// transactionRepository implements TransactionRepository
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new instance of TransactionRepository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// GetDeposits retrieves deposit records ordered newest first, with pagination
func (r *transactionRepository) GetDeposits(page int, limit int) ([]*models.Deposit, int64, error) {
	var deposits []*models.Deposit
	var total int64

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	if err := r.db.Model(&models.Deposit{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&deposits).Error
	if err != nil {
		return nil, 0, err
	}

	return deposits, total, nil
}

// CreateDeposit creates a new deposit record
func (r *transactionRepository) CreateDeposit(deposit *models.Deposit) error {
	return r.db.Create(deposit).Error
}

// GetWithdrawals retrieves withdrawal records ordered newest first, with pagination
func (r *transactionRepository) GetWithdrawals(page int, limit int) ([]*models.Withdrawal, int64, error) {
	var withdrawals []*models.Withdrawal
	var total int64

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	if err := r.db.Model(&models.Withdrawal{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&withdrawals).Error
	if err != nil {
		return nil, 0, err
	}

	return withdrawals, total, nil
}

// CreateWithdrawal creates a new withdrawal record
func (r *transactionRepository) CreateWithdrawal(withdrawal *models.Withdrawal) error {
	return r.db.Create(withdrawal).Error
}
