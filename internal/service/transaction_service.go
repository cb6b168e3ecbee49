package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/internal/repository"
	"waterbill-be-svc/pkg/logger"
)

// TransactionService defines the interface for deposit/withdrawal operations
type TransactionService interface {
	GetDeposits(page int, limit int) ([]*models.Deposit, int64, error)
	CreateDeposit(deposit *models.Deposit) error
	GetWithdrawals(page int, limit int) ([]*models.Withdrawal, int64, error)
	CreateWithdrawal(withdrawal *models.Withdrawal) error
}

// transactionService implements TransactionService
type transactionService struct {
	transactionRepo repository.TransactionRepository
	logger          *logger.Logger
}

// NewTransactionService creates a new instance of TransactionService
func NewTransactionService(transactionRepo repository.TransactionRepository, logger *logger.Logger) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// GetDeposits lists deposits with pagination
func (s *transactionService) GetDeposits(page int, limit int) ([]*models.Deposit, int64, error) {
	return s.transactionRepo.GetDeposits(page, limit)
}

// CreateDeposit creates a new deposit record
func (s *transactionService) CreateDeposit(deposit *models.Deposit) error {
	if deposit.Amount <= 0 {
		return fmt.Errorf("deposit amount must be positive")
	}

	docID := uuid.New().String()
	now := time.Now()
	deposit.DocumentID = &docID
	deposit.CreatedAt = &now
	deposit.UpdatedAt = &now

	return s.transactionRepo.CreateDeposit(deposit)
}

// GetWithdrawals lists withdrawals with pagination
func (s *transactionService) GetWithdrawals(page int, limit int) ([]*models.Withdrawal, int64, error) {
	return s.transactionRepo.GetWithdrawals(page, limit)
}

// CreateWithdrawal creates a new withdrawal record
func (s *transactionService) CreateWithdrawal(withdrawal *models.Withdrawal) error {
	if withdrawal.Amount <= 0 {
		return fmt.Errorf("withdrawal amount must be positive")
	}

	docID := uuid.New().String()
	now := time.Now()
	withdrawal.DocumentID = &docID
	withdrawal.CreatedAt = &now
	withdrawal.UpdatedAt = &now

	return s.transactionRepo.CreateWithdrawal(withdrawal)
}
