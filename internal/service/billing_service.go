package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/internal/repository"
	"waterbill-be-svc/pkg/logger"
)

// BillingService defines the interface for billing business operations
type BillingService interface {
	GetBillingByID(id uint) (*models.Billing, error)
	GetBillings(status string, search string, page int, limit int) ([]*models.Billing, int64, error)
	CreateBilling(billing *models.Billing) error
	ConfirmPayment(ids []uint) error
	ExportBillingsToExcel(status string) ([]byte, string, error)
}

// billingService implements BillingService
type billingService struct {
	billingRepo repository.BillingRepository
	logger      *logger.Logger
}

// NewBillingService creates a new instance of BillingService
func NewBillingService(billingRepo repository.BillingRepository, logger *logger.Logger) BillingService {
	return &billingService{
		billingRepo: billingRepo,
		logger:      logger,
	}
}

// GetBillingByID retrieves one billing record
func (s *billingService) GetBillingByID(id uint) (*models.Billing, error) {
	return s.billingRepo.GetBillingByID(id)
}

// GetBillings retrieves billing records with filters and pagination
func (s *billingService) GetBillings(status string, search string, page int, limit int) ([]*models.Billing, int64, error) {
	return s.billingRepo.GetBillings(status, search, page, limit)
}

// CreateBilling creates a new billing record, defaulting status to unpaid
func (s *billingService) CreateBilling(billing *models.Billing) error {
	if billing.Status == "" {
		billing.Status = models.BillingStatusUnpaid
	}
	if billing.DocumentID == nil {
		docID := uuid.New().String()
		billing.DocumentID = &docID
	}
	now := time.Now()
	billing.CreatedAt = &now
	billing.UpdatedAt = &now

	return s.billingRepo.CreateBilling(billing)
}

// ConfirmPayment marks the given billing IDs as paid
func (s *billingService) ConfirmPayment(ids []uint) error {
	if len(ids) == 0 {
		return fmt.Errorf("billing IDs cannot be empty")
	}

	if err := s.billingRepo.ConfirmPayment(ids); err != nil {
		s.logger.WithError(err).WithField("billing_ids", ids).Error("Failed to confirm payments")
		return err
	}

	s.logger.WithField("billing_ids", ids).Info("Payments confirmed")
	return nil
}

// ExportBillingsToExcel exports billing data to an Excel workbook
func (s *billingService) ExportBillingsToExcel(status string) ([]byte, string, error) {
	billings, err := s.billingRepo.GetBillingsForExport(status)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get billing data: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Error("Failed to close Excel file")
		}
	}()

	sheetName := "Billing Data"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"No", "Account Number", "Status", "Due Date", "Total Amount", "Consumption (cu.m)"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "F1", headerStyle)
	}

	for i, billing := range billings {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), billing.AccountNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), billing.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), billing.DueDate)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), billing.TotalAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), billing.Consumption)
	}

	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 18)
	}

	if f.GetSheetName(0) == "Sheet1" && sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("billing_export_%s.xlsx", timestamp)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buffer.Bytes(), filename, nil
}
