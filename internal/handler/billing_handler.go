package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/internal/service"
	"waterbill-be-svc/pkg/logger"
	"waterbill-be-svc/pkg/utils"
)

// CreateBillingRequest represents the request for billing creation
type CreateBillingRequest struct {
	AccountNumber string  `json:"account_number" binding:"required"`
	UserID        *uint   `json:"user_id,omitempty"`
	DueDate       string  `json:"due_date" binding:"required"`
	TotalAmount   float64 `json:"total_amount" binding:"required,gt=0"`
	Consumption   float64 `json:"consumption" binding:"gte=0"`
}

// ConfirmPaymentRequest represents the request to mark billings as paid
type ConfirmPaymentRequest struct {
	BillingIDs []uint `json:"billing_ids" binding:"required,min=1"`
}

// BillingHandler handles billing-related HTTP requests
type BillingHandler struct {
	billingService service.BillingService
	logger         *logger.Logger
}

// NewBillingHandler creates a new BillingHandler instance
func NewBillingHandler(billingService service.BillingService, logger *logger.Logger) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		logger:         logger,
	}
}

// GetBillings lists billing records
// @Summary List billing records
// @Description Get billing records with optional status filter, account-number search and pagination
// @Tags billings
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (unpaid or paid)"
// @Param q query string false "Search by account number"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} utils.PaginatedResponse{data=[]models.Billing} "Billings retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings [get]
func (h *BillingHandler) GetBillings(c *gin.Context) {
	status := c.Query("status")
	search := c.Query("q")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	billings, total, err := h.billingService.GetBillings(status, search, page, perPage)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get billings")
		utils.InternalServerErrorResponse(c, "Failed to get billings", err)
		return
	}

	utils.SuccessPaginatedResponse(c, "Billings retrieved successfully", billings, page, perPage, total)
}

// GetBilling retrieves one billing record
// @Summary Get billing record
// @Description Get one billing record by ID
// @Tags billings
// @Accept json
// @Produce json
// @Param id path int true "Billing ID"
// @Success 200 {object} utils.APIResponse{data=models.Billing} "Billing retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid ID"
// @Failure 404 {object} utils.APIResponse "Billing not found"
// @Router /api/v1/billings/{id} [get]
func (h *BillingHandler) GetBilling(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Billing ID must be a number", err)
		return
	}

	billing, err := h.billingService.GetBillingByID(uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("billing_id", id).Error("Failed to get billing")
		utils.NotFoundResponse(c, "Billing not found", err)
		return
	}

	utils.SuccessResponse(c, "Billing retrieved successfully", billing)
}

// CreateBilling creates a new billing record
// @Summary Create billing record
// @Description Create one billing record for an account
// @Tags billings
// @Accept json
// @Produce json
// @Param request body CreateBillingRequest true "Billing record"
// @Success 201 {object} utils.APIResponse{data=models.Billing} "Billing created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings [post]
func (h *BillingHandler) CreateBilling(c *gin.Context) {
	var req CreateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	billing := &models.Billing{
		AccountNumber: req.AccountNumber,
		UserID:        req.UserID,
		DueDate:       req.DueDate,
		TotalAmount:   req.TotalAmount,
		Consumption:   req.Consumption,
	}

	if err := h.billingService.CreateBilling(billing); err != nil {
		h.logger.WithError(err).Error("Failed to create billing")
		utils.InternalServerErrorResponse(c, "Failed to create billing", err)
		return
	}

	utils.CreatedResponse(c, "Billing created successfully", billing)
}

// ConfirmPayment marks billing records as paid
// @Summary Confirm billing payments
// @Description Mark the given billing IDs as paid
// @Tags billings
// @Accept json
// @Produce json
// @Param request body ConfirmPaymentRequest true "Billing IDs to confirm"
// @Success 200 {object} utils.APIResponse "Payments confirmed"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/confirm-payment [post]
func (h *BillingHandler) ConfirmPayment(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	if err := h.billingService.ConfirmPayment(req.BillingIDs); err != nil {
		h.logger.WithError(err).Error("Failed to confirm payments")
		utils.InternalServerErrorResponse(c, "Failed to confirm payments", err)
		return
	}

	utils.SuccessResponse(c, "Payments confirmed successfully", gin.H{"billing_ids": req.BillingIDs})
}

// ExportBillings exports billing records to Excel
// @Summary Export billings to Excel
// @Description Download billing records as an Excel workbook, optionally filtered by status
// @Tags billings
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Filter by status (unpaid or paid)"
// @Success 200 {file} binary "Excel file"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/billings/export [get]
func (h *BillingHandler) ExportBillings(c *gin.Context) {
	status := c.Query("status")

	content, filename, err := h.billingService.ExportBillingsToExcel(status)
	if err != nil {
		h.logger.WithError(err).Error("Failed to export billings")
		utils.InternalServerErrorResponse(c, "Failed to export billings", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
