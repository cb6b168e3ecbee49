package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/internal/service"
	"waterbill-be-svc/pkg/logger"
	"waterbill-be-svc/pkg/utils"
)

// TransactionRequest represents the request for deposit/withdrawal creation
type TransactionRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// TransactionHandler handles deposit and withdrawal HTTP requests
type TransactionHandler struct {
	transactionService service.TransactionService
	logger             *logger.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService service.TransactionService, logger *logger.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
	}
}

// GetDeposits lists deposit records
// @Summary List deposits
// @Description Get deposit records ordered newest first, with pagination
// @Tags transactions
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} utils.PaginatedResponse{data=[]models.Deposit} "Deposits retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/deposits [get]
func (h *TransactionHandler) GetDeposits(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	deposits, total, err := h.transactionService.GetDeposits(page, perPage)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get deposits")
		utils.InternalServerErrorResponse(c, "Failed to get deposits", err)
		return
	}

	utils.SuccessPaginatedResponse(c, "Deposits retrieved successfully", deposits, page, perPage, total)
}

// CreateDeposit creates a new deposit record
// @Summary Create deposit
// @Description Record cash collected into the fund
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "Deposit"
// @Success 201 {object} utils.APIResponse{data=models.Deposit} "Deposit created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/deposits [post]
func (h *TransactionHandler) CreateDeposit(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	deposit := &models.Deposit{
		Amount:      req.Amount,
		Description: req.Description,
	}

	if err := h.transactionService.CreateDeposit(deposit); err != nil {
		h.logger.WithError(err).Error("Failed to create deposit")
		utils.InternalServerErrorResponse(c, "Failed to create deposit", err)
		return
	}

	utils.CreatedResponse(c, "Deposit created successfully", deposit)
}

// GetWithdrawals lists withdrawal records
// @Summary List withdrawals
// @Description Get withdrawal records ordered newest first, with pagination
// @Tags transactions
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} utils.PaginatedResponse{data=[]models.Withdrawal} "Withdrawals retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/withdrawals [get]
func (h *TransactionHandler) GetWithdrawals(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	withdrawals, total, err := h.transactionService.GetWithdrawals(page, perPage)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get withdrawals")
		utils.InternalServerErrorResponse(c, "Failed to get withdrawals", err)
		return
	}

	utils.SuccessPaginatedResponse(c, "Withdrawals retrieved successfully", withdrawals, page, perPage, total)
}

// CreateWithdrawal creates a new withdrawal record
// @Summary Create withdrawal
// @Description Record cash paid out of the fund
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "Withdrawal"
// @Success 201 {object} utils.APIResponse{data=models.Withdrawal} "Withdrawal created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/withdrawals [post]
func (h *TransactionHandler) CreateWithdrawal(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	withdrawal := &models.Withdrawal{
		Amount:      req.Amount,
		Description: req.Description,
	}

	if err := h.transactionService.CreateWithdrawal(withdrawal); err != nil {
		h.logger.WithError(err).Error("Failed to create withdrawal")
		utils.InternalServerErrorResponse(c, "Failed to create withdrawal", err)
		return
	}

	utils.CreatedResponse(c, "Withdrawal created successfully", withdrawal)
}
