package handler

import (
	"github.com/gin-gonic/gin"

	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/internal/service"
	"waterbill-be-svc/pkg/logger"
	"waterbill-be-svc/pkg/utils"
)

// UpdateSettingRequest represents the request to update billing rates
type UpdateSettingRequest struct {
	RatePerCubicMeter float64 `json:"rate_per_cubic_meter" binding:"required,gte=0"`
	PenaltyRate       float64 `json:"penalty_rate" binding:"gte=0"`
}

// DashboardHandler handles dashboard and settings HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	settingService   service.SettingService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, settingService service.SettingService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		settingService:   settingService,
		logger:           logger,
	}
}

// GetDashboardSummary returns headline figures for the admin dashboard
// @Summary Get dashboard summary
// @Description Get aggregate counts and totals for the admin dashboard
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.DashboardSummaryResponse} "Dashboard summary retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/summary [get]
func (h *DashboardHandler) GetDashboardSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetDashboardSummary()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get dashboard summary")
		utils.InternalServerErrorResponse(c, "Failed to get dashboard summary", err)
		return
	}

	utils.SuccessResponse(c, "Dashboard summary retrieved successfully", summary)
}

// GetSetting returns the active billing setting
// @Summary Get billing setting
// @Description Get the active billing rates
// @Tags settings
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=models.Setting} "Setting retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/settings [get]
func (h *DashboardHandler) GetSetting(c *gin.Context) {
	setting, err := h.settingService.GetActiveSetting()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get billing setting")
		utils.InternalServerErrorResponse(c, "Failed to get billing setting", err)
		return
	}

	utils.SuccessResponse(c, "Setting retrieved successfully", setting)
}

// UpdateSetting updates the active billing setting
// @Summary Update billing setting
// @Description Update the billing rate per cubic meter and penalty rate
// @Tags settings
// @Accept json
// @Produce json
// @Param request body UpdateSettingRequest true "New rates"
// @Success 200 {object} utils.APIResponse "Setting updated successfully"
// @Failure 400 {object} utils.APIResponse "Invalid request"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/settings [put]
func (h *DashboardHandler) UpdateSetting(c *gin.Context) {
	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	setting := &models.Setting{
		RatePerCubicMeter: req.RatePerCubicMeter,
		PenaltyRate:       req.PenaltyRate,
	}

	if err := h.settingService.UpdateSetting(setting); err != nil {
		h.logger.WithError(err).Error("Failed to update billing setting")
		utils.InternalServerErrorResponse(c, "Failed to update billing setting", err)
		return
	}

	utils.SuccessResponse(c, "Setting updated successfully", nil)
}
