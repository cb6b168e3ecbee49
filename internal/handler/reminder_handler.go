package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"waterbill-be-svc/internal/service"
	"waterbill-be-svc/pkg/logger"
	"waterbill-be-svc/pkg/utils"
)

// ReminderHandler handles reminder-related HTTP requests
type ReminderHandler struct {
	reminderService     service.ReminderService
	notificationService service.NotificationService
	logger              *logger.Logger
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderService service.ReminderService, notificationService service.NotificationService, logger *logger.Logger) *ReminderHandler {
	return &ReminderHandler{
		reminderService:     reminderService,
		notificationService: notificationService,
		logger:              logger,
	}
}

// RunReminders triggers a reminder run immediately
// @Summary Run bill-due reminders now
// @Description Scan unpaid billings and dispatch SMS reminders for bills due within the reminder window
// @Tags reminders
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=service.ReminderRunSummary} "Reminder run summary"
// @Failure 500 {object} utils.APIResponse "Reminder run failed"
// @Router /api/v1/reminders/run [post]
func (h *ReminderHandler) RunReminders(c *gin.Context) {
	summary, err := h.reminderService.Run(time.Now())
	if err != nil {
		h.logger.WithError(err).Error("Manual reminder run failed")
		utils.InternalServerErrorResponse(c, "Reminder run failed", err)
		return
	}

	utils.SuccessResponse(c, "Reminder run completed", summary)
}

// GetNotifications lists notification audit rows
// @Summary List notifications
// @Description Get reminder dispatch audit rows ordered newest first, with pagination
// @Tags reminders
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} utils.PaginatedResponse{data=[]models.Notification} "Notifications retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/notifications [get]
func (h *ReminderHandler) GetNotifications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	notifications, total, err := h.notificationService.GetNotifications(page, perPage)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get notifications")
		utils.InternalServerErrorResponse(c, "Failed to get notifications", err)
		return
	}

	utils.SuccessPaginatedResponse(c, "Notifications retrieved successfully", notifications, page, perPage, total)
}
