package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"waterbill-be-svc/internal/service"
	"waterbill-be-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	billingService service.BillingService,
	userService service.UserService,
	announcementService service.AnnouncementService,
	transactionService service.TransactionService,
	reminderService service.ReminderService,
	notificationService service.NotificationService,
	dashboardService service.DashboardService,
	settingService service.SettingService,
	logger *logger.Logger,
) {
	// Initialize handlers
	billingHandler := NewBillingHandler(billingService, logger)
	userHandler := NewUserHandler(userService, logger)
	announcementHandler := NewAnnouncementHandler(announcementService, logger)
	transactionHandler := NewTransactionHandler(transactionService, logger)
	reminderHandler := NewReminderHandler(reminderService, notificationService, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, settingService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Billing routes
		billings := v1.Group("/billings")
		{
			billings.GET("", billingHandler.GetBillings)
			billings.POST("", billingHandler.CreateBilling)
			billings.POST("/confirm-payment", billingHandler.ConfirmPayment)
			billings.GET("/export", billingHandler.ExportBillings)
			billings.GET("/:id", billingHandler.GetBilling)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Announcement routes
		announcements := v1.Group("/announcements")
		{
			announcements.GET("", announcementHandler.GetAnnouncements)
			announcements.POST("", announcementHandler.CreateAnnouncement)
			announcements.PUT("/:id", announcementHandler.UpdateAnnouncement)
			announcements.DELETE("/:id", announcementHandler.DeleteAnnouncement)
		}

		// Deposit and withdrawal routes
		v1.GET("/deposits", transactionHandler.GetDeposits)
		v1.POST("/deposits", transactionHandler.CreateDeposit)
		v1.GET("/withdrawals", transactionHandler.GetWithdrawals)
		v1.POST("/withdrawals", transactionHandler.CreateWithdrawal)

		// Reminder routes
		v1.POST("/reminders/run", reminderHandler.RunReminders)
		v1.GET("/notifications", reminderHandler.GetNotifications)

		// Dashboard and settings routes
		v1.GET("/dashboard/summary", dashboardHandler.GetDashboardSummary)
		v1.GET("/settings", dashboardHandler.GetSetting)
		v1.PUT("/settings", dashboardHandler.UpdateSetting)
	}
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Water Billing Backend Service",
	})
}
