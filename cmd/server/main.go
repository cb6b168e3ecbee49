package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"waterbill-be-svc/docs"
	"waterbill-be-svc/internal/config"
	"waterbill-be-svc/internal/database"
	"waterbill-be-svc/internal/handler"
	"waterbill-be-svc/internal/middleware"
	"waterbill-be-svc/internal/repository"
	"waterbill-be-svc/internal/scheduler"
	"waterbill-be-svc/internal/service"
	"waterbill-be-svc/pkg/logger"
)

// @title Water Billing Backend Service API
// @version 1.0
// @description RESTful API for the water utility billing administration portal

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Water Billing Backend Service API"
	docs.SwaggerInfo.Description = "RESTful API for the water utility billing administration portal"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Water Billing Backend Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	billingRepo := repository.NewBillingRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)
	announcementRepo := repository.NewAnnouncementRepository(db.DB)
	transactionRepo := repository.NewTransactionRepository(db.DB)
	notificationRepo := repository.NewNotificationRepository(db.DB)
	settingRepo := repository.NewSettingRepository(db.DB)
	dashboardRepo := repository.NewDashboardRepository(db.DB)
	logSchedulerRepo := repository.NewLogSchedulerRepository(db.DB)

	// Initialize services
	smsService := service.NewSMSService(cfg.SMS, appLogger)
	billingService := service.NewBillingService(billingRepo, appLogger)
	userService := service.NewUserService(userRepo, appLogger)
	announcementService := service.NewAnnouncementService(announcementRepo, appLogger)
	transactionService := service.NewTransactionService(transactionRepo, appLogger)
	notificationService := service.NewNotificationService(notificationRepo, appLogger)
	settingService := service.NewSettingService(settingRepo, appLogger)
	dashboardService := service.NewDashboardService(dashboardRepo, appLogger)
	reminderService, err := service.NewReminderService(billingRepo, userRepo, notificationRepo, smsService, cfg.Reminder, cfg.SMS.CountryPrefix, appLogger)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to initialize reminder service")
	}

	// Start reminder scheduler
	reminderScheduler := scheduler.NewReminderScheduler(reminderService, logSchedulerRepo, appLogger, cfg.Scheduler.ReminderCronExpression)
	if err := reminderScheduler.Start(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to start reminder scheduler")
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, billingService, userService, announcementService, transactionService, reminderService, notificationService, dashboardService, settingService, appLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Stop the scheduler before closing shared resources
	reminderScheduler.Stop()

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
