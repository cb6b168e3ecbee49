package scheduler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/internal/repository"
	"waterbill-be-svc/internal/service"
	"waterbill-be-svc/pkg/logger"
)

// ReminderScheduler handles the scheduled bill-due reminder job
type ReminderScheduler struct {
	reminderService  service.ReminderService
	logSchedulerRepo repository.LogSchedulerRepository
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
}

// NewReminderScheduler creates a new reminder scheduler
func NewReminderScheduler(reminderService service.ReminderService, logSchedulerRepo repository.LogSchedulerRepository, logger *logger.Logger, cronExpression string) *ReminderScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &ReminderScheduler{
		reminderService:  reminderService,
		logSchedulerRepo: logSchedulerRepo,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
	}
}

// Start initializes and starts all scheduled jobs
func (s *ReminderScheduler) Start() error {
	s.logger.Info("Starting reminder scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling reminder job")
	_, err := s.cron.AddFunc(s.cronExpression, s.runDueReminders)
	if err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Reminder scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *ReminderScheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Reminder scheduler stopped successfully")
}

// runDueReminders is the scheduled job that dispatches bill-due reminders
func (s *ReminderScheduler) runDueReminders() {
	schedulerCode := "BILL_DUE_REMINDERS"
	now := time.Now()
	docID := uuid.New().String()

	s.logScheduler(schedulerCode, docID, "Starting scheduled bill-due reminder run", "START", &now)
	s.logger.Info("Starting scheduled bill-due reminder run...")

	s.logScheduler(schedulerCode, docID, "Scanning unpaid billings for due reminders", "RUNNING", &now)

	summary, err := s.reminderService.Run(now)
	if err != nil {
		failedMessage := fmt.Sprintf("Reminder run failed: %v", err)
		s.logScheduler(schedulerCode, docID, failedMessage, "FAILED", &now)
		s.logger.WithError(err).Error("Reminder run failed")
		return
	}

	summaryJSON, _ := json.Marshal(summary)
	successMessage := fmt.Sprintf("Reminder run completed: %s", string(summaryJSON))
	s.logScheduler(schedulerCode, docID, successMessage, "SUCCESS", &now)

	s.logger.WithFields(map[string]interface{}{
		"bills_processed": summary.BillsProcessed,
	}).Info("Scheduled bill-due reminder run completed")
}

// logScheduler creates a new log entry in the database
func (s *ReminderScheduler) logScheduler(schedulerCode, documentID, message, status string, createdAt *time.Time) {
	logEntry := &models.LogScheduler{
		DocumentID:    &documentID,
		SchedulerCode: &schedulerCode,
		Message:       &message,
		Status:        &status,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}

	if err := s.logSchedulerRepo.CreateLogScheduler(logEntry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create scheduler log entry")
	}
}
