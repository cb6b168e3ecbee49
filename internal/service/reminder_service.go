package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"waterbill-be-svc/internal/config"
	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/internal/repository"
	"waterbill-be-svc/pkg/logger"
)

// DueBill is a billing record that falls inside the reminder window,
// together with the parsed due date and the whole days remaining until it.
type DueBill struct {
	*models.Billing
	DueDateOnly  time.Time
	DaysUntilDue int
}

// ReminderOutcome is the result of attempting to notify one bill
type ReminderOutcome struct {
	BillID          uint   `json:"bill_id"`
	AccountNumber   string `json:"account_number"`
	Success         bool   `json:"success"`
	PhoneNumberUsed string `json:"phone_number_used,omitempty"`
	ErrorDetail     string `json:"error_detail,omitempty"`
}

// ReminderRunSummary is the aggregate result of one reminder run
type ReminderRunSummary struct {
	Success        bool              `json:"success"`
	BillsProcessed int               `json:"bills_processed"`
	Results        []ReminderOutcome `json:"results"`
}

// ReminderService defines the interface for the bill-due reminder pipeline
type ReminderService interface {
	Run(now time.Time) (*ReminderRunSummary, error)
	SelectDueBills(bills []*models.Billing, now time.Time) []DueBill
}

// reminderService implements ReminderService
type reminderService struct {
	billingRepo      repository.BillingRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	smsService       SMSService
	logger           *logger.Logger
	location         *time.Location
	windowDays       int
	countryPrefix    string
	currencySymbol   string
}

// NewReminderService creates a new instance of ReminderService. The time
// zone named in cfg determines what "today" means for the due window.
func NewReminderService(
	billingRepo repository.BillingRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	smsService SMSService,
	cfg config.ReminderConfig,
	countryPrefix string,
	logger *logger.Logger,
) (ReminderService, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid reminder timezone %q: %w", cfg.Timezone, err)
	}

	return &reminderService{
		billingRepo:      billingRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		smsService:       smsService,
		logger:           logger,
		location:         location,
		windowDays:       cfg.WindowDays,
		countryPrefix:    countryPrefix,
		currencySymbol:   cfg.CurrencySymbol,
	}, nil
}

// dueDateLayouts are the formats the billing generator is known to write
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDueDate parses a raw due-date string and truncates it to a calendar
// date in the given zone. The second return value reports whether the
// string was parseable at all.
func parseDueDate(raw string, location *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dueDateLayouts {
		var t time.Time
		var err error
		if strings.Contains(layout, "Z07:00") {
			t, err = time.Parse(layout, raw)
			if err == nil {
				t = t.In(location)
			}
		} else {
			t, err = time.ParseInLocation(layout, raw, location)
		}
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, location), true
		}
	}

	return time.Time{}, false
}

// daysBetween counts calendar days between two midnights in the same zone.
// A DST transition makes the raw duration drift by up to an hour, so the
// result is rounded to whole days rather than divided.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Round(24*time.Hour) / (24 * time.Hour))
}

// SelectDueBills returns the bills whose due date (date-only) falls inside
// [today, today+windowDays], both ends inclusive. Both sides of the
// comparison are midnight-in-zone calendar dates, so a bill due at any time
// on the last day is covered and a DST-shortened day never widens the
// window. Bills with unparsable due dates are skipped silently; that is a
// filtering decision, not a fault.
func (s *reminderService) SelectDueBills(bills []*models.Billing, now time.Time) []DueBill {
	nowLocal := now.In(s.location)
	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, s.location)
	windowEnd := today.AddDate(0, 0, s.windowDays)

	var due []DueBill
	for _, bill := range bills {
		dueDateOnly, ok := parseDueDate(bill.DueDate, s.location)
		if !ok {
			s.logger.WithFields(map[string]interface{}{
				"billing_id": bill.ID,
				"due_date":   bill.DueDate,
			}).Warn("Skipping billing with unparsable due date")
			continue
		}

		if dueDateOnly.Before(today) || dueDateOnly.After(windowEnd) {
			continue
		}

		daysUntilDue := daysBetween(today, dueDateOnly)
		due = append(due, DueBill{
			Billing:      bill,
			DueDateOnly:  dueDateOnly,
			DaysUntilDue: daysUntilDue,
		})
	}

	return due
}

// Run executes one reminder batch: fetch unpaid bills, filter to the due
// window, then notify each due bill. Per-bill faults are converted into
// outcomes and never abort the run; only the initial fetch error does.
func (s *reminderService) Run(now time.Time) (*ReminderRunSummary, error) {
	bills, err := s.billingRepo.GetUnpaidBillings()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unpaid billings: %w", err)
	}

	dueBills := s.SelectDueBills(bills, now)
	s.logger.WithFields(map[string]interface{}{
		"unpaid_bills": len(bills),
		"due_bills":    len(dueBills),
	}).Info("Reminder run started")

	summary := &ReminderRunSummary{
		Success:        true,
		BillsProcessed: len(dueBills),
		Results:        make([]ReminderOutcome, 0, len(dueBills)),
	}

	for _, bill := range dueBills {
		outcome, message := s.processBill(bill)
		s.recordNotification(bill, outcome, message)
		summary.Results = append(summary.Results, outcome)
	}

	s.logger.WithFields(map[string]interface{}{
		"bills_processed": summary.BillsProcessed,
	}).Info("Reminder run completed")

	return summary, nil
}

// processBill resolves, formats and dispatches the reminder for one due
// bill. Every exit path yields exactly one outcome; a panic from a
// collaborator is contained here so sibling bills still get processed.
func (s *reminderService) processBill(bill DueBill) (outcome ReminderOutcome, message string) {
	outcome = ReminderOutcome{
		BillID:        bill.ID,
		AccountNumber: bill.AccountNumber,
	}

	defer func() {
		if r := recover(); r != nil {
			outcome.Success = false
			outcome.PhoneNumberUsed = ""
			outcome.ErrorDetail = fmt.Sprintf("panic while processing bill: %v", r)
			s.logger.WithField("billing_id", bill.ID).Error(outcome.ErrorDetail)
		}
	}()

	if bill.UserID == nil {
		outcome.ErrorDetail = "user not found"
		s.logger.WithField("billing_id", bill.ID).Warn("Billing has no user reference")
		return outcome, ""
	}

	user, err := s.userRepo.GetUserByID(*bill.UserID)
	if err != nil {
		outcome.ErrorDetail = "user not found"
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"billing_id": bill.ID,
			"user_id":    *bill.UserID,
		}).Warn("Failed to resolve billing recipient")
		return outcome, ""
	}

	if strings.TrimSpace(user.ContactNumber) == "" {
		outcome.ErrorDetail = "user has no contact number"
		s.logger.WithFields(map[string]interface{}{
			"billing_id": bill.ID,
			"user_id":    user.ID,
		}).Warn("Billing recipient has no contact number")
		return outcome, ""
	}

	phone := NormalizePhoneNumber(user.ContactNumber, s.countryPrefix)
	message = FormatReminderMessage(bill, user, s.currencySymbol)

	if _, err := s.smsService.SendSMS(phone, message); err != nil {
		outcome.ErrorDetail = err.Error()
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"billing_id":   bill.ID,
			"phone_number": phone,
		}).Error("Failed to dispatch reminder SMS")
		return outcome, message
	}

	outcome.Success = true
	outcome.PhoneNumberUsed = phone
	s.logger.WithFields(map[string]interface{}{
		"billing_id":   bill.ID,
		"phone_number": phone,
	}).Info("Reminder SMS dispatched")

	return outcome, message
}

// recordNotification writes the audit row for one outcome. Audit failures
// are logged but never fail the bill.
func (s *reminderService) recordNotification(bill DueBill, outcome ReminderOutcome, message string) {
	now := time.Now()
	docID := uuid.New().String()
	billingID := bill.ID

	status := models.NotificationStatusSent
	var errorDetail *string
	if !outcome.Success {
		status = models.NotificationStatusFailed
		detail := outcome.ErrorDetail
		errorDetail = &detail
	}

	notification := &models.Notification{
		DocumentID:    &docID,
		BillingID:     &billingID,
		AccountNumber: bill.AccountNumber,
		PhoneNumber:   outcome.PhoneNumberUsed,
		Message:       message,
		Status:        status,
		ErrorDetail:   errorDetail,
		CreatedAt:     &now,
	}

	if err := s.notificationRepo.CreateNotification(notification); err != nil {
		s.logger.WithError(err).WithField("billing_id", bill.ID).Error("Failed to record notification audit row")
	}
}
