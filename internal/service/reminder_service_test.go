package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterbill-be-svc/internal/config"
	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/pkg/logger"
)

type mockBillingRepo struct {
	getUnpaidFunc func() ([]*models.Billing, error)
}

func (m *mockBillingRepo) GetBillingByID(id uint) (*models.Billing, error) { return nil, nil }
func (m *mockBillingRepo) GetUnpaidBillings() ([]*models.Billing, error)  { return m.getUnpaidFunc() }
func (m *mockBillingRepo) GetBillings(status, search string, page, limit int) ([]*models.Billing, int64, error) {
	return nil, 0, nil
}
func (m *mockBillingRepo) GetBillingsForExport(status string) ([]*models.Billing, error) {
	return nil, nil
}
func (m *mockBillingRepo) CreateBilling(billing *models.Billing) error { return nil }
func (m *mockBillingRepo) ConfirmPayment(ids []uint) error             { return nil }

type mockUserRepo struct {
	getUserByIDFunc func(id uint) (*models.User, error)
}

func (m *mockUserRepo) GetUserByID(id uint) (*models.User, error) { return m.getUserByIDFunc(id) }
func (m *mockUserRepo) GetUsers(role, search string, page, limit int) ([]*models.User, int64, error) {
	return nil, 0, nil
}
func (m *mockUserRepo) CreateUser(user *models.User) error { return nil }
func (m *mockUserRepo) UpdateUser(user *models.User) error { return nil }
func (m *mockUserRepo) DeleteUser(id uint) error           { return nil }

type mockNotificationRepo struct {
	created []*models.Notification
}

func (m *mockNotificationRepo) CreateNotification(n *models.Notification) error {
	m.created = append(m.created, n)
	return nil
}
func (m *mockNotificationRepo) GetNotifications(page, limit int) ([]*models.Notification, int64, error) {
	return nil, 0, nil
}

type mockSMSService struct {
	sendFunc func(phoneNumber, message string) (map[string]interface{}, error)
	calls    []string
}

func (m *mockSMSService) SendSMS(phoneNumber, message string) (map[string]interface{}, error) {
	m.calls = append(m.calls, phoneNumber)
	return m.sendFunc(phoneNumber, message)
}

func newTestReminderService(t *testing.T, billingRepo *mockBillingRepo, userRepo *mockUserRepo, notificationRepo *mockNotificationRepo, sms *mockSMSService) ReminderService {
	t.Helper()

	cfg := config.ReminderConfig{
		WindowDays:     3,
		Timezone:       "Asia/Manila",
		CurrencySymbol: "₱",
	}

	svc, err := NewReminderService(billingRepo, userRepo, notificationRepo, sms, cfg, "+63", logger.NewLogger("error", "text"))
	require.NoError(t, err)
	return svc
}

func uintPtr(v uint) *uint { return &v }

// testNow is 18:30 on 2025-11-20 Manila time; a due date on the same day
// must still count as due even though business hours are over.
func testNow(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	return time.Date(2025, time.November, 20, 18, 30, 0, 0, loc)
}

func TestSelectDueBills(t *testing.T) {
	svc := newTestReminderService(t, &mockBillingRepo{}, &mockUserRepo{}, &mockNotificationRepo{}, &mockSMSService{})
	now := testNow(t)

	tests := []struct {
		name         string
		dueDate      string
		wantIncluded bool
		wantDays     int
	}{
		{
			name:         "due today after business hours",
			dueDate:      "2025-11-20",
			wantIncluded: true,
			wantDays:     0,
		},
		{
			name:         "due tomorrow",
			dueDate:      "2025-11-21T09:00:00",
			wantIncluded: true,
			wantDays:     1,
		},
		{
			name:         "due in two days",
			dueDate:      "2025-11-22",
			wantIncluded: true,
			wantDays:     2,
		},
		{
			name:         "due exactly three days out at midnight",
			dueDate:      "2025-11-23T00:00:00",
			wantIncluded: true,
			wantDays:     3,
		},
		{
			name:         "due three days out late in the day",
			dueDate:      "2025-11-23T23:00:00",
			wantIncluded: true,
			wantDays:     3,
		},
		{
			name:         "due four days out at midnight",
			dueDate:      "2025-11-24T00:00:00",
			wantIncluded: false,
		},
		{
			name:         "due five days out",
			dueDate:      "2025-11-25",
			wantIncluded: false,
		},
		{
			name:         "already past due",
			dueDate:      "2025-11-19",
			wantIncluded: false,
		},
		{
			name:         "unparsable due date excluded silently",
			dueDate:      "not-a-date",
			wantIncluded: false,
		},
		{
			name:         "empty due date excluded silently",
			dueDate:      "",
			wantIncluded: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bills := []*models.Billing{{ID: 1, AccountNumber: "ACC-1", DueDate: tt.dueDate}}

			due := svc.SelectDueBills(bills, now)

			if !tt.wantIncluded {
				assert.Empty(t, due)
				return
			}
			require.Len(t, due, 1)
			assert.Equal(t, tt.wantDays, due[0].DaysUntilDue)
		})
	}
}

func TestSelectDueBillsAcrossDSTTransition(t *testing.T) {
	// Europe/Paris springs forward on 2026-03-29 (a 23-hour day) and falls
	// back on 2026-10-25 (a 25-hour day). The window must stay a calendar
	// window: day+3 included, day+4 excluded, regardless of the shift.
	cfg := config.ReminderConfig{WindowDays: 3, Timezone: "Europe/Paris", CurrencySymbol: "€"}
	svc, err := NewReminderService(&mockBillingRepo{}, &mockUserRepo{}, &mockNotificationRepo{}, &mockSMSService{}, cfg, "+33", logger.NewLogger("error", "text"))
	require.NoError(t, err)

	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	tests := []struct {
		name         string
		now          time.Time
		dueDate      string
		wantIncluded bool
		wantDays     int
	}{
		{
			name:         "spring forward day at window end is included",
			now:          time.Date(2026, time.March, 26, 10, 0, 0, 0, loc),
			dueDate:      "2026-03-29",
			wantIncluded: true,
			wantDays:     3,
		},
		{
			name:         "day after spring forward window end is excluded",
			now:          time.Date(2026, time.March, 26, 10, 0, 0, 0, loc),
			dueDate:      "2026-03-30",
			wantIncluded: false,
		},
		{
			name:         "fall back day at window end is included",
			now:          time.Date(2026, time.October, 22, 10, 0, 0, 0, loc),
			dueDate:      "2026-10-25",
			wantIncluded: true,
			wantDays:     3,
		},
		{
			name:         "day after fall back window end is excluded",
			now:          time.Date(2026, time.October, 22, 10, 0, 0, 0, loc),
			dueDate:      "2026-10-26",
			wantIncluded: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bills := []*models.Billing{{ID: 1, AccountNumber: "ACC-1", DueDate: tt.dueDate}}

			due := svc.SelectDueBills(bills, tt.now)

			if !tt.wantIncluded {
				assert.Empty(t, due)
				return
			}
			require.Len(t, due, 1)
			assert.Equal(t, tt.wantDays, due[0].DaysUntilDue)
		})
	}
}

func TestSelectDueBillsRFC3339(t *testing.T) {
	svc := newTestReminderService(t, &mockBillingRepo{}, &mockUserRepo{}, &mockNotificationRepo{}, &mockSMSService{})
	now := testNow(t)

	bills := []*models.Billing{{ID: 1, DueDate: "2025-11-22T15:00:00+08:00"}}

	due := svc.SelectDueBills(bills, now)

	require.Len(t, due, 1)
	assert.Equal(t, 2, due[0].DaysUntilDue)
}

func TestRunScenarioSuccessfulDispatch(t *testing.T) {
	// Scenario: bill due in 2 days, valid resident with a local mobile
	// number; the number must be normalized and the message must carry
	// the urgency phrase.
	billingRepo := &mockBillingRepo{
		getUnpaidFunc: func() ([]*models.Billing, error) {
			return []*models.Billing{
				{ID: 1, AccountNumber: "ACC-1", UserID: uintPtr(10), Status: "unpaid", DueDate: "2025-11-22", TotalAmount: 350.75, Consumption: 14},
			}, nil
		},
	}
	userRepo := &mockUserRepo{
		getUserByIDFunc: func(id uint) (*models.User, error) {
			return &models.User{ID: id, FullName: "Juan Dela Cruz", ContactNumber: "09171234567"}, nil
		},
	}
	notificationRepo := &mockNotificationRepo{}

	var sentMessage string
	sms := &mockSMSService{
		sendFunc: func(phoneNumber, message string) (map[string]interface{}, error) {
			sentMessage = message
			return map[string]interface{}{"status": "queued"}, nil
		},
	}

	svc := newTestReminderService(t, billingRepo, userRepo, notificationRepo, sms)

	summary, err := svc.Run(testNow(t))

	require.NoError(t, err)
	assert.True(t, summary.Success)
	assert.Equal(t, 1, summary.BillsProcessed)
	require.Len(t, summary.Results, 1)

	outcome := summary.Results[0]
	assert.True(t, outcome.Success)
	assert.Equal(t, uint(1), outcome.BillID)
	assert.Equal(t, "ACC-1", outcome.AccountNumber)
	assert.Equal(t, "+639171234567", outcome.PhoneNumberUsed)
	assert.Empty(t, outcome.ErrorDetail)

	assert.Contains(t, sentMessage, "in 2 days")
	assert.Equal(t, []string{"+639171234567"}, sms.calls)

	require.Len(t, notificationRepo.created, 1)
	assert.Equal(t, models.NotificationStatusSent, notificationRepo.created[0].Status)
}

func TestRunScenarioDueToday(t *testing.T) {
	billingRepo := &mockBillingRepo{
		getUnpaidFunc: func() ([]*models.Billing, error) {
			return []*models.Billing{
				{ID: 2, AccountNumber: "ACC-2", UserID: uintPtr(11), DueDate: "2025-11-20", TotalAmount: 100, Consumption: 5},
			}, nil
		},
	}
	userRepo := &mockUserRepo{
		getUserByIDFunc: func(id uint) (*models.User, error) {
			return &models.User{ID: id, FullName: "Maria Santos", ContactNumber: "+639998887766"}, nil
		},
	}

	var sentMessage string
	sms := &mockSMSService{
		sendFunc: func(phoneNumber, message string) (map[string]interface{}, error) {
			sentMessage = message
			return nil, nil
		},
	}

	svc := newTestReminderService(t, billingRepo, userRepo, &mockNotificationRepo{}, sms)

	summary, err := svc.Run(testNow(t))

	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.True(t, summary.Results[0].Success)
	assert.Contains(t, sentMessage, "TODAY")
}

func TestRunScenarioUserNotFound(t *testing.T) {
	billingRepo := &mockBillingRepo{
		getUnpaidFunc: func() ([]*models.Billing, error) {
			return []*models.Billing{
				{ID: 3, AccountNumber: "ACC-3", UserID: uintPtr(99), DueDate: "2025-11-21", TotalAmount: 80, Consumption: 3},
			}, nil
		},
	}
	userRepo := &mockUserRepo{
		getUserByIDFunc: func(id uint) (*models.User, error) {
			return nil, fmt.Errorf("record not found")
		},
	}
	sms := &mockSMSService{
		sendFunc: func(phoneNumber, message string) (map[string]interface{}, error) {
			return nil, nil
		},
	}

	svc := newTestReminderService(t, billingRepo, userRepo, &mockNotificationRepo{}, sms)

	summary, err := svc.Run(testNow(t))

	require.NoError(t, err)
	require.Len(t, summary.Results, 1)

	outcome := summary.Results[0]
	assert.False(t, outcome.Success)
	assert.Equal(t, "user not found", outcome.ErrorDetail)
	assert.Empty(t, sms.calls, "no dispatch may be attempted when the recipient is missing")
}

func TestRunScenarioMissingUserReference(t *testing.T) {
	// Legacy billing rows may carry no user reference at all.
	billingRepo := &mockBillingRepo{
		getUnpaidFunc: func() ([]*models.Billing, error) {
			return []*models.Billing{
				{ID: 4, AccountNumber: "ACC-4", UserID: nil, DueDate: "2025-11-21", TotalAmount: 80, Consumption: 3},
			}, nil
		},
	}
	sms := &mockSMSService{
		sendFunc: func(phoneNumber, message string) (map[string]interface{}, error) {
			return nil, nil
		},
	}

	svc := newTestReminderService(t, billingRepo, &mockUserRepo{}, &mockNotificationRepo{}, sms)

	summary, err := svc.Run(testNow(t))

	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.False(t, summary.Results[0].Success)
	assert.Equal(t, "user not found", summary.Results[0].ErrorDetail)
	assert.Empty(t, sms.calls)
}

func TestRunScenarioNoContactNumber(t *testing.T) {
	billingRepo := &mockBillingRepo{
		getUnpaidFunc: func() ([]*models.Billing, error) {
			return []*models.Billing{
				{ID: 5, AccountNumber: "ACC-5", UserID: uintPtr(12), DueDate: "2025-11-21", TotalAmount: 120, Consumption: 6},
			}, nil
		},
	}
	userRepo := &mockUserRepo{
		getUserByIDFunc: func(id uint) (*models.User, error) {
			return &models.User{ID: id, FullName: "Pedro Reyes", ContactNumber: "   "}, nil
		},
	}
	sms := &mockSMSService{
		sendFunc: func(phoneNumber, message string) (map[string]interface{}, error) {
			return nil, nil
		},
	}

	svc := newTestReminderService(t, billingRepo, userRepo, &mockNotificationRepo{}, sms)

	summary, err := svc.Run(testNow(t))

	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.False(t, summary.Results[0].Success)
	assert.Equal(t, "user has no contact number", summary.Results[0].ErrorDetail)
	assert.Empty(t, sms.calls)
}

func TestRunScenarioPartialDispatchFailure(t *testing.T) {
	// Two due bills; one dispatch fails, the other succeeds. The run
	// itself must not abort and every due bill must produce exactly one
	// outcome.
	billingRepo := &mockBillingRepo{
		getUnpaidFunc: func() ([]*models.Billing, error) {
			return []*models.Billing{
				{ID: 6, AccountNumber: "ACC-6", UserID: uintPtr(20), DueDate: "2025-11-21", TotalAmount: 90, Consumption: 4},
				{ID: 7, AccountNumber: "ACC-7", UserID: uintPtr(21), DueDate: "2025-11-22", TotalAmount: 110, Consumption: 5},
			}, nil
		},
	}
	userRepo := &mockUserRepo{
		getUserByIDFunc: func(id uint) (*models.User, error) {
			return &models.User{ID: id, FullName: "Resident", ContactNumber: "09170000000"}, nil
		},
	}
	notificationRepo := &mockNotificationRepo{}

	callCount := 0
	sms := &mockSMSService{}
	sms.sendFunc = func(phoneNumber, message string) (map[string]interface{}, error) {
		callCount++
		if callCount == 1 {
			return nil, fmt.Errorf("sms gateway returned status 502: bad gateway")
		}
		return map[string]interface{}{"status": "queued"}, nil
	}

	svc := newTestReminderService(t, billingRepo, userRepo, notificationRepo, sms)

	summary, err := svc.Run(testNow(t))

	require.NoError(t, err, "per-bill dispatch failures must not abort the run")
	assert.True(t, summary.Success)
	assert.Equal(t, 2, summary.BillsProcessed)
	require.Len(t, summary.Results, 2)

	var successes, failures int
	for _, outcome := range summary.Results {
		if outcome.Success {
			successes++
		} else {
			failures++
			assert.Contains(t, outcome.ErrorDetail, "502")
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, failures)

	require.Len(t, notificationRepo.created, 2)
}

func TestRunScenarioBillOutsideWindowProducesNoOutcome(t *testing.T) {
	billingRepo := &mockBillingRepo{
		getUnpaidFunc: func() ([]*models.Billing, error) {
			return []*models.Billing{
				{ID: 8, AccountNumber: "ACC-8", UserID: uintPtr(30), DueDate: "2025-11-25", TotalAmount: 60, Consumption: 2},
			}, nil
		},
	}
	sms := &mockSMSService{
		sendFunc: func(phoneNumber, message string) (map[string]interface{}, error) {
			return nil, nil
		},
	}

	svc := newTestReminderService(t, billingRepo, &mockUserRepo{}, &mockNotificationRepo{}, sms)

	summary, err := svc.Run(testNow(t))

	require.NoError(t, err)
	assert.Equal(t, 0, summary.BillsProcessed)
	assert.Empty(t, summary.Results)
	assert.Empty(t, sms.calls)
}

func TestRunFetchFailureAbortsRun(t *testing.T) {
	billingRepo := &mockBillingRepo{
		getUnpaidFunc: func() ([]*models.Billing, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}

	svc := newTestReminderService(t, billingRepo, &mockUserRepo{}, &mockNotificationRepo{}, &mockSMSService{})

	summary, err := svc.Run(testNow(t))

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "failed to fetch unpaid billings")
}

func TestRunPanicInDispatchIsIsolated(t *testing.T) {
	billingRepo := &mockBillingRepo{
		getUnpaidFunc: func() ([]*models.Billing, error) {
			return []*models.Billing{
				{ID: 9, AccountNumber: "ACC-9", UserID: uintPtr(40), DueDate: "2025-11-20", TotalAmount: 40, Consumption: 1},
				{ID: 10, AccountNumber: "ACC-10", UserID: uintPtr(41), DueDate: "2025-11-21", TotalAmount: 50, Consumption: 2},
			}, nil
		},
	}
	userRepo := &mockUserRepo{
		getUserByIDFunc: func(id uint) (*models.User, error) {
			return &models.User{ID: id, FullName: "Resident", ContactNumber: "09170000000"}, nil
		},
	}

	callCount := 0
	sms := &mockSMSService{}
	sms.sendFunc = func(phoneNumber, message string) (map[string]interface{}, error) {
		callCount++
		if callCount == 1 {
			panic("gateway client blew up")
		}
		return nil, nil
	}

	svc := newTestReminderService(t, billingRepo, userRepo, &mockNotificationRepo{}, sms)

	summary, err := svc.Run(testNow(t))

	require.NoError(t, err)
	require.Len(t, summary.Results, 2)
	assert.False(t, summary.Results[0].Success)
	assert.Contains(t, summary.Results[0].ErrorDetail, "panic")
	assert.True(t, summary.Results[1].Success)
}

func TestNewReminderServiceRejectsBadTimezone(t *testing.T) {
	cfg := config.ReminderConfig{WindowDays: 3, Timezone: "Not/AZone", CurrencySymbol: "₱"}

	_, err := NewReminderService(&mockBillingRepo{}, &mockUserRepo{}, &mockNotificationRepo{}, &mockSMSService{}, cfg, "+63", logger.NewLogger("error", "text"))

	require.Error(t, err)
}
