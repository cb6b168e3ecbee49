package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/internal/service"
	"waterbill-be-svc/pkg/logger"
	"waterbill-be-svc/pkg/utils"
)

type mockReminderService struct {
	runFunc func(now time.Time) (*service.ReminderRunSummary, error)
}

func (m *mockReminderService) Run(now time.Time) (*service.ReminderRunSummary, error) {
	return m.runFunc(now)
}

func (m *mockReminderService) SelectDueBills(bills []*models.Billing, now time.Time) []service.DueBill {
	return nil
}

type mockNotificationService struct {
	getFunc func(page, limit int) ([]*models.Notification, int64, error)
}

func (m *mockNotificationService) GetNotifications(page, limit int) ([]*models.Notification, int64, error) {
	return m.getFunc(page, limit)
}

func setupReminderRouter(reminderSvc service.ReminderService, notificationSvc service.NotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewReminderHandler(reminderSvc, notificationSvc, logger.NewLogger("error", "text"))
	router.POST("/api/v1/reminders/run", h.RunReminders)
	router.GET("/api/v1/notifications", h.GetNotifications)

	return router
}

func TestRunRemindersSuccess(t *testing.T) {
	reminderSvc := &mockReminderService{
		runFunc: func(now time.Time) (*service.ReminderRunSummary, error) {
			return &service.ReminderRunSummary{
				Success:        true,
				BillsProcessed: 2,
				Results: []service.ReminderOutcome{
					{BillID: 1, AccountNumber: "ACC-1", Success: true, PhoneNumberUsed: "+639171234567"},
					{BillID: 2, AccountNumber: "ACC-2", Success: false, ErrorDetail: "user not found"},
				},
			}, nil
		},
	}

	router := setupReminderRouter(reminderSvc, &mockNotificationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders/run", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Reminder run completed", response.Message)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), data["bills_processed"])
}

func TestRunRemindersFetchFailure(t *testing.T) {
	reminderSvc := &mockReminderService{
		runFunc: func(now time.Time) (*service.ReminderRunSummary, error) {
			return nil, fmt.Errorf("failed to fetch unpaid billings: connection refused")
		},
	}

	router := setupReminderRouter(reminderSvc, &mockNotificationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders/run", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
}

func TestGetNotifications(t *testing.T) {
	detail := "user not found"
	notificationSvc := &mockNotificationService{
		getFunc: func(page, limit int) ([]*models.Notification, int64, error) {
			assert.Equal(t, 1, page)
			assert.Equal(t, 20, limit)
			return []*models.Notification{
				{ID: 1, AccountNumber: "ACC-1", PhoneNumber: "+639171234567", Status: models.NotificationStatusSent},
				{ID: 2, AccountNumber: "ACC-2", Status: models.NotificationStatusFailed, ErrorDetail: &detail},
			}, 2, nil
		},
	}

	router := setupReminderRouter(&mockReminderService{}, notificationSvc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response utils.PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, int64(2), response.Pagination.Total)
}
