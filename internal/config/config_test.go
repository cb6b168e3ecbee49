package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// The CI or developer environment may carry any of these; blank them so
	// the fallbacks are what gets asserted.
	for _, key := range []string{
		"PORT", "GIN_MODE",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"LOG_LEVEL", "LOG_FORMAT",
		"SMS_API_URL", "SMS_API_TOKEN", "SMS_COUNTRY_PREFIX", "SMS_TIMEOUT_SECONDS",
		"REMINDER_WINDOW_DAYS", "REMINDER_TIMEZONE", "CURRENCY_SYMBOL",
		"CORS_ALLOWED_ORIGINS", "REMINDER_CRON_EXPRESSION",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "waterbill", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "https://sms.iprogtech.com/api/v1/sms_messages", cfg.SMS.APIURL)
	assert.Equal(t, "+63", cfg.SMS.CountryPrefix)
	assert.Equal(t, 30*time.Second, cfg.SMS.Timeout)
	assert.Equal(t, 3, cfg.Reminder.WindowDays)
	assert.Equal(t, "Asia/Manila", cfg.Reminder.Timezone)
	assert.Equal(t, "₱", cfg.Reminder.CurrencySymbol)
	assert.Equal(t, "0 0 8 * * *", cfg.Scheduler.ReminderCronExpression)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("SMS_API_TOKEN", "abc123")
	t.Setenv("SMS_TIMEOUT_SECONDS", "10")
	t.Setenv("REMINDER_WINDOW_DAYS", "5")
	t.Setenv("REMINDER_TIMEZONE", "Asia/Tokyo")
	t.Setenv("REMINDER_CRON_EXPRESSION", "0 30 7 * * *")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "abc123", cfg.SMS.APIToken)
	assert.Equal(t, 10*time.Second, cfg.SMS.Timeout)
	assert.Equal(t, 5, cfg.Reminder.WindowDays)
	assert.Equal(t, "Asia/Tokyo", cfg.Reminder.Timezone)
	assert.Equal(t, "0 30 7 * * *", cfg.Scheduler.ReminderCronExpression)
}

func TestGetEnvAsIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "admin",
		Password: "secret",
		DBName:   "waterbill",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=admin password=secret dbname=waterbill sslmode=disable", db.GetDSN())
}
