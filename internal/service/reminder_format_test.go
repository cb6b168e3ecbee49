package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"waterbill-be-svc/internal/models"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "already prefixed with plus",
			raw:  "+639171234567",
			want: "+639171234567",
		},
		{
			name: "leading zero replaced",
			raw:  "09171234567",
			want: "+639171234567",
		},
		{
			name: "no leading zero gets prefix",
			raw:  "9171234567",
			want: "+639171234567",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  09171234567  ",
			want: "+639171234567",
		},
		{
			name: "short number still prefixed, no validation",
			raw:  "12345",
			want: "+6312345",
		},
		{
			name: "short number with leading zero still prefixed",
			raw:  "0123",
			want: "+63123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhoneNumber(tt.raw, "+63"))
		})
	}
}

func TestNormalizePhoneNumberIdempotent(t *testing.T) {
	inputs := []string{"+639171234567", "09171234567", "9171234567", "12345"}

	for _, raw := range inputs {
		once := NormalizePhoneNumber(raw, "+63")
		twice := NormalizePhoneNumber(once, "+63")
		assert.Equal(t, once, twice, "normalization must be idempotent for %q", raw)
	}
}

func TestUrgencyPhrase(t *testing.T) {
	assert.Equal(t, "TODAY", urgencyPhrase(0))
	assert.Equal(t, "TOMORROW", urgencyPhrase(1))
	assert.Equal(t, "in 2 days", urgencyPhrase(2))
	assert.Equal(t, "in 3 days", urgencyPhrase(3))
}

func TestFormatReminderMessage(t *testing.T) {
	dueDate := time.Date(2025, time.November, 23, 0, 0, 0, 0, time.UTC)
	bill := DueBill{
		Billing: &models.Billing{
			ID:            7,
			AccountNumber: "ACC-0042",
			TotalAmount:   245.5,
			Consumption:   12.3,
		},
		DueDateOnly:  dueDate,
		DaysUntilDue: 2,
	}
	user := &models.User{FullName: "Juan Dela Cruz"}

	message := FormatReminderMessage(bill, user, "₱")

	assert.Contains(t, message, "Juan Dela Cruz")
	assert.Contains(t, message, "ACC-0042")
	assert.Contains(t, message, "₱245.5")
	assert.Contains(t, message, "in 2 days")
	assert.Contains(t, message, "Nov 23, 2025")
	assert.Contains(t, message, "12.3")
}

func TestFormatReminderMessageDueToday(t *testing.T) {
	bill := DueBill{
		Billing: &models.Billing{
			AccountNumber: "ACC-0001",
			TotalAmount:   100,
			Consumption:   8,
		},
		DueDateOnly:  time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC),
		DaysUntilDue: 0,
	}
	user := &models.User{FullName: "Maria Santos"}

	message := FormatReminderMessage(bill, user, "₱")

	assert.Contains(t, message, "TODAY")
	assert.Contains(t, message, "Nov 20, 2025")
}
