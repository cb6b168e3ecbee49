package service

import (
	"fmt"
	"strconv"
	"strings"

	"waterbill-be-svc/internal/models"
)

// NormalizePhoneNumber converts a free-form phone string into a
// country-prefixed number. Numbers already carrying a "+" are left alone; a
// leading "0" is replaced with the country prefix; anything else gets the
// prefix prepended unconditionally. No length validation is performed;
// malformed local numbers are prefixed as-is.
func NormalizePhoneNumber(raw, countryPrefix string) string {
	number := strings.TrimSpace(raw)

	if strings.HasPrefix(number, "+") {
		return number
	}
	if strings.HasPrefix(number, "0") {
		return countryPrefix + number[1:]
	}
	return countryPrefix + number
}

// urgencyPhrase renders how soon the bill is due
func urgencyPhrase(daysUntilDue int) string {
	switch daysUntilDue {
	case 0:
		return "TODAY"
	case 1:
		return "TOMORROW"
	default:
		return fmt.Sprintf("in %d days", daysUntilDue)
	}
}

// formatAmount renders a decimal without trailing zeros or exponent notation
func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// FormatReminderMessage renders the SMS body for one due bill and its
// account holder
func FormatReminderMessage(bill DueBill, user *models.User, currencySymbol string) string {
	return fmt.Sprintf(
		"Hi %s! Your water bill for account %s amounting to %s%s is due %s (%s). Your consumption this period is %s cubic meters. Please settle on or before the due date to avoid penalties. Thank you!",
		user.FullName,
		bill.AccountNumber,
		currencySymbol,
		formatAmount(bill.TotalAmount),
		urgencyPhrase(bill.DaysUntilDue),
		bill.DueDateOnly.Format("Jan 2, 2006"),
		formatAmount(bill.Consumption),
	)
}
