package models

import (
	"time"
)

// Notification dispatch status values
const (
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// Notification represents the notifications table. One row is the audit
// record of one reminder dispatch attempt.
type Notification struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	DocumentID    *string    `json:"document_id" gorm:"column:document_id"`
	BillingID     *uint      `json:"billing_id" gorm:"column:billing_id"`
	AccountNumber string     `json:"account_number" gorm:"column:account_number"`
	PhoneNumber   string     `json:"phone_number" gorm:"column:phone_number"`
	Message       string     `json:"message" gorm:"column:message"`
	Status        string     `json:"status" gorm:"column:status"`
	ErrorDetail   *string    `json:"error_detail" gorm:"column:error_detail"`
	CreatedAt     *time.Time `json:"created_at"`
}

// TableName sets the insert table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
