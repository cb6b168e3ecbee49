package models

import (
	"time"
)

// Billing status values as stored in the billings table
const (
	BillingStatusUnpaid = "unpaid"
	BillingStatusPaid   = "paid"
)

// Billing represents the billings table. One row is one billing cycle for
// one account. DueDate is kept as the raw ISO-8601 string written by the
// billing generator; parsing happens at the reminder boundary so malformed
// dates never poison queries.
type Billing struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	DocumentID    *string    `json:"document_id" gorm:"column:document_id"`
	AccountNumber string     `json:"account_number" gorm:"column:account_number"`
	UserID        *uint      `json:"user_id" gorm:"column:user_id"`
	Status        string     `json:"status" gorm:"column:status"`
	DueDate       string     `json:"due_date" gorm:"column:due_date"`
	TotalAmount   float64    `json:"total_amount" gorm:"column:total_amount"`
	Consumption   float64    `json:"consumption" gorm:"column:consumption"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	CreatedByID   *int       `json:"created_by_id"`
	UpdatedByID   *int       `json:"updated_by_id"`
}

// TableName sets the insert table name for Billing
func (Billing) TableName() string {
	return "billings"
}
