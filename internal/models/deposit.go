package models

import (
	"time"
)

// Deposit represents the deposits table (cash collected into the fund)
type Deposit struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	DocumentID  *string    `json:"document_id" gorm:"column:document_id"`
	Amount      float64    `json:"amount" gorm:"column:amount"`
	Description string     `json:"description" gorm:"column:description"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	CreatedByID *int       `json:"created_by_id"`
}

// TableName sets the insert table name for Deposit
func (Deposit) TableName() string {
	return "deposits"
}
