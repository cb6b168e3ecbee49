package models

import (
	"time"
)

// LogScheduler represents the log_schedulers table; one row per lifecycle
// transition of a scheduled job run (START/RUNNING/SUCCESS/FAILED).
type LogScheduler struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	DocumentID    *string    `json:"document_id" gorm:"column:document_id"`
	SchedulerCode *string    `json:"scheduler_code" gorm:"column:scheduler_code"`
	Message       *string    `json:"message" gorm:"column:message"`
	Status        *string    `json:"status" gorm:"column:status"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	CreatedByID   *int       `json:"created_by_id"`
}

// TableName sets the insert table name for LogScheduler
func (LogScheduler) TableName() string {
	return "log_schedulers"
}
