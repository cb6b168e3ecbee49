package models

import (
	"time"
)

// Setting represents the settings table (billing rates and penalties)
type Setting struct {
	ID                uint       `json:"id" gorm:"primarykey"`
	DocumentID        *string    `json:"document_id" gorm:"column:document_id"`
	RatePerCubicMeter float64    `json:"rate_per_cubic_meter" gorm:"column:rate_per_cubic_meter"`
	PenaltyRate       float64    `json:"penalty_rate" gorm:"column:penalty_rate"`
	IsActive          *bool      `json:"is_active" gorm:"column:is_active"`
	CreatedAt         *time.Time `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
	UpdatedByID       *int       `json:"updated_by_id"`
}

// TableName sets the insert table name for Setting
func (Setting) TableName() string {
	return "settings"
}
