package models

import (
	"time"
)

// Announcement represents the announcements table
type Announcement struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	DocumentID  *string    `json:"document_id" gorm:"column:document_id"`
	Title       string     `json:"title" gorm:"column:title"`
	Body        string     `json:"body" gorm:"column:body"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	CreatedByID *int       `json:"created_by_id"`
	UpdatedByID *int       `json:"updated_by_id"`
}

// TableName sets the insert table name for Announcement
func (Announcement) TableName() string {
	return "announcements"
}
