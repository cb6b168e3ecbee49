package models

import (
	"time"
)

// User role types
const (
	RoleAdmin     = "admin"
	RoleCollector = "collector"
	RoleResident  = "resident"
)

// User represents the users table (households, collectors and admins)
type User struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	DocumentID    string    `json:"document_id" gorm:"column:document_id"`
	FullName      string    `json:"full_name" gorm:"column:full_name"`
	Username      string    `json:"username" gorm:"column:username"`
	Email         string    `json:"email" gorm:"column:email"`
	Password      string    `json:"-" gorm:"column:password"`
	ContactNumber string    `json:"contact_number" gorm:"column:contact_number"`
	Address       string    `json:"address" gorm:"column:address"`
	Role          string    `json:"role" gorm:"column:role"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	CreatedByID   *int      `json:"created_by_id"`
	UpdatedByID   *int      `json:"updated_by_id"`
}

// TableName sets the insert table name for User
func (User) TableName() string {
	return "users"
}
