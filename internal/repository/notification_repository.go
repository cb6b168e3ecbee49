package repository

import (
	"gorm.io/gorm"

	"waterbill-be-svc/internal/models"
)

// NotificationRepository defines the interface for notification audit records
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	GetNotifications(page int, limit int) ([]*models.Notification, int64, error)
}

// notificationRepository implements NotificationRepository
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new instance of NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification creates a new notification audit record
func (r *notificationRepository) CreateNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetNotifications retrieves notification records ordered newest first, with pagination
func (r *notificationRepository) GetNotifications(page int, limit int) ([]*models.Notification, int64, error) {
	var notifications []*models.Notification
	var total int64

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	if err := r.db.Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}
