package service

import (
	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/internal/repository"
	"waterbill-be-svc/pkg/logger"
)

// NotificationService defines the interface for notification audit queries
type NotificationService interface {
	GetNotifications(page int, limit int) ([]*models.Notification, int64, error)
}

// notificationService implements NotificationService
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(notificationRepo repository.NotificationRepository, logger *logger.Logger) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// GetNotifications lists notification audit rows with pagination
func (s *notificationService) GetNotifications(page int, limit int) ([]*models.Notification, int64, error) {
	return s.notificationRepo.GetNotifications(page, limit)
}
