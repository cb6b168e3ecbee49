package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/internal/repository"
	"waterbill-be-svc/pkg/logger"
)

// AnnouncementService defines the interface for announcement operations
type AnnouncementService interface {
	GetAnnouncements(page int, limit int) ([]*models.Announcement, int64, error)
	CreateAnnouncement(announcement *models.Announcement) error
	UpdateAnnouncement(announcement *models.Announcement) error
	DeleteAnnouncement(id uint) error
}

// announcementService implements AnnouncementService
type announcementService struct {
	announcementRepo repository.AnnouncementRepository
	logger           *logger.Logger
}

// NewAnnouncementService creates a new instance of AnnouncementService
func NewAnnouncementService(announcementRepo repository.AnnouncementRepository, logger *logger.Logger) AnnouncementService {
	return &announcementService{
		announcementRepo: announcementRepo,
		logger:           logger,
	}
}

// GetAnnouncements lists announcements with pagination
func (s *announcementService) GetAnnouncements(page int, limit int) ([]*models.Announcement, int64, error) {
	return s.announcementRepo.GetAnnouncements(page, limit)
}

// CreateAnnouncement creates a new announcement
func (s *announcementService) CreateAnnouncement(announcement *models.Announcement) error {
	if announcement.Title == "" {
		return fmt.Errorf("announcement title cannot be empty")
	}

	docID := uuid.New().String()
	now := time.Now()
	announcement.DocumentID = &docID
	announcement.CreatedAt = &now
	announcement.UpdatedAt = &now

	return s.announcementRepo.CreateAnnouncement(announcement)
}

// UpdateAnnouncement updates an existing announcement
func (s *announcementService) UpdateAnnouncement(announcement *models.Announcement) error {
	if announcement.ID == 0 {
		return fmt.Errorf("invalid announcement ID")
	}

	existing, err := s.announcementRepo.GetAnnouncementByID(announcement.ID)
	if err != nil {
		return fmt.Errorf("announcement not found: %w", err)
	}

	now := time.Now()
	existing.Title = announcement.Title
	existing.Body = announcement.Body
	existing.UpdatedAt = &now

	return s.announcementRepo.UpdateAnnouncement(existing)
}

// DeleteAnnouncement deletes an announcement by ID
func (s *announcementService) DeleteAnnouncement(id uint) error {
	if id == 0 {
		return fmt.Errorf("invalid announcement ID")
	}
	return s.announcementRepo.DeleteAnnouncement(id)
}
