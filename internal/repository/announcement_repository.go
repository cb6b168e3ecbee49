package repository

import (
	"gorm.io/gorm"

	"waterbill-be-svc/internal/models"
)

// AnnouncementRepository defines the interface for announcement data operations
type AnnouncementRepository interface {
	GetAnnouncements(page int, limit int) ([]*models.Announcement, int64, error)
	GetAnnouncementByID(id uint) (*models.Announcement, error)
	CreateAnnouncement(announcement *models.Announcement) error
	UpdateAnnouncement(announcement *models.Announcement) error
	DeleteAnnouncement(id uint) error
}

// announcementRepository implements AnnouncementRepository
type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new instance of AnnouncementRepository
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{
		db: db,
	}
}

// GetAnnouncements retrieves announcements ordered newest first, with pagination
func (r *announcementRepository) GetAnnouncements(page int, limit int) ([]*models.Announcement, int64, error) {
	var announcements []*models.Announcement
	var total int64

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	if err := r.db.Model(&models.Announcement{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&announcements).Error
	if err != nil {
		return nil, 0, err
	}

	return announcements, total, nil
}

// GetAnnouncementByID retrieves an announcement by ID
func (r *announcementRepository) GetAnnouncementByID(id uint) (*models.Announcement, error) {
	var announcement models.Announcement

	err := r.db.Where("id = ?", id).First(&announcement).Error
	if err != nil {
		return nil, err
	}

	return &announcement, nil
}

// CreateAnnouncement creates a new announcement record
func (r *announcementRepository) CreateAnnouncement(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

// UpdateAnnouncement updates an existing announcement record
func (r *announcementRepository) UpdateAnnouncement(announcement *models.Announcement) error {
	return r.db.Save(announcement).Error
}

// DeleteAnnouncement deletes an announcement record by ID
func (r *announcementRepository) DeleteAnnouncement(id uint) error {
	return r.db.Delete(&models.Announcement{}, id).Error
}
