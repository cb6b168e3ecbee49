package repository

import (
	"gorm.io/gorm"

	"waterbill-be-svc/internal/models"
)

// LogSchedulerRepository defines the interface for log scheduler data operations
type LogSchedulerRepository interface {
	CreateLogScheduler(log *models.LogScheduler) error
}

// logSchedulerRepository implements LogSchedulerRepository
type logSchedulerRepository struct {
	db *gorm.DB
}

// NewLogSchedulerRepository creates a new instance of LogSchedulerRepository
func NewLogSchedulerRepository(db *gorm.DB) LogSchedulerRepository {
	return &logSchedulerRepository{
		db: db,
	}
}

// CreateLogScheduler creates a new log scheduler record
func (r *logSchedulerRepository) CreateLogScheduler(log *models.LogScheduler) error {
	return r.db.Create(log).Error
}
