package repository

import (
	"gorm.io/gorm"

	"waterbill-be-svc/internal/models"
)

// SettingRepository defines the interface for billing settings operations
type SettingRepository interface {
	GetActiveSetting() (*models.Setting, error)
	UpdateSetting(setting *models.Setting) error
}

// settingRepository implements SettingRepository
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new instance of SettingRepository
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{
		db: db,
	}
}

// GetActiveSetting retrieves the active billing setting
func (r *settingRepository) GetActiveSetting() (*models.Setting, error) {
	var setting models.Setting

	err := r.db.Where("is_active = ?", true).First(&setting).Error
	if err != nil {
		return nil, err
	}

	return &setting, nil
}

// UpdateSetting updates an existing billing setting
func (r *settingRepository) UpdateSetting(setting *models.Setting) error {
	return r.db.Save(setting).Error
}
