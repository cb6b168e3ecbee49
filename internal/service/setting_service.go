package service

import (
	"fmt"
	"time"

	"waterbill-be-svc/internal/models"
	"waterbill-be-svc/internal/repository"
	"waterbill-be-svc/pkg/logger"
)

// SettingService defines the interface for billing settings operations
type SettingService interface {
	GetActiveSetting() (*models.Setting, error)
	UpdateSetting(setting *models.Setting) error
}

// settingService implements SettingService
type settingService struct {
	settingRepo repository.SettingRepository
	logger      *logger.Logger
}

// NewSettingService creates a new instance of SettingService
func NewSettingService(settingRepo repository.SettingRepository, logger *logger.Logger) SettingService {
	return &settingService{
		settingRepo: settingRepo,
		logger:      logger,
	}
}

// GetActiveSetting retrieves the active billing setting
func (s *settingService) GetActiveSetting() (*models.Setting, error) {
	return s.settingRepo.GetActiveSetting()
}

// UpdateSetting updates the billing setting rates
func (s *settingService) UpdateSetting(setting *models.Setting) error {
	if setting.RatePerCubicMeter < 0 || setting.PenaltyRate < 0 {
		return fmt.Errorf("rates cannot be negative")
	}

	existing, err := s.settingRepo.GetActiveSetting()
	if err != nil {
		return fmt.Errorf("active setting not found: %w", err)
	}

	now := time.Now()
	existing.RatePerCubicMeter = setting.RatePerCubicMeter
	existing.PenaltyRate = setting.PenaltyRate
	existing.UpdatedAt = &now

	if err := s.settingRepo.UpdateSetting(existing); err != nil {
		s.logger.WithError(err).Error("Failed to update billing setting")
		return err
	}

	return nil
}
