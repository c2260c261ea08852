package service

import (
	"context"

	"github.com/prasert/baanpak-api/internal/domain/entity"
	"github.com/prasert/baanpak-api/internal/domain/repository"
	"github.com/prasert/baanpak-api/pkg/apperror"
)

// SettingsService handles the utility tariff settings
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the current utility rates
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewNotFoundError("Settings")
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	WaterRate       *float64 // Baht per unit
	ElectricityRate *float64 // Baht per unit
}

// UpdateSettings updates the utility rates in place
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.Settings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.WaterRate != nil {
		if *input.WaterRate < 0 {
			return nil, apperror.NewUnprocessableError("Water rate must not be negative")
		}
		settings.WaterRate = int64(*input.WaterRate * 100)
	}
	if input.ElectricityRate != nil {
		if *input.ElectricityRate < 0 {
			return nil, apperror.NewUnprocessableError("Electricity rate must not be negative")
		}
		settings.ElectricityRate = int64(*input.ElectricityRate * 100)
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
