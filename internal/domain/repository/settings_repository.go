package repository

import (
	"context"

	"github.com/prasert/baanpak-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the utility-rate settings row
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, settings *entity.Settings) error
}
