package usecase

import (
	"context"

	"servihub/internal/domain/entity"
)

// SettingsInput carries the settings an admin changes. Nil fields are left untouched.
type SettingsInput struct {
	CancellationFee      *int64
	CommissionRate       *float64
	DisputeWindowHours   *int
	MinTechnicianBalance *int64
	Currency             *string
}

// SettingsUsecase reads and updates the platform settings.
type SettingsUsecase interface {
	// Get returns the saved settings, or the configured defaults when none were saved.
	Get(ctx context.Context) (*entity.PlatformSettings, error)
	Update(ctx context.Context, actor Actor, input *SettingsInput) (*entity.PlatformSettings, error)
}
