package repository

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSettingsNotFound is returned when no platform settings row was saved yet.
var ErrSettingsNotFound = errors.New("platform settings not found")

// SettingsRepository stores the single platform settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.PlatformSettings, error)
	Save(ctx context.Context, settings *entity.PlatformSettings) error
}
