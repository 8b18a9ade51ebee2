package postgres

import (
	"context"

	"servihub/internal/domain/entity"
	"servihub/internal/domain/repository"
	"servihub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const platformSettingsRowID = 1

// settingsRepository implements the repository.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get loads the platform settings row.
func (repo *settingsRepository) Get(ctx context.Context) (*entity.PlatformSettings, error) {
	var settingsM model.PlatformSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", platformSettingsRowID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to load platform settings")
	}

	return &entity.PlatformSettings{
		CancellationFee:      settingsM.CancellationFee,
		CommissionRate:       settingsM.CommissionRate,
		DisputeWindowHours:   settingsM.DisputeWindowHours,
		MinTechnicianBalance: settingsM.MinTechnicianBalance,
		Currency:             settingsM.Currency,
		UpdatedAt:            settingsM.UpdatedAt,
	}, nil
}

// Save upserts the platform settings row.
func (repo *settingsRepository) Save(ctx context.Context, settings *entity.PlatformSettings) error {
	settingsM := &model.PlatformSettingsModel{
		ID:                   platformSettingsRowID,
		CancellationFee:      settings.CancellationFee,
		CommissionRate:       settings.CommissionRate,
		DisputeWindowHours:   settings.DisputeWindowHours,
		MinTechnicianBalance: settings.MinTechnicianBalance,
		Currency:             settings.Currency,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(settingsM).Error; err != nil {
		return errors.Wrap(err, "failed to save platform settings")
	}

	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}
