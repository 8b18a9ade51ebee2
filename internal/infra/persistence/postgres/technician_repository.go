package postgres

import (
	"context"

	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// technicianRepository implements the repository.TechnicianRepository interface.
type technicianRepository struct {
	db *gorm.DB
}

// NewTechnicianRepository is the constructor for technicianRepository.
func NewTechnicianRepository(db *gorm.DB) repository.TechnicianRepository {
	return &technicianRepository{
		db: db,
	}
}

// Create persists a new technician record.
func (repo *technicianRepository) Create(ctx context.Context, technician *entity.Technician) error {
	technicianM := &model.TechnicianModel{
		ProfileID: technician.ProfileID,
		Active:    technician.Active,
		Balance:   technician.Balance,
		Version:   technician.Version,
		Rating:    technician.Rating,
	}

	if err := repo.db.WithContext(ctx).Create(technicianM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid profile reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create technician")
	}

	technician.CreatedAt = technicianM.CreatedAt
	technician.UpdatedAt = technicianM.UpdatedAt

	return nil
}

// FindByID retrieves a technician with its profile.
func (repo *technicianRepository) FindByID(ctx context.Context, profileID uuid.UUID) (*entity.Technician, error) {
	var technicianM model.TechnicianModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("profile_id = ?", profileID).
		First(&technicianM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTechnicianNotFound
		}

		return nil, errors.Wrap(err, "failed to find technician by ID")
	}

	return toTechnicianDomain(&technicianM), nil
}

// List retrieves technicians matching the filter, best rated first.
func (repo *technicianRepository) List(ctx context.Context, filter repository.TechnicianFilter) ([]*entity.Technician, error) {
	var technicianModels []*model.TechnicianModel

	query := repo.db.WithContext(ctx).Preload("Profile").Order("rating DESC, created_at ASC")
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.Where("profile_id IN (?)",
			repo.db.Model(&model.SpecialtyModel{}).Select("technician_id").Where("category_id = ?", *filter.CategoryID),
		)
	}

	if err := query.Find(&technicianModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list technicians")
	}

	return toTechnicianDomains(technicianModels), nil
}

// ListBelowBalance retrieves technicians whose balance is lower than minBalance, lowest first.
func (repo *technicianRepository) ListBelowBalance(ctx context.Context, minBalance int64) ([]*entity.Technician, error) {
	var technicianModels []*model.TechnicianModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("balance < ?", minBalance).
		Order("balance ASC").
		Find(&technicianModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list technicians below balance")
	}

	return toTechnicianDomains(technicianModels), nil
}

// SetActive toggles whether the technician takes new requests.
func (repo *technicianRepository) SetActive(ctx context.Context, profileID uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TechnicianModel{}).
		Where("profile_id = ?", profileID).
		Update("active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update technician status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTechnicianNotFound
	}

	return nil
}

// UpdateBalance stores balance and bumps the version when the stored version still equals expectedVersion.
func (repo *technicianRepository) UpdateBalance(ctx context.Context, profileID uuid.UUID, balance int64, expectedVersion int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TechnicianModel{}).
		Where("profile_id = ? AND version = ?", profileID, expectedVersion).
		Updates(map[string]any{
			"balance": balance,
			"version": gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update technician balance")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVersionConflict
	}

	return nil
}

// --- Mapper Functions ---

func toTechnicianDomain(data *model.TechnicianModel) *entity.Technician {
	if data == nil {
		return nil
	}

	return &entity.Technician{
		ProfileID: data.ProfileID,
		Active:    data.Active,
		Balance:   data.Balance,
		Version:   data.Version,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		Profile:   toProfileDomain(data.Profile),
	}
}

func toTechnicianDomains(models []*model.TechnicianModel) []*entity.Technician {
	technicians := make([]*entity.Technician, 0, len(models))
	for _, technicianM := range models {
		technicians = append(technicians, toTechnicianDomain(technicianM))
	}

	return technicians
}
