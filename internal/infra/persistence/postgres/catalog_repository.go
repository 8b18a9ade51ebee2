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
	"gorm.io/gorm/clause"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCategory
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":        category.Name,
			"description": category.Description,
			"icon":        category.Icon,
			"active":      category.Active,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateCategory
		}

		return errors.Wrap(result.Error, "failed to update category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	query := repo.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// specialtyRepository implements the repository.SpecialtyRepository interface.
type specialtyRepository struct {
	db *gorm.DB
}

// NewSpecialtyRepository is the constructor for specialtyRepository.
func NewSpecialtyRepository(db *gorm.DB) repository.SpecialtyRepository {
	return &specialtyRepository{
		db: db,
	}
}

func (repo *specialtyRepository) Add(ctx context.Context, specialty *entity.Specialty) error {
	specialtyM := &model.SpecialtyModel{
		TechnicianID: specialty.TechnicianID,
		CategoryID:   specialty.CategoryID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(specialtyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add specialty")
	}

	specialty.CreatedAt = specialtyM.CreatedAt

	return nil
}

func (repo *specialtyRepository) Remove(ctx context.Context, technicianID, categoryID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("technician_id = ? AND category_id = ?", technicianID, categoryID).
		Delete(&model.SpecialtyModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove specialty")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSpecialtyNotFound
	}

	return nil
}

func (repo *specialtyRepository) ListByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*entity.Specialty, error) {
	var specialtyModels []*model.SpecialtyModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("technician_id = ?", technicianID).
		Order("created_at ASC").
		Find(&specialtyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list specialties")
	}

	specialties := make([]*entity.Specialty, 0, len(specialtyModels))
	for _, specialtyM := range specialtyModels {
		specialties = append(specialties, &entity.Specialty{
			TechnicianID: specialtyM.TechnicianID,
			CategoryID:   specialtyM.CategoryID,
			CreatedAt:    specialtyM.CreatedAt,
			Category:     toCategoryDomain(specialtyM.Category),
		})
	}

	return specialties, nil
}

// serviceOfferingRepository implements the repository.ServiceOfferingRepository interface.
type serviceOfferingRepository struct {
	db *gorm.DB
}

// NewServiceOfferingRepository is the constructor for serviceOfferingRepository.
func NewServiceOfferingRepository(db *gorm.DB) repository.ServiceOfferingRepository {
	return &serviceOfferingRepository{
		db: db,
	}
}

func (repo *serviceOfferingRepository) Create(ctx context.Context, offering *entity.ServiceOffering) error {
	offeringM := fromServiceOfferingDomain(offering)

	if err := repo.db.WithContext(ctx).Create(offeringM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service offering")
	}

	offering.ID = offeringM.ID
	offering.CreatedAt = offeringM.CreatedAt
	offering.UpdatedAt = offeringM.UpdatedAt

	return nil
}

func (repo *serviceOfferingRepository) Update(ctx context.Context, offering *entity.ServiceOffering) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceOfferingModel{}).
		Where("id = ?", offering.ID).
		Updates(map[string]any{
			"category_id": offering.CategoryID,
			"title":       offering.Title,
			"description": offering.Description,
			"base_price":  offering.BasePrice,
			"active":      offering.Active,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update service offering")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceOfferingNotFound
	}

	return nil
}

func (repo *serviceOfferingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ServiceOfferingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete service offering")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceOfferingNotFound
	}

	return nil
}

func (repo *serviceOfferingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceOffering, error) {
	var offeringM model.ServiceOfferingModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&offeringM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceOfferingNotFound
		}

		return nil, errors.Wrap(err, "failed to find service offering by ID")
	}

	return toServiceOfferingDomain(&offeringM), nil
}

func (repo *serviceOfferingRepository) List(ctx context.Context, filter repository.ServiceOfferingFilter) ([]*entity.ServiceOffering, error) {
	var offeringModels []*model.ServiceOfferingModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if filter.TechnicianID != nil {
		query = query.Where("technician_id = ?", *filter.TechnicianID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	if err := query.Find(&offeringModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list service offerings")
	}

	offerings := make([]*entity.ServiceOffering, 0, len(offeringModels))
	for _, offeringM := range offeringModels {
		offerings = append(offerings, toServiceOfferingDomain(offeringM))
	}

	return offerings, nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Icon:        data.Icon,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Icon:        data.Icon,
		Active:      data.Active,
	}
}

func toServiceOfferingDomain(data *model.ServiceOfferingModel) *entity.ServiceOffering {
	return &entity.ServiceOffering{
		ID:           data.ID,
		TechnicianID: data.TechnicianID,
		CategoryID:   data.CategoryID,
		Title:        data.Title,
		Description:  data.Description,
		BasePrice:    data.BasePrice,
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromServiceOfferingDomain(data *entity.ServiceOffering) *model.ServiceOfferingModel {
	return &model.ServiceOfferingModel{
		ID:           data.ID,
		TechnicianID: data.TechnicianID,
		CategoryID:   data.CategoryID,
		Title:        data.Title,
		Description:  data.Description,
		BasePrice:    data.BasePrice,
		Active:       data.Active,
	}
}
