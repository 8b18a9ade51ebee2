package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"servihub/internal/cache"
	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type catalogService struct {
	categoryRepo  repository.CategoryRepository
	specialtyRepo repository.SpecialtyRepository
	offeringRepo  repository.ServiceOfferingRepository
	notifier      *changeNotifier
	cache         *cache.Store
	now           clock
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In
	CommonParams

	CategoryRepo  repository.CategoryRepository
	SpecialtyRepo repository.SpecialtyRepository
	OfferingRepo  repository.ServiceOfferingRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo:  params.CategoryRepo,
		specialtyRepo: params.SpecialtyRepo,
		offeringRepo:  params.OfferingRepo,
		notifier:      newChangeNotifier(params.CommonParams),
		cache:         params.Cache,
		logger:        params.Logger,
	}
}

func (srv *catalogService) ListCategories(ctx context.Context, includeInactive bool) ([]*entity.Category, error) {
	key := cache.Scoped(cache.Categories, strconv.FormatBool(includeInactive))

	return cache.Fetch(ctx, srv.cache, key, func(ctx context.Context) ([]*entity.Category, error) {
		return srv.categoryRepo.List(ctx, !includeInactive)
	})
}

func (srv *catalogService) CreateCategory(ctx context.Context, actor usecase.Actor, input *usecase.CategoryInput) (*entity.Category, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validationError("name is required")
	}

	now := srv.now.now()
	category := &entity.Category{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Icon:        input.Icon,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, domainerrors.ErrCategoryAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.notifier.committed(ctx, cache.MutationCategoryWrite,
		srv.notifier.rowChange(ctx, entity.TableCategories, entity.ChangeInsert, category.ID, category),
	)

	return category, nil
}

func (srv *catalogService) UpdateCategory(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return nil, err
	}

	category, err := srv.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		category.Name = name
	}
	category.Description = strings.TrimSpace(input.Description)
	category.Icon = input.Icon

	return category, srv.saveCategory(ctx, category)
}

// DeactivateCategory hides a category from clients; existing requests keep referencing it.
func (srv *catalogService) DeactivateCategory(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if err := requireRole(actor, entity.RoleAdmin); err != nil {
		return err
	}

	category, err := srv.findCategory(ctx, id)
	if err != nil {
		return err
	}
	if !category.Active {
		return nil
	}
	category.Active = false

	return srv.saveCategory(ctx, category)
}

func (srv *catalogService) saveCategory(ctx context.Context, category *entity.Category) error {
	category.UpdatedAt = srv.now.now()
	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return domainerrors.ErrCategoryAlreadyExists
		}

		return errors.Wrap(err, "failed to update category")
	}

	srv.notifier.committed(ctx, cache.MutationCategoryWrite,
		srv.notifier.rowChange(ctx, entity.TableCategories, entity.ChangeUpdate, category.ID, category),
	)

	return nil
}

func (srv *catalogService) ListSpecialties(ctx context.Context, technicianID uuid.UUID) ([]*entity.Specialty, error) {
	return cache.Fetch(ctx, srv.cache, cache.Scoped(cache.Specialties, technicianID.String()), func(ctx context.Context) ([]*entity.Specialty, error) {
		return srv.specialtyRepo.ListByTechnician(ctx, technicianID)
	})
}

func (srv *catalogService) AddSpecialty(ctx context.Context, actor usecase.Actor, categoryID uuid.UUID) (*entity.Specialty, error) {
	if err := requireRole(actor, entity.RoleTechnician); err != nil {
		return nil, err
	}

	category, err := srv.activeCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	specialty := &entity.Specialty{
		TechnicianID: actor.ID,
		CategoryID:   category.ID,
		CreatedAt:    srv.now.now(),
		Category:     category,
	}
	if err := srv.specialtyRepo.Add(ctx, specialty); err != nil {
		return nil, errors.Wrap(err, "failed to add specialty")
	}

	srv.notifier.committed(ctx, cache.MutationSpecialtyWrite,
		srv.notifier.rowChange(ctx, entity.TableSpecialties, entity.ChangeInsert, category.ID, specialty),
	)

	return specialty, nil
}

func (srv *catalogService) RemoveSpecialty(ctx context.Context, actor usecase.Actor, categoryID uuid.UUID) error {
	if err := requireRole(actor, entity.RoleTechnician); err != nil {
		return err
	}

	if err := srv.specialtyRepo.Remove(ctx, actor.ID, categoryID); err != nil {
		if errors.Is(err, repository.ErrSpecialtyNotFound) {
			return domainerrors.ErrSpecialtyNotFound
		}

		return errors.Wrap(err, "failed to remove specialty")
	}

	srv.notifier.committed(ctx, cache.MutationSpecialtyWrite,
		srv.notifier.rowChange(ctx, entity.TableSpecialties, entity.ChangeDelete, categoryID, &entity.Specialty{
			TechnicianID: actor.ID,
			CategoryID:   categoryID,
		}),
	)

	return nil
}

func (srv *catalogService) ListServices(ctx context.Context, input *usecase.ServiceListInput) ([]*entity.ServiceOffering, error) {
	filter := repository.ServiceOfferingFilter{ActiveOnly: true}
	scope := []string{"", ""}
	if input != nil {
		filter.TechnicianID = input.TechnicianID
		filter.CategoryID = input.CategoryID
		if input.TechnicianID != nil {
			scope[0] = input.TechnicianID.String()
		}
		if input.CategoryID != nil {
			scope[1] = input.CategoryID.String()
		}
	}

	return cache.Fetch(ctx, srv.cache, cache.Scoped(cache.Services, scope...), func(ctx context.Context) ([]*entity.ServiceOffering, error) {
		return srv.offeringRepo.List(ctx, filter)
	})
}

func (srv *catalogService) CreateService(ctx context.Context, actor usecase.Actor, input *usecase.ServiceOfferingInput) (*entity.ServiceOffering, error) {
	if err := requireRole(actor, entity.RoleTechnician); err != nil {
		return nil, err
	}
	if err := validateOffering(input); err != nil {
		return nil, err
	}
	if _, err := srv.activeCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	now := srv.now.now()
	offering := &entity.ServiceOffering{
		ID:           uuid.New(),
		TechnicianID: actor.ID,
		CategoryID:   input.CategoryID,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		BasePrice:    input.BasePrice,
		Active:       input.Active == nil || *input.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.offeringRepo.Create(ctx, offering); err != nil {
		return nil, errors.Wrap(err, "failed to create service offering")
	}

	srv.notifier.committed(ctx, cache.MutationServiceWrite,
		srv.notifier.rowChange(ctx, entity.TableServices, entity.ChangeInsert, offering.ID, offering),
	)

	return offering, nil
}

func (srv *catalogService) UpdateService(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.ServiceOfferingInput) (*entity.ServiceOffering, error) {
	offering, err := srv.ownedOffering(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := validateOffering(input); err != nil {
		return nil, err
	}
	if input.CategoryID != offering.CategoryID {
		if _, err := srv.activeCategory(ctx, input.CategoryID); err != nil {
			return nil, err
		}
	}

	offering.CategoryID = input.CategoryID
	offering.Title = strings.TrimSpace(input.Title)
	offering.Description = strings.TrimSpace(input.Description)
	offering.BasePrice = input.BasePrice
	if input.Active != nil {
		offering.Active = *input.Active
	}
	offering.UpdatedAt = srv.now.now()

	if err := srv.offeringRepo.Update(ctx, offering); err != nil {
		return nil, errors.Wrap(err, "failed to update service offering")
	}

	srv.notifier.committed(ctx, cache.MutationServiceWrite,
		srv.notifier.rowChange(ctx, entity.TableServices, entity.ChangeUpdate, offering.ID, offering),
	)

	return offering, nil
}

func (srv *catalogService) DeleteService(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	offering, err := srv.ownedOffering(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := srv.offeringRepo.Delete(ctx, offering.ID); err != nil {
		return errors.Wrap(err, "failed to delete service offering")
	}

	srv.notifier.committed(ctx, cache.MutationServiceWrite,
		srv.notifier.rowChange(ctx, entity.TableServices, entity.ChangeDelete, offering.ID, offering),
	)

	return nil
}

// ownedOffering loads an offering the actor may change: its technician or an admin.
func (srv *catalogService) ownedOffering(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.ServiceOffering, error) {
	if err := requireRole(actor, entity.RoleTechnician, entity.RoleAdmin); err != nil {
		return nil, err
	}

	offering, err := srv.offeringRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrServiceOfferingNotFound) {
		return nil, domainerrors.ErrServiceOfferingNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find service offering")
	}

	if actor.Role != entity.RoleAdmin && offering.TechnicianID != actor.ID {
		return nil, domainerrors.ErrForbidden
	}

	return offering, nil
}

func (srv *catalogService) activeCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.findCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if !category.Active {
		return nil, domainerrors.ErrCategoryInactive
	}

	return category, nil
}

func (srv *catalogService) findCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

func validateOffering(input *usecase.ServiceOfferingInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return validationError("title is required")
	}
	if input.CategoryID == uuid.Nil {
		return validationError("category_id is required")
	}
	if input.BasePrice < 0 {
		return validationError("base_price cannot be negative")
	}

	return nil
}
