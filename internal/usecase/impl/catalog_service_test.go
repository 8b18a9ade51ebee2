package impl

import (
	"context"
	"testing"

	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	mockRepo "servihub/internal/mocks/repository"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service       usecase.CatalogUsecase
	categoryRepo  *mockRepo.MockCategoryRepository
	specialtyRepo *mockRepo.MockSpecialtyRepository
	offeringRepo  *mockRepo.MockServiceOfferingRepository
	publisher     *recordingPublisher
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	t.Helper()

	common, publisher := newTestCommon(newTestConfig())
	f := catalogServiceFixtures{
		categoryRepo:  mockRepo.NewMockCategoryRepository(t),
		specialtyRepo: mockRepo.NewMockSpecialtyRepository(t),
		offeringRepo:  mockRepo.NewMockServiceOfferingRepository(t),
		publisher:     publisher,
	}
	f.service = NewCatalogService(CatalogServiceParams{
		CommonParams:  common,
		CategoryRepo:  f.categoryRepo,
		SpecialtyRepo: f.specialtyRepo,
		OfferingRepo:  f.offeringRepo,
	})

	return f
}

func TestCatalogService_ListCategoriesCachesUntilWrite(t *testing.T) {
	f := createTestCatalogService(t)
	admin := usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
	plumbing := &entity.Category{ID: uuid.New(), Name: "Plumbing", Active: true}

	f.categoryRepo.EXPECT().List(mock.Anything, true).Return([]*entity.Category{plumbing}, nil).Twice()
	f.categoryRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Category")).Return(nil).Once()

	first, err := f.service.ListCategories(context.Background(), false)
	require.NoError(t, err)
	second, err := f.service.ListCategories(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	created, err := f.service.CreateCategory(context.Background(), admin, &usecase.CategoryInput{Name: "  Electrical "})
	require.NoError(t, err)
	assert.Equal(t, "Electrical", created.Name)
	assert.True(t, created.Active)

	_, err = f.service.ListCategories(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, []string{entity.TableCategories}, f.publisher.tables())
}

func TestCatalogService_CreateCategory(t *testing.T) {
	tests := []struct {
		name    string
		actor   usecase.Actor
		input   usecase.CategoryInput
		repoErr error
		want    error
	}{
		{
			name:  "not an admin",
			actor: usecase.Actor{ID: uuid.New(), Role: entity.RoleTechnician},
			input: usecase.CategoryInput{Name: "Plumbing"},
			want:  domainerrors.ErrForbidden,
		},
		{
			name:  "blank name",
			actor: usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin},
			input: usecase.CategoryInput{Name: "   "},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:    "duplicate name",
			actor:   usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin},
			input:   usecase.CategoryInput{Name: "Plumbing"},
			repoErr: repository.ErrDuplicateCategory,
			want:    domainerrors.ErrCategoryAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestCatalogService(t)
			if tt.repoErr != nil {
				f.categoryRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Category")).Return(tt.repoErr)
			}

			_, err := f.service.CreateCategory(context.Background(), tt.actor, &tt.input)

			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, f.publisher.tables())
		})
	}
}

func TestCatalogService_DeactivateCategory(t *testing.T) {
	admin := usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin}

	t.Run("active category", func(t *testing.T) {
		f := createTestCatalogService(t)
		category := &entity.Category{ID: uuid.New(), Name: "Plumbing", Active: true}
		f.categoryRepo.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)
		f.categoryRepo.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(c *entity.Category) bool { return !c.Active })).
			Return(nil)

		require.NoError(t, f.service.DeactivateCategory(context.Background(), admin, category.ID))
		assert.Equal(t, []string{entity.TableCategories}, f.publisher.tables())
	})

	t.Run("already inactive", func(t *testing.T) {
		f := createTestCatalogService(t)
		category := &entity.Category{ID: uuid.New(), Name: "Plumbing"}
		f.categoryRepo.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)

		require.NoError(t, f.service.DeactivateCategory(context.Background(), admin, category.ID))
		assert.Empty(t, f.publisher.tables())
	})

	t.Run("unknown category", func(t *testing.T) {
		f := createTestCatalogService(t)
		id := uuid.New()
		f.categoryRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrCategoryNotFound)

		err := f.service.DeactivateCategory(context.Background(), admin, id)

		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})
}

func TestCatalogService_AddSpecialtyRequiresActiveCategory(t *testing.T) {
	technician := usecase.Actor{ID: uuid.New(), Role: entity.RoleTechnician}

	t.Run("inactive", func(t *testing.T) {
		f := createTestCatalogService(t)
		category := &entity.Category{ID: uuid.New(), Name: "Roofing"}
		f.categoryRepo.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)

		_, err := f.service.AddSpecialty(context.Background(), technician, category.ID)

		assert.ErrorIs(t, err, domainerrors.ErrCategoryInactive)
	})

	t.Run("active", func(t *testing.T) {
		f := createTestCatalogService(t)
		category := &entity.Category{ID: uuid.New(), Name: "Plumbing", Active: true}
		f.categoryRepo.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)
		f.specialtyRepo.EXPECT().
			Add(mock.Anything, mock.MatchedBy(func(s *entity.Specialty) bool {
				return s.TechnicianID == technician.ID && s.CategoryID == category.ID
			})).
			Return(nil)

		specialty, err := f.service.AddSpecialty(context.Background(), technician, category.ID)

		require.NoError(t, err)
		assert.Equal(t, category, specialty.Category)
		assert.Equal(t, []string{entity.TableSpecialties}, f.publisher.tables())
	})
}

func TestCatalogService_RemoveMissingSpecialty(t *testing.T) {
	f := createTestCatalogService(t)
	technician := usecase.Actor{ID: uuid.New(), Role: entity.RoleTechnician}
	categoryID := uuid.New()
	f.specialtyRepo.EXPECT().Remove(mock.Anything, technician.ID, categoryID).Return(repository.ErrSpecialtyNotFound)

	err := f.service.RemoveSpecialty(context.Background(), technician, categoryID)

	assert.ErrorIs(t, err, domainerrors.ErrSpecialtyNotFound)
}

func TestCatalogService_CreateService(t *testing.T) {
	technician := usecase.Actor{ID: uuid.New(), Role: entity.RoleTechnician}
	category := &entity.Category{ID: uuid.New(), Name: "Plumbing", Active: true}

	t.Run("defaults to active", func(t *testing.T) {
		f := createTestCatalogService(t)
		f.categoryRepo.EXPECT().FindByID(mock.Anything, category.ID).Return(category, nil)
		f.offeringRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.ServiceOffering")).Return(nil)

		offering, err := f.service.CreateService(context.Background(), technician, &usecase.ServiceOfferingInput{
			CategoryID: category.ID,
			Title:      " Leak repair ",
			BasePrice:  7500,
		})

		require.NoError(t, err)
		assert.Equal(t, "Leak repair", offering.Title)
		assert.Equal(t, technician.ID, offering.TechnicianID)
		assert.True(t, offering.Active)
		assert.Equal(t, []string{entity.TableServices}, f.publisher.tables())
	})

	t.Run("negative price", func(t *testing.T) {
		f := createTestCatalogService(t)

		_, err := f.service.CreateService(context.Background(), technician, &usecase.ServiceOfferingInput{
			CategoryID: category.ID,
			Title:      "Leak repair",
			BasePrice:  -1,
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCatalogService_ServiceOwnership(t *testing.T) {
	owner := uuid.New()
	offering := &entity.ServiceOffering{ID: uuid.New(), TechnicianID: owner, CategoryID: uuid.New(), Title: "Leak repair", Active: true}

	t.Run("another technician", func(t *testing.T) {
		f := createTestCatalogService(t)
		f.offeringRepo.EXPECT().FindByID(mock.Anything, offering.ID).Return(offering, nil)

		err := f.service.DeleteService(context.Background(), usecase.Actor{ID: uuid.New(), Role: entity.RoleTechnician}, offering.ID)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("admin", func(t *testing.T) {
		f := createTestCatalogService(t)
		f.offeringRepo.EXPECT().FindByID(mock.Anything, offering.ID).Return(offering, nil)
		f.offeringRepo.EXPECT().Delete(mock.Anything, offering.ID).Return(nil)

		err := f.service.DeleteService(context.Background(), usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin}, offering.ID)

		require.NoError(t, err)
		assert.Equal(t, []string{entity.TableServices}, f.publisher.tables())
	})

	t.Run("client", func(t *testing.T) {
		f := createTestCatalogService(t)

		err := f.service.DeleteService(context.Background(), usecase.Actor{ID: uuid.New(), Role: entity.RoleClient}, offering.ID)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}
