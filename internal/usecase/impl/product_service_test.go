package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/errors"
	mockRepo "servihub/internal/mocks/repository"
	mockSvc "servihub/internal/mocks/service"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	storage     *mockSvc.MockFileStorage
	publisher   *recordingPublisher
	vendor      usecase.Actor
}

func createTestProductService(t *testing.T) productServiceFixtures {
	t.Helper()

	common, publisher := newTestCommon(newTestConfig())
	f := productServiceFixtures{
		productRepo: mockRepo.NewMockProductRepository(t),
		storage:     mockSvc.NewMockFileStorage(t),
		publisher:   publisher,
		vendor:      usecase.Actor{ID: uuid.New(), Role: entity.RoleVendor},
	}
	f.service = NewProductService(ProductServiceParams{
		CommonParams: common,
		ProductRepo:  f.productRepo,
		Storage:      f.storage,
	})

	return f
}

func TestProductService_Create(t *testing.T) {
	f := createTestProductService(t)
	f.productRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := f.service.Create(context.Background(), f.vendor, &usecase.ProductInput{
		Name:  " Copper pipe ",
		Price: 1200,
		Stock: 40,
	})

	require.NoError(t, err)
	assert.Equal(t, "Copper pipe", product.Name)
	assert.Equal(t, f.vendor.ID, product.VendorID)
	assert.True(t, product.Active)
	assert.Equal(t, []string{entity.TableProducts}, f.publisher.tables())
}

func TestProductService_CreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		actor entity.Role
		input usecase.ProductInput
		want  error
	}{
		{name: "client", actor: entity.RoleClient, input: usecase.ProductInput{Name: "Pipe"}, want: domainerrors.ErrForbidden},
		{name: "no name", actor: entity.RoleVendor, input: usecase.ProductInput{Price: 10}, want: domainerrors.ErrValidationFailed},
		{name: "negative price", actor: entity.RoleVendor, input: usecase.ProductInput{Name: "Pipe", Price: -1}, want: domainerrors.ErrValidationFailed},
		{name: "negative stock", actor: entity.RoleVendor, input: usecase.ProductInput{Name: "Pipe", Stock: -3}, want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestProductService(t)

			_, err := f.service.Create(context.Background(), usecase.Actor{ID: uuid.New(), Role: tt.actor}, &tt.input)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestProductService_UpdateOtherVendorsProduct(t *testing.T) {
	f := createTestProductService(t)
	product := &entity.Product{ID: uuid.New(), VendorID: uuid.New(), Name: "Pipe"}
	f.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)

	_, err := f.service.Update(context.Background(), f.vendor, product.ID, &usecase.ProductInput{Name: "Mine now"})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProductService_GetUnknown(t *testing.T) {
	f := createTestProductService(t)
	id := uuid.New()
	f.productRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrProductNotFound)

	_, err := f.service.Get(context.Background(), id)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteRemovesImage(t *testing.T) {
	f := createTestProductService(t)
	product := &entity.Product{ID: uuid.New(), VendorID: f.vendor.ID, Name: "Pipe", ImageKey: "products/x/pipe.png"}
	f.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
	f.productRepo.EXPECT().Delete(mock.Anything, product.ID).Return(nil)
	f.storage.EXPECT().Delete(mock.Anything, "products/x/pipe.png").Return(nil)

	require.NoError(t, f.service.Delete(context.Background(), f.vendor, product.ID))
	assert.Equal(t, []string{entity.TableProducts}, f.publisher.tables())
}

func TestProductService_ListPublicSignsImages(t *testing.T) {
	f := createTestProductService(t)
	products := []*entity.Product{
		{ID: uuid.New(), Name: "Pipe", ImageKey: "products/a/pipe.png", Active: true},
		{ID: uuid.New(), Name: "Valve", Active: true},
	}
	f.productRepo.EXPECT().
		List(mock.Anything, repository.ProductFilter{ActiveOnly: true}).
		Return(products, nil).Once()
	f.storage.EXPECT().SignedURL(mock.Anything, "products/a/pipe.png", defaultSignedURLTTL).Return("https://files/pipe.png", nil).Once()

	listed, err := f.service.ListPublic(context.Background(), nil)
	require.NoError(t, err)
	again, err := f.service.ListPublic(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, listed, again)
	assert.Equal(t, "https://files/pipe.png", listed[0].ImageURL)
	assert.Empty(t, listed[1].ImageURL)
}

func TestProductService_UploadImage(t *testing.T) {
	t.Run("replaces previous image", func(t *testing.T) {
		f := createTestProductService(t)
		product := &entity.Product{ID: uuid.New(), VendorID: f.vendor.ID, Name: "Pipe", ImageKey: "products/old.png"}
		wantKey := "products/" + product.ID.String() + "/my_pipe.png"

		f.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		f.storage.EXPECT().Upload(mock.Anything, wantKey, "image/png", mock.Anything).
			RunAndReturn(func(_ context.Context, _, _ string, r io.Reader) error {
				_, err := io.ReadAll(r)

				return err
			})
		f.productRepo.EXPECT().Update(mock.Anything, product).Return(nil)
		f.storage.EXPECT().Delete(mock.Anything, "products/old.png").Return(nil)
		f.storage.EXPECT().SignedURL(mock.Anything, wantKey, defaultSignedURLTTL).Return("https://files/new.png", nil)

		updated, err := f.service.UploadImage(context.Background(), f.vendor, product.ID, &usecase.FileUpload{
			Filename: "my pipe.png",
			Size:     3,
			Content:  strings.NewReader("png"),
		})

		require.NoError(t, err)
		assert.Equal(t, wantKey, updated.ImageKey)
		assert.Equal(t, "https://files/new.png", updated.ImageURL)
	})

	t.Run("failed save removes the upload", func(t *testing.T) {
		f := createTestProductService(t)
		product := &entity.Product{ID: uuid.New(), VendorID: f.vendor.ID, Name: "Pipe"}
		wantKey := "products/" + product.ID.String() + "/pipe.png"

		f.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		f.storage.EXPECT().Upload(mock.Anything, wantKey, "image/png", mock.Anything).Return(nil)
		f.productRepo.EXPECT().Update(mock.Anything, product).Return(errors.New("db down"))
		f.storage.EXPECT().Delete(mock.Anything, wantKey).Return(nil)

		_, err := f.service.UploadImage(context.Background(), f.vendor, product.ID, &usecase.FileUpload{
			Filename:    "pipe.png",
			ContentType: "image/png",
			Size:        3,
			Content:     strings.NewReader("png"),
		})

		assert.Error(t, err)
		assert.Empty(t, f.publisher.tables())
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"photo.png":              "photo.png",
		"my photo (1).jpg":       "my_photo__1_.jpg",
		"../../etc/passwd":       "passwd",
		`C:\Users\ana\leak.jpeg`: "leak.jpeg",
		".hidden":                "hidden",
		"":                       "file",
	}

	for in, want := range tests {
		assert.Equal(t, want, sanitizeFilename(in), in)
	}
}
