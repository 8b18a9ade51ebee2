package usecase

import (
	"context"

	"servihub/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductInput defines the fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       int64
	Stock       int
	Active      *bool
}

// ProductUsecase manages vendor products and their images.
type ProductUsecase interface {
	Create(ctx context.Context, actor Actor, input *ProductInput) (*entity.Product, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListMine(ctx context.Context, actor Actor) ([]*entity.Product, error)

	// ListPublic returns active products, optionally of one vendor.
	ListPublic(ctx context.Context, vendorID *uuid.UUID) ([]*entity.Product, error)

	UploadImage(ctx context.Context, actor Actor, id uuid.UUID, upload *FileUpload) (*entity.Product, error)
}
