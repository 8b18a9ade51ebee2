package impl

import (
	"context"
	"log/slog"
	"strings"

	"servihub/internal/cache"
	"servihub/internal/domain/entity"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/repository"
	"servihub/internal/domain/service"
	"servihub/internal/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const productImagePrefix = "products"

type productService struct {
	productRepo repository.ProductRepository
	uploader    *uploader
	notifier    *changeNotifier
	cache       *cache.Store
	now         clock
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In
	CommonParams

	ProductRepo repository.ProductRepository
	Storage     service.FileStorage
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		uploader:    newUploader(params.Storage, params.Config, params.Logger),
		notifier:    newChangeNotifier(params.CommonParams),
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

func (srv *productService) Create(ctx context.Context, actor usecase.Actor, input *usecase.ProductInput) (*entity.Product, error) {
	if err := requireRole(actor, entity.RoleVendor); err != nil {
		return nil, err
	}
	if err := validateProduct(input); err != nil {
		return nil, err
	}

	now := srv.now.now()
	product := &entity.Product{
		ID:          uuid.New(),
		VendorID:    actor.ID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Stock:       input.Stock,
		Active:      input.Active == nil || *input.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.published(ctx, entity.ChangeInsert, product)

	return product, nil
}

func (srv *productService) Update(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := validateProduct(input); err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.Price = input.Price
	product.Stock = input.Stock
	if input.Active != nil {
		product.Active = *input.Active
	}

	return srv.save(ctx, product)
}

func (srv *productService) Delete(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	product, err := srv.owned(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, product.ID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	srv.uploader.remove(ctx, product.ImageKey)

	srv.published(ctx, entity.ChangeDelete, product)

	return nil
}

func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return cache.Fetch(ctx, srv.cache, cache.Scoped(cache.Products, "id", id.String()), func(ctx context.Context) (*entity.Product, error) {
		product, err := srv.find(ctx, id)
		if err != nil {
			return nil, err
		}
		srv.sign(ctx, product)

		return product, nil
	})
}

func (srv *productService) ListMine(ctx context.Context, actor usecase.Actor) ([]*entity.Product, error) {
	if err := requireRole(actor, entity.RoleVendor); err != nil {
		return nil, err
	}

	return srv.list(ctx, cache.ForProfile(cache.Products, actor.Role.String(), actor.ID), repository.ProductFilter{
		VendorID: uuidPtr(actor.ID),
	})
}

func (srv *productService) ListPublic(ctx context.Context, vendorID *uuid.UUID) ([]*entity.Product, error) {
	scope := "all"
	if vendorID != nil {
		scope = vendorID.String()
	}

	return srv.list(ctx, cache.Scoped(cache.Products, "public", scope), repository.ProductFilter{
		VendorID:   vendorID,
		ActiveOnly: true,
	})
}

func (srv *productService) list(ctx context.Context, key cache.Key, filter repository.ProductFilter) ([]*entity.Product, error) {
	return cache.Fetch(ctx, srv.cache, key, func(ctx context.Context) ([]*entity.Product, error) {
		products, err := srv.productRepo.List(ctx, filter)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list products")
		}
		for _, product := range products {
			srv.sign(ctx, product)
		}

		return products, nil
	})
}

// UploadImage stores the image under products/<id>/<name> and replaces the previous one.
func (srv *productService) UploadImage(ctx context.Context, actor usecase.Actor, id uuid.UUID, upload *usecase.FileUpload) (*entity.Product, error) {
	product, err := srv.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	key, err := srv.uploader.store(ctx, productImagePrefix, product.ID, upload)
	if err != nil {
		return nil, err
	}

	previous := product.ImageKey
	product.ImageKey = key
	if _, err := srv.save(ctx, product); err != nil {
		srv.uploader.remove(ctx, key)

		return nil, err
	}
	if previous != "" && previous != key {
		srv.uploader.remove(ctx, previous)
	}

	srv.sign(ctx, product)

	return product, nil
}

func (srv *productService) save(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	product.UpdatedAt = srv.now.now()
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.published(ctx, entity.ChangeUpdate, product)

	return product, nil
}

func (srv *productService) owned(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Product, error) {
	if err := requireRole(actor, entity.RoleVendor); err != nil {
		return nil, err
	}

	product, err := srv.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.VendorID != actor.ID {
		return nil, domainerrors.ErrForbidden
	}

	return product, nil
}

func (srv *productService) find(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *productService) sign(ctx context.Context, product *entity.Product) {
	product.ImageURL = srv.uploader.signedURL(ctx, product.ImageKey)
}

func (srv *productService) published(ctx context.Context, changeType entity.ChangeType, product *entity.Product) {
	srv.notifier.committed(ctx, cache.MutationProductWrite,
		srv.notifier.rowChange(ctx, entity.TableProducts, changeType, product.ID, product),
	)
}

func validateProduct(input *usecase.ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return validationError("name is required")
	}
	if input.Price < 0 {
		return validationError("price cannot be negative")
	}
	if input.Stock < 0 {
		return validationError("stock cannot be negative")
	}

	return nil
}
