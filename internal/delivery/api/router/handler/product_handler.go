package handler

import (
	"net/http"

	"servihub/internal/delivery/api/response"
	"servihub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler serves vendor products.
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

// ProductRequest is the body of product writes.
type ProductRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
	Price       int64  `json:"price" validate:"gte=0"`
	Stock       int    `json:"stock" validate:"gte=0"`
	Active      *bool  `json:"active"`
}

func (r *ProductRequest) input() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Active:      r.Active,
	}
}

// ListPublic returns active products, optionally of one vendor.
func (h *ProductHandler) ListPublic(c echo.Context) error {
	vendorID, err := queryUUID(c, "vendor_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.ListPublic(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// ListMine returns every product of the calling vendor.
func (h *ProductHandler) ListMine(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.ListMine(c.Request().Context(), a)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// Get returns one product.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// Create adds a product for the calling vendor.
func (h *ProductHandler) Create(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Create(c.Request().Context(), a, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

// Update changes a product.
func (h *ProductHandler) Update(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Update(c.Request().Context(), a, id, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// Delete removes a product.
func (h *ProductHandler) Delete(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.productUC.Delete(c.Request().Context(), a, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadImage replaces the product image with the multipart "image" field.
func (h *ProductHandler) UploadImage(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	upload, closeFile, err := formUpload(c, "image")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer closeFile() //nolint:errcheck

	product, err := h.productUC.UploadImage(c.Request().Context(), a, id, upload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}
