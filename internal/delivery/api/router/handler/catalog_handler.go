package handler

import (
	"net/http"

	"servihub/internal/delivery/api/response"
	"servihub/internal/domain/entity"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves categories, technician specialties and service offerings.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

// CategoryRequest is the body of category writes.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=80"`
	Description string `json:"description" validate:"max=500"`
	Icon        string `json:"icon" validate:"max=80"`
}

// SpecialtyRequest names the category a technician works in.
type SpecialtyRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
}

// ServiceOfferingRequest is the body of service offering writes.
type ServiceOfferingRequest struct {
	CategoryID  string `json:"category_id" validate:"required,uuid"`
	Title       string `json:"title" validate:"required,max=120"`
	Description string `json:"description" validate:"max=1000"`
	BasePrice   int64  `json:"base_price" validate:"gte=0"`
	Active      *bool  `json:"active"`
}

func (r *ServiceOfferingRequest) input() *usecase.ServiceOfferingInput {
	return &usecase.ServiceOfferingInput{
		CategoryID:  uuid.MustParse(r.CategoryID),
		Title:       r.Title,
		Description: r.Description,
		BasePrice:   r.BasePrice,
		Active:      r.Active,
	}
}

// ListCategories returns active categories. Admins may pass include_inactive=true.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	includeInactive := c.QueryParam("include_inactive") == "true" && a.Is(entity.RoleAdmin)

	categories, err := h.catalogUC.ListCategories(c.Request().Context(), includeInactive)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, categories)
}

// CreateCategory adds a category.
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CategoryRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), a, &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, category)
}

// UpdateCategory changes a category.
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CategoryRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.UpdateCategory(c.Request().Context(), a, id, &usecase.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, category)
}

// DeactivateCategory hides a category from new requests.
func (h *CatalogHandler) DeactivateCategory(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeactivateCategory(c.Request().Context(), a, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, messageResponse{Message: "Category deactivated"})
}

// ListSpecialties returns the specialties of a technician, the caller by default.
func (h *CatalogHandler) ListSpecialties(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	technicianID, err := queryUUID(c, "technician_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if technicianID == nil {
		technicianID = &a.ID
	}

	specialties, err := h.catalogUC.ListSpecialties(c.Request().Context(), *technicianID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, specialties)
}

// AddSpecialty links the calling technician to a category.
func (h *CatalogHandler) AddSpecialty(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SpecialtyRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	specialty, err := h.catalogUC.AddSpecialty(c.Request().Context(), a, uuid.MustParse(req.CategoryID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, specialty)
}

// RemoveSpecialty unlinks the calling technician from a category.
func (h *CatalogHandler) RemoveSpecialty(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	categoryID, err := pathID(c, "categoryId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.RemoveSpecialty(c.Request().Context(), a, categoryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListServices returns service offerings, filtered by technician or category.
func (h *CatalogHandler) ListServices(c echo.Context) error {
	technicianID, err := queryUUID(c, "technician_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	categoryID, err := queryUUID(c, "category_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	services, err := h.catalogUC.ListServices(c.Request().Context(), &usecase.ServiceListInput{
		TechnicianID: technicianID,
		CategoryID:   categoryID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, services)
}

// CreateService adds a service offering for the calling technician.
func (h *CatalogHandler) CreateService(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ServiceOfferingRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	offering, err := h.catalogUC.CreateService(c.Request().Context(), a, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, offering)
}

// UpdateService changes a service offering.
func (h *CatalogHandler) UpdateService(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ServiceOfferingRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	offering, err := h.catalogUC.UpdateService(c.Request().Context(), a, id, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, offering)
}

// DeleteService removes a service offering.
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeleteService(c.Request().Context(), a, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
