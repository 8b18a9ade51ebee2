package handler

import (
	"servihub/internal/delivery/api/response"
	"servihub/internal/domain/entity"
	"servihub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the caller's profile, the admin profile list and technicians.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// UpdateProfileRequest carries the profile fields to change.
type UpdateProfileRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
	ClientType  *string `json:"client_type" validate:"omitempty,oneof=individual company"`
	CompanyName *string `json:"company_name" validate:"omitempty,max=200"`
	NIF         *string `json:"nif" validate:"omitempty,max=32"`
}

// SetActiveRequest toggles a technician account.
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// GetMe returns the caller's profile.
func (h *ProfileHandler) GetMe(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.GetMe(c.Request().Context(), a)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, profile)
}

// UpdateMe changes the caller's profile.
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateProfileInput{
		Name:        req.Name,
		Phone:       req.Phone,
		CompanyName: req.CompanyName,
		NIF:         req.NIF,
	}
	if req.ClientType != nil {
		clientType := entity.ClientType(*req.ClientType)
		input.ClientType = &clientType
	}

	profile, err := h.profileUC.UpdateMe(c.Request().Context(), a, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, profile)
}

// CompleteOnboarding marks the caller's onboarding as done.
func (h *ProfileHandler) CompleteOnboarding(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.CompleteOnboarding(c.Request().Context(), a)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, profile)
}

// ListProfiles returns profiles to admins, optionally of one role.
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profiles, err := h.profileUC.ListProfiles(c.Request().Context(), a, &usecase.ProfileListInput{
		Role:   entity.Role(c.QueryParam("role")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, profiles)
}

// ListTechnicians returns technicians, optionally of one category.
func (h *ProfileHandler) ListTechnicians(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	categoryID, err := queryUUID(c, "category_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	technicians, err := h.profileUC.ListTechnicians(c.Request().Context(), a, categoryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, technicians)
}

// GetTechnician returns one technician.
func (h *ProfileHandler) GetTechnician(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	technician, err := h.profileUC.GetTechnician(c.Request().Context(), a, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, technician)
}

// SetTechnicianActive enables or disables a technician account.
func (h *ProfileHandler) SetTechnicianActive(c echo.Context) error {
	a, err := actor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetActiveRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	technician, err := h.profileUC.SetTechnicianActive(c.Request().Context(), a, id, *req.Active)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, technician)
}
