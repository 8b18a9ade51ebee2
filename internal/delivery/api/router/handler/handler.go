// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"
	"strconv"

	"servihub/internal/delivery/api/middleware"
	"servihub/internal/delivery/api/response"
	"servihub/internal/delivery/api/validator"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// messageResponse is returned by endpoints that have nothing else to report.
type messageResponse struct {
	Message string `json:"message"`
}

// bind decodes the request into req and checks its validate tags.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request")
	}

	if err := c.Validate(req); err != nil {
		if ve, ok := errors.AsType[*validator.ValidationError](err); ok {
			return ve.AppError()
		}

		return errors.WithStack(err)
	}

	return nil
}

// actor returns the authenticated caller or the unauthorized error.
func actor(c echo.Context) (usecase.Actor, error) {
	a, ok := middleware.GetActor(c)
	if !ok {
		return usecase.Actor{}, domainerrors.ErrUnauthorized
	}

	return a, nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return &id, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return n, nil
}

// formUpload reads the multipart file field into a FileUpload. The caller closes the returned file.
func formUpload(c echo.Context, field string) (*usecase.FileUpload, func() error, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, domainerrors.ErrValidationFailed.WithDetails(field + " is required")
		}

		return nil, nil, domainerrors.ErrValidationFailed.WithDetails("malformed upload")
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open upload")
	}

	return &usecase.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	}, file.Close, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
