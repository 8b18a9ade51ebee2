package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"servihub/internal/delivery/api/response"
	deliverycontext "servihub/internal/delivery/context"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/service"
	"servihub/internal/errors"
	"servihub/internal/infra/storage"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FileHandlerParams holds dependencies for FileHandler, injected by Fx.
type FileHandlerParams struct {
	fx.In

	Storage service.FileStorage
	Logger  *slog.Logger
}

// FileHandler streams stored files for buckets that cannot sign URLs.
type FileHandler struct {
	storage service.FileStorage
	logger  *slog.Logger
}

// NewFileHandler is the constructor for FileHandler.
func NewFileHandler(params FileHandlerParams) *FileHandler {
	return &FileHandler{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// Download streams the file under the wildcard key.
func (h *FileHandler) Download(c echo.Context) error {
	key, err := url.PathUnescape(c.Param("*"))
	if err != nil || key == "" || strings.Contains(key, "..") {
		return response.HandleAppError(c, domainerrors.ErrNotFound)
	}

	ctx := c.Request().Context()
	reader, contentType, err := h.storage.Open(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return response.HandleAppError(c, domainerrors.ErrNotFound)
		}

		return errors.Wrap(err, "failed to open file")
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Failed to close file reader",
				slog.String("key", key),
				slog.Any("error", closeErr),
			)
		}
	}()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=300")

	return c.Stream(http.StatusOK, contentType, reader)
}
