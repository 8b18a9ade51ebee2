package impl

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"
	"time"

	"servihub/config"
	domainerrors "servihub/internal/domain/errors"
	"servihub/internal/domain/service"
	"servihub/internal/errors"
	"servihub/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultSignedURLTTL   = 15 * time.Minute
	defaultMaxUploadBytes = 5 << 20
)

// uploader stores user files under <prefix>/<owner id>/<name> and signs download URLs.
type uploader struct {
	storage  service.FileStorage
	ttl      time.Duration
	maxBytes int64
	logger   *slog.Logger
}

func newUploader(storage service.FileStorage, cfg *config.Config, logger *slog.Logger) *uploader {
	u := &uploader{
		storage:  storage,
		ttl:      defaultSignedURLTTL,
		maxBytes: defaultMaxUploadBytes,
		logger:   logger,
	}
	if cfg != nil && cfg.Storage != nil {
		if cfg.Storage.SignedURLTTL > 0 {
			u.ttl = cfg.Storage.SignedURLTTL
		}
		if cfg.Storage.MaxUploadBytes > 0 {
			u.maxBytes = cfg.Storage.MaxUploadBytes
		}
	}

	return u
}

func (u *uploader) store(ctx context.Context, prefix string, ownerID uuid.UUID, upload *usecase.FileUpload) (string, error) {
	if upload == nil || upload.Content == nil {
		return "", validationError("file is required")
	}
	if upload.Size > u.maxBytes {
		return "", domainerrors.ErrFileTooLarge
	}

	name := sanitizeFilename(upload.Filename)
	contentType := upload.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(name))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := path.Join(prefix, ownerID.String(), name)
	limited := &limitedReader{r: io.LimitReader(upload.Content, u.maxBytes+1), max: u.maxBytes}
	if err := u.storage.Upload(ctx, key, contentType, limited); err != nil {
		if limited.exceeded {
			return "", domainerrors.ErrFileTooLarge
		}

		return "", domainerrors.ErrUploadFailed.WithDetails(errors.Wrap(err, key).Error())
	}
	if limited.exceeded {
		_ = u.storage.Delete(ctx, key)

		return "", domainerrors.ErrFileTooLarge
	}

	return key, nil
}

// signedURL returns a download URL for key, or "" when signing fails.
func (u *uploader) signedURL(ctx context.Context, key string) string {
	if key == "" {
		return ""
	}

	url, err := u.storage.SignedURL(ctx, key, u.ttl)
	if err != nil {
		u.logger.WarnContext(ctx, "Failed to sign file URL", slog.String("key", key), slog.Any("error", err))

		return ""
	}

	return url
}

func (u *uploader) remove(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := u.storage.Delete(ctx, key); err != nil {
		u.logger.WarnContext(ctx, "Failed to delete stored file", slog.String("key", key), slog.Any("error", err))
	}
}

// sanitizeFilename keeps the base name and replaces characters unsafe in object keys.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	name = strings.TrimLeft(name, ".")
	if name == "" || name == "_" {
		return "file"
	}

	return name
}

// limitedReader reports whether the source had more than max bytes.
type limitedReader struct {
	r        io.Reader
	max      int64
	read     int64
	exceeded bool
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.read > l.max {
		l.exceeded = true

		return n, errors.New("upload exceeds size limit")
	}

	return n, err
}
