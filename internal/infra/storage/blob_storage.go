package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"servihub/config"
	"servihub/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// DownloadRoute is the API path serving files from buckets that cannot sign URLs.
const DownloadRoute = "/api/v1/files/"

var ErrFileNotFound = errors.New("file not found")

// blobStorage implements FileStorage on a gocloud.dev bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// New opens the configured bucket. Supported schemes are file://, mem:// and gs://.
func New(ctx context.Context, cfg *config.StorageConfig, logger *slog.Logger) (service.FileStorage, func() error, error) {
	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	logger.Info("Blob storage opened", slog.String("bucket", redactBucketURL(cfg.BucketURL)))

	return NewBlobStorage(bucket, cfg.PublicBaseURL, logger), bucket.Close, nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.FileStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

func (s *blobStorage) Upload(ctx context.Context, key, contentType string, content io.Reader) error {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()

		return errors.Wrapf(err, "failed to write %s", key)
	}

	return errors.Wrapf(writer.Close(), "failed to commit %s", key)
}

// SignedURL falls back to the API download route when the driver cannot sign.
func (s *blobStorage) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	signed, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Expiry: ttl,
	})
	if err == nil {
		return signed, nil
	}

	if gcerrors.Code(err) != gcerrors.Unimplemented {
		return "", errors.Wrapf(err, "failed to sign %s", key)
	}

	return s.publicBaseURL + DownloadRoute + escapeKey(key), nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", ErrFileNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open %s", key)
	}

	return reader, reader.ContentType(), nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err == nil || gcerrors.Code(err) == gcerrors.NotFound {
		return nil
	}

	return errors.Wrapf(err, "failed to delete %s", key)
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}

	return strings.Join(parts, "/")
}

func redactBucketURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	parsed.RawQuery = ""

	return parsed.String()
}
