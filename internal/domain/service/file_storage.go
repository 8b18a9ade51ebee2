package service

import (
	"context"
	"io"
	"time"
)

// FileStorage stores uploaded files (product images, ticket attachments) in a bucket.
type FileStorage interface {
	// Upload writes the content under key.
	Upload(ctx context.Context, key, contentType string, content io.Reader) error

	// SignedURL returns a time-limited download URL for key.
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)

	// Open streams the content of key together with its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
