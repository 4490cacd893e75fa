package storage

import (
	"context"
	"io"
)

// Service stores uploaded profile images in remote object storage and
// returns a URL the core records on the user. The core never reads the
// file back; the URL is an opaque reference.
type Service interface {
	UploadProfileImage(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	DeleteObject(ctx context.Context, key string) error
}
