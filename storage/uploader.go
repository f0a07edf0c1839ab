package storage

import (
	"context"
	"io"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader is the file-store boundary for every uploaded attachment:
// resumes, MOU PDFs, gallery and community images. Keys are bucket-relative
// paths; GetPublicURL resolves a key to a URL reachable by site visitors.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}
