// Package storage provides object storage for uploaded media. The MinIO
// implementation is the production backend; the Uploader interface keeps
// services and tests independent of it.
package storage

import (
	"context"
	"io"
)

// Uploader stores a media object and returns its publicly reachable URL.
//
// Implementations must honor ctx for cancellation and return an error on any
// failure to persist the object; callers treat a non-nil error as a failed
// upload, never a partial success.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, size int64, contentType, objectName string) (string, error)
}
