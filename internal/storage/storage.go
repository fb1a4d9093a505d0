// Package storage holds the file-ingestion collaborators. Entities only ever
// see the returned reference string (absolute URL or "/uploads/..." path).
package storage

import (
	"context"
	"io"
	"strings"

	apperrors "portfolio/internal/errors"
)

// SaveInput describes one uploaded binary.
type SaveInput struct {
	Folder      string // logical grouping, e.g. "photos", "cv", "projects"
	Filename    string // original client filename, used for the extension only
	ContentType string
	Size        int64
	Body        io.Reader
}

// Store persists uploaded binaries and returns a stable reference URL.
type Store interface {
	Save(ctx context.Context, in SaveInput) (string, error)
}

// CheckUpload enforces the size limit and the allowed content-type prefixes
// before any bytes are written.
func CheckUpload(in SaveInput, maxSize int64, allowedTypes ...string) error {
	if in.Size > maxSize {
		return apperrors.ErrPayloadTooLarge
	}
	for _, t := range allowedTypes {
		if strings.HasPrefix(in.ContentType, t) {
			return nil
		}
	}
	return apperrors.ErrUnsupportedMediaType
}
