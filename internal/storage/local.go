package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Local stores uploads on disk under a single directory, served by the
// server's /uploads static route. References are "/uploads/<name>" paths.
type Local struct {
	dir string
}

// NewLocal creates the upload directory if needed.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

// Save writes the file under a unique name and returns its /uploads path.
func (l *Local) Save(ctx context.Context, in SaveInput) (string, error) {
	name := uniqueName(in.Folder, in.Filename)
	path := filepath.Join(l.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, in.Body); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return "/uploads/" + name, nil
}

// uniqueName builds "<folder>-<uuid><ext>" so concurrent uploads never collide
// and client filenames never reach the filesystem.
func uniqueName(folder, filename string) string {
	ext := filepath.Ext(filename)
	if folder == "" {
		folder = "file"
	}
	return fmt.Sprintf("%s-%s%s", folder, uuid.New().String(), ext)
}
