package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "portfolio/internal/errors"
)

func TestCheckUpload(t *testing.T) {
	tests := []struct {
		name          string
		in            SaveInput
		maxSize       int64
		allowedTypes  []string
		expectedError error
	}{
		{
			name:         "image within limits",
			in:           SaveInput{ContentType: "image/png", Size: 1024},
			maxSize:      5 << 20,
			allowedTypes: []string{"image/"},
		},
		{
			name:         "pdf allowed by exact type",
			in:           SaveInput{ContentType: "application/pdf", Size: 2048},
			maxSize:      5 << 20,
			allowedTypes: []string{"application/pdf"},
		},
		{
			name:          "oversized file rejected",
			in:            SaveInput{ContentType: "image/png", Size: 6 << 20},
			maxSize:       5 << 20,
			allowedTypes:  []string{"image/"},
			expectedError: apperrors.ErrPayloadTooLarge,
		},
		{
			name:          "wrong media type rejected",
			in:            SaveInput{ContentType: "text/html", Size: 1024},
			maxSize:       5 << 20,
			allowedTypes:  []string{"image/"},
			expectedError: apperrors.ErrUnsupportedMediaType,
		},
		{
			name:          "pdf not accepted for images",
			in:            SaveInput{ContentType: "application/pdf", Size: 1024},
			maxSize:       5 << 20,
			allowedTypes:  []string{"image/"},
			expectedError: apperrors.ErrUnsupportedMediaType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckUpload(tt.in, tt.maxSize, tt.allowedTypes...)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLocal_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir)
	assert.NoError(t, err)

	ref, err := store.Save(context.Background(), SaveInput{
		Folder:   "photos",
		Filename: "me.png",
		Body:     strings.NewReader("fake image bytes"),
	})
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/uploads/photos-"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(ref, "/uploads/")))
	assert.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestLocal_SaveUniqueNames(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	assert.NoError(t, err)

	first, err := store.Save(context.Background(), SaveInput{Folder: "cv", Filename: "resume.pdf", Body: strings.NewReader("a")})
	assert.NoError(t, err)
	second, err := store.Save(context.Background(), SaveInput{Folder: "cv", Filename: "resume.pdf", Body: strings.NewReader("b")})
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewLocal_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocal(dir)
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
