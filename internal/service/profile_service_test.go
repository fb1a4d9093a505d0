package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"portfolio/internal/repository"
)

func newProfileService(t *testing.T) ProfileService {
	t.Helper()
	repo := repository.NewProfileRepository(newTestDB(t))
	return NewProfileService(repo, nil, time.Minute, "admin@example.com")
}

func TestProfileService_GetCreatesDefaults(t *testing.T) {
	svc := newProfileService(t)

	profile, err := svc.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", profile.Email)
	assert.Equal(t, "Portfolio Owner", profile.Name)
	assert.Equal(t, "Full Stack Developer", profile.Tagline)
}

func TestProfileService_GetIsSingleton(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	first, err := svc.Get(ctx)
	assert.NoError(t, err)
	second, err := svc.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestProfileService_Update(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	profile, err := svc.Update(ctx, UpdateProfileInput{
		Name:     strPtr("Jane Doe"),
		Location: strPtr("Berlin"),
		Github:   strPtr("janedoe"),
		Linkedin: strPtr("in/jane-doe"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "Berlin", profile.Location)
	assert.Equal(t, "https://github.com/janedoe", profile.Github)
	assert.Equal(t, "https://www.linkedin.com/in/jane-doe", profile.Linkedin)
	// Untouched fields keep their defaults.
	assert.Equal(t, "Full Stack Developer", profile.Tagline)
}

func TestProfileService_UpdateIgnoresEmptyStrings(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, UpdateProfileInput{Name: strPtr("Jane Doe")})
	assert.NoError(t, err)

	profile, err := svc.Update(ctx, UpdateProfileInput{
		Name:    strPtr(""),
		Tagline: strPtr("Backend Engineer"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "Backend Engineer", profile.Tagline)
}

func TestProfileService_SetPhotoAndCV(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	profile, err := svc.SetPhoto(ctx, "/uploads/photos-abc.png")
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/photos-abc.png", profile.ProfilePhoto)

	profile, err = svc.SetCV(ctx, "/uploads/cv-def.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/cv-def.pdf", profile.CVUrl)
	assert.Equal(t, "/uploads/photos-abc.png", profile.ProfilePhoto)
}
