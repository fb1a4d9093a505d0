package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/repository"
)

func newProjectService(t *testing.T) ProjectService {
	t.Helper()
	repo := repository.NewProjectRepository(newTestDB(t))
	return NewProjectService(repo, nil, time.Minute)
}

func TestProjectService_Create(t *testing.T) {
	svc := newProjectService(t)
	ctx := context.Background()

	project, err := svc.Create(ctx, CreateProjectInput{
		Title:       "Chat Server",
		Description: "A websocket chat server.",
		TechStack:   "Go, Redis",
		LiveUrl:     "chat.example.com",
		GithubUrl:   "https://github.com/me/chat",
		Featured:    boolPtr(true),
		Order:       intPtr(2),
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, project.ID)
	assert.Equal(t, "https://chat.example.com", project.LiveUrl)
	assert.Equal(t, "https://github.com/me/chat", project.GithubUrl)
	assert.True(t, project.Featured)
	assert.Equal(t, 2, project.Order)
}

func TestProjectService_CreateDuplicateTitle(t *testing.T) {
	svc := newProjectService(t)
	ctx := context.Background()

	in := CreateProjectInput{
		Title:       "Chat Server",
		Description: "A websocket chat server.",
		TechStack:   "Go",
	}
	_, err := svc.Create(ctx, in)
	assert.NoError(t, err)

	_, err = svc.Create(ctx, in)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestProjectService_CreateRejectsBadURL(t *testing.T) {
	svc := newProjectService(t)

	_, err := svc.Create(context.Background(), CreateProjectInput{
		Title:       "Broken",
		Description: "Bad live url.",
		TechStack:   "Go",
		LiveUrl:     "https://",
	})
	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestProjectService_ListOrdersFeaturedFirst(t *testing.T) {
	svc := newProjectService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateProjectInput{Title: "Plain", Description: "d", TechStack: "Go", Order: intPtr(1)})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, CreateProjectInput{Title: "Starred", Description: "d", TechStack: "Go", Featured: boolPtr(true), Order: intPtr(5)})
	assert.NoError(t, err)

	projects, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, "Starred", projects[0].Title)
	assert.Equal(t, "Plain", projects[1].Title)
}

func TestProjectService_UpdateSkipsEmptyStrings(t *testing.T) {
	svc := newProjectService(t)
	ctx := context.Background()

	project, err := svc.Create(ctx, CreateProjectInput{
		Title:       "Chat Server",
		Description: "Original description.",
		TechStack:   "Go",
	})
	assert.NoError(t, err)

	updated, err := svc.Update(ctx, project.ID, UpdateProjectInput{
		Title:       strPtr(""),
		Description: strPtr("New description."),
		Featured:    boolPtr(true),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Chat Server", updated.Title)
	assert.Equal(t, "New description.", updated.Description)
	assert.True(t, updated.Featured)
}

func TestProjectService_UpdateNotFound(t *testing.T) {
	svc := newProjectService(t)

	_, err := svc.Update(context.Background(), uuid.New(), UpdateProjectInput{Title: strPtr("x")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProjectService_Delete(t *testing.T) {
	svc := newProjectService(t)
	ctx := context.Background()

	project, err := svc.Create(ctx, CreateProjectInput{Title: "Gone", Description: "d", TechStack: "Go"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, project.ID))
	assert.ErrorIs(t, svc.Delete(ctx, project.ID), apperrors.ErrNotFound)

	projects, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, projects)
}
