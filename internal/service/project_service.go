package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/cache"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/validate"
)

const projectsCacheKey = "portfolio:projects"

// CreateProjectInput is the payload for creating a project. TechStack accepts
// a string or an array of strings; live/github URLs may omit the scheme.
type CreateProjectInput struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Description string          `json:"description" validate:"required,max=1000"`
	TechStack   model.TechStack `json:"techStack" validate:"required,max=500"`
	ImageUrl    string          `json:"imageUrl" validate:"omitempty,max=1000,uploadref"`
	LiveUrl     string          `json:"liveUrl" validate:"omitempty,max=500"`
	GithubUrl   string          `json:"githubUrl" validate:"omitempty,max=500"`
	Featured    *bool           `json:"featured"`
	Order       *int            `json:"order" validate:"omitempty,gte=0"`
}

// UpdateProjectInput is the partial-update payload for a project.
type UpdateProjectInput struct {
	Title       *string          `json:"title" validate:"omitempty,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	TechStack   *model.TechStack `json:"techStack" validate:"omitempty,max=500"`
	ImageUrl    *string          `json:"imageUrl" validate:"omitempty,max=1000,uploadref"`
	LiveUrl     *string          `json:"liveUrl" validate:"omitempty,max=500"`
	GithubUrl   *string          `json:"githubUrl" validate:"omitempty,max=500"`
	Featured    *bool            `json:"featured"`
	Order       *int             `json:"order" validate:"omitempty,gte=0"`
}

// ProjectService manages project records.
type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	repo     repository.ProjectRepository
	cache    *cache.Client
	cacheTTL time.Duration
}

// NewProjectService creates the project service.
func NewProjectService(repo repository.ProjectRepository, cacheClient *cache.Client, cacheTTL time.Duration) ProjectService {
	return &projectService{repo: repo, cache: cacheClient, cacheTTL: cacheTTL}
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	var cached []model.Project
	if hit, _ := s.cache.GetJSON(ctx, projectsCacheKey, &cached); hit {
		return cached, nil
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, projectsCacheKey, projects, s.cacheTTL)
	return projects, nil
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	liveUrl, err := validate.NormalizeURL("liveUrl", in.LiveUrl)
	if err != nil {
		return nil, err
	}
	githubUrl, err := validate.NormalizeURL("githubUrl", in.GithubUrl)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		Title:       in.Title,
		Description: in.Description,
		TechStack:   string(in.TechStack),
		ImageUrl:    strings.TrimSpace(in.ImageUrl),
		LiveUrl:     liveUrl,
		GithubUrl:   githubUrl,
	}
	if in.Featured != nil {
		project.Featured = *in.Featured
	}
	if in.Order != nil {
		project.Order = *in.Order
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, projectsCacheKey)
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, in UpdateProjectInput) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&project.Title, in.Title)
	applyString(&project.Description, in.Description)
	if in.TechStack != nil && strings.TrimSpace(string(*in.TechStack)) != "" {
		project.TechStack = string(*in.TechStack)
	}
	applyString(&project.ImageUrl, in.ImageUrl)
	if err := applyURL(&project.LiveUrl, "liveUrl", in.LiveUrl); err != nil {
		return nil, err
	}
	if err := applyURL(&project.GithubUrl, "githubUrl", in.GithubUrl); err != nil {
		return nil, err
	}
	if in.Featured != nil {
		project.Featured = *in.Featured
	}
	if in.Order != nil {
		project.Order = *in.Order
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, projectsCacheKey)
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, projectsCacheKey)
	return nil
}

// applyURL normalizes and applies an optional URL update field; empty values
// are skipped like any other empty string.
func applyURL(dst *string, field string, src *string) error {
	if src == nil || strings.TrimSpace(*src) == "" {
		return nil
	}
	normalized, err := validate.NormalizeURL(field, *src)
	if err != nil {
		return err
	}
	*dst = normalized
	return nil
}
