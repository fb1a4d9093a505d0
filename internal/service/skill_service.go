package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/cache"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const skillsCacheKey = "portfolio:skills"

// CreateSkillInput is the payload for creating a skill.
type CreateSkillInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	SvgIcon  string `json:"svgIcon" validate:"required"`
	Category string `json:"category" validate:"omitempty,max=50"`
	Order    *int   `json:"order" validate:"omitempty,gte=0"`
}

// UpdateSkillInput is the partial-update payload for a skill.
type UpdateSkillInput struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	SvgIcon  *string `json:"svgIcon"`
	Category *string `json:"category" validate:"omitempty,max=50"`
	Order    *int    `json:"order" validate:"omitempty,gte=0"`
}

// SkillService manages skill records.
type SkillService interface {
	List(ctx context.Context) ([]model.Skill, error)
	Create(ctx context.Context, in CreateSkillInput) (*model.Skill, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateSkillInput) (*model.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type skillService struct {
	repo     repository.SkillRepository
	cache    *cache.Client
	cacheTTL time.Duration
}

// NewSkillService creates the skill service.
func NewSkillService(repo repository.SkillRepository, cacheClient *cache.Client, cacheTTL time.Duration) SkillService {
	return &skillService{repo: repo, cache: cacheClient, cacheTTL: cacheTTL}
}

func (s *skillService) List(ctx context.Context) ([]model.Skill, error) {
	var cached []model.Skill
	if hit, _ := s.cache.GetJSON(ctx, skillsCacheKey, &cached); hit {
		return cached, nil
	}

	skills, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, skillsCacheKey, skills, s.cacheTTL)
	return skills, nil
}

func (s *skillService) Create(ctx context.Context, in CreateSkillInput) (*model.Skill, error) {
	skill := &model.Skill{
		Name:     in.Name,
		SvgIcon:  in.SvgIcon,
		Category: "Technical",
	}
	if in.Category != "" {
		skill.Category = in.Category
	}
	if in.Order != nil {
		skill.Order = *in.Order
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, skillsCacheKey)
	return skill, nil
}

func (s *skillService) Update(ctx context.Context, id uuid.UUID, in UpdateSkillInput) (*model.Skill, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&skill.Name, in.Name)
	applyString(&skill.SvgIcon, in.SvgIcon)
	applyString(&skill.Category, in.Category)
	if in.Order != nil {
		skill.Order = *in.Order
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, skillsCacheKey)
	return skill, nil
}

func (s *skillService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, skillsCacheKey)
	return nil
}
