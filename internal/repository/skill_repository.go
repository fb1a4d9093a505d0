package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
)

// SkillRepository defines skill persistence operations.
type SkillRepository interface {
	Create(ctx context.Context, skill *model.Skill) error
	Update(ctx context.Context, skill *model.Skill) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Skill, error)
	List(ctx context.Context) ([]model.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository builds a GORM-backed repository.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *model.Skill) error {
	return translate(r.db.WithContext(ctx).Create(skill).Error)
}

func (r *skillRepository) Update(ctx context.Context, skill *model.Skill) error {
	return translate(r.db.WithContext(ctx).Save(skill).Error)
}

func (r *skillRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Skill, error) {
	var skill model.Skill
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&skill).Error; err != nil {
		return nil, translate(err)
	}
	return &skill, nil
}

func (r *skillRepository) List(ctx context.Context) ([]model.Skill, error) {
	var skills []model.Skill
	if err := r.db.WithContext(ctx).Order("display_order ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *skillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Skill{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
