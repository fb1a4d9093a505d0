package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
)

// ProfileRepository defines persistence operations for the singleton profile.
type ProfileRepository interface {
	// GetOrCreate returns the profile row, creating it from defaults when the
	// table is empty. Idempotent: concurrent callers converge on one row.
	GetOrCreate(ctx context.Context, defaults *model.Profile) (*model.Profile, error)
	Update(ctx context.Context, profile *model.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository builds a GORM-backed repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetOrCreate(ctx context.Context, defaults *model.Profile) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(defaults).Error; err != nil {
		// A concurrent creator may have won the unique email index; re-read.
		if errors.Is(translate(err), apperrors.ErrDuplicate) {
			if rerr := r.db.WithContext(ctx).Order("created_at ASC").First(&profile).Error; rerr == nil {
				return &profile, nil
			}
		}
		return nil, err
	}
	return defaults, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) error {
	return translate(r.db.WithContext(ctx).Save(profile).Error)
}
