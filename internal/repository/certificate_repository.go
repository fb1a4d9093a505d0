package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
)

// CertificateRepository defines certificate persistence operations.
type CertificateRepository interface {
	Create(ctx context.Context, cert *model.Certificate) error
	Update(ctx context.Context, cert *model.Certificate) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Certificate, error)
	List(ctx context.Context) ([]model.Certificate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type certificateRepository struct {
	db *gorm.DB
}

// NewCertificateRepository builds a GORM-backed repository.
func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) Create(ctx context.Context, cert *model.Certificate) error {
	return translate(r.db.WithContext(ctx).Create(cert).Error)
}

func (r *certificateRepository) Update(ctx context.Context, cert *model.Certificate) error {
	return translate(r.db.WithContext(ctx).Save(cert).Error)
}

func (r *certificateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Certificate, error) {
	var cert model.Certificate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cert).Error; err != nil {
		return nil, translate(err)
	}
	return &cert, nil
}

// List returns all certificates, most recently issued first.
func (r *certificateRepository) List(ctx context.Context) ([]model.Certificate, error) {
	var certs []model.Certificate
	if err := r.db.WithContext(ctx).Order("issue_date DESC, display_order ASC").Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *certificateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Certificate{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
