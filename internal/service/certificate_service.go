package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/cache"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/validate"
)

const certificatesCacheKey = "portfolio:certificates"

// CreateCertificateInput is the payload for creating a certificate.
type CreateCertificateInput struct {
	Title         string `json:"title" validate:"required,max=200"`
	Issuer        string `json:"issuer" validate:"required,max=200"`
	IssueDate     string `json:"issueDate" validate:"required"`
	CredentialID  string `json:"credentialId" validate:"omitempty,max=100"`
	CredentialUrl string `json:"credentialUrl" validate:"omitempty,max=500"`
	ImageUrl      string `json:"imageUrl" validate:"omitempty,max=1000,uploadref"`
	Order         *int   `json:"order" validate:"omitempty,gte=0"`
}

// UpdateCertificateInput is the partial-update payload for a certificate.
type UpdateCertificateInput struct {
	Title         *string `json:"title" validate:"omitempty,max=200"`
	Issuer        *string `json:"issuer" validate:"omitempty,max=200"`
	IssueDate     *string `json:"issueDate"`
	CredentialID  *string `json:"credentialId" validate:"omitempty,max=100"`
	CredentialUrl *string `json:"credentialUrl" validate:"omitempty,max=500"`
	ImageUrl      *string `json:"imageUrl" validate:"omitempty,max=1000,uploadref"`
	Order         *int    `json:"order" validate:"omitempty,gte=0"`
}

// CertificateService manages certificate records.
type CertificateService interface {
	List(ctx context.Context) ([]model.Certificate, error)
	Create(ctx context.Context, in CreateCertificateInput) (*model.Certificate, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateCertificateInput) (*model.Certificate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type certificateService struct {
	repo     repository.CertificateRepository
	cache    *cache.Client
	cacheTTL time.Duration
}

// NewCertificateService creates the certificate service.
func NewCertificateService(repo repository.CertificateRepository, cacheClient *cache.Client, cacheTTL time.Duration) CertificateService {
	return &certificateService{repo: repo, cache: cacheClient, cacheTTL: cacheTTL}
}

func (s *certificateService) List(ctx context.Context) ([]model.Certificate, error) {
	var cached []model.Certificate
	if hit, _ := s.cache.GetJSON(ctx, certificatesCacheKey, &cached); hit {
		return cached, nil
	}

	certs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, certificatesCacheKey, certs, s.cacheTTL)
	return certs, nil
}

func (s *certificateService) Create(ctx context.Context, in CreateCertificateInput) (*model.Certificate, error) {
	issueDate, err := parseIssueDate(in.IssueDate)
	if err != nil {
		return nil, err
	}
	credentialUrl, err := validate.NormalizeURL("credentialUrl", in.CredentialUrl)
	if err != nil {
		return nil, err
	}

	cert := &model.Certificate{
		Title:         in.Title,
		Issuer:        in.Issuer,
		IssueDate:     issueDate,
		CredentialID:  in.CredentialID,
		CredentialUrl: credentialUrl,
		ImageUrl:      strings.TrimSpace(in.ImageUrl),
	}
	if in.Order != nil {
		cert.Order = *in.Order
	}

	if err := s.repo.Create(ctx, cert); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, certificatesCacheKey)
	return cert, nil
}

func (s *certificateService) Update(ctx context.Context, id uuid.UUID, in UpdateCertificateInput) (*model.Certificate, error) {
	cert, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&cert.Title, in.Title)
	applyString(&cert.Issuer, in.Issuer)
	applyString(&cert.CredentialID, in.CredentialID)
	applyString(&cert.ImageUrl, in.ImageUrl)
	if in.IssueDate != nil && strings.TrimSpace(*in.IssueDate) != "" {
		issueDate, err := parseIssueDate(*in.IssueDate)
		if err != nil {
			return nil, err
		}
		cert.IssueDate = issueDate
	}
	if err := applyURL(&cert.CredentialUrl, "credentialUrl", in.CredentialUrl); err != nil {
		return nil, err
	}
	if in.Order != nil {
		cert.Order = *in.Order
	}

	if err := s.repo.Update(ctx, cert); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, certificatesCacheKey)
	return cert, nil
}

func (s *certificateService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, certificatesCacheKey)
	return nil
}

// parseIssueDate accepts RFC3339 timestamps or plain calendar dates.
func parseIssueDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Time{}, apperrors.NewValidationError("issueDate", "date", "issueDate must be an ISO 8601 date")
}
