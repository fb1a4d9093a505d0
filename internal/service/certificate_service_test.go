package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/repository"
)

func newCertificateService(t *testing.T) CertificateService {
	t.Helper()
	repo := repository.NewCertificateRepository(newTestDB(t))
	return NewCertificateService(repo, nil, time.Minute)
}

func TestCertificateService_Create(t *testing.T) {
	svc := newCertificateService(t)

	cert, err := svc.Create(context.Background(), CreateCertificateInput{
		Title:         "AWS Certified Developer",
		Issuer:        "Amazon Web Services",
		IssueDate:     "2024-03-15",
		CredentialID:  "ABC-123",
		CredentialUrl: "aws.amazon.com/verify/ABC-123",
	})
	assert.NoError(t, err)
	assert.Equal(t, 2024, cert.IssueDate.Year())
	assert.Equal(t, time.March, cert.IssueDate.Month())
	assert.Equal(t, "https://aws.amazon.com/verify/ABC-123", cert.CredentialUrl)
}

func TestCertificateService_CreateAcceptsRFC3339(t *testing.T) {
	svc := newCertificateService(t)

	cert, err := svc.Create(context.Background(), CreateCertificateInput{
		Title:     "Kubernetes Administrator",
		Issuer:    "CNCF",
		IssueDate: "2023-11-01T00:00:00Z",
	})
	assert.NoError(t, err)
	assert.Equal(t, 2023, cert.IssueDate.Year())
}

func TestCertificateService_CreateRejectsBadDate(t *testing.T) {
	svc := newCertificateService(t)

	_, err := svc.Create(context.Background(), CreateCertificateInput{
		Title:     "Broken",
		Issuer:    "Nobody",
		IssueDate: "March 15th 2024",
	})
	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "issueDate", verr.Violations[0].Field)
}

func TestCertificateService_ListNewestFirst(t *testing.T) {
	svc := newCertificateService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCertificateInput{Title: "Old", Issuer: "X", IssueDate: "2020-01-01"})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, CreateCertificateInput{Title: "New", Issuer: "X", IssueDate: "2024-01-01"})
	assert.NoError(t, err)

	certs, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, certs, 2)
	assert.Equal(t, "New", certs[0].Title)
	assert.Equal(t, "Old", certs[1].Title)
}

func TestCertificateService_UpdateIssueDate(t *testing.T) {
	svc := newCertificateService(t)
	ctx := context.Background()

	cert, err := svc.Create(ctx, CreateCertificateInput{Title: "Cert", Issuer: "X", IssueDate: "2020-01-01"})
	assert.NoError(t, err)

	updated, err := svc.Update(ctx, cert.ID, UpdateCertificateInput{
		IssueDate: strPtr("2022-06-30"),
		Issuer:    strPtr("Y"),
	})
	assert.NoError(t, err)
	assert.Equal(t, 2022, updated.IssueDate.Year())
	assert.Equal(t, "Y", updated.Issuer)
	assert.Equal(t, "Cert", updated.Title)
}

func TestCertificateService_DuplicateTitle(t *testing.T) {
	svc := newCertificateService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateCertificateInput{Title: "Cert", Issuer: "X", IssueDate: "2020-01-01"})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, CreateCertificateInput{Title: "Cert", Issuer: "Y", IssueDate: "2021-01-01"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}
