package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	apperrors "portfolio/internal/errors"
)

// AuthService is the admin gate: one shared credential pair, one signed token.
type AuthService interface {
	// Login verifies the credential pair and issues a token. Every mismatch
	// returns the same ErrInvalidCredentials; callers cannot tell whether the
	// email or the password was wrong.
	Login(ctx context.Context, email, password string) (string, error)
	// Verify validates a token and returns its claims.
	Verify(token string) (*auth.Claims, error)
}

type authService struct {
	cfg    *config.Config
	tokens *auth.TokenService
}

// NewAuthService creates the admin authentication service.
func NewAuthService(cfg *config.Config, tokens *auth.TokenService) AuthService {
	return &authService{cfg: cfg, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	adminEmail := strings.TrimSpace(s.cfg.AdminEmail)
	if !strings.EqualFold(strings.TrimSpace(email), adminEmail) || adminEmail == "" {
		return "", apperrors.ErrInvalidCredentials
	}

	if !s.passwordMatches(strings.TrimSpace(password)) {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.tokens.Generate(adminEmail)
}

func (s *authService) Verify(token string) (*auth.Claims, error) {
	return s.tokens.Verify(token)
}

// passwordMatches prefers the bcrypt hash when configured and otherwise falls
// back to an exact compare against the plain configured password.
func (s *authService) passwordMatches(password string) bool {
	if s.cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
	}
	configured := strings.TrimSpace(s.cfg.AdminPassword)
	return configured != "" && password == configured
}
