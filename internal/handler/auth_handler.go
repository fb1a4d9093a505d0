package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"portfolio/internal/auth"
	apperrors "portfolio/internal/errors"
	"portfolio/internal/service"
)

// AuthHandler handles the admin gate endpoints.
type AuthHandler struct {
	authService service.AuthService
	dev         bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, dev bool) *AuthHandler {
	return &AuthHandler{authService: authService, dev: dev}
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    TokenUser `json:"user"`
}

// TokenUser is the identity echoed back to the admin UI.
type TokenUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// VerifyResponse reports a valid token and its claims.
type VerifyResponse struct {
	Valid bool      `json:"valid"`
	User  TokenUser `json:"user"`
}

// Login godoc
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    TokenUser{Email: strings.ToLower(strings.TrimSpace(req.Email)), Role: auth.AdminRole},
	})
}

// Verify godoc
// @Summary Verify an admin token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} VerifyResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "no token provided",
			Code:  "UNAUTHORIZED",
		})
	}

	claims, err := h.authService.Verify(token)
	if err != nil {
		// Expired tokens fail identically to malformed ones.
		return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
			Error: "invalid token",
			Code:  "FORBIDDEN",
		})
	}

	return c.JSON(http.StatusOK, VerifyResponse{
		Valid: true,
		User:  TokenUser{Email: claims.Email, Role: claims.Role},
	})
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
