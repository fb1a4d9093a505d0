package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

// ProfileHandler handles the public profile and its admin update.
type ProfileHandler struct {
	profileService service.ProfileService
	dev            bool
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService, dev bool) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, dev: dev}
}

// ProfileResponse wraps the updated profile.
type ProfileResponse struct {
	Message string         `json:"message"`
	User    *model.Profile `json:"user"`
}

// Get godoc
// @Summary Get the public profile
// @Tags userinfo
// @Produce json
// @Success 200 {object} model.Profile
// @Failure 500 {object} errors.ErrorResponse
// @Router /userinfo [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.profileService.Get(c.Request().Context())
	if err != nil {
		return writeError(c, err, h.dev)
	}
	return c.JSON(http.StatusOK, profile)
}

// Update godoc
// @Summary Update the profile
// @Tags userinfo
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.UpdateProfileInput true "Fields to update"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /userinfo [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req service.UpdateProfileInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.profileService.Update(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		Message: "User information updated successfully",
		User:    profile,
	})
}
