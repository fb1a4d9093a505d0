package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

// SkillHandler handles skill CRUD endpoints.
type SkillHandler struct {
	skillService service.SkillService
	dev          bool
}

// NewSkillHandler creates a new skill handler.
func NewSkillHandler(skillService service.SkillService, dev bool) *SkillHandler {
	return &SkillHandler{skillService: skillService, dev: dev}
}

// SkillResponse wraps a mutated skill.
type SkillResponse struct {
	Message string       `json:"message"`
	Skill   *model.Skill `json:"skill"`
}

// List godoc
// @Summary List skills
// @Tags skills
// @Produce json
// @Success 200 {array} model.Skill
// @Router /skills [get]
func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.skillService.List(c.Request().Context())
	if err != nil {
		return writeError(c, err, h.dev)
	}
	return c.JSON(http.StatusOK, skills)
}

// Create godoc
// @Summary Create a skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateSkillInput true "Skill payload"
// @Success 201 {object} SkillResponse
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /skills [post]
func (h *SkillHandler) Create(c echo.Context) error {
	var req service.CreateSkillInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	skill, err := h.skillService.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusCreated, SkillResponse{
		Message: "Skill created successfully",
		Skill:   skill,
	})
}

// Update godoc
// @Summary Update a skill
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Skill ID"
// @Param request body service.UpdateSkillInput true "Fields to update"
// @Success 200 {object} SkillResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /skills/{id} [put]
func (h *SkillHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req service.UpdateSkillInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	skill, err := h.skillService.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, SkillResponse{
		Message: "Skill updated successfully",
		Skill:   skill,
	})
}

// Delete godoc
// @Summary Delete a skill
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Param id path string true "Skill ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /skills/{id} [delete]
func (h *SkillHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.skillService.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Skill deleted successfully"})
}
