package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

// ProjectHandler handles project CRUD endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
	dev            bool
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService, dev bool) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, dev: dev}
}

// ProjectResponse wraps a mutated project.
type ProjectResponse struct {
	Message string         `json:"message"`
	Project *model.Project `json:"project"`
}

// List godoc
// @Summary List projects
// @Description Featured projects first, then by display order.
// @Tags projects
// @Produce json
// @Success 200 {array} model.Project
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.projectService.List(c.Request().Context())
	if err != nil {
		return writeError(c, err, h.dev)
	}
	return c.JSON(http.StatusOK, projects)
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateProjectInput true "Project payload"
// @Success 201 {object} ProjectResponse
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req service.CreateProjectInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.projectService.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusCreated, ProjectResponse{
		Message: "Project created successfully",
		Project: project,
	})
}

// Update godoc
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body service.UpdateProjectInput true "Fields to update"
// @Success 200 {object} ProjectResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req service.UpdateProjectInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.projectService.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, ProjectResponse{
		Message: "Project updated successfully",
		Project: project,
	})
}

// Delete godoc
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.projectService.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
