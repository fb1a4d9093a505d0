package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

// CertificateHandler handles certificate CRUD endpoints.
type CertificateHandler struct {
	certService service.CertificateService
	dev         bool
}

// NewCertificateHandler creates a new certificate handler.
func NewCertificateHandler(certService service.CertificateService, dev bool) *CertificateHandler {
	return &CertificateHandler{certService: certService, dev: dev}
}

// CertificateResponse wraps a mutated certificate.
type CertificateResponse struct {
	Message     string             `json:"message"`
	Certificate *model.Certificate `json:"certificate"`
}

// List godoc
// @Summary List certificates
// @Description Most recently issued first, then by display order.
// @Tags certificates
// @Produce json
// @Success 200 {array} model.Certificate
// @Router /certificates [get]
func (h *CertificateHandler) List(c echo.Context) error {
	certs, err := h.certService.List(c.Request().Context())
	if err != nil {
		return writeError(c, err, h.dev)
	}
	return c.JSON(http.StatusOK, certs)
}

// Create godoc
// @Summary Create a certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateCertificateInput true "Certificate payload"
// @Success 201 {object} CertificateResponse
// @Failure 400 {object} errors.ValidationErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /certificates [post]
func (h *CertificateHandler) Create(c echo.Context) error {
	var req service.CreateCertificateInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cert, err := h.certService.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusCreated, CertificateResponse{
		Message:     "Certificate created successfully",
		Certificate: cert,
	})
}

// Update godoc
// @Summary Update a certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Param request body service.UpdateCertificateInput true "Fields to update"
// @Success 200 {object} CertificateResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /certificates/{id} [put]
func (h *CertificateHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req service.UpdateCertificateInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cert, err := h.certService.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, CertificateResponse{
		Message:     "Certificate updated successfully",
		Certificate: cert,
	})
}

// Delete godoc
// @Summary Delete a certificate
// @Tags certificates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Certificate ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /certificates/{id} [delete]
func (h *CertificateHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.certService.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Certificate deleted successfully"})
}
