package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

// UploadHandler handles multipart file uploads. The store decides where the
// bytes land (disk or bucket); entities only keep the returned reference.
type UploadHandler struct {
	store          storage.Store
	profileService service.ProfileService
	maxSize        int64
	dev            bool
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(store storage.Store, profileService service.ProfileService, maxSize int64, dev bool) *UploadHandler {
	return &UploadHandler{
		store:          store,
		profileService: profileService,
		maxSize:        maxSize,
		dev:            dev,
	}
}

// UploadResponse carries the stored file reference.
type UploadResponse struct {
	Message string         `json:"message"`
	URL     string         `json:"url"`
	User    *model.Profile `json:"user,omitempty"`
}

// Photo godoc
// @Summary Upload the profile photo
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Image file"
// @Success 200 {object} UploadResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 415 {object} errors.ErrorResponse
// @Router /upload/photo [post]
func (h *UploadHandler) Photo(c echo.Context) error {
	url, err := h.save(c, "photo", "photos", "image/")
	if err != nil {
		return err
	}

	profile, err := h.profileService.SetPhoto(c.Request().Context(), url)
	if err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, UploadResponse{
		Message: "Profile photo uploaded successfully",
		URL:     url,
		User:    profile,
	})
}

// CV godoc
// @Summary Upload the CV
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param cv formData file true "PDF file"
// @Success 200 {object} UploadResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 415 {object} errors.ErrorResponse
// @Router /upload/cv [post]
func (h *UploadHandler) CV(c echo.Context) error {
	url, err := h.save(c, "cv", "cv", "application/pdf")
	if err != nil {
		return err
	}

	profile, err := h.profileService.SetCV(c.Request().Context(), url)
	if err != nil {
		return writeError(c, err, h.dev)
	}

	return c.JSON(http.StatusOK, UploadResponse{
		Message: "CV uploaded successfully",
		URL:     url,
		User:    profile,
	})
}

// ProjectImage godoc
// @Summary Upload a project image
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 200 {object} UploadResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 415 {object} errors.ErrorResponse
// @Router /upload/project-image [post]
func (h *UploadHandler) ProjectImage(c echo.Context) error {
	url, err := h.save(c, "image", "projects", "image/")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, UploadResponse{
		Message: "Project image uploaded successfully",
		URL:     url,
	})
}

// CertificateImage godoc
// @Summary Upload a certificate image
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 200 {object} UploadResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 415 {object} errors.ErrorResponse
// @Router /upload/certificate-image [post]
func (h *UploadHandler) CertificateImage(c echo.Context) error {
	url, err := h.save(c, "image", "certificates", "image/")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, UploadResponse{
		Message: "Certificate image uploaded successfully",
		URL:     url,
	})
}

// save reads one multipart file, enforces limits and hands it to the store.
func (h *UploadHandler) save(c echo.Context, field, folder string, allowedTypes ...string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "no file uploaded",
			Code:  "NO_FILE",
		})
	}

	in := storage.SaveInput{
		Folder:      folder,
		Filename:    fileHeader.Filename,
		ContentType: contentType(fileHeader),
		Size:        fileHeader.Size,
	}
	if err := storage.CheckUpload(in, h.maxSize, allowedTypes...); err != nil {
		return "", writeError(c, err, h.dev)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", writeError(c, err, h.dev)
	}
	defer src.Close()
	in.Body = src

	url, err := h.store.Save(c.Request().Context(), in)
	if err != nil {
		return "", writeError(c, err, h.dev)
	}
	return url, nil
}

func contentType(fh *multipart.FileHeader) string {
	return fh.Header.Get("Content-Type")
}
