package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "portfolio/internal/errors"
)

// writeError converts a service error into the standard JSON error shape.
// Validation failures carry the per-field list; unexpected errors are logged
// with full detail and echoed to the client only in dev mode.
func writeError(c echo.Context, err error, dev bool) error {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ValidationErrorResponse{
			Message: "Validation failed",
			Errors:  verr.Violations,
		})
	}

	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		if dev {
			httpErr.Message = err.Error()
		}
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// parseID parses a path identifier, rejecting malformed values before any
// store lookup.
func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return id, nil
}

// bindAndValidate decodes the JSON body and runs the declarative validation.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(req); err != nil {
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ValidationErrorResponse{
				Message: "Validation failed",
				Errors:  verr.Violations,
			})
		}
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}
	return nil
}
