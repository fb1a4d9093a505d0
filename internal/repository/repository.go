package repository

import (
	"errors"

	"gorm.io/gorm"

	apperrors "portfolio/internal/errors"
)

// translate maps GORM errors to domain errors so callers never depend on the
// storage driver. Anything unrecognized is passed through for the handler
// layer to treat as an internal error.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrDuplicate
	default:
		return err
	}
}
