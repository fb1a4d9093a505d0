package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"portfolio/internal/errors"
)

// New builds the request validator with the custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	// uploadref: absolute http(s) URL or a "/uploads/..." path.
	_ = v.RegisterValidation("uploadref", func(fl validator.FieldLevel) bool {
		return IsUploadRef(fl.Field().String())
	})
	return v
}

// ToValidationError converts validator output into the domain ValidationError
// so every rule failure surfaces as one structured per-field list.
func ToValidationError(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewValidationError("body", "invalid", "invalid request body")
	}
	out := &errors.ValidationError{}
	for _, fe := range verrs {
		out.Violations = append(out.Violations, errors.FieldViolation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: violationMessage(fe),
		})
	}
	return out
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "uploadref":
		return fmt.Sprintf("%s must be a valid URL or /uploads path", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
