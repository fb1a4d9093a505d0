package validate

import (
	"net/url"
	"strings"

	"portfolio/internal/errors"
)

// NormalizeURL canonicalizes an optional URL field. Schemeless values get an
// https:// prefix; the result must parse as an absolute URL with a host.
// Empty input is returned unchanged (empty means "not provided", never "clear").
func NormalizeURL(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", nil
	}
	if !hasScheme(v) {
		v = "https://" + v
	}
	u, err := url.Parse(v)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", errors.NewValidationError(field, "url", field+" must be a valid URL")
	}
	return v, nil
}

// NormalizeSocial expands a bare handle into the platform's canonical profile
// URL. Absolute URLs pass through untouched; unknown platforms fall back to
// plain URL normalization.
func NormalizeSocial(platform, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", nil
	}
	if hasScheme(v) {
		return NormalizeURL(platform, v)
	}
	switch platform {
	case "linkedin":
		handle := v
		if len(handle) >= 3 && strings.EqualFold(handle[:3], "in/") {
			handle = handle[3:]
		}
		v = "https://www.linkedin.com/in/" + handle
	case "github":
		v = "https://github.com/" + v
	case "twitter":
		v = "https://twitter.com/" + v
	case "instagram":
		v = "https://instagram.com/" + v
	default:
		return NormalizeURL(platform, v)
	}
	return NormalizeURL(platform, v)
}

// IsUploadRef reports whether a value is a valid upload reference: an
// absolute http(s) URL or a path under /uploads/.
func IsUploadRef(value string) bool {
	if value == "" {
		return true
	}
	if strings.HasPrefix(value, "/uploads/") {
		return true
	}
	if !hasScheme(value) {
		return false
	}
	u, err := url.Parse(value)
	return err == nil && u.Host != ""
}

// CheckUploadRef validates an optional image/file reference field.
func CheckUploadRef(field, value string) error {
	if IsUploadRef(strings.TrimSpace(value)) {
		return nil
	}
	return errors.NewValidationError(field, "uploadref", field+" must be a valid URL or /uploads path")
}

func hasScheme(v string) bool {
	lower := strings.ToLower(v)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
