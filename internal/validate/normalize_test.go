package validate

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio/internal/errors"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "empty passes through",
			input:    "",
			expected: "",
		},
		{
			name:     "schemeless gets https prefix",
			input:    "example.com/page",
			expected: "https://example.com/page",
		},
		{
			name:     "http kept as is",
			input:    "http://example.com",
			expected: "http://example.com",
		},
		{
			name:     "https kept as is",
			input:    "https://example.com",
			expected: "https://example.com",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  example.com  ",
			expected: "https://example.com",
		},
		{
			name:    "scheme without host rejected",
			input:   "https://",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeURL("liveUrl", tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeSocial(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		input    string
		expected string
	}{
		{
			name:     "github handle expands",
			platform: "github",
			input:    "octocat",
			expected: "https://github.com/octocat",
		},
		{
			name:     "linkedin handle expands",
			platform: "linkedin",
			input:    "jane-doe",
			expected: "https://www.linkedin.com/in/jane-doe",
		},
		{
			name:     "linkedin in/ prefix stripped",
			platform: "linkedin",
			input:    "in/jane-doe",
			expected: "https://www.linkedin.com/in/jane-doe",
		},
		{
			name:     "linkedin prefix stripped case insensitively",
			platform: "linkedin",
			input:    "In/jane-doe",
			expected: "https://www.linkedin.com/in/jane-doe",
		},
		{
			name:     "linkedin uppercase prefix stripped",
			platform: "linkedin",
			input:    "IN/jane-doe",
			expected: "https://www.linkedin.com/in/jane-doe",
		},
		{
			name:     "linkedin short handle kept",
			platform: "linkedin",
			input:    "in",
			expected: "https://www.linkedin.com/in/in",
		},
		{
			name:     "twitter handle expands",
			platform: "twitter",
			input:    "jack",
			expected: "https://twitter.com/jack",
		},
		{
			name:     "instagram handle expands",
			platform: "instagram",
			input:    "natgeo",
			expected: "https://instagram.com/natgeo",
		},
		{
			name:     "full url passes through",
			platform: "github",
			input:    "https://github.com/octocat",
			expected: "https://github.com/octocat",
		},
		{
			name:     "unknown platform falls back to url normalization",
			platform: "codeforces",
			input:    "codeforces.com/profile/tourist",
			expected: "https://codeforces.com/profile/tourist",
		},
		{
			name:     "empty stays empty",
			platform: "github",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeSocial(tt.platform, tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsUploadRef(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "empty is valid", input: "", valid: true},
		{name: "uploads path", input: "/uploads/projects/app.png", valid: true},
		{name: "absolute https url", input: "https://cdn.example.com/app.png", valid: true},
		{name: "absolute http url", input: "http://cdn.example.com/app.png", valid: true},
		{name: "relative path rejected", input: "images/app.png", valid: false},
		{name: "non-http scheme rejected", input: "ftp://cdn.example.com/app.png", valid: false},
		{name: "bare word rejected", input: "app.png", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsUploadRef(tt.input))
		})
	}
}

func TestToValidationError(t *testing.T) {
	v := New()

	type payload struct {
		Name  string `validate:"required,max=5"`
		Email string `validate:"required,email"`
		Image string `validate:"omitempty,uploadref"`
	}

	err := ToValidationError(v.Struct(payload{Name: "toolongname", Email: "not-an-email", Image: "bad ref"}))
	assert.Error(t, err)

	var verr *errors.ValidationError
	assert.True(t, stderrors.As(err, &verr))
	assert.Len(t, verr.Violations, 3)

	rules := make(map[string]string)
	for _, violation := range verr.Violations {
		rules[violation.Field] = violation.Rule
	}
	assert.Equal(t, "max", rules["Name"])
	assert.Equal(t, "email", rules["Email"])
	assert.Equal(t, "uploadref", rules["Image"])

	assert.NoError(t, ToValidationError(v.Struct(payload{Name: "ok", Email: "a@b.com", Image: "/uploads/x.png"})))
}
