package validation

import (
	"regexp"
	"strings"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ProjectValidator provides validation for project-related operations
type ProjectValidator struct{}

// NewProjectValidator creates a new project validator
func NewProjectValidator() *ProjectValidator {
	return &ProjectValidator{}
}

// ValidateProject validates a project's name and color. Color is
// optional; when present it must be a #rrggbb hex value.
func (pv *ProjectValidator) ValidateProject(name, color string) error {
	validationError := NewValidationError()

	if strings.TrimSpace(name) == "" {
		validationError.AddRequiredError("name")
	}
	if color != "" && !colorPattern.MatchString(color) {
		validationError.AddInvalidFormatError("color", color, "#rrggbb")
	}

	return validationError.OrNil()
}
