package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	ve := NewValidationError()
	assert.Equal(t, "validation error", ve.Error())

	ve.AddRequiredError("title")
	assert.Equal(t, "validation error for field 'title': title is required", ve.Error())

	ve.AddInvalidValueError("priority", "urgent", "must be low, medium, or high")
	assert.Contains(t, ve.Error(), "multiple validation errors")
}

func TestValidationError_OrNil(t *testing.T) {
	ve := NewValidationError()
	assert.NoError(t, ve.OrNil())

	ve.AddRequiredError("title")
	assert.Error(t, ve.OrNil())
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("title")
	assert.Equal(t, "title is required", ve.GetUserFriendlyMessage())

	ve.AddInvalidFormatError("color", "red", "#rrggbb")
	message := ve.GetUserFriendlyMessage()
	assert.Contains(t, message, "Multiple validation errors occurred")
	assert.Contains(t, message, "- title is required")
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError()))
	assert.False(t, IsValidationError(assert.AnError))
}
