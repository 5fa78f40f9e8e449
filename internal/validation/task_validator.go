package validation

import (
	"strings"
	"time"

	"task-tracker/internal/domain"
)

const (
	titleMinLength = 1
	titleMaxLength = 255
)

// TaskValidator provides validation for task-related operations
type TaskValidator struct{}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{}
}

// ValidateTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		validationError.AddRequiredError("title")
		return validationError
	}
	if len(trimmed) > titleMaxLength {
		validationError.AddInvalidLengthError("title", trimmed, titleMinLength, titleMaxLength)
	}

	return validationError.OrNil()
}

// ValidatePriority validates a priority value. Empty is allowed and
// treated as low everywhere priorities are ranked.
func (tv *TaskValidator) ValidatePriority(priority domain.Priority) error {
	switch priority {
	case "", domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
		return nil
	}

	validationError := NewValidationError()
	validationError.AddInvalidValueError("priority", string(priority), "must be low, medium, or high")
	return validationError
}

// ValidateStatus validates a status value
func (tv *TaskValidator) ValidateStatus(status domain.Status) error {
	switch status {
	case domain.StatusTodo, domain.StatusInProgress, domain.StatusDone:
		return nil
	}

	validationError := NewValidationError()
	validationError.AddInvalidValueError("status", string(status), "must be todo, in-progress, or done")
	return validationError
}

// ValidateBackfillIntervals validates the interval list for a
// backfilled task. The list must be non-empty and every interval must
// run forward in time.
func (tv *TaskValidator) ValidateBackfillIntervals(intervals []domain.LogInterval) error {
	validationError := NewValidationError()

	if len(intervals) == 0 {
		validationError.AddRequiredError("intervals")
		return validationError
	}
	for i, interval := range intervals {
		if !interval.StartTime.Before(interval.EndTime) {
			validationError.AddInvalidRangeError("intervals", i, "start time must be before end time")
		}
	}

	return validationError.OrNil()
}

// ValidateTaskForCreation validates the fields of a new task
func (tv *TaskValidator) ValidateTaskForCreation(title string, priority domain.Priority) error {
	validationError := NewValidationError()

	appendFieldErrors(validationError, tv.ValidateTitle(title))
	appendFieldErrors(validationError, tv.ValidatePriority(priority))

	return validationError.OrNil()
}

// TrimTitle returns the cleaned title
func (tv *TaskValidator) TrimTitle(title string) string {
	return strings.TrimSpace(title)
}

// ParseClockTime parses an HH:mm wall-clock string
func ParseClockTime(value string) error {
	if _, err := time.Parse("15:04", value); err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("time", value, "HH:mm")
		return validationError
	}
	return nil
}

func appendFieldErrors(target *ValidationError, err error) {
	if err == nil {
		return
	}
	if validationErr, ok := err.(*ValidationError); ok {
		target.Errors = append(target.Errors, validationErr.Errors...)
	}
}
