package validation

import (
	"time"

	"task-tracker/internal/domain"
)

// StandardTaskValidator provides validation for standard-task templates
type StandardTaskValidator struct {
	taskValidator *TaskValidator
}

// NewStandardTaskValidator creates a new standard-task validator
func NewStandardTaskValidator() *StandardTaskValidator {
	return &StandardTaskValidator{taskValidator: NewTaskValidator()}
}

// ValidateStandardTask validates a template's title, priority, and
// clock intervals. Each interval must parse as HH:mm and run forward
// within the day.
func (sv *StandardTaskValidator) ValidateStandardTask(title string, priority domain.Priority, intervals []domain.ClockInterval) error {
	validationError := NewValidationError()

	appendFieldErrors(validationError, sv.taskValidator.ValidateTitle(title))
	appendFieldErrors(validationError, sv.taskValidator.ValidatePriority(priority))

	for i, interval := range intervals {
		start, startErr := time.Parse("15:04", interval.StartTime)
		if startErr != nil {
			validationError.AddInvalidFormatError("intervals", interval.StartTime, "HH:mm")
		}
		end, endErr := time.Parse("15:04", interval.EndTime)
		if endErr != nil {
			validationError.AddInvalidFormatError("intervals", interval.EndTime, "HH:mm")
		}
		if startErr == nil && endErr == nil && !start.Before(end) {
			validationError.AddInvalidRangeError("intervals", i, "start time must be before end time")
		}
	}

	return validationError.OrNil()
}
