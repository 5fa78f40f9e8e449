package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/domain"
)

func TestStandardTaskValidator_ValidateStandardTask(t *testing.T) {
	sv := NewStandardTaskValidator()

	tests := []struct {
		name      string
		title     string
		intervals []domain.ClockInterval
		wantErr   bool
	}{
		{
			name:      "valid template",
			title:     "Daily standup",
			intervals: []domain.ClockInterval{{StartTime: "09:00", EndTime: "09:15"}},
			wantErr:   false,
		},
		{
			name:      "no intervals is allowed",
			title:     "Placeholder",
			intervals: nil,
			wantErr:   false,
		},
		{
			name:      "bad clock format",
			title:     "Daily standup",
			intervals: []domain.ClockInterval{{StartTime: "9am", EndTime: "09:15"}},
			wantErr:   true,
		},
		{
			name:      "backwards interval",
			title:     "Daily standup",
			intervals: []domain.ClockInterval{{StartTime: "10:00", EndTime: "09:00"}},
			wantErr:   true,
		},
		{
			name:      "empty title",
			title:     "",
			intervals: []domain.ClockInterval{{StartTime: "09:00", EndTime: "09:15"}},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sv.ValidateStandardTask(tt.title, domain.PriorityLow, tt.intervals)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProjectValidator_ValidateProject(t *testing.T) {
	pv := NewProjectValidator()

	assert.NoError(t, pv.ValidateProject("Platform", "#ff00aa"))
	assert.NoError(t, pv.ValidateProject("Platform", ""))
	assert.Error(t, pv.ValidateProject("", "#ff00aa"))
	assert.Error(t, pv.ValidateProject("Platform", "red"))
	assert.Error(t, pv.ValidateProject("Platform", "#ff00a"))
}
