package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// clockLayout is the wall-clock format used by standard task intervals.
const clockLayout = "15:04"

// ClockInterval is a reusable daily time slot ("HH:mm" to "HH:mm").
type ClockInterval struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Materialize resolves the interval against a concrete local date.
func (ci ClockInterval) Materialize(day time.Time) (LogInterval, error) {
	start, err := atClock(day, ci.StartTime)
	if err != nil {
		return LogInterval{}, fmt.Errorf("invalid interval start %q: %w", ci.StartTime, err)
	}
	end, err := atClock(day, ci.EndTime)
	if err != nil {
		return LogInterval{}, fmt.Errorf("invalid interval end %q: %w", ci.EndTime, err)
	}
	return LogInterval{StartTime: start, EndTime: end}, nil
}

func atClock(day time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), nil
}

// StandardTask is a reusable daily template from which a real task's
// logs can be pre-filled for a given day. Pure template data with no
// lifecycle coupling to Task.
type StandardTask struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	ProjectID string          `json:"project_id,omitempty"`
	Type      string          `json:"type,omitempty"`
	Priority  Priority        `json:"priority,omitempty"`
	Intervals []ClockInterval `json:"intervals"`
}

// NewStandardTask creates a new standard task template.
func NewStandardTask(title, projectID, taskType string, priority Priority, intervals []ClockInterval) StandardTask {
	return StandardTask{
		ID:        uuid.New().String(),
		Title:     title,
		ProjectID: projectID,
		Type:      taskType,
		Priority:  priority,
		Intervals: intervals,
	}
}

// MaterializeIntervals resolves all template intervals against the
// given local date, in template order.
func (st StandardTask) MaterializeIntervals(day time.Time) ([]LogInterval, error) {
	intervals := make([]LogInterval, len(st.Intervals))
	for i, ci := range st.Intervals {
		interval, err := ci.Materialize(day)
		if err != nil {
			return nil, err
		}
		intervals[i] = interval
	}
	return intervals, nil
}
