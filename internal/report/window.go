package report

import (
	"time"

	"task-tracker/internal/errors"
)

// dateLayout is the boundary format for explicit date ranges.
const dateLayout = "2006-01-02"

// Window is a half-open time range [Start, End) used to scope duration
// aggregation.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether the instant falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// DayWindow returns the calendar day containing ref, in ref's location.
func DayWindow(ref time.Time) Window {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// WeekWindow returns the calendar week (Monday through Sunday)
// containing ref.
func WeekWindow(ref time.Time) Window {
	offset := int(ref.Weekday())
	if offset == 0 {
		offset = 7
	}
	monday := ref.AddDate(0, 0, -offset+1)
	start := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, ref.Location())
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

// MonthWindow returns the calendar month containing ref.
func MonthWindow(ref time.Time) Window {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// RangeWindow returns an explicit range spanning from local midnight of
// the start date through the end of the end date.
func RangeWindow(startDate, endDate time.Time) Window {
	day := DayWindow(startDate)
	return Window{Start: day.Start, End: DayWindow(endDate).End}
}

// ParseLocalDate parses a "YYYY-MM-DD" boundary date as local midnight.
// Parsing such dates as UTC produces off-by-one-day windows at non-UTC
// offsets, so the location is always the local one.
func ParseLocalDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, errors.NewValidationError("invalid date, expected YYYY-MM-DD", err)
	}
	return parsed, nil
}
