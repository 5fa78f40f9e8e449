package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDate(t *testing.T) {
	parsed, err := ParseLocalDate("2026-03-10")

	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 10, parsed.Day())
	assert.Equal(t, 0, parsed.Hour())
	// Local midnight, not UTC: a naive UTC parse shifts the day at
	// non-UTC offsets.
	assert.Equal(t, time.Local, parsed.Location())
}

func TestParseLocalDateRejectsGarbage(t *testing.T) {
	_, err := ParseLocalDate("10/03/2026")
	assert.Error(t, err)
}

func TestDayWindow(t *testing.T) {
	ref := time.Date(2026, 3, 10, 15, 42, 7, 0, time.Local)

	w := DayWindow(ref)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local), w.Start)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local), w.End)
	assert.True(t, w.Contains(ref))
	assert.False(t, w.Contains(w.End))
}

func TestWeekWindow(t *testing.T) {
	tests := []struct {
		name          string
		ref           time.Time
		expectedStart time.Time
	}{
		{
			name:          "wednesday maps to preceding monday",
			ref:           time.Date(2026, 3, 11, 12, 0, 0, 0, time.Local), // Wednesday
			expectedStart: time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local),
		},
		{
			name:          "monday is its own week start",
			ref:           time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local),
			expectedStart: time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local),
		},
		{
			name:          "sunday belongs to the week that started six days earlier",
			ref:           time.Date(2026, 3, 15, 23, 0, 0, 0, time.Local),
			expectedStart: time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WeekWindow(tt.ref)
			assert.Equal(t, tt.expectedStart, w.Start)
			assert.Equal(t, tt.expectedStart.AddDate(0, 0, 7), w.End)
		})
	}
}

func TestMonthWindow(t *testing.T) {
	w := MonthWindow(time.Date(2026, 2, 14, 9, 0, 0, 0, time.Local))

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local), w.Start)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local), w.End)
}

func TestRangeWindow(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	end := time.Date(2026, 3, 6, 10, 0, 0, 0, time.Local)

	w := RangeWindow(start, end)

	// Local midnight through end-of-day of the end date
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local), w.Start)
	assert.Equal(t, time.Date(2026, 3, 7, 0, 0, 0, 0, time.Local), w.End)
}
