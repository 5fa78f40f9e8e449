package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOpenLog(t *testing.T) {
	startTime := time.Now()

	result := NewOpenLog(startTime)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, startTime, result.StartTime)
	assert.Nil(t, result.EndTime)
	assert.True(t, result.IsOpen())
	assert.Equal(t, int64(0), result.DurationMS)
}

func TestTaskLog_Close(t *testing.T) {
	startTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	endTime := startTime.Add(90 * time.Minute)

	log := NewOpenLog(startTime)
	closed := log.Close(endTime)

	assert.False(t, closed.IsOpen())
	assert.Equal(t, endTime, *closed.EndTime)
	assert.Equal(t, int64(90*60*1000), closed.DurationMS)
	// The original value is untouched
	assert.True(t, log.IsOpen())
}

func TestTaskLog_Duration(t *testing.T) {
	startTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		log      TaskLog
		now      time.Time
		expected time.Duration
	}{
		{
			name:     "closed log returns stored duration",
			log:      NewOpenLog(startTime).Close(startTime.Add(2 * time.Hour)),
			now:      startTime.Add(10 * time.Hour),
			expected: 2 * time.Hour,
		},
		{
			name:     "open log computes duration on demand",
			log:      NewOpenLog(startTime),
			now:      startTime.Add(45 * time.Minute),
			expected: 45 * time.Minute,
		},
		{
			name:     "open log with clock skew clamps to zero",
			log:      NewOpenLog(startTime),
			now:      startTime.Add(-5 * time.Minute),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.log.Duration(tt.now))
		})
	}
}

func TestTaskLog_DurationMonotonicWhileOpen(t *testing.T) {
	startTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	log := NewOpenLog(startTime)

	previous := time.Duration(-1)
	for _, elapsed := range []time.Duration{time.Second, time.Minute, time.Hour} {
		current := log.Duration(startTime.Add(elapsed))
		assert.Greater(t, current, previous)
		previous = current
	}
}

func TestNewClosedLog(t *testing.T) {
	interval := LogInterval{
		StartTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
		EndTime:   time.Date(2026, 3, 10, 10, 30, 0, 0, time.Local),
	}

	log := NewClosedLog(interval)

	assert.False(t, log.IsOpen())
	assert.Equal(t, interval.StartTime, log.StartTime)
	assert.Equal(t, interval.EndTime, *log.EndTime)
	assert.Equal(t, 90*time.Minute, log.Duration(time.Now()))
}
