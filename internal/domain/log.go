package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskLog represents one contiguous interval of tracked work.
// An absent EndTime marks the currently open log for its task;
// at most one log per task may be open at any time.
type TaskLog struct {
	ID         string     `json:"id"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time,omitempty"` // Using pointer to allow absent values
	DurationMS int64      `json:"duration_ms"`
}

// LogInterval is a closed [start, end] interval used to backfill
// historical logs when creating a task.
type LogInterval struct {
	StartTime time.Time
	EndTime   time.Time
}

// NewOpenLog creates a new open log starting at the given time.
func NewOpenLog(startTime time.Time) TaskLog {
	return TaskLog{
		ID:        uuid.New().String(),
		StartTime: startTime,
	}
}

// NewClosedLog creates a closed log covering the given interval.
func NewClosedLog(interval LogInterval) TaskLog {
	log := NewOpenLog(interval.StartTime)
	return log.Close(interval.EndTime)
}

// IsOpen returns true if the log is currently open (no end time).
func (l TaskLog) IsOpen() bool {
	return l.EndTime == nil
}

// Close sets the end time and recomputes the stored duration.
func (l TaskLog) Close(endTime time.Time) TaskLog {
	l.EndTime = &endTime
	l.DurationMS = clampDurationMS(endTime.Sub(l.StartTime))
	return l
}

// Duration returns the duration of the log at the given instant.
// For a closed log it is the stored duration; for an open log it is
// computed on demand as now - startTime, never stored.
// Negative values from clock skew are clamped to zero.
func (l TaskLog) Duration(now time.Time) time.Duration {
	if l.EndTime == nil {
		return clampDuration(now.Sub(l.StartTime))
	}
	return clampDuration(time.Duration(l.DurationMS) * time.Millisecond)
}

func clampDuration(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

func clampDurationMS(d time.Duration) int64 {
	return int64(clampDuration(d) / time.Millisecond)
}
