package report

import (
	"time"

	"task-tracker/internal/domain"
)

// OverlapDuration returns the portion of a log interval that falls
// inside the window. An open log (nil end) is treated as running up to
// now. A log straddling a window boundary contributes only the inside
// portion; disjoint intervals contribute zero.
func OverlapDuration(start time.Time, end *time.Time, w Window, now time.Time) time.Duration {
	effectiveEnd := now
	if end != nil {
		effectiveEnd = *end
	}

	if !start.Before(w.End) || !effectiveEnd.After(w.Start) {
		return 0
	}

	overlapStart := start
	if w.Start.After(overlapStart) {
		overlapStart = w.Start
	}
	overlapEnd := effectiveEnd
	if w.End.Before(overlapEnd) {
		overlapEnd = w.End
	}

	d := overlapEnd.Sub(overlapStart)
	if d < 0 {
		return 0
	}
	return d
}

// TaskWindowDuration sums the in-window portion of all of a task's logs.
func TaskWindowDuration(task domain.Task, w Window, now time.Time) time.Duration {
	var total time.Duration
	for _, log := range task.Logs {
		total += OverlapDuration(log.StartTime, log.EndTime, w, now)
	}
	return total
}

// TotalDurationBy aggregates in-window durations into buckets keyed by
// keyFn. Tasks fully outside the window are omitted from the result;
// there are never explicit zero entries.
func TotalDurationBy(tasks []domain.Task, w Window, now time.Time, keyFn func(domain.Task) string) map[string]time.Duration {
	totals := make(map[string]time.Duration)
	for _, task := range tasks {
		d := TaskWindowDuration(task, w, now)
		if d == 0 {
			continue
		}
		totals[keyFn(task)] += d
	}
	return totals
}

// TotalDurationByProject aggregates in-window durations per project ID.
func TotalDurationByProject(tasks []domain.Task, w Window, now time.Time) map[string]time.Duration {
	return TotalDurationBy(tasks, w, now, func(t domain.Task) string { return t.ProjectID })
}

// TotalDurationByType aggregates in-window durations per task type.
func TotalDurationByType(tasks []domain.Task, w Window, now time.Time) map[string]time.Duration {
	return TotalDurationBy(tasks, w, now, func(t domain.Task) string { return t.Type })
}
