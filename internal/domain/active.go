package domain

// ActiveTask selects the single currently active task, or nil if none
// qualifies. Candidates are tasks that are in-progress or have an open
// log; ties break in order:
//  1. tasks with an open log rank above tasks without one (covers a
//     status/log inconsistency after an external status-only edit)
//  2. among open-log tasks, the most recent open-log start wins
//  3. among the rest, the most recent log start across all logs wins
//     (zero time if the task has no logs)
//  4. final tie-break by most recent creation time
func ActiveTask(tasks []Task) *Task {
	var active *Task
	for i := range tasks {
		task := &tasks[i]
		if task.Status != StatusInProgress && !task.IsTracking() {
			continue
		}
		if active == nil || moreActive(task, active) {
			active = task
		}
	}
	return active
}

func moreActive(a, b *Task) bool {
	aOpen, bOpen := a.OpenLog(), b.OpenLog()
	if (aOpen != nil) != (bOpen != nil) {
		return aOpen != nil
	}

	if aOpen != nil {
		if !aOpen.StartTime.Equal(bOpen.StartTime) {
			return aOpen.StartTime.After(bOpen.StartTime)
		}
	} else {
		aStart, bStart := a.LatestLogStart(), b.LatestLogStart()
		if !aStart.Equal(bStart) {
			return aStart.After(bStart)
		}
	}

	return a.CreatedAt.After(b.CreatedAt)
}
