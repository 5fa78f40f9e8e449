package report

import (
	"time"

	"task-tracker/internal/domain"
)

// Standup is the daily standup view over a task list. It is computed
// read-only; nothing here is stored.
type Standup struct {
	DidYesterday []domain.Task `json:"did_yesterday"`
	DidToday     []domain.Task `json:"did_today"`
	WillDoToday  []domain.Task `json:"will_do_today"`
}

// BuildStandup classifies tasks for a standup anchored at ref:
//   - did yesterday: tasks with any log started on the prior calendar day
//   - did today: in-progress tasks, or done tasks with a log touching today
//   - will do today: tasks still in todo
//
// A task can appear in more than one section (worked yesterday and
// still in progress today, for example).
func BuildStandup(tasks []domain.Task, ref time.Time) Standup {
	today := DayWindow(ref)
	yesterday := DayWindow(ref.AddDate(0, 0, -1))

	var standup Standup
	for _, task := range tasks {
		if startedIn(task, yesterday) {
			standup.DidYesterday = append(standup.DidYesterday, task)
		}

		switch task.Status {
		case domain.StatusInProgress:
			standup.DidToday = append(standup.DidToday, task)
		case domain.StatusDone:
			if touchesWindow(task, today, ref) {
				standup.DidToday = append(standup.DidToday, task)
			}
		case domain.StatusTodo:
			standup.WillDoToday = append(standup.WillDoToday, task)
		}
	}
	return standup
}

func startedIn(task domain.Task, w Window) bool {
	for _, log := range task.Logs {
		if w.Contains(log.StartTime) {
			return true
		}
	}
	return false
}

func touchesWindow(task domain.Task, w Window, now time.Time) bool {
	for _, log := range task.Logs {
		if OverlapDuration(log.StartTime, log.EndTime, w, now) > 0 {
			return true
		}
	}
	return false
}
