package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Priority is a task's priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns the sort weight of the priority. A missing or unknown
// priority is treated as low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	default:
		return 1
	}
}

// Status is a task's workflow state.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Task is the aggregate root of the time-tracking model. It owns its
// logs (ordered by insertion) and its append-only history.
type Task struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	ProjectID   string        `json:"project_id"`
	Priority    Priority      `json:"priority"`
	Type        string        `json:"type"`
	Status      Status        `json:"status"`
	Logs        []TaskLog     `json:"logs"`
	History     []TaskHistory `json:"history"`
	CreatedAt   time.Time     `json:"created_at"`
}

// NewTask creates an empty task in the todo state with a single
// create history event stamped now.
func NewTask(title, projectID, taskType string, priority Priority, now time.Time) Task {
	return Task{
		ID:        uuid.New().String(),
		Title:     title,
		ProjectID: projectID,
		Priority:  priority,
		Type:      taskType,
		Status:    StatusTodo,
		History:   []TaskHistory{NewHistoryEvent(ActionCreate, now)},
		CreatedAt: now,
	}
}

// NewBackfilledTask creates a task pre-populated with historical logs.
// The task is immediately done: history is seeded with a create event
// at the first interval's start and a finish event at the last
// interval's end, and CreatedAt is the first interval's start.
// Intervals must be non-empty; the boundary validates this.
func NewBackfilledTask(title, projectID, taskType string, priority Priority, intervals []LogInterval) Task {
	logs := make([]TaskLog, len(intervals))
	for i, interval := range intervals {
		logs[i] = NewClosedLog(interval)
	}

	first := intervals[0].StartTime
	last := intervals[len(intervals)-1].EndTime

	return Task{
		ID:        uuid.New().String(),
		Title:     title,
		ProjectID: projectID,
		Priority:  priority,
		Type:      taskType,
		Status:    StatusDone,
		Logs:      logs,
		History: []TaskHistory{
			NewHistoryEvent(ActionCreate, first),
			NewHistoryEvent(ActionFinish, last),
		},
		CreatedAt: first,
	}
}

// OpenLog returns a pointer to the task's open log, or nil if the
// task is idle.
func (t *Task) OpenLog() *TaskLog {
	for i := range t.Logs {
		if t.Logs[i].IsOpen() {
			return &t.Logs[i]
		}
	}
	return nil
}

// IsTracking returns true if the task has an open log.
func (t *Task) IsTracking() bool {
	return t.OpenLog() != nil
}

// TotalDuration returns the sum of all log durations at the given
// instant. It is monotonically non-decreasing while a log is open.
func (t *Task) TotalDuration(now time.Time) time.Duration {
	var total time.Duration
	for _, log := range t.Logs {
		total += log.Duration(now)
	}
	return total
}

// LatestLogStart returns the most recent log start time across all
// logs, or the zero time if the task has none.
func (t *Task) LatestLogStart() time.Time {
	var latest time.Time
	for _, log := range t.Logs {
		if log.StartTime.After(latest) {
			latest = log.StartTime
		}
	}
	return latest
}

// CompletionTime returns the instant the task was completed: the
// timestamp of the most recent finish history event if present, else
// the end time of the task's last log. The second return value is
// false if neither exists.
func (t *Task) CompletionTime() (time.Time, bool) {
	var finished time.Time
	found := false
	for _, event := range t.History {
		if event.Action == ActionFinish && !event.Timestamp.Before(finished) {
			finished = event.Timestamp
			found = true
		}
	}
	if found {
		return finished, true
	}

	if len(t.Logs) > 0 {
		last := t.Logs[len(t.Logs)-1]
		if last.EndTime != nil {
			return *last.EndTime, true
		}
	}
	return time.Time{}, false
}

// RankTasks sorts tasks for list display: priority rank descending,
// then creation time descending (newest first). The input slice is
// sorted in place and returned.
func RankTasks(tasks []Task) []Task {
	sort.SliceStable(tasks, func(i, j int) bool {
		ri, rj := tasks[i].Priority.Rank(), tasks[j].Priority.Rank()
		if ri != rj {
			return ri > rj
		}
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks
}
