package domain

import "time"

// The log state machine has two states per task: idle (no open log)
// and tracking (exactly one open log). All transitions are synchronous
// and explicit; no timers drive this machine. Cross-task exclusivity
// (at most one task tracking system-wide) is enforced by the store,
// which owns the full collection.

// StartLog transitions an idle task to tracking: it appends a new open
// log, sets the status to in-progress, and records a start event.
// A task that is already tracking is first closed with a pause event,
// so the call is safe rather than asserting on the precondition.
func (t *Task) StartLog(now time.Time) {
	t.CloseOpenLog(now, ActionPause)
	t.Logs = append(t.Logs, NewOpenLog(now))
	t.Status = StatusInProgress
	t.appendHistory(ActionStart, now)
}

// CloseOpenLog transitions a tracking task to idle: the open log is
// closed at now and a history event with the given action (pause for
// manual stops, finish for completion) is appended. Calling it on an
// idle task is a no-op, which makes force-close idempotent.
func (t *Task) CloseOpenLog(now time.Time, action HistoryAction) bool {
	for i := range t.Logs {
		if t.Logs[i].IsOpen() {
			t.Logs[i] = t.Logs[i].Close(now)
			t.appendHistory(action, now)
			return true
		}
	}
	return false
}

// ApplyStatusChange applies a status edit together with its derived
// effects in one place, so the side-effect rules stay auditable:
//   - moving into done force-closes any open log and appends a single
//     finish event (even for a never-tracked task, so the monthly
//     completion report can date it)
//   - moving from done back to todo appends a restart event
//   - all other edits have no derived effects
func (t *Task) ApplyStatusChange(status Status, now time.Time) {
	previous := t.Status
	if status == previous {
		return
	}

	switch status {
	case StatusDone:
		t.closeOpenLogQuietly(now)
		t.appendHistory(ActionFinish, now)
	case StatusTodo:
		if previous == StatusDone {
			t.appendHistory(ActionRestart, now)
		}
	}

	t.Status = status
}

// closeOpenLogQuietly closes the open log without recording a history
// event. Used when the caller records its own event for the same
// transition.
func (t *Task) closeOpenLogQuietly(now time.Time) bool {
	for i := range t.Logs {
		if t.Logs[i].IsOpen() {
			t.Logs[i] = t.Logs[i].Close(now)
			return true
		}
	}
	return false
}

func (t *Task) appendHistory(action HistoryAction, now time.Time) {
	t.History = append(t.History, NewHistoryEvent(action, now))
}
