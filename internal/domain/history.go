package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryAction identifies a task lifecycle transition.
type HistoryAction string

const (
	ActionCreate  HistoryAction = "create"
	ActionStart   HistoryAction = "start"
	ActionPause   HistoryAction = "pause"
	ActionFinish  HistoryAction = "finish"
	ActionRestart HistoryAction = "restart"
)

// TaskHistory is an immutable audit record of a task lifecycle
// transition. History is append-only: events are never mutated or
// removed.
type TaskHistory struct {
	ID        string        `json:"id"`
	Action    HistoryAction `json:"action"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewHistoryEvent creates a history event for the given action.
func NewHistoryEvent(action HistoryAction, timestamp time.Time) TaskHistory {
	return TaskHistory{
		ID:        uuid.New().String(),
		Action:    action,
		Timestamp: timestamp,
	}
}
