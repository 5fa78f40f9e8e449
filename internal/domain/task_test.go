package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackfilledTask(t *testing.T) {
	intervals := []LogInterval{
		{
			StartTime: time.Date(2026, 3, 9, 9, 0, 0, 0, time.Local),
			EndTime:   time.Date(2026, 3, 9, 10, 0, 0, 0, time.Local),
		},
		{
			StartTime: time.Date(2026, 3, 9, 14, 0, 0, 0, time.Local),
			EndTime:   time.Date(2026, 3, 9, 15, 30, 0, 0, time.Local),
		},
	}

	task := NewBackfilledTask("Sprint planning", "p1", "Meeting", PriorityMedium, intervals)

	assert.Equal(t, StatusDone, task.Status)
	assert.Equal(t, intervals[0].StartTime, task.CreatedAt)
	require.Len(t, task.Logs, 2)
	for _, log := range task.Logs {
		assert.False(t, log.IsOpen())
	}

	require.Len(t, task.History, 2)
	assert.Equal(t, ActionCreate, task.History[0].Action)
	assert.Equal(t, intervals[0].StartTime, task.History[0].Timestamp)
	assert.Equal(t, ActionFinish, task.History[1].Action)
	assert.Equal(t, intervals[1].EndTime, task.History[1].Timestamp)

	assert.Equal(t, 2*time.Hour+30*time.Minute, task.TotalDuration(time.Now()))
}

func TestTask_TotalDuration(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	now := start.Add(3 * time.Hour)

	task := Task{
		Logs: []TaskLog{
			NewOpenLog(start).Close(start.Add(time.Hour)),
			NewOpenLog(start.Add(2 * time.Hour)), // open for 1h at now
		},
	}

	assert.Equal(t, 2*time.Hour, task.TotalDuration(now))
	// Stable for an idle task, growing for a tracking one
	assert.Equal(t, 2*time.Hour+time.Minute, task.TotalDuration(now.Add(time.Minute)))
}

func TestTask_CompletionTime(t *testing.T) {
	finish := time.Date(2026, 1, 20, 17, 0, 0, 0, time.Local)
	logEnd := time.Date(2026, 1, 18, 17, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		task     Task
		expected time.Time
		found    bool
	}{
		{
			name: "prefers latest finish history event",
			task: Task{
				History: []TaskHistory{
					NewHistoryEvent(ActionFinish, finish.Add(-48*time.Hour)),
					NewHistoryEvent(ActionFinish, finish),
				},
				Logs: []TaskLog{NewOpenLog(logEnd.Add(-time.Hour)).Close(logEnd)},
			},
			expected: finish,
			found:    true,
		},
		{
			name: "falls back to last log end",
			task: Task{
				History: []TaskHistory{NewHistoryEvent(ActionCreate, logEnd.Add(-time.Hour))},
				Logs:    []TaskLog{NewOpenLog(logEnd.Add(-time.Hour)).Close(logEnd)},
			},
			expected: logEnd,
			found:    true,
		},
		{
			name:  "no finish event and no closed logs",
			task:  Task{History: []TaskHistory{NewHistoryEvent(ActionCreate, logEnd)}},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completed, ok := tt.task.CompletionTime()
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, completed)
			}
		})
	}
}

func TestRankTasks(t *testing.T) {
	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)

	tasks := []Task{
		{Title: "old low", Priority: PriorityLow, CreatedAt: base},
		{Title: "new medium", Priority: PriorityMedium, CreatedAt: base.Add(2 * time.Hour)},
		{Title: "new high", Priority: PriorityHigh, CreatedAt: base.Add(time.Hour)},
		{Title: "new low", Priority: PriorityLow, CreatedAt: base.Add(3 * time.Hour)},
		{Title: "no priority", CreatedAt: base.Add(4 * time.Hour)},
	}

	ranked := RankTasks(tasks)

	titles := make([]string, len(ranked))
	for i, task := range ranked {
		titles[i] = task.Title
	}
	// Missing priority ranks as low; within a rank, newest first
	assert.Equal(t, []string{"new high", "new medium", "no priority", "new low", "old low"}, titles)
}

func TestPriority_Rank(t *testing.T) {
	assert.Equal(t, 3, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 1, PriorityLow.Rank())
	assert.Equal(t, 1, Priority("").Rank())
}
