package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/docstore"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// testClock is a manually advanced time source.
type testClock struct {
	current time.Time
}

func (c *testClock) now() time.Time {
	return c.current
}

func (c *testClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestStore(t *testing.T) (*Store, *testClock) {
	t.Helper()
	docs, err := docstore.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { docs.Close() })

	clock := &testClock{current: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	s, err := New(context.Background(), docs, "alice", WithClock(clock.now))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, clock
}

func TestStore_AddTask(t *testing.T) {
	s, _ := newTestStore(t)

	task := s.AddTask(AddTaskParams{Title: "Write report", ProjectID: "p1", Type: "work", Priority: domain.PriorityHigh})

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.StatusTodo, task.Status)
	assert.Empty(t, task.Logs)
	require.Len(t, task.History, 1)
	assert.Equal(t, domain.ActionCreate, task.History[0].Action)
	assert.Len(t, s.Tasks(), 1)
}

func TestStore_AddTask_Backfilled(t *testing.T) {
	s, _ := newTestStore(t)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	task := s.AddTask(AddTaskParams{
		Title: "Standup", ProjectID: "p1", Type: "meeting", Priority: domain.PriorityLow,
		Intervals: []domain.LogInterval{
			{StartTime: day.Add(9 * time.Hour), EndTime: day.Add(9*time.Hour + 15*time.Minute)},
			{StartTime: day.Add(14 * time.Hour), EndTime: day.Add(15 * time.Hour)},
		},
	})

	assert.Equal(t, domain.StatusDone, task.Status)
	require.Len(t, task.Logs, 2)
	assert.False(t, task.IsTracking())
	assert.Equal(t, 75*time.Minute, task.TotalDuration(day.Add(16*time.Hour)))

	completion, ok := task.CompletionTime()
	require.True(t, ok)
	assert.Equal(t, day.Add(15*time.Hour), completion)
}

func TestStore_ToggleTaskLog_RoundTrip(t *testing.T) {
	s, clock := newTestStore(t)
	task := s.AddTask(AddTaskParams{Title: "Write report", ProjectID: "p1", Type: "work", Priority: domain.PriorityMedium})

	started, err := s.ToggleTaskLog(task.ID)
	require.NoError(t, err)
	assert.True(t, started.IsTracking())
	assert.Equal(t, domain.StatusInProgress, started.Status)

	clock.advance(30 * time.Minute)

	stopped, err := s.ToggleTaskLog(task.ID)
	require.NoError(t, err)
	assert.False(t, stopped.IsTracking())
	require.Len(t, stopped.Logs, 1)
	assert.Equal(t, 30*time.Minute, stopped.Logs[0].Duration(clock.now()))
}

func TestStore_ToggleTaskLog_StopsOtherTrackingTask(t *testing.T) {
	s, clock := newTestStore(t)
	first := s.AddTask(AddTaskParams{Title: "First", ProjectID: "p1", Type: "work", Priority: domain.PriorityMedium})
	second := s.AddTask(AddTaskParams{Title: "Second", ProjectID: "p1", Type: "work", Priority: domain.PriorityMedium})

	_, err := s.ToggleTaskLog(first.ID)
	require.NoError(t, err)
	clock.advance(10 * time.Minute)
	_, err = s.ToggleTaskLog(second.ID)
	require.NoError(t, err)

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	var firstNow, secondNow domain.Task
	for _, task := range tasks {
		switch task.ID {
		case first.ID:
			firstNow = task
		case second.ID:
			secondNow = task
		}
	}

	// the displaced task keeps in-progress status but its log is
	// closed with a pause event, same as a manual stop
	assert.False(t, firstNow.IsTracking())
	assert.Equal(t, domain.StatusInProgress, firstNow.Status)
	require.Len(t, firstNow.Logs, 1)
	assert.Equal(t, 10*time.Minute, firstNow.Logs[0].Duration(clock.now()))
	assert.Equal(t, domain.ActionPause, firstNow.History[len(firstNow.History)-1].Action)

	assert.True(t, secondNow.IsTracking())
}

func TestStore_ToggleTaskLog_NotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.ToggleTaskLog("missing")

	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestStore_UpdateTask_Fields(t *testing.T) {
	s, _ := newTestStore(t)
	task := s.AddTask(AddTaskParams{Title: "Old title", ProjectID: "p1", Type: "work", Priority: domain.PriorityLow})

	title := "New title"
	priority := domain.PriorityHigh
	updated, err := s.UpdateTask(task.ID, TaskPatch{Title: &title, Priority: &priority})

	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, domain.PriorityHigh, updated.Priority)
	assert.Equal(t, domain.StatusTodo, updated.Status)
}

func TestStore_UpdateTask_DoneClosesOpenLog(t *testing.T) {
	s, clock := newTestStore(t)
	task := s.AddTask(AddTaskParams{Title: "Write report", ProjectID: "p1", Type: "work", Priority: domain.PriorityMedium})
	_, err := s.ToggleTaskLog(task.ID)
	require.NoError(t, err)
	clock.advance(45 * time.Minute)

	done := domain.StatusDone
	updated, err := s.UpdateTask(task.ID, TaskPatch{Status: &done})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, updated.Status)
	assert.False(t, updated.IsTracking())
	assert.Equal(t, domain.ActionFinish, updated.History[len(updated.History)-1].Action)
	assert.Equal(t, 45*time.Minute, updated.TotalDuration(clock.now()))
}

func TestStore_DeleteTask(t *testing.T) {
	s, _ := newTestStore(t)
	task := s.AddTask(AddTaskParams{Title: "Write report", ProjectID: "p1", Type: "work", Priority: domain.PriorityMedium})

	require.NoError(t, s.DeleteTask(task.ID))
	assert.Empty(t, s.Tasks())

	err := s.DeleteTask(task.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestStore_Projects(t *testing.T) {
	s, _ := newTestStore(t)

	project := s.AddProject("Platform", "#ff0000")
	assert.Equal(t, "Platform", s.ProjectName(project.ID))

	updated, err := s.UpdateProject(project.ID, "Core Platform", "#00ff00")
	require.NoError(t, err)
	assert.Equal(t, "Core Platform", updated.Name)

	require.NoError(t, s.DeleteProject(project.ID))
	assert.Equal(t, domain.UnknownProjectName, s.ProjectName(project.ID))
}

func TestStore_SeedFromStandard(t *testing.T) {
	s, _ := newTestStore(t)
	standard := s.AddStandardTask("Daily standup", "p1", "meeting", domain.PriorityLow, []domain.ClockInterval{
		{StartTime: "09:00", EndTime: "09:15"},
	})
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	task, err := s.SeedFromStandard(standard.ID, day)

	require.NoError(t, err)
	assert.Equal(t, "Daily standup", task.Title)
	assert.Equal(t, domain.StatusDone, task.Status)
	require.Len(t, task.Logs, 1)
	assert.Equal(t, day.Add(9*time.Hour), task.Logs[0].StartTime)
	assert.Equal(t, 15*time.Minute, task.TotalDuration(day.Add(10*time.Hour)))
}

func TestStore_SeedFromStandard_Errors(t *testing.T) {
	s, _ := newTestStore(t)
	empty := s.AddStandardTask("No intervals", "p1", "meeting", domain.PriorityLow, nil)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

	_, err := s.SeedFromStandard("missing", day)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	_, err = s.SeedFromStandard(empty.ID, day)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestStore_StandardTaskLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	standard := s.AddStandardTask("Daily standup", "p1", "meeting", domain.PriorityLow, []domain.ClockInterval{
		{StartTime: "09:00", EndTime: "09:15"},
	})

	standard.Title = "Morning standup"
	require.NoError(t, s.UpdateStandardTask(standard))
	assert.Equal(t, "Morning standup", s.StandardTasks()[0].Title)

	require.NoError(t, s.DeleteStandardTask(standard.ID))
	assert.Empty(t, s.StandardTasks())
}

func TestStore_ApplySnapshot(t *testing.T) {
	s, _ := newTestStore(t)
	key := docstore.TasksKey("alice")

	remote := []domain.Task{{ID: "r1", Title: "From another client", Status: domain.StatusTodo}}
	body, err := json.Marshal(remote)
	require.NoError(t, err)

	s.applySnapshot(docstore.Document{Key: key, Revision: 5, Body: body})

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "r1", tasks[0].ID)

	// an older revision never rolls the collection back
	s.applySnapshot(docstore.Document{Key: key, Revision: 3, Body: []byte(`[]`)})
	assert.Len(t, s.Tasks(), 1)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	docs, err := docstore.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { docs.Close() })

	first, err := New(context.Background(), docs, "alice")
	require.NoError(t, err)
	task := first.AddTask(AddTaskParams{Title: "Write report", ProjectID: "p1", Type: "work", Priority: domain.PriorityMedium})
	project := first.AddProject("Platform", "#ff0000")
	first.Close()

	second, err := New(context.Background(), docs, "alice")
	require.NoError(t, err)
	t.Cleanup(second.Close)

	require.Len(t, second.Tasks(), 1)
	assert.Equal(t, task.ID, second.Tasks()[0].ID)
	assert.Equal(t, "Platform", second.ProjectName(project.ID))
}
