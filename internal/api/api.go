// Package api is the validating boundary in front of the store. Every
// mutation is checked here so the store below can trust its input, and
// query results are shaped into views that carry resolved project
// names and live durations.
package api

import (
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/store"
	"task-tracker/internal/validation"
)

// TaskView is a task decorated for presentation.
type TaskView struct {
	domain.Task
	ProjectName string
	Tracking    bool
	Total       time.Duration
}

// API exposes the application's operations to the CLI.
type API struct {
	store             *store.Store
	taskValidator     *validation.TaskValidator
	projectValidator  *validation.ProjectValidator
	standardValidator *validation.StandardTaskValidator
}

// New creates an API over the given store.
func New(st *store.Store) *API {
	return &API{
		store:             st,
		taskValidator:     validation.NewTaskValidator(),
		projectValidator:  validation.NewProjectValidator(),
		standardValidator: validation.NewStandardTaskValidator(),
	}
}

// CreateTaskParams describes a task creation request.
type CreateTaskParams struct {
	Title       string
	Description string
	ProjectID   string
	Type        string
	Priority    domain.Priority

	// Intervals, when non-nil, requests a backfilled task. The list
	// must be non-empty and every interval must run forward.
	Intervals []domain.LogInterval
}

// CreateTask validates and creates a task.
func (a *API) CreateTask(p CreateTaskParams) (TaskView, error) {
	if err := a.taskValidator.ValidateTaskForCreation(p.Title, p.Priority); err != nil {
		return TaskView{}, errors.NewValidationError(err.Error(), err)
	}
	if p.Intervals != nil {
		if err := a.taskValidator.ValidateBackfillIntervals(p.Intervals); err != nil {
			return TaskView{}, errors.NewValidationError(err.Error(), err)
		}
	}

	task := a.store.AddTask(store.AddTaskParams{
		Title:       a.taskValidator.TrimTitle(p.Title),
		Description: p.Description,
		ProjectID:   p.ProjectID,
		Type:        p.Type,
		Priority:    p.Priority,
		Intervals:   p.Intervals,
	})
	return a.view(task), nil
}

// UpdateTaskParams is a partial task update; nil fields are left
// untouched.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	ProjectID   *string
	Priority    *domain.Priority
	Type        *string
	Status      *domain.Status
}

// UpdateTask validates and applies a partial update. A status change
// carries its transition effects: moving to done closes any open log
// and records completion, leaving done re-opens the task.
func (a *API) UpdateTask(id string, p UpdateTaskParams) (TaskView, error) {
	if p.Title != nil {
		if err := a.taskValidator.ValidateTitle(*p.Title); err != nil {
			return TaskView{}, errors.NewValidationError(err.Error(), err)
		}
		trimmed := a.taskValidator.TrimTitle(*p.Title)
		p.Title = &trimmed
	}
	if p.Priority != nil {
		if err := a.taskValidator.ValidatePriority(*p.Priority); err != nil {
			return TaskView{}, errors.NewValidationError(err.Error(), err)
		}
	}
	if p.Status != nil {
		if err := a.taskValidator.ValidateStatus(*p.Status); err != nil {
			return TaskView{}, errors.NewValidationError(err.Error(), err)
		}
	}

	task, err := a.store.UpdateTask(id, store.TaskPatch{
		Title:       p.Title,
		Description: p.Description,
		ProjectID:   p.ProjectID,
		Priority:    p.Priority,
		Type:        p.Type,
		Status:      p.Status,
	})
	if err != nil {
		return TaskView{}, err
	}
	return a.view(task), nil
}

// DeleteTask removes a task.
func (a *API) DeleteTask(id string) error {
	return a.store.DeleteTask(id)
}

// ToggleTask starts or stops time tracking on a task.
func (a *API) ToggleTask(id string) (TaskView, error) {
	task, err := a.store.ToggleTaskLog(id)
	if err != nil {
		return TaskView{}, err
	}
	return a.view(task), nil
}

// GetTask returns a single task by ID.
func (a *API) GetTask(id string) (TaskView, error) {
	for _, task := range a.store.Tasks() {
		if task.ID == id {
			return a.view(task), nil
		}
	}
	return TaskView{}, errors.NewNotFoundError("task", id)
}

// ListTasks returns all tasks ranked by priority, then recency.
func (a *API) ListTasks() []TaskView {
	tasks := a.store.Tasks()
	domain.RankTasks(tasks)

	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, a.view(task))
	}
	return views
}

// CurrentTask returns the task the user is most plausibly working on,
// or nil when there is nothing active.
func (a *API) CurrentTask() *TaskView {
	tasks := a.store.Tasks()
	active := domain.ActiveTask(tasks)
	if active == nil {
		return nil
	}
	view := a.view(*active)
	return &view
}

func (a *API) view(task domain.Task) TaskView {
	return TaskView{
		Task:        task,
		ProjectName: a.store.ProjectName(task.ProjectID),
		Tracking:    task.IsTracking(),
		Total:       task.TotalDuration(a.store.Now()),
	}
}
