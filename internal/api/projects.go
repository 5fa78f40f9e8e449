package api

import (
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// CreateProject validates and creates a project.
func (a *API) CreateProject(name, color string) (domain.Project, error) {
	if err := a.projectValidator.ValidateProject(name, color); err != nil {
		return domain.Project{}, errors.NewValidationError(err.Error(), err)
	}
	return a.store.AddProject(name, color), nil
}

// UpdateProject validates and overwrites a project.
func (a *API) UpdateProject(id, name, color string) (domain.Project, error) {
	if err := a.projectValidator.ValidateProject(name, color); err != nil {
		return domain.Project{}, errors.NewValidationError(err.Error(), err)
	}
	return a.store.UpdateProject(id, name, color)
}

// DeleteProject removes a project. Tasks keep their project reference
// and show the unknown-project label afterwards.
func (a *API) DeleteProject(id string) error {
	return a.store.DeleteProject(id)
}

// ListProjects returns all projects.
func (a *API) ListProjects() []domain.Project {
	return a.store.Projects()
}

// CreateStandardTask validates and creates a standard-task template.
func (a *API) CreateStandardTask(title, projectID, taskType string, priority domain.Priority, intervals []domain.ClockInterval) (domain.StandardTask, error) {
	if err := a.standardValidator.ValidateStandardTask(title, priority, intervals); err != nil {
		return domain.StandardTask{}, errors.NewValidationError(err.Error(), err)
	}
	return a.store.AddStandardTask(title, projectID, taskType, priority, intervals), nil
}

// UpdateStandardTask validates and replaces a template.
func (a *API) UpdateStandardTask(standard domain.StandardTask) error {
	if err := a.standardValidator.ValidateStandardTask(standard.Title, standard.Priority, standard.Intervals); err != nil {
		return errors.NewValidationError(err.Error(), err)
	}
	return a.store.UpdateStandardTask(standard)
}

// DeleteStandardTask removes a template.
func (a *API) DeleteStandardTask(id string) error {
	return a.store.DeleteStandardTask(id)
}

// ListStandardTasks returns all templates.
func (a *API) ListStandardTasks() []domain.StandardTask {
	return a.store.StandardTasks()
}

// SeedStandardTask creates a completed task from a template, with its
// logs placed on the given day.
func (a *API) SeedStandardTask(standardID string, day time.Time) (TaskView, error) {
	task, err := a.store.SeedFromStandard(standardID, day)
	if err != nil {
		return TaskView{}, err
	}
	return a.view(task), nil
}
