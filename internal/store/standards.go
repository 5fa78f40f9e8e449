package store

import (
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// AddStandardTask creates a standard-task template.
func (s *Store) AddStandardTask(title, projectID, taskType string, priority domain.Priority, intervals []domain.ClockInterval) domain.StandardTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	standard := domain.NewStandardTask(title, projectID, taskType, priority, intervals)
	s.standards = append(s.standards, standard)
	s.persistStandards()
	return standard
}

// UpdateStandardTask replaces a template by ID.
func (s *Store) UpdateStandardTask(standard domain.StandardTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.standards {
		if s.standards[i].ID == standard.ID {
			s.standards[i] = standard
			s.persistStandards()
			return nil
		}
	}
	return errors.NewNotFoundError("standard task", standard.ID)
}

// DeleteStandardTask removes a template. No derived effects: templates
// have no lifecycle coupling to tasks seeded from them.
func (s *Store) DeleteStandardTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.standards {
		if s.standards[i].ID == id {
			s.standards = append(s.standards[:i], s.standards[i+1:]...)
			s.persistStandards()
			return nil
		}
	}
	return errors.NewNotFoundError("standard task", id)
}

// StandardTasks returns a copy of the template collection.
func (s *Store) StandardTasks() []domain.StandardTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	standards := make([]domain.StandardTask, len(s.standards))
	copy(standards, s.standards)
	return standards
}
