package store

import (
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// AddProject creates a project. Projects live in a single shared
// document across all users.
func (s *Store) AddProject(name, color string) domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	project := domain.NewProject(name, color)
	s.projects = append(s.projects, project)
	s.persistProjects()
	return project
}

// UpdateProject overwrites a project's name and color.
func (s *Store) UpdateProject(id, name, color string) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects[i].Name = name
			s.projects[i].Color = color
			s.persistProjects()
			return s.projects[i], nil
		}
	}
	return domain.Project{}, errors.NewNotFoundError("project", id)
}

// DeleteProject removes a project. Tasks referencing it are not
// touched; they render with the unknown-project label from then on.
func (s *Store) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			s.persistProjects()
			return nil
		}
	}
	return errors.NewNotFoundError("project", id)
}

// Projects returns a copy of the project collection.
func (s *Store) Projects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := make([]domain.Project, len(s.projects))
	copy(projects, s.projects)
	return projects
}

// ProjectName resolves a project ID for display, falling back to the
// unknown-project label for dangling references.
func (s *Store) ProjectName(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, project := range s.projects {
		if project.ID == id {
			return project.Name
		}
	}
	return domain.UnknownProjectName
}
