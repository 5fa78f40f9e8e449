package domain

import "github.com/google/uuid"

// UnknownProjectName is the display label for tasks referencing a
// project that no longer exists. Deleting a project does not cascade
// to its tasks; the dangling reference is tolerated, not an error.
const UnknownProjectName = "Unknown Project"

// Project identifies a bucket tasks belong to.
type Project struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// NewProject creates a new project with the given name and color.
func NewProject(name, color string) Project {
	return Project{
		ID:    uuid.New().String(),
		Name:  name,
		Color: color,
	}
}
