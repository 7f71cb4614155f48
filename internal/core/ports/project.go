package ports

import "go.trai.ch/obtools/internal/core/domain"

// ProjectLoader reads a project file into the snapshot the integration works on.
//
//go:generate go run go.uber.org/mock/mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type ProjectLoader interface {
	// Load reads the project at path. It returns domain.ErrUnsupportedProject
	// when the file is not a .NET project.
	Load(path string) (*domain.Project, error)
}

// ProjectLocator resolves which project an invocation operates on.
type ProjectLocator interface {
	// Locate returns the project file for hint, or, when hint is empty, the
	// project in cwd or the first project of the enclosing solution.
	// It returns domain.ErrNoActiveProject when nothing can be resolved.
	Locate(cwd, hint string) (string, error)
}
