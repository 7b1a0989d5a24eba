package ports

import "github.com/Kappibw/scheduling/internal/domain"

// WorkspaceInitializer scaffolds a schedenv workspace.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}

// WorkspaceLocator finds the workspace root from a starting directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
