package ports

import "go.trai.ch/obtools/internal/core/domain"

// TargetSynchronizer keeps the obfuscation steps inside a project file's
// post-build target in sync.
//
//go:generate go run go.uber.org/mock/mockgen -source=synchronizer.go -destination=mocks/mock_synchronizer.go -package=mocks
type TargetSynchronizer interface {
	// HasStep reports whether the target holds a step for key.
	HasStep(projectFile string, target domain.TargetSpec, key domain.StepKey) (bool, error)

	// RemoveStep detaches the step for key. A missing target or step is a no-op.
	// The target itself is never removed.
	RemoveStep(projectFile string, target domain.TargetSpec, key domain.StepKey) error

	// PutStep creates the target if needed and adds or rewrites the step.
	PutStep(projectFile string, target domain.TargetSpec, step domain.Step) error
}

// ProjectRefresher is notified after a project file was rewritten.
type ProjectRefresher interface {
	Refresh(projectFile string)
}
