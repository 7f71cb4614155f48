package ports

import "go.trai.ch/obtools/internal/core/domain"

// SettingsLoader loads the tool settings and settings-form plans.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the tool settings at path. A missing file yields defaults.
	Load(path string) (*domain.Settings, error)

	// LoadPlan reads a settings plan from path.
	LoadPlan(path string) (*domain.Plan, error)
}
