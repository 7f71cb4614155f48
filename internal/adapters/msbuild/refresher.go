package msbuild

import (
	"path/filepath"

	"go.trai.ch/obtools/internal/core/ports"
)

// LogRefresher stands in for the IDE's project reload. It only reports the
// rewritten project.
type LogRefresher struct {
	logger ports.Logger
}

// NewLogRefresher creates a LogRefresher.
func NewLogRefresher(logger ports.Logger) *LogRefresher {
	return &LogRefresher{logger: logger}
}

// Refresh logs that projectFile changed on disk.
func (r *LogRefresher) Refresh(projectFile string) {
	r.logger.Info("updated", "path", filepath.Base(projectFile))
}
