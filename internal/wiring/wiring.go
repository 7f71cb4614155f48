// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/obtools/internal/adapters/config"
	_ "go.trai.ch/obtools/internal/adapters/fs"
	_ "go.trai.ch/obtools/internal/adapters/logger"
	_ "go.trai.ch/obtools/internal/adapters/msbuild"
	_ "go.trai.ch/obtools/internal/adapters/obfuscar"
	_ "go.trai.ch/obtools/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/obtools/internal/app"
	_ "go.trai.ch/obtools/internal/engine/integrator"
)
