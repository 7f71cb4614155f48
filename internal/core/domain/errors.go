package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedProject is returned when a project file has no Project root element.
	ErrMalformedProject = zerr.New("malformed project file: missing Project root")

	// ErrUnsupportedProject is returned when the selected file is not a recognized .NET project.
	ErrUnsupportedProject = zerr.New("not a supported .NET project")

	// ErrNoActiveProject is returned when neither a project file nor a solution project can be resolved.
	ErrNoActiveProject = zerr.New("no active project")

	// ErrMalformedConfig is returned when an obfuscator config file has an unexpected root element.
	ErrMalformedConfig = zerr.New("malformed obfuscator config")

	// ErrConfigurationNotFound is returned when a configuration/platform pair is not defined by the project.
	ErrConfigurationNotFound = zerr.New("configuration not found")

	// ErrInvalidSettings is returned when a tool settings or plan file fails validation.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrObfuscatorNotFound is returned when the obfuscator executable to install cannot be located.
	ErrObfuscatorNotFound = zerr.New("obfuscator executable not found")
)
