package domain

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Change describes what an operation did to a project's obfuscation step.
type Change string

const (
	// ChangeEnabled means a step was added or rewritten.
	ChangeEnabled Change = "enabled"
	// ChangeDisabled means a step was removed.
	ChangeDisabled Change = "disabled"
	// ChangeSkipped means nothing had to be done.
	ChangeSkipped Change = "skipped"
)
