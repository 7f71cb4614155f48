// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info and Warn take slog-style key/value pairs after the message.
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(err error)
}
