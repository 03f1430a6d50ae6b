package interfaces

import "context"

// Logger is the leveled logger handed to sessions, stores and command
// handlers. Its method set matches go-logger, so a go-logger instance can be
// passed in directly.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out loggers by module name, such as "menus.editor".
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is implemented by loggers that can carry fields like the menu
// code across entries.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
