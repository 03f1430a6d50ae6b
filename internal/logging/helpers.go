package logging

import (
	"maps"

	"github.com/goliatone/go-menu-editor/pkg/interfaces"
)

// WithFields returns logger with fields attached. Loggers without field
// support are returned unchanged.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	scoped, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}
	return scoped.WithFields(maps.Clone(fields))
}
