package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-menu-editor/pkg/interfaces"
)

const (
	rootModule     = "menus"
	editorModule   = "menus.editor"
	storeModule    = "menus.store"
	commandsModule = "menus.commands"
	importerModule = "menus.importer"
	tuiModule      = "menus.tui"
)

const (
	fieldMenuCode = "menu"
	fieldNodeID   = "node"
	fieldAction   = "action"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// EditorLogger returns the logger namespace reserved for editing sessions.
func EditorLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, editorModule)
}

// StoreLogger returns the logger namespace reserved for menu persistence.
func StoreLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, storeModule)
}

// CommandsLogger returns the logger namespace reserved for command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// ImporterLogger returns the logger namespace reserved for import and export.
func ImporterLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, importerModule)
}

// TUILogger returns the logger namespace reserved for the terminal editor.
func TUILogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, tuiModule)
}

// WithMenuContext enriches the logger with the menu code, node and action.
// Empty values are ignored.
func WithMenuContext(logger interfaces.Logger, menuCode, nodeID, action string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(menuCode); trimmed != "" {
		fields[fieldMenuCode] = trimmed
	}
	if trimmed := strings.TrimSpace(nodeID); trimmed != "" {
		fields[fieldNodeID] = trimmed
	}
	if trimmed := strings.TrimSpace(action); trimmed != "" {
		fields[fieldAction] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
