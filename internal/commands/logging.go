package commands

import (
	"strings"

	"github.com/goliatone/go-menu-editor/internal/logging"
	"github.com/goliatone/go-menu-editor/pkg/interfaces"
)

// CommandLogger returns a logger scoped to a command module, tagged with the
// fields every command entry carries.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.CommandsLogger(provider)
	if name != "core" {
		logger = logging.ModuleLogger(provider, "menus.commands."+name)
	}
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
