package menueditor

import menuscmd "github.com/goliatone/go-menu-editor/internal/commands/menus"

// Command messages accepted by the handlers installed with RegisterCommands.
type (
	MoveNodeCommand            = menuscmd.MoveNodeCommand
	ReorderNodeCommand         = menuscmd.ReorderNodeCommand
	AddNodeCommand             = menuscmd.AddNodeCommand
	EditNodeCommand            = menuscmd.EditNodeCommand
	DeleteNodeCommand          = menuscmd.DeleteNodeCommand
	SaveMenuCommand            = menuscmd.SaveMenuCommand
	InvalidateMenuCacheCommand = menuscmd.InvalidateMenuCacheCommand
)
