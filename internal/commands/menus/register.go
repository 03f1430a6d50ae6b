package menuscmd

import (
	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	"github.com/goliatone/go-menu-editor/internal/commands"
	"github.com/goliatone/go-menu-editor/pkg/interfaces"
)

// Registration bundles the dependencies of the menu command handlers.
type Registration struct {
	Sessions    Sessions
	Invalidator interfaces.CacheInvalidator
	Logger      interfaces.Logger
	Gates       FeatureGates
	// SaveRetries is the number of extra attempts for a failed save.
	SaveRetries int
}

// Register subscribes every menu handler on the global dispatcher and
// returns a function that removes them again.
func Register(reg Registration) (unsubscribe func()) {
	move := dispatcher.SubscribeCommand(NewMoveNodeHandler(reg.Sessions, reg.Logger))
	reorder := dispatcher.SubscribeCommand(NewReorderNodeHandler(reg.Sessions, reg.Logger))
	add := dispatcher.SubscribeCommand(NewAddNodeHandler(reg.Sessions, reg.Logger))
	edit := dispatcher.SubscribeCommand(NewEditNodeHandler(reg.Sessions, reg.Logger))
	remove := dispatcher.SubscribeCommand(NewDeleteNodeHandler(reg.Sessions, reg.Logger))
	saveHandler := NewSaveMenuHandler(reg.Sessions, reg.Logger,
		commands.WithTelemetry(commands.DefaultTelemetry[SaveMenuCommand](reg.Logger)),
	)
	save := dispatcher.SubscribeCommand(saveHandler, runner.WithMaxRetries(reg.SaveRetries))
	invalidate := dispatcher.SubscribeCommand(NewInvalidateMenuCacheHandler(reg.Invalidator, reg.Logger, reg.Gates))

	return func() {
		move.Unsubscribe()
		reorder.Unsubscribe()
		add.Unsubscribe()
		edit.Unsubscribe()
		remove.Unsubscribe()
		save.Unsubscribe()
		invalidate.Unsubscribe()
	}
}

var (
	_ commands.MenuScoped = MoveNodeCommand{}
	_ commands.MenuScoped = ReorderNodeCommand{}
	_ commands.MenuScoped = AddNodeCommand{}
	_ commands.MenuScoped = EditNodeCommand{}
	_ commands.MenuScoped = DeleteNodeCommand{}
	_ commands.MenuScoped = SaveMenuCommand{}
)
