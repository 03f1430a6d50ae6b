package menuscmd

import (
	"context"
	"errors"

	"github.com/goliatone/go-menu-editor/internal/commands"
	"github.com/goliatone/go-menu-editor/internal/editor"
	"github.com/goliatone/go-menu-editor/internal/logging"
	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/goliatone/go-menu-editor/internal/reorder"
	"github.com/goliatone/go-menu-editor/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

var ErrSessionsRequired = errors.New("menus command: session resolver is required")

// Sessions resolves the editing session of a menu, opening it when needed.
type Sessions interface {
	Session(ctx context.Context, menuCode string) (*editor.Session, error)
}

// MoveNodeHandler applies drag-equivalent moves.
type MoveNodeHandler struct {
	inner *commands.Handler[MoveNodeCommand]
}

// NewMoveNodeHandler builds a move handler over sessions.
func NewMoveNodeHandler(sessions Sessions, logger interfaces.Logger, opts ...commands.HandlerOption[MoveNodeCommand]) *MoveNodeHandler {
	baseLogger := commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg MoveNodeCommand) error {
		session, err := resolve(ctx, sessions, msg.Menu)
		if err != nil {
			return err
		}
		target := menutree.NodeTarget(msg.TargetID)
		if msg.Inside {
			target = menutree.InsideTarget(msg.TargetID)
		}
		if msg.TargetRoot {
			target = menutree.RootTarget
		}
		result, err := session.Move(msg.NodeID, target)
		if err != nil {
			return err
		}
		logging.WithMenuContext(baseLogger, msg.Menu, msg.NodeID.String(), "move").
			Info("menus.command.node.moved", "kind", string(result.Kind))
		return nil
	}
	return &MoveNodeHandler{inner: commands.NewHandler(exec, handlerOptions(baseLogger, "menus.node.move", opts)...)}
}

// Execute satisfies command.Commander[MoveNodeCommand].
func (h *MoveNodeHandler) Execute(ctx context.Context, msg MoveNodeCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ReorderNodeHandler applies manual up/down steps.
type ReorderNodeHandler struct {
	inner *commands.Handler[ReorderNodeCommand]
}

// NewReorderNodeHandler builds a reorder handler over sessions.
func NewReorderNodeHandler(sessions Sessions, logger interfaces.Logger, opts ...commands.HandlerOption[ReorderNodeCommand]) *ReorderNodeHandler {
	baseLogger := commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg ReorderNodeCommand) error {
		session, err := resolve(ctx, sessions, msg.Menu)
		if err != nil {
			return err
		}
		dir, err := reorder.ParseDirection(msg.Direction)
		if err != nil {
			return err
		}
		if dir == reorder.Up {
			err = session.MoveUp(msg.NodeID)
		} else {
			err = session.MoveDown(msg.NodeID)
		}
		if err != nil {
			return err
		}
		logging.WithMenuContext(baseLogger, msg.Menu, msg.NodeID.String(), "reorder").
			Info("menus.command.node.reordered", "direction", dir.String())
		return nil
	}
	return &ReorderNodeHandler{inner: commands.NewHandler(exec, handlerOptions(baseLogger, "menus.node.reorder", opts)...)}
}

// Execute satisfies command.Commander[ReorderNodeCommand].
func (h *ReorderNodeHandler) Execute(ctx context.Context, msg ReorderNodeCommand) error {
	return h.inner.Execute(ctx, msg)
}

// AddNodeHandler creates nodes.
type AddNodeHandler struct {
	inner *commands.Handler[AddNodeCommand]
}

// NewAddNodeHandler builds an add handler over sessions.
func NewAddNodeHandler(sessions Sessions, logger interfaces.Logger, opts ...commands.HandlerOption[AddNodeCommand]) *AddNodeHandler {
	baseLogger := commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg AddNodeCommand) error {
		session, err := resolve(ctx, sessions, msg.Menu)
		if err != nil {
			return err
		}
		input := editor.NodeInput{Name: msg.Name, Path: msg.Path, Icon: msg.Icon}
		var node *menutree.Node
		if msg.ParentID != nil {
			node, err = session.AddChild(*msg.ParentID, input)
		} else {
			node, err = session.AddRoot(input)
		}
		if err != nil {
			return err
		}
		if msg.ResultCallback != nil {
			msg.ResultCallback(node.ID)
		}
		logging.WithMenuContext(baseLogger, msg.Menu, node.ID.String(), "add").
			Info("menus.command.node.added")
		return nil
	}
	return &AddNodeHandler{inner: commands.NewHandler(exec, handlerOptions(baseLogger, "menus.node.add", opts)...)}
}

// Execute satisfies command.Commander[AddNodeCommand].
func (h *AddNodeHandler) Execute(ctx context.Context, msg AddNodeCommand) error {
	return h.inner.Execute(ctx, msg)
}

// EditNodeHandler updates node fields.
type EditNodeHandler struct {
	inner *commands.Handler[EditNodeCommand]
}

// NewEditNodeHandler builds an edit handler over sessions.
func NewEditNodeHandler(sessions Sessions, logger interfaces.Logger, opts ...commands.HandlerOption[EditNodeCommand]) *EditNodeHandler {
	baseLogger := commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg EditNodeCommand) error {
		session, err := resolve(ctx, sessions, msg.Menu)
		if err != nil {
			return err
		}
		if err := session.Edit(msg.NodeID, editor.NodeUpdate{Name: msg.Name, Path: msg.Path, Icon: msg.Icon}); err != nil {
			return err
		}
		logging.WithMenuContext(baseLogger, msg.Menu, msg.NodeID.String(), "edit").
			Info("menus.command.node.edited")
		return nil
	}
	return &EditNodeHandler{inner: commands.NewHandler(exec, handlerOptions(baseLogger, "menus.node.edit", opts)...)}
}

// Execute satisfies command.Commander[EditNodeCommand].
func (h *EditNodeHandler) Execute(ctx context.Context, msg EditNodeCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeleteNodeHandler removes nodes.
type DeleteNodeHandler struct {
	inner *commands.Handler[DeleteNodeCommand]
}

// NewDeleteNodeHandler builds a delete handler over sessions.
func NewDeleteNodeHandler(sessions Sessions, logger interfaces.Logger, opts ...commands.HandlerOption[DeleteNodeCommand]) *DeleteNodeHandler {
	baseLogger := commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg DeleteNodeCommand) error {
		session, err := resolve(ctx, sessions, msg.Menu)
		if err != nil {
			return err
		}
		if err := session.Delete(msg.NodeID, msg.Confirmed); err != nil {
			return err
		}
		logging.WithMenuContext(baseLogger, msg.Menu, msg.NodeID.String(), "delete").
			Info("menus.command.node.deleted")
		return nil
	}
	return &DeleteNodeHandler{inner: commands.NewHandler(exec, handlerOptions(baseLogger, "menus.node.delete", opts)...)}
}

// Execute satisfies command.Commander[DeleteNodeCommand].
func (h *DeleteNodeHandler) Execute(ctx context.Context, msg DeleteNodeCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SaveMenuHandler persists session trees.
type SaveMenuHandler struct {
	inner *commands.Handler[SaveMenuCommand]
}

// NewSaveMenuHandler builds a save handler over sessions.
func NewSaveMenuHandler(sessions Sessions, logger interfaces.Logger, opts ...commands.HandlerOption[SaveMenuCommand]) *SaveMenuHandler {
	baseLogger := commands.EnsureLogger(logger)
	exec := func(ctx context.Context, msg SaveMenuCommand) error {
		session, err := resolve(ctx, sessions, msg.Menu)
		if err != nil {
			return err
		}
		if err := session.Save(ctx); err != nil {
			return err
		}
		logging.WithMenuContext(baseLogger, msg.Menu, "", "save").
			Info("menus.command.saved", "nodes", menutree.Count(session.Tree()))
		return nil
	}
	return &SaveMenuHandler{inner: commands.NewHandler(exec, handlerOptions(baseLogger, "menus.save", opts)...)}
}

// Execute satisfies command.Commander[SaveMenuCommand].
func (h *SaveMenuHandler) Execute(ctx context.Context, msg SaveMenuCommand) error {
	return h.inner.Execute(ctx, msg)
}

func resolve(ctx context.Context, sessions Sessions, menuCode string) (*editor.Session, error) {
	if sessions == nil {
		return nil, ErrSessionsRequired
	}
	return sessions.Session(ctx, menuCode)
}

func handlerOptions[T command.Message](logger interfaces.Logger, operation string, extra []commands.HandlerOption[T]) []commands.HandlerOption[T] {
	opts := []commands.HandlerOption[T]{
		commands.WithLogger[T](logger),
		commands.WithOperation[T](operation),
	}
	return append(opts, extra...)
}
