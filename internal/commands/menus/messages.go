package menuscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-menu-editor/internal/reorder"
	"github.com/google/uuid"
)

const (
	moveNodeMessageType            = "menus.node.move"
	reorderNodeMessageType         = "menus.node.reorder"
	addNodeMessageType             = "menus.node.add"
	editNodeMessageType            = "menus.node.edit"
	deleteNodeMessageType          = "menus.node.delete"
	saveMenuMessageType            = "menus.save"
	invalidateMenuCacheMessageType = "menus.cache.invalidate"
)

var (
	menuCodeRule = validation.By(func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError("menus.menu_required", "menu code is required")
		}
		return nil
	})
	nodeIDRule = validation.By(func(value any) error {
		if value.(uuid.UUID) == uuid.Nil {
			return validation.NewError("menus.node_required", "node id is required")
		}
		return nil
	})
)

// MoveNodeCommand drops a node on a target, as a completed drag would.
type MoveNodeCommand struct {
	Menu   string    `json:"menu"`
	NodeID uuid.UUID `json:"node_id"`
	// TargetID is the hovered node. Ignored when TargetRoot is set.
	TargetID   uuid.UUID `json:"target_id,omitempty"`
	TargetRoot bool      `json:"target_root,omitempty"`
	// Inside nests the node under TargetID instead of letting the move
	// resolver choose between reordering and nesting.
	Inside bool `json:"inside,omitempty"`
}

// Type implements command.Message.
func (MoveNodeCommand) Type() string { return moveNodeMessageType }

// MenuCode implements commands.MenuScoped.
func (cmd MoveNodeCommand) MenuCode() string { return cmd.Menu }

// Validate requires a menu, a node and a target.
func (cmd MoveNodeCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Menu, menuCodeRule),
		validation.Field(&cmd.NodeID, nodeIDRule),
		validation.Field(&cmd.TargetID, validation.By(func(value any) error {
			if !cmd.TargetRoot && value.(uuid.UUID) == uuid.Nil {
				return validation.NewError("menus.node.move.target_required", "target id or root target is required")
			}
			return nil
		})),
	)
}

// ReorderNodeCommand moves a node one slot up or down among its siblings.
type ReorderNodeCommand struct {
	Menu      string    `json:"menu"`
	NodeID    uuid.UUID `json:"node_id"`
	Direction string    `json:"direction"`
}

// Type implements command.Message.
func (ReorderNodeCommand) Type() string { return reorderNodeMessageType }

// MenuCode implements commands.MenuScoped.
func (cmd ReorderNodeCommand) MenuCode() string { return cmd.Menu }

// Validate requires a known direction.
func (cmd ReorderNodeCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Menu, menuCodeRule),
		validation.Field(&cmd.NodeID, nodeIDRule),
		validation.Field(&cmd.Direction, validation.Required, validation.By(func(value any) error {
			if _, err := reorder.ParseDirection(value.(string)); err != nil {
				return validation.NewError("menus.node.reorder.direction_invalid", "direction must be up or down")
			}
			return nil
		})),
	)
}

// AddNodeCommand appends a node to the root list or under ParentID.
type AddNodeCommand struct {
	Menu     string     `json:"menu"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
	Name     string     `json:"name"`
	Path     string     `json:"path,omitempty"`
	Icon     string     `json:"icon,omitempty"`
	// ResultCallback receives the id assigned to the new node.
	ResultCallback func(uuid.UUID) `json:"-"`
}

// Type implements command.Message.
func (AddNodeCommand) Type() string { return addNodeMessageType }

// MenuCode implements commands.MenuScoped.
func (cmd AddNodeCommand) MenuCode() string { return cmd.Menu }

// Validate requires a name and, when set, a non-nil parent.
func (cmd AddNodeCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Menu, menuCodeRule),
		validation.Field(&cmd.Name, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("menus.node.add.name_required", "name is required")
			}
			return nil
		})),
		validation.Field(&cmd.ParentID, validation.By(func(value any) error {
			if parent, ok := value.(*uuid.UUID); ok && parent != nil && *parent == uuid.Nil {
				return validation.NewError("menus.node.add.parent_invalid", "parent id cannot be nil uuid")
			}
			return nil
		})),
	)
}

// EditNodeCommand changes node fields in place. Nil fields are left alone.
type EditNodeCommand struct {
	Menu   string    `json:"menu"`
	NodeID uuid.UUID `json:"node_id"`
	Name   *string   `json:"name,omitempty"`
	Path   *string   `json:"path,omitempty"`
	Icon   *string   `json:"icon,omitempty"`
}

// Type implements command.Message.
func (EditNodeCommand) Type() string { return editNodeMessageType }

// MenuCode implements commands.MenuScoped.
func (cmd EditNodeCommand) MenuCode() string { return cmd.Menu }

// Validate rejects blank names.
func (cmd EditNodeCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Menu, menuCodeRule),
		validation.Field(&cmd.NodeID, nodeIDRule),
		validation.Field(&cmd.Name, validation.By(func(value any) error {
			if name, ok := value.(*string); ok && name != nil && strings.TrimSpace(*name) == "" {
				return validation.NewError("menus.node.edit.name_blank", "name cannot be blank")
			}
			return nil
		})),
	)
}

// DeleteNodeCommand removes a node with its subtree.
type DeleteNodeCommand struct {
	Menu      string    `json:"menu"`
	NodeID    uuid.UUID `json:"node_id"`
	Confirmed bool      `json:"confirmed,omitempty"`
}

// Type implements command.Message.
func (DeleteNodeCommand) Type() string { return deleteNodeMessageType }

// MenuCode implements commands.MenuScoped.
func (cmd DeleteNodeCommand) MenuCode() string { return cmd.Menu }

// Validate requires a menu and a node.
func (cmd DeleteNodeCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Menu, menuCodeRule),
		validation.Field(&cmd.NodeID, nodeIDRule),
	)
}

// SaveMenuCommand persists the session tree of a menu.
type SaveMenuCommand struct {
	Menu string `json:"menu"`
}

// Type implements command.Message.
func (SaveMenuCommand) Type() string { return saveMenuMessageType }

// MenuCode implements commands.MenuScoped.
func (cmd SaveMenuCommand) MenuCode() string { return cmd.Menu }

// Validate requires a menu.
func (cmd SaveMenuCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Menu, menuCodeRule),
	)
}

// InvalidateMenuCacheCommand clears cached menu lookups.
type InvalidateMenuCacheCommand struct{}

// Type implements command.Message.
func (InvalidateMenuCacheCommand) Type() string { return invalidateMenuCacheMessageType }

// Validate satisfies command.Message.
func (InvalidateMenuCacheCommand) Validate() error {
	return validation.ValidateStruct(&InvalidateMenuCacheCommand{})
}
