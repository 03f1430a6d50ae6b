package reorder

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/google/uuid"
)

// Direction is the step applied by a manual move.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection maps "up" and "down" to a Direction.
func ParseDirection(raw string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	default:
		return 0, fmt.Errorf("reorder: unknown direction %q", raw)
	}
}

// Result reports where the node ended up.
type Result struct {
	NodeID   uuid.UUID
	ParentID *uuid.UUID
	From     int
	To       int
}

// Move shifts a node one slot up or down among its siblings. The node never
// changes parent. When the step would leave the sibling list the input tree
// is returned with menutree.ErrOutOfBounds.
func Move(tree menutree.Tree, id uuid.UUID, dir Direction, stride int) (menutree.Tree, Result, error) {
	if dir != Up && dir != Down {
		return tree, Result{}, fmt.Errorf("reorder: invalid direction %d", int(dir))
	}
	working := menutree.Clone(tree)
	loc, err := menutree.Locate(working, id)
	if err != nil {
		return tree, Result{}, err
	}
	target := loc.Index + int(dir)
	next, err := menutree.SwapSiblings(working, loc.ParentID, loc.Index, target)
	if err != nil {
		return tree, Result{}, err
	}
	return menutree.Normalize(next, stride), Result{
		NodeID:   id,
		ParentID: loc.ParentID,
		From:     loc.Index,
		To:       target,
	}, nil
}

// CanMove reports whether a step in the given direction stays in bounds.
// Views use it to disable controls at list edges.
func CanMove(tree menutree.Tree, id uuid.UUID, dir Direction) bool {
	loc, err := menutree.Locate(tree, id)
	if err != nil {
		return false
	}
	siblings := len(tree)
	if loc.ParentID != nil {
		parent, err := menutree.Locate(tree, *loc.ParentID)
		if err != nil {
			return false
		}
		siblings = len(parent.Node.Children)
	}
	target := loc.Index + int(dir)
	return target >= 0 && target < siblings
}
