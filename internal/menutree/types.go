package menutree

import "github.com/google/uuid"

const (
	// MaxDepth is the deepest level a node may occupy. Roots sit at depth 0.
	MaxDepth = 2
	// DefaultStride is the gap between ordering keys of consecutive roots.
	DefaultStride = 10
)

// Node is a single navigational entry together with its ordered subtree.
type Node struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	Icon     string    `json:"icon,omitempty"`
	OrderKey int       `json:"order_key"`
	Children []*Node   `json:"children,omitempty"`
}

// HasChildren reports whether the node owns at least one child.
func (n *Node) HasChildren() bool {
	return n != nil && len(n.Children) > 0
}

// Tree is the ordered list of root nodes.
type Tree []*Node

// Location describes where a node sits inside a tree. Parent identifiers are
// nil when the node (or its parent) lives in the root list.
type Location struct {
	Node          *Node
	ParentID      *uuid.UUID
	GrandParentID *uuid.UUID
	Index         int
	Depth         int
}

// Target is the drop target of a move: either a node or the promote-to-root
// sentinel. Position set to PositionInside asks for the node to be nested
// under ID; any other value lets ResolveMove pick the placement.
type Target struct {
	ID       uuid.UUID
	Root     bool
	Position Position
}

// RootTarget is the sentinel target that relocates a node to the front of the
// root list.
var RootTarget = Target{Root: true}

// NodeTarget builds a target pointing at the node with the given id.
func NodeTarget(id uuid.UUID) Target {
	return Target{ID: id}
}

// InsideTarget builds a target that nests the dragged node under id.
func InsideTarget(id uuid.UUID) Target {
	return Target{ID: id, Position: PositionInside}
}

// Inside reports whether the target asks for nesting.
func (t Target) Inside() bool {
	return !t.Root && t.Position == PositionInside
}

// IsZero reports whether the target points nowhere.
func (t Target) IsZero() bool {
	return !t.Root && t.ID == uuid.Nil
}

func (t Target) String() string {
	switch {
	case t.Root:
		return "root"
	case t.ID == uuid.Nil:
		return "none"
	case t.Inside():
		return "inside:" + t.ID.String()
	default:
		return t.ID.String()
	}
}

// Position is the advisory drop position shown while hovering.
type Position string

const (
	PositionNone   Position = ""
	PositionBefore Position = "before"
	PositionAfter  Position = "after"
	PositionInside Position = "inside"
)

// MoveKind names the branch of move resolution that produced a result.
type MoveKind string

const (
	MoveNoop    MoveKind = "noop"
	MovePromote MoveKind = "promote"
	MoveReorder MoveKind = "reorder"
	MoveNest    MoveKind = "nest"
	MoveAdopt   MoveKind = "adopt"
)

// MoveResult reports how a move was resolved and where the node landed.
type MoveResult struct {
	Kind     MoveKind
	NodeID   uuid.UUID
	ParentID *uuid.UUID
	Index    int
}
