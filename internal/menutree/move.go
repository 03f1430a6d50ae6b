package menutree

import "github.com/google/uuid"

// MoveOption configures ResolveMove.
type MoveOption func(*moveConfig)

type moveConfig struct {
	stride int
}

// WithStride overrides the root ordering stride used when normalizing the
// result of a move.
func WithStride(stride int) MoveOption {
	return func(cfg *moveConfig) {
		if stride > 0 {
			cfg.stride = stride
		}
	}
}

// ResolveMove relocates the active node relative to the target and returns the
// normalized tree. On error the input tree is returned untouched.
//
// Resolution order:
//   - the root sentinel prepends the node to the root list
//   - an inside target nests the node as the target's last child, failing
//     with ErrDepthExceeded when the subtree does not fit
//   - a sibling target reorders within the shared parent
//   - a target at depth 0 or 1 that is not already the node's parent adopts
//     it as its last child, provided the subtree fits
//   - any other target hands the node to the target's parent
func ResolveMove(tree Tree, activeID uuid.UUID, target Target, opts ...MoveOption) (Tree, MoveResult, error) {
	cfg := moveConfig{stride: DefaultStride}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	active, err := Locate(tree, activeID)
	if err != nil {
		return tree, MoveResult{}, err
	}
	noop := MoveResult{Kind: MoveNoop, NodeID: activeID, ParentID: active.ParentID, Index: active.Index}

	if target.IsZero() {
		return tree, noop, nil
	}

	if target.Root {
		if active.ParentID == nil && active.Index == 0 {
			return tree, noop, nil
		}
		next, node := RemoveSubtree(tree, activeID)
		next = PromoteToRoot(next, node)
		return Normalize(next, cfg.stride), MoveResult{Kind: MovePromote, NodeID: activeID}, nil
	}

	if target.ID == activeID {
		return tree, MoveResult{}, ErrSelfOrDescendantTarget
	}
	hovered, err := Locate(tree, target.ID)
	if err != nil {
		return tree, MoveResult{}, err
	}
	if IsDescendant(tree, activeID, target.ID) {
		return tree, MoveResult{}, ErrSelfOrDescendantTarget
	}

	height := Height(active.Node)
	if target.Inside() {
		if active.ParentID != nil && *active.ParentID == hovered.Node.ID {
			return tree, noop, nil
		}
		if !acceptsChild(active, hovered, height) {
			return tree, MoveResult{}, ErrDepthExceeded
		}
		return nest(tree, activeID, hovered, cfg.stride)
	}

	if uuidPtrEqual(active.ParentID, hovered.ParentID) {
		next, err := ReorderSiblings(tree, active.ParentID, active.Index, hovered.Index)
		if err != nil {
			return tree, MoveResult{}, err
		}
		return Normalize(next, cfg.stride), MoveResult{
			Kind:     MoveReorder,
			NodeID:   activeID,
			ParentID: active.ParentID,
			Index:    hovered.Index,
		}, nil
	}

	if acceptsChild(active, hovered, height) {
		return nest(tree, activeID, hovered, cfg.stride)
	}

	if hovered.Depth+height > MaxDepth {
		return tree, MoveResult{}, ErrDepthExceeded
	}
	next, err := relocate(tree, activeID, hovered.ParentID)
	if err != nil {
		return tree, MoveResult{}, err
	}
	landed, err := Locate(next, activeID)
	if err != nil {
		return tree, MoveResult{}, err
	}
	return Normalize(next, cfg.stride), MoveResult{
		Kind:     MoveAdopt,
		NodeID:   activeID,
		ParentID: landed.ParentID,
		Index:    landed.Index,
	}, nil
}

// IsDescendant reports whether id sits somewhere below ancestorID. A node is
// not its own descendant.
func IsDescendant(tree Tree, ancestorID, id uuid.UUID) bool {
	parents := parentIndex(tree)
	if _, ok := parents[id]; !ok {
		return false
	}
	seen := make(map[uuid.UUID]struct{}, len(parents))
	current := parents[id]
	for current != nil {
		if *current == ancestorID {
			return true
		}
		if _, loop := seen[*current]; loop {
			return false
		}
		seen[*current] = struct{}{}
		current = parents[*current]
	}
	return false
}

// DropPositionFor reports where the active node would land relative to the
// hovered target. The result only drives visual feedback.
func DropPositionFor(tree Tree, activeID uuid.UUID, target Target) Position {
	if target.Root {
		return PositionBefore
	}
	if target.IsZero() || target.ID == activeID {
		return PositionNone
	}
	active, err := Locate(tree, activeID)
	if err != nil {
		return PositionNone
	}
	hovered, err := Locate(tree, target.ID)
	if err != nil {
		return PositionNone
	}
	nestable := acceptsChild(active, hovered, Height(active.Node)) && !IsDescendant(tree, activeID, target.ID)
	if target.Inside() {
		if nestable {
			return PositionInside
		}
		return PositionNone
	}
	if uuidPtrEqual(active.ParentID, hovered.ParentID) {
		if hovered.Index > active.Index {
			return PositionAfter
		}
		return PositionBefore
	}
	if nestable {
		return PositionInside
	}
	return PositionBefore
}

func acceptsChild(active, hovered Location, height int) bool {
	if hovered.Depth > MaxDepth-1 {
		return false
	}
	if active.ParentID != nil && *active.ParentID == hovered.Node.ID {
		return false
	}
	return hovered.Depth+1+height <= MaxDepth
}

func nest(tree Tree, activeID uuid.UUID, hovered Location, stride int) (Tree, MoveResult, error) {
	parentID := hovered.Node.ID
	next, err := relocate(tree, activeID, &parentID)
	if err != nil {
		return tree, MoveResult{}, err
	}
	landed, err := Locate(next, activeID)
	if err != nil {
		return tree, MoveResult{}, err
	}
	return Normalize(next, stride), MoveResult{
		Kind:     MoveNest,
		NodeID:   activeID,
		ParentID: &parentID,
		Index:    landed.Index,
	}, nil
}

func relocate(tree Tree, id uuid.UUID, parentID *uuid.UUID) (Tree, error) {
	next, node := RemoveSubtree(tree, id)
	if node == nil {
		return tree, ErrNotFound
	}
	return InsertUnder(next, parentID, node)
}
