package menutree

import (
	"slices"

	"github.com/google/uuid"
)

// RemoveSubtree detaches the node and its descendants. When the id is
// unknown the original tree is returned with a nil node.
func RemoveSubtree(tree Tree, id uuid.UUID) (Tree, *Node) {
	root := container(tree)
	removed := detach(root, id)
	if removed == nil {
		return tree, nil
	}
	return root.tree(), removed
}

// InsertUnder appends node as the last child of the parent. A nil parent id
// appends to the root list. The node keeps its subtree.
func InsertUnder(tree Tree, parentID *uuid.UUID, node *Node) (Tree, error) {
	if node == nil {
		return tree, ErrInvalidNode
	}
	root := container(tree)
	parent := root
	depth := 0
	if parentID != nil {
		loc, err := Locate(tree, *parentID)
		if err != nil {
			return tree, err
		}
		parent = findNode(root, *parentID)
		depth = loc.Depth + 1
	}
	if depth+Height(node) > MaxDepth {
		return tree, ErrDepthExceeded
	}
	parent.Children = append(parent.Children, CloneNode(node))
	return root.tree(), nil
}

// PromoteToRoot prepends node to the root list. Levels that would sit deeper
// than MaxDepth are dropped.
func PromoteToRoot(tree Tree, node *Node) Tree {
	if node == nil {
		return tree
	}
	promoted := CloneNode(node)
	truncate(promoted, MaxDepth)
	out := make(Tree, 0, len(tree)+1)
	out = append(out, promoted)
	return append(out, Clone(tree)...)
}

// ReorderSiblings moves the sibling at from so it ends up at index to, shifting
// the others. A nil parent id addresses the root list.
func ReorderSiblings(tree Tree, parentID *uuid.UUID, from, to int) (Tree, error) {
	root := container(tree)
	parent, err := siblingOwner(root, parentID)
	if err != nil {
		return tree, err
	}
	if !inRange(parent.Children, from) || !inRange(parent.Children, to) {
		return tree, ErrOutOfBounds
	}
	if from == to {
		return root.tree(), nil
	}
	moved := parent.Children[from]
	parent.Children = slices.Delete(parent.Children, from, from+1)
	parent.Children = slices.Insert(parent.Children, to, moved)
	return root.tree(), nil
}

// SwapSiblings exchanges two siblings under the same parent.
func SwapSiblings(tree Tree, parentID *uuid.UUID, i, j int) (Tree, error) {
	root := container(tree)
	parent, err := siblingOwner(root, parentID)
	if err != nil {
		return tree, err
	}
	if !inRange(parent.Children, i) || !inRange(parent.Children, j) {
		return tree, ErrOutOfBounds
	}
	parent.Children[i], parent.Children[j] = parent.Children[j], parent.Children[i]
	return root.tree(), nil
}

// Update applies fn to a copy of the node and returns the new tree. The
// callback must not touch Children or ID; both are restored afterwards.
func Update(tree Tree, id uuid.UUID, fn func(*Node)) (Tree, error) {
	root := container(tree)
	node := findNode(root, id)
	if node == nil {
		return tree, ErrNotFound
	}
	children := node.Children
	fn(node)
	node.ID = id
	node.Children = children
	return root.tree(), nil
}

func detach(parent *Node, id uuid.UUID) *Node {
	for idx, child := range parent.Children {
		if child == nil {
			continue
		}
		if child.ID == id {
			parent.Children = slices.Delete(parent.Children, idx, idx+1)
			return child
		}
		if removed := detach(child, id); removed != nil {
			return removed
		}
	}
	return nil
}

func siblingOwner(root *Node, parentID *uuid.UUID) (*Node, error) {
	if parentID == nil {
		return root, nil
	}
	parent := findNode(root, *parentID)
	if parent == nil {
		return nil, ErrNotFound
	}
	return parent, nil
}

func inRange(nodes []*Node, idx int) bool {
	return idx >= 0 && idx < len(nodes)
}
