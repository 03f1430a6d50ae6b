package menutree

import "github.com/google/uuid"

// Locate finds a node by id, reporting its parent, grandparent, sibling index
// and depth. Roots are visited first, then their descendants in order.
func Locate(tree Tree, id uuid.UUID) (Location, error) {
	var found Location
	ok := false
	walk(tree, nil, nil, 0, func(loc Location) bool {
		if loc.Node.ID != id {
			return true
		}
		found = loc
		ok = true
		return false
	})
	if !ok {
		return Location{}, ErrNotFound
	}
	return found, nil
}

// Contains reports whether the tree holds a node with the given id.
func Contains(tree Tree, id uuid.UUID) bool {
	_, err := Locate(tree, id)
	return err == nil
}

// IDs returns every node id in pre-order.
func IDs(tree Tree) []uuid.UUID {
	ids := []uuid.UUID{}
	walk(tree, nil, nil, 0, func(loc Location) bool {
		ids = append(ids, loc.Node.ID)
		return true
	})
	return ids
}

// Count returns the number of nodes in the tree.
func Count(tree Tree) int {
	total := 0
	walk(tree, nil, nil, 0, func(Location) bool {
		total++
		return true
	})
	return total
}

// Height returns how many levels sit below the node. A leaf has height 0.
func Height(node *Node) int {
	if node == nil || len(node.Children) == 0 {
		return 0
	}
	deepest := 0
	for _, child := range node.Children {
		if h := Height(child) + 1; h > deepest {
			deepest = h
		}
	}
	return deepest
}

// walk visits nodes in pre-order. Returning false from fn stops the walk.
func walk(nodes []*Node, parentID, grandParentID *uuid.UUID, depth int, fn func(Location) bool) bool {
	for idx, node := range nodes {
		if node == nil {
			continue
		}
		if !fn(Location{
			Node:          node,
			ParentID:      parentID,
			GrandParentID: grandParentID,
			Index:         idx,
			Depth:         depth,
		}) {
			return false
		}
		if len(node.Children) == 0 {
			continue
		}
		id := node.ID
		if !walk(node.Children, &id, parentID, depth+1, fn) {
			return false
		}
	}
	return true
}

func parentIndex(tree Tree) map[uuid.UUID]*uuid.UUID {
	parents := map[uuid.UUID]*uuid.UUID{}
	walk(tree, nil, nil, 0, func(loc Location) bool {
		parents[loc.Node.ID] = loc.ParentID
		return true
	})
	return parents
}

func uuidPtrEqual(a, b *uuid.UUID) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil || b == nil:
		return false
	default:
		return *a == *b
	}
}
