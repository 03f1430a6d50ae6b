package menutree

import "github.com/google/uuid"

// Clone returns a deep copy of the tree. Mutations on the copy never reach
// the original.
func Clone(tree Tree) Tree {
	if tree == nil {
		return nil
	}
	out := make(Tree, 0, len(tree))
	for _, node := range tree {
		if node == nil {
			continue
		}
		out = append(out, CloneNode(node))
	}
	return out
}

// CloneNode returns a deep copy of a node and its subtree.
func CloneNode(node *Node) *Node {
	if node == nil {
		return nil
	}
	clone := *node
	clone.Children = nil
	if len(node.Children) > 0 {
		clone.Children = make([]*Node, 0, len(node.Children))
		for _, child := range node.Children {
			if child == nil {
				continue
			}
			clone.Children = append(clone.Children, CloneNode(child))
		}
	}
	return &clone
}

// truncate drops every level below the given number of descendant levels.
func truncate(node *Node, levels int) {
	if node == nil {
		return
	}
	if levels <= 0 {
		node.Children = nil
		return
	}
	for _, child := range node.Children {
		truncate(child, levels-1)
	}
}

// container wraps the root list in a synthetic parent so root and nested
// sibling lists are edited the same way.
func container(tree Tree) *Node {
	return &Node{Children: Clone(tree)}
}

func (n *Node) tree() Tree {
	return Tree(n.Children)
}

func findNode(parent *Node, id uuid.UUID) *Node {
	for _, child := range parent.Children {
		if child == nil {
			continue
		}
		if child.ID == id {
			return child
		}
		if found := findNode(child, id); found != nil {
			return found
		}
	}
	return nil
}
