package menutree

// Normalize recomputes ordering keys from sibling order. Roots receive
// stride, 2*stride, 3*stride and so on; every child receives its parent's key
// plus its one-based position among siblings. Ids are left untouched.
func Normalize(tree Tree, stride int) Tree {
	if stride <= 0 {
		stride = DefaultStride
	}
	out := Clone(tree)
	for idx, node := range out {
		node.OrderKey = stride * (idx + 1)
		assignChildKeys(node)
	}
	return out
}

// IsNormalized reports whether ordering keys strictly increase within every
// sibling list.
func IsNormalized(tree Tree) bool {
	return keysIncrease(tree)
}

func assignChildKeys(parent *Node) {
	for idx, child := range parent.Children {
		child.OrderKey = parent.OrderKey + idx + 1
		assignChildKeys(child)
	}
}

func keysIncrease(nodes []*Node) bool {
	for idx, node := range nodes {
		if idx > 0 && node.OrderKey <= nodes[idx-1].OrderKey {
			return false
		}
		if !keysIncrease(node.Children) {
			return false
		}
	}
	return true
}
