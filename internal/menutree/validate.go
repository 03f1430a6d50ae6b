package menutree

import (
	"fmt"

	"github.com/google/uuid"
)

// Validate checks the structural invariants of a tree received from outside
// the editor: no nil nodes, no zero or duplicated ids, depth within MaxDepth.
func Validate(tree Tree) error {
	seen := map[uuid.UUID]struct{}{}
	return validateLevel(tree, 0, seen)
}

func validateLevel(nodes []*Node, depth int, seen map[uuid.UUID]struct{}) error {
	for idx, node := range nodes {
		if node == nil {
			return fmt.Errorf("%w: nil node at depth %d index %d", ErrInvalidNode, depth, idx)
		}
		if node.ID == uuid.Nil {
			return fmt.Errorf("%w: node %q has no id", ErrInvalidNode, node.Name)
		}
		if depth > MaxDepth {
			return fmt.Errorf("%w: node %s at depth %d", ErrDepthExceeded, node.ID, depth)
		}
		if _, dup := seen[node.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, node.ID)
		}
		seen[node.ID] = struct{}{}
		if err := validateLevel(node.Children, depth+1, seen); err != nil {
			return err
		}
	}
	return nil
}
