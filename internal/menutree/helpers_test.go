package menutree

import (
	"strings"

	"github.com/google/uuid"
)

func nodeID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("menutree-test:"+name))
}

func n(name string, children ...*Node) *Node {
	return &Node{
		ID:       nodeID(name),
		Name:     name,
		Path:     "/" + strings.ToLower(name),
		Children: children,
	}
}

func tree(nodes ...*Node) Tree {
	return Tree(nodes)
}

func idPtr(name string) *uuid.UUID {
	id := nodeID(name)
	return &id
}

func optionalID(name string) *uuid.UUID {
	if name == "" {
		return nil
	}
	return idPtr(name)
}

// shape renders a tree as A[A1,A2],B for compact assertions.
func shape(t Tree) string {
	return renderLevel(t)
}

func renderLevel(nodes []*Node) string {
	parts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if len(node.Children) == 0 {
			parts = append(parts, node.Name)
			continue
		}
		parts = append(parts, node.Name+"["+renderLevel(node.Children)+"]")
	}
	return strings.Join(parts, ",")
}

func maxDepth(t Tree) int {
	deepest := 0
	walk(t, nil, nil, 0, func(loc Location) bool {
		if loc.Depth > deepest {
			deepest = loc.Depth
		}
		return true
	})
	return deepest
}

func sameIDSet(a, b Tree) bool {
	left := IDs(a)
	right := IDs(b)
	if len(left) != len(right) {
		return false
	}
	set := make(map[uuid.UUID]int, len(left))
	for _, id := range left {
		set[id]++
	}
	for _, id := range right {
		set[id]--
		if set[id] < 0 {
			return false
		}
	}
	return true
}
