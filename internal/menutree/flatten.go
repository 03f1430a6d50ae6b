package menutree

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// FlatNode is the depth-tagged row written for every node on save.
type FlatNode struct {
	ID       uuid.UUID  `json:"id"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
	Depth    int        `json:"depth"`
	Position int        `json:"position"`
	OrderKey int        `json:"order_key"`
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	Icon     string     `json:"icon,omitempty"`
}

// Snapshot is a flattened tree in pre-order.
type Snapshot []FlatNode

// Flatten converts the tree into depth-tagged rows, parents before children.
func Flatten(tree Tree) Snapshot {
	rows := Snapshot{}
	walk(tree, nil, nil, 0, func(loc Location) bool {
		var parentID *uuid.UUID
		if loc.ParentID != nil {
			id := *loc.ParentID
			parentID = &id
		}
		rows = append(rows, FlatNode{
			ID:       loc.Node.ID,
			ParentID: parentID,
			Depth:    loc.Depth,
			Position: loc.Index,
			OrderKey: loc.Node.OrderKey,
			Name:     loc.Node.Name,
			Path:     loc.Node.Path,
			Icon:     loc.Node.Icon,
		})
		return true
	})
	return rows
}

// Build reassembles a tree from flattened rows. Siblings are ordered by
// position, then ordering key. Rows referencing unknown parents, duplicated
// ids and cycles are rejected.
func Build(rows Snapshot) (Tree, error) {
	byID := make(map[uuid.UUID]*Node, len(rows))
	children := make(map[string][]FlatNode, len(rows))
	parents := make(map[uuid.UUID]*uuid.UUID, len(rows))

	for _, row := range rows {
		if row.ID == uuid.Nil {
			return nil, fmt.Errorf("%w: row without id", ErrInvalidSnapshot)
		}
		if _, exists := byID[row.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, row.ID)
		}
		byID[row.ID] = &Node{
			ID:       row.ID,
			Name:     row.Name,
			Path:     row.Path,
			Icon:     row.Icon,
			OrderKey: row.OrderKey,
		}
		parents[row.ID] = row.ParentID
		key := parentKey(row.ParentID)
		children[key] = append(children[key], row)
	}

	for _, row := range rows {
		if row.ParentID == nil {
			continue
		}
		if _, ok := byID[*row.ParentID]; !ok {
			return nil, fmt.Errorf("%w: parent %s of %s is missing", ErrInvalidSnapshot, *row.ParentID, row.ID)
		}
	}
	if hasCycle(parents) {
		return nil, fmt.Errorf("%w: hierarchy contains a cycle", ErrInvalidSnapshot)
	}

	for id, node := range byID {
		kids := children[parentKey(&id)]
		sortRows(kids)
		for _, kid := range kids {
			node.Children = append(node.Children, byID[kid.ID])
		}
	}

	roots := children[parentKey(nil)]
	sortRows(roots)
	tree := make(Tree, 0, len(roots))
	for _, row := range roots {
		tree = append(tree, byID[row.ID])
	}

	if err := Validate(tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func sortRows(rows []FlatNode) {
	slices.SortStableFunc(rows, func(a, b FlatNode) int {
		if c := cmp.Compare(a.Position, b.Position); c != 0 {
			return c
		}
		return cmp.Compare(a.OrderKey, b.OrderKey)
	})
}

func parentKey(id *uuid.UUID) string {
	if id == nil {
		return "root"
	}
	return id.String()
}

func hasCycle(parents map[uuid.UUID]*uuid.UUID) bool {
	visited := make(map[uuid.UUID]int, len(parents))

	var visit func(uuid.UUID) bool
	visit = func(id uuid.UUID) bool {
		state := visited[id]
		if state == 1 {
			return true
		}
		if state == 2 {
			return false
		}
		visited[id] = 1
		if parent := parents[id]; parent != nil {
			if visit(*parent) {
				return true
			}
		}
		visited[id] = 2
		return false
	}

	for id := range parents {
		if visit(id) {
			return true
		}
	}
	return false
}
