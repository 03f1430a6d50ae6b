package menutree

import (
	"errors"
	"testing"
)

func TestLocateReportsAncestry(t *testing.T) {
	t.Parallel()

	fixture := tree(
		n("A", n("A1", n("A1a"), n("A1b"))),
		n("B", n("B1")),
	)

	cases := []struct {
		name        string
		id          string
		parent      string
		grandParent string
		index       int
		depth       int
	}{
		{name: "root", id: "B", index: 1, depth: 0},
		{name: "child", id: "B1", parent: "B", index: 0, depth: 1},
		{name: "grandchild", id: "A1b", parent: "A1", grandParent: "A", index: 1, depth: 2},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			loc, err := Locate(fixture, nodeID(tc.id))
			if err != nil {
				t.Fatalf("locate %s: %v", tc.id, err)
			}
			if loc.Node.Name != tc.id {
				t.Fatalf("expected node %s, got %s", tc.id, loc.Node.Name)
			}
			if !uuidPtrEqual(loc.ParentID, optionalID(tc.parent)) {
				t.Fatalf("unexpected parent %v", loc.ParentID)
			}
			if !uuidPtrEqual(loc.GrandParentID, optionalID(tc.grandParent)) {
				t.Fatalf("unexpected grandparent %v", loc.GrandParentID)
			}
			if loc.Index != tc.index || loc.Depth != tc.depth {
				t.Fatalf("expected index %d depth %d, got %d %d", tc.index, tc.depth, loc.Index, loc.Depth)
			}
		})
	}
}

func TestLocateMissingNode(t *testing.T) {
	_, err := Locate(tree(n("A")), nodeID("ghost"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHeightAndCount(t *testing.T) {
	fixture := tree(n("A", n("A1", n("A1a"))), n("B"))
	if got := Height(fixture[0]); got != 2 {
		t.Fatalf("expected height 2, got %d", got)
	}
	if got := Height(fixture[1]); got != 0 {
		t.Fatalf("expected leaf height 0, got %d", got)
	}
	if got := Count(fixture); got != 4 {
		t.Fatalf("expected 4 nodes, got %d", got)
	}
}
