package reorder

import (
	"errors"
	"testing"

	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/google/uuid"
)

func id(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("reorder-test:"+name))
}

func node(name string, children ...*menutree.Node) *menutree.Node {
	return &menutree.Node{ID: id(name), Name: name, Children: children}
}

func rootNames(tree menutree.Tree) []string {
	out := []string{}
	for _, n := range tree {
		out = append(out, n.Name)
	}
	return out
}

func TestMoveUpAndDown(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		move string
		dir  Direction
		want []string
	}{
		{name: "middle up", move: "B", dir: Up, want: []string{"B", "A", "C"}},
		{name: "middle down", move: "B", dir: Down, want: []string{"A", "C", "B"}},
		{name: "first down", move: "A", dir: Down, want: []string{"B", "A", "C"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tree := menutree.Tree{node("A"), node("B"), node("C")}
			next, result, err := Move(tree, id(tc.move), tc.dir, menutree.DefaultStride)
			if err != nil {
				t.Fatalf("move: %v", err)
			}
			got := rootNames(next)
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
			if result.To != result.From+int(tc.dir) {
				t.Fatalf("unexpected result %+v", result)
			}
			if next[0].OrderKey != 10 || next[2].OrderKey != 30 {
				t.Fatalf("expected normalized keys, got %d %d", next[0].OrderKey, next[2].OrderKey)
			}
		})
	}
}

func TestMoveOutOfBoundsLeavesTreeUntouched(t *testing.T) {
	tree := menutree.Tree{node("A"), node("B"), node("C")}

	next, _, err := Move(tree, id("A"), Up, menutree.DefaultStride)
	if !errors.Is(err, menutree.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if got := rootNames(next); got[0] != "A" || got[1] != "B" || got[2] != "C" {
		t.Fatalf("tree changed: %v", got)
	}

	if _, _, err := Move(tree, id("C"), Down, menutree.DefaultStride); !errors.Is(err, menutree.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds for last node, got %v", err)
	}
}

func TestMoveNeverChangesParent(t *testing.T) {
	tree := menutree.Tree{node("A", node("A1"), node("A2")), node("B")}

	next, result, err := Move(tree, id("A2"), Up, menutree.DefaultStride)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if result.ParentID == nil || *result.ParentID != id("A") {
		t.Fatalf("unexpected parent %v", result.ParentID)
	}
	if next[0].Children[0].Name != "A2" || next[0].Children[1].Name != "A1" {
		t.Fatalf("unexpected children %v", rootNames(next[0].Children))
	}

	if _, _, err := Move(tree, id("A1"), Up, menutree.DefaultStride); !errors.Is(err, menutree.ErrOutOfBounds) {
		t.Fatalf("first child must not escape its parent, got %v", err)
	}
	if tree[0].Children[0].Name != "A1" {
		t.Fatal("input tree mutated")
	}
}

func TestMoveUnknownNode(t *testing.T) {
	if _, _, err := Move(menutree.Tree{node("A")}, id("ghost"), Down, 0); !errors.Is(err, menutree.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCanMove(t *testing.T) {
	tree := menutree.Tree{node("A", node("A1"), node("A2")), node("B")}
	if CanMove(tree, id("A"), Up) {
		t.Fatal("first root cannot move up")
	}
	if !CanMove(tree, id("A"), Down) {
		t.Fatal("first root can move down")
	}
	if CanMove(tree, id("A2"), Down) {
		t.Fatal("last child cannot move down")
	}
	if !CanMove(tree, id("A2"), Up) {
		t.Fatal("last child can move up")
	}
}

func TestParseDirection(t *testing.T) {
	if dir, err := ParseDirection(" UP "); err != nil || dir != Up {
		t.Fatalf("expected Up, got %v %v", dir, err)
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Fatal("expected error for unknown direction")
	}
}
