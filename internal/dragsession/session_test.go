package dragsession

import (
	"errors"
	"testing"

	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/google/uuid"
)

func id(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("dragsession-test:"+name))
}

func node(name string, children ...*menutree.Node) *menutree.Node {
	return &menutree.Node{ID: id(name), Name: name, Children: children}
}

func names(nodes []*menutree.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func TestSessionCommitsSiblingReorder(t *testing.T) {
	tree := menutree.Tree{node("A", node("A1"), node("A2")), node("B")}
	s := New()

	if err := s.Start(tree, id("A2")); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.State() != StateArmed {
		t.Fatalf("expected armed, got %s", s.State())
	}
	origin := s.Origin()
	if origin.ParentID == nil || *origin.ParentID != id("A") || origin.Index != 1 || origin.GrandParentID != nil {
		t.Fatalf("unexpected origin %+v", origin)
	}

	if err := s.Hover(menutree.NodeTarget(id("A1"))); err != nil {
		t.Fatalf("hover: %v", err)
	}
	if s.State() != StateHovering {
		t.Fatalf("expected hovering, got %s", s.State())
	}
	if pos := s.Position(tree); pos != menutree.PositionBefore {
		t.Fatalf("expected before, got %q", pos)
	}

	next, result, err := s.End(tree)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if result.Outcome != OutcomeCommitted {
		t.Fatalf("expected committed, got %s", result.Outcome)
	}
	if got := names(next[0].Children); got[0] != "A2" || got[1] != "A1" {
		t.Fatalf("unexpected children order %v", got)
	}
	if len(next[1].Children) != 0 {
		t.Fatal("expected B to stay empty")
	}
	if s.State() != StateIdle {
		t.Fatalf("expected idle after end, got %s", s.State())
	}
}

func TestSessionCommitsInsideDropOnSibling(t *testing.T) {
	tree := menutree.Tree{node("A"), node("B", node("B1"))}
	s := New()
	if err := s.Start(tree, id("A")); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Hover(menutree.InsideTarget(id("B"))); err != nil {
		t.Fatalf("hover: %v", err)
	}
	if pos := s.Position(tree); pos != menutree.PositionInside {
		t.Fatalf("expected inside, got %q", pos)
	}

	next, result, err := s.End(tree)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if result.Outcome != OutcomeCommitted || result.Move.Kind != menutree.MoveNest {
		t.Fatalf("expected committed nest, got %s/%s", result.Outcome, result.Move.Kind)
	}
	if got := names(next); len(got) != 1 || got[0] != "B" {
		t.Fatalf("expected only B at root, got %v", got)
	}
	if got := names(next[0].Children); len(got) != 2 || got[0] != "B1" || got[1] != "A" {
		t.Fatalf("expected B1 then A under B, got %v", got)
	}
}

func TestSessionCancelsWithoutTarget(t *testing.T) {
	tree := menutree.Tree{node("A"), node("B")}
	s := New()
	if err := s.Start(tree, id("A")); err != nil {
		t.Fatalf("start: %v", err)
	}

	next, result, err := s.End(tree)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if result.Outcome != OutcomeCancelled {
		t.Fatalf("expected cancelled, got %s", result.Outcome)
	}
	if names(next)[0] != "A" {
		t.Fatal("tree changed on cancel")
	}
}

func TestSessionDropOnSelfIsCancelled(t *testing.T) {
	tree := menutree.Tree{node("A", node("A1"))}
	s := New()
	_ = s.Start(tree, id("A1"))
	_ = s.Hover(menutree.NodeTarget(id("A1")))

	next, result, err := s.End(tree)
	if err != nil {
		t.Fatalf("expected no error for self drop, got %v", err)
	}
	if result.Outcome != OutcomeCancelled {
		t.Fatalf("expected cancelled, got %s", result.Outcome)
	}
	if len(next[0].Children) != 1 {
		t.Fatal("tree changed on self drop")
	}
}

func TestSessionRejectsDescendantTarget(t *testing.T) {
	tree := menutree.Tree{node("A", node("A1", node("A1a")))}
	s := New()
	_ = s.Start(tree, id("A"))
	_ = s.Hover(menutree.NodeTarget(id("A1a")))

	next, result, err := s.End(tree)
	if !errors.Is(err, menutree.ErrSelfOrDescendantTarget) {
		t.Fatalf("expected ErrSelfOrDescendantTarget, got %v", err)
	}
	if result.Outcome != OutcomeRejected || !errors.Is(result.Err, menutree.ErrSelfOrDescendantTarget) {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(next) != 1 || len(next[0].Children[0].Children) != 1 {
		t.Fatal("tree changed on rejection")
	}
	if s.State() != StateIdle {
		t.Fatalf("expected idle after rejection, got %s", s.State())
	}
}

func TestSessionPromoteToRoot(t *testing.T) {
	tree := menutree.Tree{node("A", node("A1")), node("B")}
	s := New(menutree.WithStride(100))
	_ = s.Start(tree, id("A1"))
	_ = s.Hover(menutree.RootTarget)

	next, result, err := s.End(tree)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if result.Move.Kind != menutree.MovePromote {
		t.Fatalf("expected promote, got %s", result.Move.Kind)
	}
	if got := names(next); len(got) != 3 || got[0] != "A1" || got[1] != "A" || got[2] != "B" {
		t.Fatalf("unexpected roots %v", got)
	}
	if next[0].OrderKey != 100 || next[2].OrderKey != 300 {
		t.Fatalf("expected stride 100 keys, got %d %d", next[0].OrderKey, next[2].OrderKey)
	}
}

func TestSessionGuards(t *testing.T) {
	tree := menutree.Tree{node("A")}
	s := New()

	if err := s.Hover(menutree.RootTarget); !errors.Is(err, ErrSessionIdle) {
		t.Fatalf("expected ErrSessionIdle, got %v", err)
	}
	if _, _, err := s.End(tree); !errors.Is(err, ErrSessionIdle) {
		t.Fatalf("expected ErrSessionIdle, got %v", err)
	}
	if err := s.Start(tree, id("ghost")); !errors.Is(err, menutree.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if s.State() != StateIdle {
		t.Fatal("failed start must leave the session idle")
	}
	if err := s.Start(tree, id("A")); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Start(tree, id("A")); !errors.Is(err, ErrSessionActive) {
		t.Fatalf("expected ErrSessionActive, got %v", err)
	}

	result := s.Cancel()
	if result.Outcome != OutcomeCancelled || result.NodeID != id("A") {
		t.Fatalf("unexpected cancel result %+v", result)
	}
	if _, active := s.Active(); active {
		t.Fatal("expected no active gesture after cancel")
	}
}

func TestSessionHoverClearReturnsToArmed(t *testing.T) {
	tree := menutree.Tree{node("A"), node("B")}
	s := New()
	_ = s.Start(tree, id("A"))
	_ = s.Hover(menutree.NodeTarget(id("B")))
	_ = s.Hover(menutree.Target{})
	if s.State() != StateArmed {
		t.Fatalf("expected armed, got %s", s.State())
	}
}
