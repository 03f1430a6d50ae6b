package dragsession

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/google/uuid"
)

var (
	ErrSessionActive = errors.New("dragsession: a gesture is already in progress")
	ErrSessionIdle   = errors.New("dragsession: no gesture in progress")
)

// State is the lifecycle stage of a drag gesture.
type State int

const (
	StateIdle State = iota
	StateArmed
	StateHovering
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateHovering:
		return "hovering"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome is how a gesture ended.
type Outcome string

const (
	OutcomeCommitted Outcome = "committed"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeRejected  Outcome = "rejected"
)

// Origin is where the active node sat when the gesture started.
type Origin struct {
	ParentID      *uuid.UUID
	GrandParentID *uuid.UUID
	Index         int
}

// Result describes a finished gesture.
type Result struct {
	Outcome Outcome
	NodeID  uuid.UUID
	Origin  Origin
	Target  menutree.Target
	Move    menutree.MoveResult
	Err     error
}

// Session tracks a single pointer gesture from pick-up to drop. It never
// touches a tree until End runs move resolution once.
//
// A Session is not safe for concurrent use; the owning editor serializes
// access to it.
type Session struct {
	state  State
	active uuid.UUID
	over   menutree.Target
	origin Origin
	opts   []menutree.MoveOption
}

// New returns an idle session. Options are forwarded to move resolution.
func New(opts ...menutree.MoveOption) *Session {
	return &Session{opts: opts}
}

// State reports the current lifecycle stage.
func (s *Session) State() State {
	return s.state
}

// Active returns the id of the node being dragged and whether a gesture runs.
func (s *Session) Active() (uuid.UUID, bool) {
	return s.active, s.state != StateIdle
}

// Over returns the currently hovered target.
func (s *Session) Over() menutree.Target {
	return s.over
}

// Origin returns the snapshot taken when the gesture started.
func (s *Session) Origin() Origin {
	return s.origin
}

// Start arms the session for the node with the given id.
func (s *Session) Start(tree menutree.Tree, id uuid.UUID) error {
	if s.state != StateIdle {
		return ErrSessionActive
	}
	loc, err := menutree.Locate(tree, id)
	if err != nil {
		return err
	}
	s.state = StateArmed
	s.active = id
	s.over = menutree.Target{}
	s.origin = Origin{
		ParentID:      copyID(loc.ParentID),
		GrandParentID: copyID(loc.GrandParentID),
		Index:         loc.Index,
	}
	return nil
}

// Hover records the target currently under the pointer. A zero target
// clears it and returns the session to the armed state.
func (s *Session) Hover(target menutree.Target) error {
	if s.state == StateIdle {
		return ErrSessionIdle
	}
	s.over = target
	if target.IsZero() {
		s.state = StateArmed
		return nil
	}
	s.state = StateHovering
	return nil
}

// Position reports the advisory drop position for the current hover.
func (s *Session) Position(tree menutree.Tree) menutree.Position {
	if s.state != StateHovering {
		return menutree.PositionNone
	}
	return menutree.DropPositionFor(tree, s.active, s.over)
}

// End finishes the gesture. It returns the tree to hold from now on: the
// moved tree when committed, the input tree otherwise. The session is idle
// afterwards whatever the outcome.
func (s *Session) End(tree menutree.Tree) (menutree.Tree, Result, error) {
	if s.state == StateIdle {
		return tree, Result{}, ErrSessionIdle
	}
	defer s.reset()

	result := Result{
		NodeID: s.active,
		Origin: s.origin,
		Target: s.over,
	}

	if s.state != StateHovering || s.over.IsZero() || (!s.over.Root && s.over.ID == s.active) {
		result.Outcome = OutcomeCancelled
		return tree, result, nil
	}

	next, move, err := menutree.ResolveMove(tree, s.active, s.over, s.opts...)
	if err != nil {
		result.Outcome = OutcomeRejected
		result.Err = err
		return tree, result, err
	}
	result.Move = move
	if move.Kind == menutree.MoveNoop {
		result.Outcome = OutcomeCancelled
		return tree, result, nil
	}
	result.Outcome = OutcomeCommitted
	return next, result, nil
}

// Cancel abandons the gesture without touching any tree.
func (s *Session) Cancel() Result {
	if s.state == StateIdle {
		return Result{Outcome: OutcomeCancelled}
	}
	result := Result{
		Outcome: OutcomeCancelled,
		NodeID:  s.active,
		Origin:  s.origin,
		Target:  s.over,
	}
	s.reset()
	return result
}

func (s *Session) reset() {
	s.state = StateIdle
	s.active = uuid.Nil
	s.over = menutree.Target{}
	s.origin = Origin{}
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	copied := *id
	return &copied
}
