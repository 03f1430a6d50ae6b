package editor

import (
	"errors"

	"github.com/goliatone/go-menu-editor/internal/dragsession"
	"github.com/goliatone/go-menu-editor/internal/interaction"
	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/goliatone/go-menu-editor/internal/reorder"
	"github.com/google/uuid"
)

// Mode returns the interaction mode in effect.
func (s *Session) Mode() interaction.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strategy.Mode()
}

// Capabilities returns the last reported device capabilities.
func (s *Session) Capabilities() interaction.Capabilities {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.caps
}

// SetCapabilities re-evaluates the interaction mode. Leaving drag mode
// abandons any gesture in flight; the tree is never touched.
func (s *Session) SetCapabilities(caps interaction.Capabilities) interaction.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.caps = caps
	mode := s.selector.Select(caps)
	if mode == s.strategy.Mode() {
		return mode
	}
	if mode != interaction.ModeDrag {
		if _, active := s.drag.Active(); active {
			s.drag.Cancel()
			s.logger.Debug("editor.drag.abandoned", "reason", "mode_change")
		}
	}
	s.strategy = interaction.StrategyFor(mode)
	s.logger.Info("editor.mode.changed", "mode", string(mode), "width", caps.ViewportWidth)
	return mode
}

// BeginDrag picks up a node. Only available in drag mode.
func (s *Session) BeginDrag(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.strategy.CanRelocateCrossParent() {
		return ErrModeUnavailable
	}
	if err := s.drag.Start(s.tree, id); err != nil {
		s.noticeFor(err, id)
		return err
	}
	s.logger.Debug("editor.drag.start", "node", id)
	return nil
}

// HoverDrag updates the hovered target and returns the drop position to
// highlight.
func (s *Session) HoverDrag(target menutree.Target) (menutree.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.drag.Hover(target); err != nil {
		return menutree.PositionNone, err
	}
	return s.drag.Position(s.tree), nil
}

// DragState reports the gesture stage, the dragged node and the hovered target.
func (s *Session) DragState() (dragsession.State, uuid.UUID, menutree.Target) {
	s.mu.Lock()
	defer s.mu.Unlock()
	active, _ := s.drag.Active()
	return s.drag.State(), active, s.drag.Over()
}

// EndDrag drops the node on the hovered target.
func (s *Session) EndDrag() (dragsession.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, result, err := s.drag.End(s.tree)
	mode := string(s.strategy.Mode())
	if err != nil {
		if result.Outcome == dragsession.OutcomeRejected {
			s.metrics.MoveRejected(mode, reasonFor(err))
			s.noticeFor(err, result.NodeID)
			s.logger.Warn("editor.move.rejected", "node", result.NodeID, "target", result.Target.String(), "error", err)
		}
		return result, err
	}
	if result.Outcome != dragsession.OutcomeCommitted {
		s.logger.Debug("editor.drag.cancelled", "node", result.NodeID)
		return result, nil
	}
	s.commit(next)
	s.afterMove(result.Move)
	s.metrics.MoveCommitted(mode, string(result.Move.Kind))
	s.logger.Info("editor.move.committed", "node", result.NodeID, "kind", string(result.Move.Kind), "target", result.Target.String())
	return result, nil
}

// CancelDrag abandons the current gesture.
func (s *Session) CancelDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Cancel()
}

// Move relocates a node in one step, as a complete drag gesture would.
func (s *Session) Move(id uuid.UUID, target menutree.Target) (menutree.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mode := string(s.strategy.Mode())
	if !s.strategy.CanRelocateCrossParent() {
		return menutree.MoveResult{}, ErrModeUnavailable
	}
	next, result, err := menutree.ResolveMove(s.tree, id, target, menutree.WithStride(s.stride))
	if err != nil {
		s.metrics.MoveRejected(mode, reasonFor(err))
		s.noticeFor(err, id)
		s.logger.Warn("editor.move.rejected", "node", id, "target", target.String(), "error", err)
		return menutree.MoveResult{}, err
	}
	if result.Kind == menutree.MoveNoop {
		return result, nil
	}
	s.commit(next)
	s.afterMove(result)
	s.metrics.MoveCommitted(mode, string(result.Kind))
	s.logger.Info("editor.move.committed", "node", id, "kind", string(result.Kind), "target", target.String())
	return result, nil
}

// MoveUp shifts a node one slot earlier among its siblings.
func (s *Session) MoveUp(id uuid.UUID) error {
	return s.moveManual(id, reorder.Up)
}

// MoveDown shifts a node one slot later among its siblings.
func (s *Session) MoveDown(id uuid.UUID) error {
	return s.moveManual(id, reorder.Down)
}

// CanMove reports whether a manual step stays within the sibling list.
func (s *Session) CanMove(id uuid.UUID, dir reorder.Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return reorder.CanMove(s.tree, id, dir)
}

func (s *Session) moveManual(id uuid.UUID, dir reorder.Direction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mode := string(s.strategy.Mode())
	if !s.strategy.CanReorderSiblings() {
		return ErrModeUnavailable
	}
	next, result, err := reorder.Move(s.tree, id, dir, s.stride)
	if err != nil {
		s.metrics.MoveRejected(mode, reasonFor(err))
		s.noticeFor(err, id)
		s.logger.Debug("editor.reorder.rejected", "node", id, "direction", dir.String(), "error", err)
		return err
	}
	s.commit(next)
	s.metrics.MoveCommitted(mode, string(menutree.MoveReorder))
	s.logger.Info("editor.reorder.committed", "node", id, "from", result.From, "to", result.To)
	return nil
}

// afterMove expands the new parent so the moved node stays visible.
func (s *Session) afterMove(result menutree.MoveResult) {
	if result.ParentID != nil {
		delete(s.ui.collapsed, *result.ParentID)
	}
	s.ui.selected = result.NodeID
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, menutree.ErrNotFound):
		return "not_found"
	case errors.Is(err, menutree.ErrDepthExceeded):
		return "depth_exceeded"
	case errors.Is(err, menutree.ErrSelfOrDescendantTarget):
		return "self_or_descendant"
	case errors.Is(err, menutree.ErrOutOfBounds):
		return "out_of_bounds"
	default:
		return "error"
	}
}
