package editor

import (
	"errors"

	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/google/uuid"
)

var ErrNothingToConfirm = errors.New("editor: no action awaiting confirmation")

// DialogKind names the dialog currently open over the tree.
type DialogKind string

const (
	DialogNone          DialogKind = ""
	DialogAdd           DialogKind = "add"
	DialogEdit          DialogKind = "edit"
	DialogConfirmDelete DialogKind = "confirm_delete"
)

// Dialog is the open dialog and the node it applies to.
type Dialog struct {
	Kind   DialogKind
	NodeID uuid.UUID
}

// uiState is presentation state kept apart from the tree.
type uiState struct {
	collapsed map[uuid.UUID]struct{}
	selected  uuid.UUID
	dialog    Dialog
}

func newUIState() uiState {
	return uiState{collapsed: map[uuid.UUID]struct{}{}}
}

// prune drops state for nodes that no longer exist.
func (u *uiState) prune(tree menutree.Tree) {
	for id := range u.collapsed {
		if !menutree.Contains(tree, id) {
			delete(u.collapsed, id)
		}
	}
	if u.selected != uuid.Nil && !menutree.Contains(tree, u.selected) {
		u.selected = uuid.Nil
	}
	if u.dialog.NodeID != uuid.Nil && !menutree.Contains(tree, u.dialog.NodeID) {
		u.dialog = Dialog{}
	}
}

// ToggleCollapsed flips the collapsed flag of a node and returns the new value.
func (s *Session) ToggleCollapsed(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ui.collapsed[id]; ok {
		delete(s.ui.collapsed, id)
		return false
	}
	if !menutree.Contains(s.tree, id) {
		return false
	}
	s.ui.collapsed[id] = struct{}{}
	return true
}

// Collapse hides the children of a node.
func (s *Session) Collapse(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if menutree.Contains(s.tree, id) {
		s.ui.collapsed[id] = struct{}{}
	}
}

// Expand shows the children of a node.
func (s *Session) Expand(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ui.collapsed, id)
}

// IsCollapsed reports whether the node's children are hidden.
func (s *Session) IsCollapsed(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ui.collapsed[id]
	return ok
}

// Select marks a node as the current selection.
func (s *Session) Select(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == uuid.Nil || menutree.Contains(s.tree, id) {
		s.ui.selected = id
	}
}

// Selected returns the selected node id, or uuid.Nil.
func (s *Session) Selected() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ui.selected
}

// OpenDialog opens a dialog for a node.
func (s *Session) OpenDialog(kind DialogKind, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui.dialog = Dialog{Kind: kind, NodeID: id}
}

// CloseDialog dismisses the open dialog.
func (s *Session) CloseDialog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui.dialog = Dialog{}
}

// Dialog returns the open dialog.
func (s *Session) Dialog() Dialog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ui.dialog
}

// Row is one visible line of the tree view.
type Row struct {
	Node        *menutree.Node
	ParentID    *uuid.UUID
	Depth       int
	Index       int
	HasChildren bool
	Collapsed   bool
	Selected    bool
	Glyph       string
}

// Rows lists the visible nodes in display order, skipping descendants of
// collapsed nodes.
func (s *Session) Rows() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := []Row{}
	var visit func(nodes []*menutree.Node, parentID *uuid.UUID, depth int)
	visit = func(nodes []*menutree.Node, parentID *uuid.UUID, depth int) {
		for idx, node := range nodes {
			_, collapsed := s.ui.collapsed[node.ID]
			rows = append(rows, Row{
				Node:        menutree.CloneNode(node),
				ParentID:    parentID,
				Depth:       depth,
				Index:       idx,
				HasChildren: node.HasChildren(),
				Collapsed:   collapsed,
				Selected:    node.ID == s.ui.selected,
				Glyph:       s.icons.Resolve(node.Icon).Glyph,
			})
			if collapsed || len(node.Children) == 0 {
				continue
			}
			id := node.ID
			visit(node.Children, &id, depth+1)
		}
	}
	visit(s.tree, nil, 0)
	return rows
}
