package editor

import (
	"strings"

	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"
)

// NodeInput describes a node to add. An empty path is derived from the name.
type NodeInput struct {
	ID   uuid.UUID
	Name string
	Path string
	Icon string
}

// NodeUpdate carries in-place edits. Nil fields are left unchanged.
type NodeUpdate struct {
	Name *string
	Path *string
	Icon *string
}

// AddRoot appends a new node to the root list.
func (s *Session) AddRoot(input NodeInput) (*menutree.Node, error) {
	return s.add(nil, input)
}

// AddChild appends a new node under parentID. Parents at the deepest level
// cannot take children.
func (s *Session) AddChild(parentID uuid.UUID, input NodeInput) (*menutree.Node, error) {
	return s.add(&parentID, input)
}

func (s *Session) add(parentID *uuid.UUID, input NodeInput) (*menutree.Node, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parentPath := ""
	if parentID != nil {
		loc, err := menutree.Locate(s.tree, *parentID)
		if err != nil {
			s.noticeFor(err, *parentID)
			return nil, err
		}
		if loc.Depth >= menutree.MaxDepth {
			s.noticeFor(menutree.ErrDepthExceeded, *parentID)
			return nil, menutree.ErrDepthExceeded
		}
		parentPath = loc.Node.Path
	}

	id := input.ID
	if id == uuid.Nil {
		id = s.newID()
	}
	if menutree.Contains(s.tree, id) {
		return nil, menutree.ErrDuplicateID
	}

	node := &menutree.Node{
		ID:   id,
		Name: name,
		Path: strings.TrimSpace(input.Path),
		Icon: strings.TrimSpace(input.Icon),
	}
	if node.Path == "" {
		node.Path = derivePath(parentPath, name)
	}

	next, err := menutree.InsertUnder(s.tree, parentID, node)
	if err != nil {
		s.noticeFor(err, id)
		return nil, err
	}
	s.commit(menutree.Normalize(next, s.stride))
	if parentID != nil {
		delete(s.ui.collapsed, *parentID)
	}
	s.ui.selected = id
	s.metrics.EditApplied("add")
	s.logger.Info("editor.node.added", "node", id, "parent", parentID)

	loc, err := menutree.Locate(s.tree, id)
	if err != nil {
		return nil, err
	}
	return menutree.CloneNode(loc.Node), nil
}

// Edit changes a node's name, path or icon without touching its position.
func (s *Session) Edit(id uuid.UUID, update NodeUpdate) error {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := menutree.Update(s.tree, id, func(node *menutree.Node) {
		if update.Name != nil {
			node.Name = strings.TrimSpace(*update.Name)
		}
		if update.Path != nil {
			node.Path = strings.TrimSpace(*update.Path)
		}
		if update.Icon != nil {
			node.Icon = strings.TrimSpace(*update.Icon)
		}
	})
	if err != nil {
		s.noticeFor(err, id)
		return err
	}
	s.commit(next)
	if s.ui.dialog.Kind == DialogEdit && s.ui.dialog.NodeID == id {
		s.ui.dialog = Dialog{}
	}
	s.metrics.EditApplied("edit")
	s.logger.Info("editor.node.edited", "node", id)
	return nil
}

// Delete removes a node with its subtree. A node that has children needs
// confirmed set when confirmation is enabled; otherwise the confirmation
// dialog opens and ErrConfirmationRequired is returned.
func (s *Session) Delete(id uuid.UUID, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc, err := menutree.Locate(s.tree, id)
	if err != nil {
		s.noticeFor(err, id)
		return err
	}
	if s.confirmDelete && !confirmed && loc.Node.HasChildren() {
		s.ui.dialog = Dialog{Kind: DialogConfirmDelete, NodeID: id}
		return ErrConfirmationRequired
	}

	next, removed := menutree.RemoveSubtree(s.tree, id)
	if removed == nil {
		return menutree.ErrNotFound
	}
	s.commit(menutree.Normalize(next, s.stride))
	s.ui.prune(s.tree)
	if s.ui.dialog.NodeID == id {
		s.ui.dialog = Dialog{}
	}
	s.metrics.EditApplied("delete")
	s.logger.Info("editor.node.deleted", "node", id, "removed", menutree.Count(menutree.Tree{removed}))
	return nil
}

// ConfirmDelete completes a delete awaiting confirmation.
func (s *Session) ConfirmDelete() error {
	s.mu.Lock()
	dialog := s.ui.dialog
	s.mu.Unlock()
	if dialog.Kind != DialogConfirmDelete {
		return ErrNothingToConfirm
	}
	return s.Delete(dialog.NodeID, true)
}

func derivePath(parentPath, name string) string {
	segment, err := slug.Normalize(name)
	if err != nil || segment == "" {
		segment = strings.ToLower(strings.Join(strings.Fields(name), "-"))
	}
	base := strings.TrimSuffix(parentPath, "/")
	if base == "" {
		return "/" + segment
	}
	return base + "/" + segment
}
