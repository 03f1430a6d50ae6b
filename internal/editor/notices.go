package editor

import (
	"errors"

	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/google/uuid"
)

// NoticeLevel grades a user-visible notice.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a non-fatal message surfaced to the operator.
type Notice struct {
	Level   NoticeLevel
	Code    string
	Message string
	NodeID  uuid.UUID
}

const maxNotices = 32

// Notices returns pending notices, oldest first.
func (s *Session) Notices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notice, len(s.notices))
	copy(out, s.notices)
	return out
}

// DrainNotices returns pending notices and clears them.
func (s *Session) DrainNotices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notices
	s.notices = nil
	return out
}

// notify queues a notice. Callers hold the lock.
func (s *Session) notify(level NoticeLevel, code, message string, id uuid.UUID) {
	s.notices = append(s.notices, Notice{Level: level, Code: code, Message: message, NodeID: id})
	if len(s.notices) > maxNotices {
		s.notices = s.notices[len(s.notices)-maxNotices:]
	}
}

// noticeFor translates structural errors into notices. Callers hold the lock.
func (s *Session) noticeFor(err error, id uuid.UUID) {
	switch {
	case errors.Is(err, menutree.ErrOutOfBounds):
		s.notify(NoticeInfo, "out_of_bounds", "cannot move further", id)
	case errors.Is(err, menutree.ErrDepthExceeded):
		s.notify(NoticeWarning, "depth_exceeded", "maximum depth reached", id)
	case errors.Is(err, menutree.ErrSelfOrDescendantTarget):
		s.notify(NoticeWarning, "self_or_descendant", "cannot move a node into itself", id)
	case errors.Is(err, menutree.ErrNotFound):
		s.notify(NoticeWarning, "not_found", "node no longer exists", id)
	case errors.Is(err, menutree.ErrDuplicateID):
		s.notify(NoticeError, "duplicate_id", "node id already in use", id)
	}
}
