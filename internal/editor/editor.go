package editor

import (
	"context"
	"errors"
	"sync"

	"github.com/goliatone/go-menu-editor/internal/dragsession"
	"github.com/goliatone/go-menu-editor/internal/icons"
	"github.com/goliatone/go-menu-editor/internal/interaction"
	"github.com/goliatone/go-menu-editor/internal/logging"
	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/goliatone/go-menu-editor/internal/metrics"
	"github.com/goliatone/go-menu-editor/pkg/interfaces"
	"github.com/google/uuid"
)

var (
	ErrPersistenceFailure   = errors.New("editor: persistence failure")
	ErrConfirmationRequired = errors.New("editor: deleting a node with children requires confirmation")
	ErrModeUnavailable      = errors.New("editor: operation not available in the current interaction mode")
	ErrNameRequired         = errors.New("editor: node name is required")
	ErrStoreRequired        = errors.New("editor: store is not configured")
	ErrNothingToUndo        = errors.New("editor: nothing to undo")
)

// Store loads and saves whole menus. Save must be all-or-nothing.
type Store interface {
	Load(ctx context.Context, menuCode string) (menutree.Tree, error)
	Save(ctx context.Context, menuCode string, snapshot menutree.Snapshot) error
}

// IconResolver resolves opaque icon references.
type IconResolver interface {
	Resolve(ref string) icons.Icon
}

// DesktopCapabilities describes a wide screen with a fine pointer. Sessions
// start with it until the host reports real capabilities.
var DesktopCapabilities = interaction.Capabilities{ViewportWidth: 120, FinePointer: true}

// Option configures a Session.
type Option func(*Session)

// WithStore wires the persistence collaborator.
func WithStore(store Store) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithLogger injects the session logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics wires an event recorder.
func WithMetrics(recorder metrics.Recorder) Option {
	return func(s *Session) {
		if recorder != nil {
			s.metrics = recorder
		}
	}
}

// WithIcons sets the icon resolver used by views.
func WithIcons(resolver IconResolver) Option {
	return func(s *Session) {
		if resolver != nil {
			s.icons = resolver
		}
	}
}

// WithStride sets the root ordering stride.
func WithStride(stride int) Option {
	return func(s *Session) {
		if stride > 0 {
			s.stride = stride
		}
	}
}

// WithBreakpoint sets the viewport width below which dragging is disabled.
func WithBreakpoint(width int) Option {
	return func(s *Session) {
		s.selector = interaction.NewSelector(width)
	}
}

// WithCapabilities sets the initial device capabilities.
func WithCapabilities(caps interaction.Capabilities) Option {
	return func(s *Session) {
		s.caps = caps
	}
}

// WithConfirmDelete toggles confirmation for deleting non-empty subtrees.
func WithConfirmDelete(enabled bool) Option {
	return func(s *Session) {
		s.confirmDelete = enabled
	}
}

// WithIDGenerator overrides the id source for new nodes.
func WithIDGenerator(generator func() uuid.UUID) Option {
	return func(s *Session) {
		if generator != nil {
			s.newID = generator
		}
	}
}

// WithTree seeds the session with an initial tree.
func WithTree(tree menutree.Tree) Option {
	return func(s *Session) {
		s.tree = menutree.Clone(tree)
	}
}

// Session holds one menu tree under edit. Every structural edit builds a new
// tree from a clone and swaps it in only when the edit fully succeeds.
type Session struct {
	mu sync.Mutex

	menuCode string
	tree     menutree.Tree
	previous menutree.Tree
	canUndo  bool
	revision uint64
	saved    uint64

	store         Store
	icons         IconResolver
	logger        interfaces.Logger
	metrics       metrics.Recorder
	selector      interaction.Selector
	caps          interaction.Capabilities
	strategy      interaction.Strategy
	drag          *dragsession.Session
	stride        int
	confirmDelete bool
	newID         func() uuid.UUID

	ui      uiState
	notices []Notice
}

// New builds a session for the named menu.
func New(menuCode string, opts ...Option) *Session {
	s := &Session{
		menuCode:      menuCode,
		tree:          menutree.Tree{},
		icons:         icons.DefaultRegistry(),
		logger:        logging.NoOp(),
		metrics:       metrics.NoOp(),
		selector:      interaction.NewSelector(interaction.DefaultBreakpoint),
		caps:          DesktopCapabilities,
		stride:        menutree.DefaultStride,
		confirmDelete: true,
		newID:         uuid.New,
		ui:            newUIState(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.tree = menutree.Normalize(s.tree, s.stride)
	s.strategy = interaction.StrategyFor(s.selector.Select(s.caps))
	s.drag = dragsession.New(menutree.WithStride(s.stride))
	s.logger = logging.WithFields(s.logger, map[string]any{"menu": menuCode})
	return s
}

// Open builds a session and loads its tree from the store.
func Open(ctx context.Context, menuCode string, opts ...Option) (*Session, error) {
	s := New(menuCode, opts...)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// MenuCode returns the code of the menu under edit.
func (s *Session) MenuCode() string {
	return s.menuCode
}

// Tree returns a copy of the current tree.
func (s *Session) Tree() menutree.Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	return menutree.Clone(s.tree)
}

// Dirty reports whether the tree changed since the last load or save.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision != s.saved
}

// Icon resolves an icon reference through the configured registry.
func (s *Session) Icon(ref string) icons.Icon {
	return s.icons.Resolve(ref)
}

// Load replaces the tree with the persisted copy.
func (s *Session) Load(ctx context.Context) error {
	if s.store == nil {
		return ErrStoreRequired
	}
	tree, err := s.store.Load(ctx, s.menuCode)
	if err != nil {
		s.logger.Error("editor.load.failed", "error", err)
		return err
	}
	if err := menutree.Validate(tree); err != nil {
		s.logger.Error("editor.load.invalid", "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Cancel()
	s.tree = menutree.Normalize(tree, s.stride)
	s.previous = nil
	s.canUndo = false
	s.revision++
	s.saved = s.revision
	s.ui.prune(s.tree)
	s.logger.Info("editor.load.success", "nodes", menutree.Count(s.tree))
	return nil
}

// Replace swaps in an externally built tree, for example an import. The tree
// is validated and normalized first.
func (s *Session) Replace(tree menutree.Tree) error {
	if err := menutree.Validate(tree); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Cancel()
	s.commit(menutree.Normalize(tree, s.stride))
	s.ui.prune(s.tree)
	s.logger.Info("editor.replace.success", "nodes", menutree.Count(s.tree))
	return nil
}

// Save flattens the tree and hands it to the store. On failure the tree is
// kept as is and the error wraps ErrPersistenceFailure.
func (s *Session) Save(ctx context.Context) error {
	if s.store == nil {
		return ErrStoreRequired
	}

	s.mu.Lock()
	snapshot := menutree.Flatten(s.tree)
	revision := s.revision
	s.mu.Unlock()

	if err := s.store.Save(ctx, s.menuCode, snapshot); err != nil {
		s.logger.Error("editor.save.failed", "error", err)
		s.metrics.SaveFinished("failed")
		s.mu.Lock()
		s.notify(NoticeError, "save_failed", "save failed; changes are kept locally", uuid.Nil)
		s.mu.Unlock()
		return errors.Join(ErrPersistenceFailure, err)
	}

	s.mu.Lock()
	if s.saved < revision {
		s.saved = revision
	}
	s.mu.Unlock()

	s.metrics.SaveFinished("ok")
	s.logger.Info("editor.save.success", "nodes", len(snapshot))
	return nil
}

// Undo restores the tree held before the last committed edit.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.canUndo {
		return ErrNothingToUndo
	}
	current := s.tree
	s.tree = s.previous
	s.previous = current
	s.revision++
	s.ui.prune(s.tree)
	s.logger.Debug("editor.undo")
	return nil
}

// commit swaps in a new tree. Callers hold the lock.
func (s *Session) commit(next menutree.Tree) {
	s.previous = s.tree
	s.canUndo = true
	s.tree = next
	s.revision++
}
