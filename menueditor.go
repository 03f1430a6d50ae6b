package menueditor

import (
	"context"
	"sync"

	menuscmd "github.com/goliatone/go-menu-editor/internal/commands/menus"
	"github.com/goliatone/go-menu-editor/internal/di"
	"github.com/goliatone/go-menu-editor/internal/editor"
	"github.com/goliatone/go-menu-editor/internal/icons"
	"github.com/goliatone/go-menu-editor/internal/importer"
	"github.com/goliatone/go-menu-editor/internal/logging"
	"github.com/goliatone/go-menu-editor/internal/menus"
	"github.com/goliatone/go-menu-editor/internal/menutree"
)

// MenuService exports the menu persistence contract.
type MenuService = menus.Service

// Session exports the editing session.
type Session = editor.Session

// Tree exports the ordered root list of a menu.
type Tree = menutree.Tree

// Node exports a single menu entry.
type Node = menutree.Node

// ImportDocument exports the JSON and seed document format.
type ImportDocument = importer.Document

var (
	ErrNotFound               = menutree.ErrNotFound
	ErrDepthExceeded          = menutree.ErrDepthExceeded
	ErrSelfOrDescendantTarget = menutree.ErrSelfOrDescendantTarget
	ErrOutOfBounds            = menutree.ErrOutOfBounds
	ErrPersistenceFailure     = editor.ErrPersistenceFailure
	ErrConfirmationRequired   = editor.ErrConfirmationRequired
	ErrMenuCodeRequired       = di.ErrMenuCodeRequired
)

// DefaultSaveRetries is the number of extra attempts a dispatched save gets.
const DefaultSaveRetries = 2

// Module is the top level menu editor runtime.
type Module struct {
	container *di.Container

	mu           sync.Mutex
	unsubscribes []func()
}

// New constructs a module from cfg and optional container overrides. Database
// drivers are opened and migrated here.
func New(ctx context.Context, cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Menus returns the menu persistence service.
func (m *Module) Menus() MenuService {
	return m.container.MenuService()
}

// Importer returns the document import and export service.
func (m *Module) Importer() *importer.Service {
	return m.container.Importer()
}

// Icons returns the shared icon registry.
func (m *Module) Icons() *icons.Registry {
	return m.container.Icons()
}

// Session returns the editing session of a menu, loading the stored tree the
// first time the menu is opened. Codes are canonicalized, so "Main Nav" and
// "main-nav" share a session.
func (m *Module) Session(ctx context.Context, menuCode string) (*Session, error) {
	code := CanonicalMenuCode(menuCode)
	if code == "" {
		return nil, ErrMenuCodeRequired
	}
	return m.container.Session(ctx, code)
}

// RegisterCommands subscribes the menu command handlers on the global
// dispatcher. Calling Close removes them again.
func (m *Module) RegisterCommands() {
	cfg := m.container.Config
	unsubscribe := menuscmd.Register(menuscmd.Registration{
		Sessions:    m,
		Invalidator: m.container.MenuService(),
		Logger:      logging.CommandsLogger(m.container.LoggerProvider()),
		Gates: menuscmd.FeatureGates{
			CacheEnabled: func() bool { return cfg.Cache.Enabled },
		},
		SaveRetries: DefaultSaveRetries,
	})

	m.mu.Lock()
	m.unsubscribes = append(m.unsubscribes, unsubscribe)
	m.mu.Unlock()
}

// Close unsubscribes command handlers and releases storage.
func (m *Module) Close() error {
	m.mu.Lock()
	unsubscribes := m.unsubscribes
	m.unsubscribes = nil
	m.mu.Unlock()

	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}
	return m.container.Close()
}

var _ menuscmd.Sessions = (*Module)(nil)
