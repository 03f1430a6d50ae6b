package di

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-menu-editor/internal/editor"
	"github.com/goliatone/go-menu-editor/internal/icons"
	"github.com/goliatone/go-menu-editor/internal/identity"
	"github.com/goliatone/go-menu-editor/internal/importer"
	"github.com/goliatone/go-menu-editor/internal/logging"
	"github.com/goliatone/go-menu-editor/internal/logging/console"
	"github.com/goliatone/go-menu-editor/internal/logging/gologger"
	"github.com/goliatone/go-menu-editor/internal/menus"
	"github.com/goliatone/go-menu-editor/internal/metrics"
	"github.com/goliatone/go-menu-editor/internal/runtimeconfig"
	"github.com/goliatone/go-menu-editor/pkg/interfaces"
	"github.com/goliatone/go-menu-editor/pkg/storage"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/bun"
)

var ErrMenuCodeRequired = errors.New("di: menu code is required")

const fallbackGlyph = "•"

// Container wires the editor's collaborators from a runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logger         interfaces.Logger

	bunDB         *bun.DB
	ownsDB        bool
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	menuRepo     menus.MenuRepository
	menuItemRepo menus.MenuItemRepository
	menuSvc      menus.Service

	icons      *icons.Registry
	registerer prometheus.Registerer
	metrics    metrics.Recorder
	importer   *importer.Service

	sessionOpts []editor.Option
	mu          sync.Mutex
	sessions    map[string]*editor.Session
}

// Option mutates the container before services are built.
type Option func(*Container)

// WithCache overrides the repository cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithBunDB supplies an open database. The container does not close it.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithLoggerProvider overrides the provider selected from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithMenuService replaces the menu service, bypassing repository wiring.
func WithMenuService(svc menus.Service) Option {
	return func(c *Container) {
		if svc != nil {
			c.menuSvc = svc
		}
	}
}

// WithMetricsRegisterer sets the Prometheus registerer used when metrics are
// enabled.
func WithMetricsRegisterer(reg prometheus.Registerer) Option {
	return func(c *Container) {
		c.registerer = reg
	}
}

// WithSessionOptions appends options applied to every editing session.
func WithSessionOptions(opts ...editor.Option) Option {
	return func(c *Container) {
		c.sessionOpts = append(c.sessionOpts, opts...)
	}
}

// NewContainer validates cfg and builds every service it describes.
func NewContainer(ctx context.Context, cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:       cfg,
		cacheTTL:     cacheTTL,
		menuRepo:     menus.NewMemoryMenuRepository(),
		menuItemRepo: menus.NewMemoryMenuItemRepository(),
		sessions:     map[string]*editor.Session{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.logger = logging.ModuleLogger(c.loggerProvider, "menus.container")

	if err := c.configureStorage(ctx); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureRepositories()

	if c.menuSvc == nil {
		c.menuSvc = menus.NewService(
			c.menuRepo,
			c.menuItemRepo,
			menus.WithMenuIDDeriver(identity.MenuUUID),
			menus.WithLogger(logging.StoreLogger(c.loggerProvider)),
		)
	}

	c.icons = icons.DefaultRegistry(
		icons.WithFallback(cfg.Icons.Fallback, fallbackGlyph),
		icons.WithAliases(cfg.Icons.Aliases),
	)
	c.configureMetrics()

	c.importer = importer.NewService(
		c.menuSvc,
		importer.WithStride(cfg.Editor.OrderStride),
		importer.WithLogger(logging.ImporterLogger(c.loggerProvider)),
	)

	c.logger.Info("container.configured",
		"driver", runtimeconfig.NormalizeDriver(cfg.Storage.Driver),
		"cache", c.cacheService != nil,
		"metrics", cfg.Features.Metrics,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	logCfg := c.Config.Logging
	switch strings.ToLower(strings.TrimSpace(logCfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
			Focus:     logCfg.Focus,
		})
		if err != nil {
			return fmt.Errorf("di: configure go-logger: %w", err)
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{}
		if strings.TrimSpace(logCfg.Level) != "" {
			level, err := console.ParseLevel(logCfg.Level)
			if err != nil {
				return fmt.Errorf("di: configure console logger: %w", err)
			}
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}

func (c *Container) configureStorage(ctx context.Context) error {
	if c.bunDB != nil {
		return nil
	}
	driver := runtimeconfig.NormalizeDriver(c.Config.Storage.Driver)
	if driver == runtimeconfig.DriverMemory {
		return nil
	}

	db, err := storage.Open(ctx, storage.Config{Driver: driver, DSN: c.Config.Storage.DSN})
	if err != nil {
		return err
	}
	if err := menus.CreateSchema(ctx, db); err != nil {
		_ = db.Close()
		return fmt.Errorf("di: create menu schema: %w", err)
	}
	c.bunDB = db
	c.ownsDB = true
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err != nil {
			c.logger.Warn("container.cache.disabled", "error", err)
		} else {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.bunDB == nil {
		return
	}
	c.menuRepo = menus.NewBunMenuRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
	c.menuItemRepo = menus.NewBunMenuItemRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
}

func (c *Container) configureMetrics() {
	if !c.Config.Features.Metrics {
		c.metrics = metrics.NoOp()
		return
	}
	if c.registerer == nil {
		c.registerer = prometheus.NewRegistry()
	}
	c.metrics = metrics.NewPrometheusRecorder(c.registerer)
}

// LoggerProvider returns the configured provider, or nil when logging is off.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// MenuService returns the menu persistence service.
func (c *Container) MenuService() menus.Service {
	return c.menuSvc
}

// Importer returns the JSON and seed import service.
func (c *Container) Importer() *importer.Service {
	return c.importer
}

// Icons returns the icon registry shared by all sessions.
func (c *Container) Icons() *icons.Registry {
	return c.icons
}

// Metrics returns the move and save recorder.
func (c *Container) Metrics() metrics.Recorder {
	return c.metrics
}

// Registerer returns the Prometheus registerer, or nil when metrics are off.
func (c *Container) Registerer() prometheus.Registerer {
	return c.registerer
}

// SessionOptions returns the options used to build editing sessions.
func (c *Container) SessionOptions() []editor.Option {
	opts := []editor.Option{
		editor.WithStore(c.menuSvc),
		editor.WithLogger(logging.EditorLogger(c.loggerProvider)),
		editor.WithMetrics(c.metrics),
		editor.WithIcons(c.icons),
		editor.WithStride(c.Config.Editor.OrderStride),
		editor.WithBreakpoint(c.Config.Editor.DragBreakpoint),
		editor.WithConfirmDelete(c.Config.Editor.ConfirmDelete),
	}
	return append(opts, c.sessionOpts...)
}

// Session returns the open session for a menu, loading it on first use.
func (c *Container) Session(ctx context.Context, menuCode string) (*editor.Session, error) {
	if strings.TrimSpace(menuCode) == "" {
		return nil, ErrMenuCodeRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if session, ok := c.sessions[menuCode]; ok {
		return session, nil
	}
	session, err := editor.Open(ctx, menuCode, c.SessionOptions()...)
	if err != nil {
		return nil, err
	}
	c.sessions[menuCode] = session
	c.logger.Debug("container.session.opened", "menu", menuCode)
	return session, nil
}

// Close releases the database when the container opened it.
func (c *Container) Close() error {
	c.mu.Lock()
	c.sessions = map[string]*editor.Session{}
	c.mu.Unlock()
	if c.bunDB == nil || !c.ownsDB {
		return nil
	}
	return c.bunDB.Close()
}
