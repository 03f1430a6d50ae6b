package importer

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-menu-editor/internal/logging"
	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/goliatone/go-menu-editor/pkg/interfaces"
)

var ErrStoreRequired = errors.New("importer: store is required")

// Store is the persistence boundary shared with editing sessions.
type Store interface {
	Load(ctx context.Context, menuCode string) (menutree.Tree, error)
	Save(ctx context.Context, menuCode string, snapshot menutree.Snapshot) error
}

// Option configures a Service.
type Option func(*Service)

// WithStride sets the root ordering stride applied on import.
func WithStride(stride int) Option {
	return func(s *Service) {
		if stride > 0 {
			s.stride = stride
		}
	}
}

// WithLogger sets the logger used by the service.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Service moves documents in and out of a store.
type Service struct {
	store  Store
	stride int
	logger interfaces.Logger
}

// NewService builds an import/export service over store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		stride: menutree.DefaultStride,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Import replaces the stored tree of doc.Menu, or of menuCode when set.
func (s *Service) Import(ctx context.Context, menuCode string, doc Document) (menutree.Tree, error) {
	if s.store == nil {
		return nil, ErrStoreRequired
	}
	if code := strings.TrimSpace(menuCode); code != "" {
		doc.Menu = code
	}
	tree, err := doc.Tree(s.stride)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, doc.Menu, menutree.Flatten(tree)); err != nil {
		s.logger.Error("importer.import.failed", "menu", doc.Menu, "error", err)
		return nil, err
	}
	s.logger.Info("importer.import.success", "menu", doc.Menu, "nodes", menutree.Count(tree))
	return tree, nil
}

// Export reads the stored tree of a menu into a document.
func (s *Service) Export(ctx context.Context, menuCode string) (Document, error) {
	if s.store == nil {
		return Document{}, ErrStoreRequired
	}
	tree, err := s.store.Load(ctx, menuCode)
	if err != nil {
		return Document{}, err
	}
	s.logger.Debug("importer.export.success", "menu", menuCode, "nodes", menutree.Count(tree))
	return FromTree(menuCode, tree), nil
}
