package menus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-menu-editor/internal/logging"
	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/goliatone/go-menu-editor/pkg/interfaces"
	"github.com/google/uuid"
)

// Service describes menu management and tree persistence.
type Service interface {
	CreateMenu(ctx context.Context, input CreateMenuInput) (*Menu, error)
	GetOrCreateMenu(ctx context.Context, input CreateMenuInput) (*Menu, error)
	GetMenuByCode(ctx context.Context, code string) (*Menu, error)
	ListMenus(ctx context.Context) ([]*Menu, error)
	DeleteMenu(ctx context.Context, code string) error

	LoadTree(ctx context.Context, code string) (menutree.Tree, error)
	SaveTree(ctx context.Context, code string, snapshot menutree.Snapshot) error
	Load(ctx context.Context, code string) (menutree.Tree, error)
	Save(ctx context.Context, code string, snapshot menutree.Snapshot) error

	InvalidateCache(ctx context.Context) error
}

// CreateMenuInput captures the information required to register a menu.
type CreateMenuInput struct {
	Code        string
	Description *string
}

var (
	ErrMenuCodeRequired = errors.New("menus: code is required")
	ErrMenuCodeInvalid  = errors.New("menus: code must contain only letters, numbers, hyphen, or underscore")
	ErrMenuCodeExists   = errors.New("menus: code already exists")
	ErrMenuNotFound     = errors.New("menus: menu not found")
	ErrSnapshotInvalid  = errors.New("menus: snapshot does not describe a valid tree")
)

// MenuIDDeriver maps a menu code onto its id.
type MenuIDDeriver func(code string) uuid.UUID

// ServiceOption configures the menu service.
type ServiceOption func(*service)

// WithClock overrides the clock used for timestamps.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithMenuIDDeriver derives menu ids from codes instead of generating them.
func WithMenuIDDeriver(deriver MenuIDDeriver) ServiceOption {
	return func(s *service) {
		s.menuIDDeriver = deriver
	}
}

// WithLogger sets the logger used by the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	menus         MenuRepository
	items         MenuItemRepository
	now           func() time.Time
	newID         func() uuid.UUID
	menuIDDeriver MenuIDDeriver
	logger        interfaces.Logger
}

type cacheInvalidator interface {
	InvalidateCache(ctx context.Context) error
}

// NewService constructs a menu service instance.
func NewService(menuRepo MenuRepository, itemRepo MenuItemRepository, opts ...ServiceOption) Service {
	s := &service{
		menus:  menuRepo,
		items:  itemRepo,
		now:    time.Now,
		newID:  uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateMenu registers a new menu ensuring code uniqueness.
func (s *service) CreateMenu(ctx context.Context, input CreateMenuInput) (*Menu, error) {
	code, err := normalizeCode(input.Code)
	if err != nil {
		return nil, err
	}

	if _, err := s.menus.GetByCode(ctx, code); err == nil {
		return nil, ErrMenuCodeExists
	} else if !isNotFound(err) {
		return nil, err
	}

	created, err := s.menus.Create(ctx, s.newMenu(code, input.Description))
	if err != nil {
		return nil, err
	}
	s.logger.Info("menus.menu.created", "menu", created.Code, "menu_id", created.ID)
	return created, nil
}

// GetOrCreateMenu returns an existing menu for the provided code or creates it when missing.
func (s *service) GetOrCreateMenu(ctx context.Context, input CreateMenuInput) (*Menu, error) {
	code, err := normalizeCode(input.Code)
	if err != nil {
		return nil, err
	}

	existing, err := s.menus.GetByCode(ctx, code)
	if err == nil {
		return existing, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	created, err := s.menus.Create(ctx, s.newMenu(code, input.Description))
	if err == nil {
		s.logger.Info("menus.menu.created", "menu", created.Code, "menu_id", created.ID)
		return created, nil
	}

	// A concurrent caller may have created the menu first; return the winner.
	if existing, getErr := s.menus.GetByCode(ctx, code); getErr == nil {
		return existing, nil
	}
	return nil, err
}

// GetMenuByCode retrieves a menu using its code.
func (s *service) GetMenuByCode(ctx context.Context, code string) (*Menu, error) {
	menu, err := s.menus.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return menu, nil
}

// ListMenus returns every menu ordered by code.
func (s *service) ListMenus(ctx context.Context) ([]*Menu, error) {
	return s.menus.List(ctx)
}

// DeleteMenu removes a menu and all of its items.
func (s *service) DeleteMenu(ctx context.Context, code string) error {
	menu, err := s.GetMenuByCode(ctx, code)
	if err != nil {
		return err
	}
	removed, err := s.items.DeleteByMenu(ctx, menu.ID)
	if err != nil {
		return err
	}
	if err := s.menus.Delete(ctx, menu.ID); err != nil {
		return err
	}
	if err := s.InvalidateCache(ctx); err != nil {
		return err
	}
	s.logger.Info("menus.menu.deleted", "menu", menu.Code, "items", removed)
	return nil
}

// LoadTree rebuilds the stored tree of a menu.
func (s *service) LoadTree(ctx context.Context, code string) (menutree.Tree, error) {
	menu, err := s.GetMenuByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListByMenu(ctx, menu.ID)
	if err != nil {
		return nil, err
	}
	tree, err := menutree.Build(snapshotFromItems(items))
	if err != nil {
		return nil, fmt.Errorf("menus: stored rows for %q: %w", menu.Code, err)
	}
	s.logger.Debug("menus.tree.loaded", "menu", menu.Code, "nodes", len(items))
	return tree, nil
}

// SaveTree replaces the stored tree of a menu, creating the menu on first
// save. The snapshot is checked before anything is written.
func (s *service) SaveTree(ctx context.Context, code string, snapshot menutree.Snapshot) error {
	if _, err := menutree.Build(snapshot); err != nil {
		return errors.Join(ErrSnapshotInvalid, err)
	}

	menu, err := s.GetOrCreateMenu(ctx, CreateMenuInput{Code: code})
	if err != nil {
		return err
	}

	existing, err := s.items.ListByMenu(ctx, menu.ID)
	if err != nil {
		return err
	}

	now := s.now()
	next := itemsFromSnapshot(menu.ID, snapshot, now)
	if len(next) > 0 && sameRows(existing, next) {
		err = s.items.BulkUpdateHierarchy(ctx, next)
	} else {
		err = s.items.ReplaceMenuItems(ctx, menu.ID, next)
	}
	if err != nil {
		s.logger.Error("menus.tree.save_failed", "menu", menu.Code, "error", err)
		return err
	}

	menu.UpdatedAt = now
	if _, err := s.menus.Update(ctx, menu); err != nil {
		return err
	}
	s.logger.Info("menus.tree.saved", "menu", menu.Code, "nodes", len(next))
	return nil
}

// Load returns the stored tree, or an empty tree for a menu never saved.
func (s *service) Load(ctx context.Context, code string) (menutree.Tree, error) {
	tree, err := s.LoadTree(ctx, code)
	if errors.Is(err, ErrMenuNotFound) {
		return menutree.Tree{}, nil
	}
	return tree, err
}

// Save persists a snapshot taken by an editing session.
func (s *service) Save(ctx context.Context, code string, snapshot menutree.Snapshot) error {
	return s.SaveTree(ctx, code, snapshot)
}

func (s *service) InvalidateCache(ctx context.Context) error {
	var errs []error

	if invalidator, ok := s.menus.(cacheInvalidator); ok {
		if err := invalidator.InvalidateCache(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if invalidator, ok := s.items.(cacheInvalidator); ok {
		if err := invalidator.InvalidateCache(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *service) newMenu(code string, description *string) *Menu {
	now := s.now()
	id := uuid.Nil
	if s.menuIDDeriver != nil {
		id = s.menuIDDeriver(code)
	}
	if id == uuid.Nil {
		id = s.newID()
	}
	return &Menu{
		ID:          id,
		Code:        code,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func normalizeCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", ErrMenuCodeRequired
	}
	if !isValidCode(code) {
		return "", ErrMenuCodeInvalid
	}
	return code, nil
}

func isNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

func isValidCode(code string) bool {
	for _, r := range code {
		if (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '-' ||
			r == '_' {
			continue
		}
		return false
	}
	return true
}
