package menus

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// MenuRepository stores menu headers. Codes are unique.
type MenuRepository interface {
	Create(ctx context.Context, menu *Menu) (*Menu, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Menu, error)
	GetByCode(ctx context.Context, code string) (*Menu, error)
	List(ctx context.Context) ([]*Menu, error)
	Update(ctx context.Context, menu *Menu) (*Menu, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MenuItemRepository exposes persistence operations for menu items.
type MenuItemRepository interface {
	// ListByMenu returns the rows of a menu ordered by position.
	ListByMenu(ctx context.Context, menuID uuid.UUID) ([]*MenuItem, error)
	// ReplaceMenuItems swaps every row of a menu for items atomically.
	ReplaceMenuItems(ctx context.Context, menuID uuid.UUID, items []*MenuItem) error
	// BulkUpdateHierarchy rewrites placement and labels of existing rows atomically.
	BulkUpdateHierarchy(ctx context.Context, items []*MenuItem) error
	// DeleteByMenu removes every row of a menu and reports how many were removed.
	DeleteByMenu(ctx context.Context, menuID uuid.UUID) (int, error)
}

// NotFoundError reports a missing menu or row. Resource is "menu" or
// "menu_item", and Key is the code or id that was looked up.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("menus: %s %q not found", e.Resource, e.Key)
	}
	return fmt.Sprintf("menus: %s not found", e.Resource)
}
