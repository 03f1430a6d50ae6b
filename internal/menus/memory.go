package menus

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type memoryMenuRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*Menu
	byCode map[string]uuid.UUID
}

// NewMemoryMenuRepository constructs an in-memory repository for menus.
func NewMemoryMenuRepository() MenuRepository {
	return &memoryMenuRepository{
		byID:   make(map[uuid.UUID]*Menu),
		byCode: make(map[string]uuid.UUID),
	}
}

func (m *memoryMenuRepository) Create(_ context.Context, menu *Menu) (*Menu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byCode[menu.Code]; exists {
		return nil, ErrMenuCodeExists
	}
	cloned := cloneMenu(menu)
	m.byID[cloned.ID] = cloned
	m.byCode[cloned.Code] = cloned.ID
	return cloneMenu(cloned), nil
}

func (m *memoryMenuRepository) GetByID(_ context.Context, id uuid.UUID) (*Menu, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "menu", Key: id.String()}
	}
	return cloneMenu(record), nil
}

func (m *memoryMenuRepository) GetByCode(_ context.Context, code string) (*Menu, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byCode[code]
	if !ok {
		return nil, &NotFoundError{Resource: "menu", Key: code}
	}
	return cloneMenu(m.byID[id]), nil
}

func (m *memoryMenuRepository) List(_ context.Context) ([]*Menu, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Menu, 0, len(m.byID))
	for _, record := range m.byID {
		records = append(records, cloneMenu(record))
	}
	slices.SortFunc(records, func(a, b *Menu) int {
		return strings.Compare(a.Code, b.Code)
	})
	return records, nil
}

func (m *memoryMenuRepository) Update(_ context.Context, menu *Menu) (*Menu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.byID[menu.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "menu", Key: menu.ID.String()}
	}
	if existing.Code != menu.Code {
		delete(m.byCode, existing.Code)
	}
	cloned := cloneMenu(menu)
	m.byID[cloned.ID] = cloned
	m.byCode[cloned.Code] = cloned.ID
	return cloneMenu(cloned), nil
}

func (m *memoryMenuRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.byID[id]
	if !ok {
		return &NotFoundError{Resource: "menu", Key: id.String()}
	}
	delete(m.byID, id)
	delete(m.byCode, existing.Code)
	return nil
}

type memoryMenuItemRepository struct {
	mu     sync.RWMutex
	byMenu map[uuid.UUID][]*MenuItem
}

// NewMemoryMenuItemRepository constructs an in-memory repository for menu items.
func NewMemoryMenuItemRepository() MenuItemRepository {
	return &memoryMenuItemRepository{
		byMenu: make(map[uuid.UUID][]*MenuItem),
	}
}

func (m *memoryMenuItemRepository) ListByMenu(_ context.Context, menuID uuid.UUID) ([]*MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := cloneMenuItems(m.byMenu[menuID])
	slices.SortStableFunc(items, func(a, b *MenuItem) int {
		return a.Position - b.Position
	})
	return items, nil
}

func (m *memoryMenuItemRepository) ReplaceMenuItems(_ context.Context, menuID uuid.UUID, items []*MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(items) == 0 {
		delete(m.byMenu, menuID)
		return nil
	}
	m.byMenu[menuID] = cloneMenuItems(items)
	return nil
}

func (m *memoryMenuItemRepository) BulkUpdateHierarchy(_ context.Context, items []*MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Validate first so a missing row leaves every item untouched.
	targets := make([]*MenuItem, len(items))
	for i, item := range items {
		existing := m.find(item.MenuID, item.ID)
		if existing == nil {
			return &NotFoundError{Resource: "menu_item", Key: item.ID.String()}
		}
		targets[i] = existing
	}
	for i, item := range items {
		target := targets[i]
		target.ParentID = cloneUUIDPtr(item.ParentID)
		target.Depth = item.Depth
		target.Position = item.Position
		target.OrderKey = item.OrderKey
		target.Name = item.Name
		target.Path = item.Path
		target.Icon = item.Icon
		target.UpdatedAt = item.UpdatedAt
	}
	return nil
}

func (m *memoryMenuItemRepository) DeleteByMenu(_ context.Context, menuID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := len(m.byMenu[menuID])
	delete(m.byMenu, menuID)
	return removed, nil
}

func (m *memoryMenuItemRepository) find(menuID, id uuid.UUID) *MenuItem {
	for _, item := range m.byMenu[menuID] {
		if item.ID == id {
			return item
		}
	}
	return nil
}

func cloneMenu(src *Menu) *Menu {
	if src == nil {
		return nil
	}
	cloned := *src
	if src.Description != nil {
		desc := *src.Description
		cloned.Description = &desc
	}
	return &cloned
}

func cloneMenuItem(src *MenuItem) *MenuItem {
	if src == nil {
		return nil
	}
	cloned := *src
	cloned.ParentID = cloneUUIDPtr(src.ParentID)
	return &cloned
}

func cloneMenuItems(src []*MenuItem) []*MenuItem {
	out := make([]*MenuItem, len(src))
	for i, item := range src {
		out[i] = cloneMenuItem(item)
	}
	return out
}

func cloneUUIDPtr(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	copied := *id
	return &copied
}
