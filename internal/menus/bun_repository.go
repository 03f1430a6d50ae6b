package menus

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunMenuRepository implements MenuRepository with optional caching.
type BunMenuRepository struct {
	repo         repository.Repository[*Menu]
	cacheService cache.CacheService
	cachePrefix  string
}

const menuNamespace = "menu"

// NewBunMenuRepository creates a menu repository without caching.
func NewBunMenuRepository(db *bun.DB) *BunMenuRepository {
	return NewBunMenuRepositoryWithCache(db, nil, nil)
}

// NewBunMenuRepositoryWithCache creates a menu repository with caching services.
func NewBunMenuRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunMenuRepository {
	base, svc, prefix := withCache(NewMenuRepository(db), cacheService, serializer, menuNamespace)
	return &BunMenuRepository{
		repo:         base,
		cacheService: svc,
		cachePrefix:  prefix,
	}
}

func (r *BunMenuRepository) Create(ctx context.Context, menu *Menu) (*Menu, error) {
	record, err := r.repo.Create(ctx, menu)
	if err != nil {
		return nil, fmt.Errorf("menu repository error: %w", err)
	}
	return record, nil
}

func (r *BunMenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*Menu, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "menu", id.String())
	}
	return record, nil
}

func (r *BunMenuRepository) GetByCode(ctx context.Context, code string) (*Menu, error) {
	record, err := r.repo.GetByIdentifier(ctx, code)
	if err != nil {
		return nil, mapRepositoryError(err, "menu", code)
	}
	return record, nil
}

func (r *BunMenuRepository) List(ctx context.Context) ([]*Menu, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.code ASC")
		}),
	)
	return records, err
}

func (r *BunMenuRepository) Update(ctx context.Context, menu *Menu) (*Menu, error) {
	record, err := r.repo.Update(ctx, menu)
	if err != nil {
		return nil, mapRepositoryError(err, "menu", menu.ID.String())
	}
	return record, nil
}

func (r *BunMenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return mapRepositoryError(r.repo.Delete(ctx, &Menu{ID: id}), "menu", id.String())
}

func (r *BunMenuRepository) InvalidateCache(ctx context.Context) error {
	return invalidate(ctx, r.cacheService, r.cachePrefix)
}

// BunMenuItemRepository implements MenuItemRepository with optional caching.
type BunMenuItemRepository struct {
	db           *bun.DB
	repo         repository.Repository[*MenuItem]
	cacheService cache.CacheService
	cachePrefix  string
}

const menuItemNamespace = "menu_item"

// NewBunMenuItemRepository creates a menu item repository without caching.
func NewBunMenuItemRepository(db *bun.DB) *BunMenuItemRepository {
	return NewBunMenuItemRepositoryWithCache(db, nil, nil)
}

// NewBunMenuItemRepositoryWithCache creates a menu item repository with caching services.
func NewBunMenuItemRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunMenuItemRepository {
	base, svc, prefix := withCache(NewMenuItemRepository(db), cacheService, serializer, menuItemNamespace)
	return &BunMenuItemRepository{db: db, repo: base, cacheService: svc, cachePrefix: prefix}
}

// ListByMenu reads the rows of one menu. The generic cached List cannot key
// on a closure filter, so rows are cached here under a per-menu key that
// InvalidateCache clears with the rest of the namespace.
func (r *BunMenuItemRepository) ListByMenu(ctx context.Context, menuID uuid.UUID) ([]*MenuItem, error) {
	if r.db == nil {
		return nil, errors.New("menu item repository: database not configured")
	}
	if r.cacheService == nil {
		return r.selectByMenu(ctx, menuID)
	}
	key := r.cachePrefix + "list_by_menu" + cache.KeySeparator + menuID.String()
	return cache.GetOrFetch[[]*MenuItem](ctx, r.cacheService, key, func(ctx context.Context) ([]*MenuItem, error) {
		return r.selectByMenu(ctx, menuID)
	})
}

func (r *BunMenuItemRepository) selectByMenu(ctx context.Context, menuID uuid.UUID) ([]*MenuItem, error) {
	var records []*MenuItem
	err := r.db.NewSelect().
		Model(&records).
		Where("?TableAlias.menu_id = ?", menuID).
		OrderExpr("?TableAlias.position ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return records, nil
}

// ReplaceMenuItems deletes and reinserts the rows of a menu in one
// transaction, so readers never observe a partially written tree.
func (r *BunMenuItemRepository) ReplaceMenuItems(ctx context.Context, menuID uuid.UUID, items []*MenuItem) error {
	if r.db == nil {
		return errors.New("menu item repository: database not configured")
	}

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*MenuItem)(nil)).
			Where("?TableAlias.menu_id = ?", menuID).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete menu items: %w", err)
		}
		if len(items) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&items).Exec(ctx); err != nil {
			return fmt.Errorf("insert menu items: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return r.InvalidateCache(ctx)
}

func (r *BunMenuItemRepository) BulkUpdateHierarchy(ctx context.Context, items []*MenuItem) error {
	if len(items) == 0 {
		return nil
	}
	if _, err := r.repo.UpdateMany(ctx, items,
		repository.UpdateColumns("parent_id", "depth", "position", "order_key", "name", "path", "icon", "updated_at"),
	); err != nil {
		return err
	}
	return r.InvalidateCache(ctx)
}

func (r *BunMenuItemRepository) DeleteByMenu(ctx context.Context, menuID uuid.UUID) (int, error) {
	if r.db == nil {
		return 0, errors.New("menu item repository: database not configured")
	}
	res, err := r.db.NewDelete().
		Model((*MenuItem)(nil)).
		Where("?TableAlias.menu_id = ?", menuID).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete menu items: %w", err)
	}
	affected, _ := res.RowsAffected()
	return int(affected), r.InvalidateCache(ctx)
}

func (r *BunMenuItemRepository) InvalidateCache(ctx context.Context) error {
	return invalidate(ctx, r.cacheService, r.cachePrefix)
}

func withCache[T any](base repository.Repository[T], cacheService cache.CacheService, serializer cache.KeySerializer, namespace string) (repository.Repository[T], cache.CacheService, string) {
	if cacheService == nil || serializer == nil {
		return base, nil, ""
	}
	return repositorycache.New(base, cacheService, serializer), cacheService, cachePrefix(namespace)
}

func invalidate(ctx context.Context, svc cache.CacheService, prefix string) error {
	if svc == nil || prefix == "" {
		return nil
	}
	return svc.DeleteByPrefix(ctx, prefix)
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}

	return fmt.Errorf("%s repository error: %w", resource, err)
}

func cachePrefix(namespace string) string {
	if namespace == "" {
		return ""
	}
	return namespace + cache.KeySeparator
}
