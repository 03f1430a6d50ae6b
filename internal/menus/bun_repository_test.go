package menus_test

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-menu-editor/internal/menus"
	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/goliatone/go-menu-editor/pkg/testsupport"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func newBunDB(t *testing.T, name string) *bun.DB {
	t.Helper()
	sqlDB, err := testsupport.NewNamedSQLiteMemoryDB(name)
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)

	if err := menus.CreateSchema(context.Background(), bunDB); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return bunDB
}

func TestMenuService_WithBunStorageAndCache(t *testing.T) {
	ctx := context.Background()
	bunDB := newBunDB(t, "menus_bun_cache")

	cacheCfg := repocache.DefaultConfig()
	cacheCfg.TTL = time.Minute
	cacheService, err := repocache.NewCacheService(cacheCfg)
	if err != nil {
		t.Fatalf("new cache service: %v", err)
	}
	keySerializer := repocache.NewDefaultKeySerializer()

	menuRepo := menus.NewBunMenuRepositoryWithCache(bunDB, cacheService, keySerializer)
	itemRepo := menus.NewBunMenuItemRepositoryWithCache(bunDB, cacheService, keySerializer)
	svc := menus.NewService(menuRepo, itemRepo)

	tree := sampleTree()
	if err := svc.SaveTree(ctx, "main", menutree.Flatten(tree)); err != nil {
		t.Fatalf("SaveTree: %v", err)
	}

	loaded, err := svc.LoadTree(ctx, "main")
	if err != nil {
		t.Fatalf("LoadTree: %v", err)
	}
	assertSameTree(t, tree, loaded)

	// A cached read must not hide the next save.
	moved, result, err := menutree.ResolveMove(loaded, nodeID("api"), menutree.RootTarget)
	if err != nil {
		t.Fatalf("ResolveMove: %v", err)
	}
	if result.Kind != menutree.MovePromote {
		t.Fatalf("expected promote, got %s", result.Kind)
	}
	if err := svc.SaveTree(ctx, "main", menutree.Flatten(moved)); err != nil {
		t.Fatalf("SaveTree after move: %v", err)
	}
	reloaded, err := svc.LoadTree(ctx, "main")
	if err != nil {
		t.Fatalf("LoadTree after move: %v", err)
	}
	assertSameTree(t, moved, reloaded)

	if err := svc.InvalidateCache(ctx); err != nil {
		t.Fatalf("InvalidateCache: %v", err)
	}
}

func TestMenuService_CachedLoadsStayScopedToMenu(t *testing.T) {
	ctx := context.Background()
	bunDB := newBunDB(t, "menus_bun_cache_scoped")

	cacheService, err := repocache.NewCacheService(repocache.DefaultConfig())
	if err != nil {
		t.Fatalf("new cache service: %v", err)
	}
	keySerializer := repocache.NewDefaultKeySerializer()
	svc := menus.NewService(
		menus.NewBunMenuRepositoryWithCache(bunDB, cacheService, keySerializer),
		menus.NewBunMenuItemRepositoryWithCache(bunDB, cacheService, keySerializer),
	)

	footer := menutree.Normalize(menutree.Tree{
		{ID: nodeID("legal"), Name: "Legal", Path: "/legal"},
	}, menutree.DefaultStride)
	mainTree := sampleTree()

	if err := svc.SaveTree(ctx, "footer", menutree.Flatten(footer)); err != nil {
		t.Fatalf("SaveTree footer: %v", err)
	}
	if err := svc.SaveTree(ctx, "main", menutree.Flatten(mainTree)); err != nil {
		t.Fatalf("SaveTree main: %v", err)
	}

	// Twice each, so the second pass is served from the cache.
	for pass := 0; pass < 2; pass++ {
		loadedFooter, err := svc.LoadTree(ctx, "footer")
		if err != nil {
			t.Fatalf("LoadTree footer: %v", err)
		}
		assertSameTree(t, footer, loadedFooter)

		loadedMain, err := svc.LoadTree(ctx, "main")
		if err != nil {
			t.Fatalf("LoadTree main: %v", err)
		}
		assertSameTree(t, mainTree, loadedMain)
	}

	footer = menutree.Normalize(menutree.Tree{
		{ID: nodeID("legal"), Name: "Legal", Path: "/legal"},
		{ID: nodeID("privacy"), Name: "Privacy", Path: "/privacy"},
	}, menutree.DefaultStride)
	if err := svc.SaveTree(ctx, "footer", menutree.Flatten(footer)); err != nil {
		t.Fatalf("SaveTree footer again: %v", err)
	}
	loadedFooter, err := svc.LoadTree(ctx, "footer")
	if err != nil {
		t.Fatalf("LoadTree footer after save: %v", err)
	}
	assertSameTree(t, footer, loadedFooter)
	loadedMain, err := svc.LoadTree(ctx, "main")
	if err != nil {
		t.Fatalf("LoadTree main after footer save: %v", err)
	}
	assertSameTree(t, mainTree, loadedMain)
}

func TestBunMenuItemRepository_ReplaceAndDelete(t *testing.T) {
	ctx := context.Background()
	bunDB := newBunDB(t, "menus_bun_replace")

	svc := menus.NewService(menus.NewBunMenuRepository(bunDB), menus.NewBunMenuItemRepository(bunDB))
	if err := svc.SaveTree(ctx, "main", menutree.Flatten(sampleTree())); err != nil {
		t.Fatalf("SaveTree: %v", err)
	}
	footerTree := menutree.Tree{{ID: nodeID("about"), Name: "About", Path: "/about", OrderKey: 10}}
	if err := svc.SaveTree(ctx, "footer", menutree.Flatten(footerTree)); err != nil {
		t.Fatalf("SaveTree footer: %v", err)
	}

	count, err := bunDB.NewSelect().Model((*menus.MenuItem)(nil)).Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 6 {
		t.Fatalf("expected 6 stored rows, got %d", count)
	}

	if err := svc.DeleteMenu(ctx, "main"); err != nil {
		t.Fatalf("DeleteMenu: %v", err)
	}
	count, err = bunDB.NewSelect().Model((*menus.MenuItem)(nil)).Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected only footer rows to remain, got %d", count)
	}

	footer, err := svc.LoadTree(ctx, "footer")
	if err != nil {
		t.Fatalf("LoadTree footer: %v", err)
	}
	if len(footer) != 1 || footer[0].ID != nodeID("about") {
		t.Fatal("unexpected footer tree")
	}
}
