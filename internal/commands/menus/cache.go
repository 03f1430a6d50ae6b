package menuscmd

import (
	"context"
	"errors"

	"github.com/goliatone/go-menu-editor/internal/commands"
	"github.com/goliatone/go-menu-editor/internal/logging"
	"github.com/goliatone/go-menu-editor/pkg/interfaces"
)

var ErrCacheDisabled = errors.New("menus command: cache disabled")

// FeatureGates exposes the runtime toggles consulted by menu handlers.
type FeatureGates struct {
	CacheEnabled func() bool
}

func (g FeatureGates) cacheEnabled() bool {
	if g.CacheEnabled == nil {
		return true
	}
	return g.CacheEnabled()
}

// InvalidateMenuCacheHandler orchestrates menu cache invalidation.
type InvalidateMenuCacheHandler struct {
	inner *commands.Handler[InvalidateMenuCacheCommand]
}

// NewInvalidateMenuCacheHandler constructs a handler wired to the menu store.
func NewInvalidateMenuCacheHandler(invalidator interfaces.CacheInvalidator, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[InvalidateMenuCacheCommand]) *InvalidateMenuCacheHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, _ InvalidateMenuCacheCommand) error {
		if invalidator == nil || !gates.cacheEnabled() {
			return ErrCacheDisabled
		}
		if err := invalidator.InvalidateCache(ctx); err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"operation": "invalidate",
		}).Info("menus.command.cache.invalidated")
		return nil
	}

	return &InvalidateMenuCacheHandler{
		inner: commands.NewHandler(exec, handlerOptions(baseLogger, "menus.cache.invalidate", opts)...),
	}
}

// Execute satisfies command.Commander[InvalidateMenuCacheCommand].
func (h *InvalidateMenuCacheHandler) Execute(ctx context.Context, msg InvalidateMenuCacheCommand) error {
	return h.inner.Execute(ctx, msg)
}
