package commands

import (
	"context"
	"time"

	"github.com/goliatone/go-menu-editor/internal/logging"
	"github.com/goliatone/go-menu-editor/pkg/interfaces"
)

// DefaultCommandTimeout bounds a single menu command. Edits are in-memory, so
// the budget is dominated by saves against the store.
const DefaultCommandTimeout = 15 * time.Second

// MenuScoped is implemented by commands that act on one menu. The handler
// tags logs and the execution context with the code.
type MenuScoped interface {
	MenuCode() string
}

// EnsureContext returns ctx, or context.Background when ctx is nil.
func EnsureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// WithCommandTimeout derives a context bounded by timeout. A non-positive
// timeout leaves ctx untouched.
func WithCommandTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, func() {}
}

// EnsureLogger falls back to a no-op logger.
func EnsureLogger(logger interfaces.Logger) interfaces.Logger {
	if logger != nil {
		return logger
	}
	return logging.NoOp()
}
