package commands

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/goliatone/go-menu-editor/internal/editor"
	"github.com/goliatone/go-menu-editor/internal/menutree"
	goerrors "github.com/goliatone/go-errors"
)

type testMessage struct{}

func (testMessage) Type() string { return "menus.test.message" }

func (testMessage) Validate() error { return nil }

type invalidMessage struct{}

func (invalidMessage) Type() string { return "menus.test.invalid" }

func (invalidMessage) Validate() error {
	return errors.New("invalid")
}

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestHandlerValidationShortCircuitsExecution(t *testing.T) {
	called := false
	h := NewHandler(func(ctx context.Context, msg invalidMessage) error {
		called = true
		return nil
	})

	err := h.Execute(context.Background(), invalidMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when validation fails")
	}
}

func TestHandlerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	err := h.Execute(ctx, testMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when context is cancelled")
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	execErr := errors.New("boom")
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		return execErr
	})

	err := h.Execute(context.Background(), testMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if !errors.Is(err, execErr) {
		t.Fatalf("expected original error to be preserved, got %v", err)
	}
	if code := TextCode(err); code != commandExecuteFailed {
		t.Fatalf("expected %s, got %q", commandExecuteFailed, code)
	}
}

func TestHandlerHonoursTimeoutOption(t *testing.T) {
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
			return nil
		}
	}, WithTimeout[testMessage](10*time.Millisecond))

	err := h.Execute(context.Background(), testMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for timeout, got %v", err)
	}
}

func TestHandlerMapsMenuErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		category goerrors.Category
		code     string
	}{
		{name: "not found", err: menutree.ErrNotFound, category: goerrors.CategoryCommand, code: MenuNodeNotFoundCode},
		{name: "depth", err: menutree.ErrDepthExceeded, category: goerrors.CategoryValidation, code: MenuDepthExceededCode},
		{name: "cycle", err: menutree.ErrSelfOrDescendantTarget, category: goerrors.CategoryValidation, code: MenuCycleCode},
		{name: "bounds", err: menutree.ErrOutOfBounds, category: goerrors.CategoryValidation, code: MenuOutOfBoundsCode},
		{name: "persistence", err: fmt.Errorf("%w: disk full", editor.ErrPersistenceFailure), category: goerrors.CategoryCommand, code: MenuPersistenceFailedCode},
		{name: "confirmation", err: editor.ErrConfirmationRequired, category: goerrors.CategoryValidation, code: MenuConfirmationCode},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := NewHandler(func(context.Context, testMessage) error { return tc.err })
			err := h.Execute(context.Background(), testMessage{})
			if !goerrors.IsCategory(err, tc.category) {
				t.Fatalf("expected category %v, got %v", tc.category, err)
			}
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected errors.Is to match %v", tc.err)
			}
			if code := TextCode(err); code != tc.code {
				t.Fatalf("expected text code %s, got %q", tc.code, code)
			}
		})
	}
}

func TestHandlerTelemetryReceivesOutcome(t *testing.T) {
	var infos []TelemetryInfo
	telemetry := func(_ context.Context, _ testMessage, info TelemetryInfo) {
		infos = append(infos, info)
	}
	h := NewHandler(func(context.Context, testMessage) error {
		return menutree.ErrOutOfBounds
	}, WithTelemetry(telemetry), WithOperation[testMessage]("menus.reorder"))

	if err := h.Execute(context.Background(), testMessage{}); err == nil {
		t.Fatal("expected error")
	}
	if len(infos) != 1 {
		t.Fatalf("expected one telemetry call, got %d", len(infos))
	}
	info := infos[0]
	if info.Status != TelemetryStatusFailed || info.Operation != "menus.reorder" || info.Command != "menus.test.message" {
		t.Fatalf("unexpected telemetry info %+v", info)
	}
	if !errors.Is(info.Error, menutree.ErrOutOfBounds) {
		t.Fatalf("expected telemetry error to wrap ErrOutOfBounds, got %v", info.Error)
	}
}

type scopedMessage struct{ Menu string }

func (scopedMessage) Type() string { return "menus.test.scoped" }

func (scopedMessage) Validate() error { return nil }

func (m scopedMessage) MenuCode() string { return m.Menu }

func TestHandlerTagsMenuScopedCommands(t *testing.T) {
	var fields map[string]any
	h := NewHandler(func(ctx context.Context, msg scopedMessage) error {
		return nil
	}, WithTelemetry(func(_ context.Context, _ scopedMessage, info TelemetryInfo) {
		fields = info.Fields
	}))

	if err := h.Execute(context.Background(), scopedMessage{Menu: "main"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if fields["menu"] != "main" || fields["command"] != "menus.test.scoped" {
		t.Fatalf("expected menu and command fields, got %v", fields)
	}
}
