package commands

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	"github.com/goliatone/go-menu-editor/internal/editor"
	"github.com/goliatone/go-menu-editor/internal/logging"
)

type flakySaveCommand struct {
	Menu string
}

func (flakySaveCommand) Type() string { return "menus.test.flaky_save" }

func (flakySaveCommand) Validate() error { return nil }

func (cmd flakySaveCommand) MenuCode() string { return cmd.Menu }

type stubbornSaveCommand struct {
	Menu string
}

func (stubbornSaveCommand) Type() string { return "menus.test.stubborn_save" }

func (stubbornSaveCommand) Validate() error { return nil }

func (cmd stubbornSaveCommand) MenuCode() string { return cmd.Menu }

func TestDispatchedSaveRetriesAfterStoreFailure(t *testing.T) {
	t.Parallel()

	var attempts int
	var seenMenus []string
	handler := NewHandler(func(ctx context.Context, _ flakySaveCommand) error {
		attempts++
		seenMenus = append(seenMenus, logging.MenuFromContext(ctx))
		if attempts == 1 {
			return fmt.Errorf("%w: connection reset", editor.ErrPersistenceFailure)
		}
		return nil
	}, WithTimeout[flakySaveCommand](time.Second))

	sub := dispatcher.SubscribeCommand(handler, runner.WithMaxRetries(1))
	t.Cleanup(sub.Unsubscribe)

	if err := dispatcher.Dispatch(context.Background(), flakySaveCommand{Menu: "main"}); err != nil {
		t.Fatalf("dispatch: expected save to succeed on retry, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 save attempts, got %d", attempts)
	}
	for _, code := range seenMenus {
		if code != "main" {
			t.Fatalf("expected every attempt to run under menu main, got %v", seenMenus)
		}
	}
}

func TestDispatchedSaveSurfacesErrorOnceRetriesRunOut(t *testing.T) {
	t.Parallel()

	var attempts int
	handler := NewHandler(func(ctx context.Context, _ stubbornSaveCommand) error {
		attempts++
		return fmt.Errorf("%w: disk full", editor.ErrPersistenceFailure)
	}, WithTimeout[stubbornSaveCommand](time.Second))

	sub := dispatcher.SubscribeCommand(handler, runner.WithMaxRetries(2))
	t.Cleanup(sub.Unsubscribe)

	err := dispatcher.Dispatch(context.Background(), stubbornSaveCommand{Menu: "footer"})
	if err == nil {
		t.Fatal("expected the save failure to reach the caller")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 save attempts, got %d", attempts)
	}
}
