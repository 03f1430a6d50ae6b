package commands

import (
	"context"
	"errors"

	"github.com/goliatone/go-menu-editor/internal/editor"
	"github.com/goliatone/go-menu-editor/internal/menutree"
	goerrors "github.com/goliatone/go-errors"
)

const (
	commandValidationCode   = "COMMAND_VALIDATION_FAILED"
	commandContextCanceled  = "COMMAND_CONTEXT_CANCELED"
	commandContextTimeout   = "COMMAND_CONTEXT_TIMEOUT"
	commandContextErrorCode = "COMMAND_CONTEXT_ERROR"
	commandExecuteFailed    = "COMMAND_EXECUTION_FAILED"

	MenuNodeNotFoundCode      = "MENU_NODE_NOT_FOUND"
	MenuDepthExceededCode     = "MENU_DEPTH_EXCEEDED"
	MenuCycleCode             = "MENU_CYCLE"
	MenuOutOfBoundsCode       = "MENU_OUT_OF_BOUNDS"
	MenuPersistenceFailedCode = "MENU_PERSISTENCE_FAILED"
	MenuConfirmationCode      = "MENU_CONFIRMATION_REQUIRED"
	MenuModeUnavailableCode   = "MENU_MODE_UNAVAILABLE"
)

// menuErrors maps tree and editor failures onto categories and text codes.
// Rule violations are validation errors; the rest are command failures.
var menuErrors = []struct {
	target   error
	category goerrors.Category
	code     string
	message  string
}{
	{menutree.ErrNotFound, goerrors.CategoryCommand, MenuNodeNotFoundCode, "menu node not found"},
	{menutree.ErrDepthExceeded, goerrors.CategoryValidation, MenuDepthExceededCode, "menu depth exceeded"},
	{menutree.ErrSelfOrDescendantTarget, goerrors.CategoryValidation, MenuCycleCode, "menu node cannot move into its own subtree"},
	{menutree.ErrOutOfBounds, goerrors.CategoryValidation, MenuOutOfBoundsCode, "menu node cannot move further"},
	{editor.ErrPersistenceFailure, goerrors.CategoryCommand, MenuPersistenceFailedCode, "menu could not be saved"},
	{editor.ErrConfirmationRequired, goerrors.CategoryValidation, MenuConfirmationCode, "menu delete requires confirmation"},
	{editor.ErrModeUnavailable, goerrors.CategoryValidation, MenuModeUnavailableCode, "operation unavailable in current interaction mode"},
}

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(commandValidationCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution cancelled").
			WithTextCode(commandContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution deadline exceeded").
			WithTextCode(commandContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command context error").
			WithTextCode(commandContextErrorCode)
	}
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	for _, entry := range menuErrors {
		if errors.Is(err, entry.target) {
			return goerrors.Wrap(err, entry.category, entry.message).WithTextCode(entry.code)
		}
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(commandExecuteFailed)
}

// TextCode returns the text code attached to a wrapped command error.
func TextCode(err error) string {
	var wrapped *goerrors.Error
	if errors.As(err, &wrapped) {
		return wrapped.TextCode
	}
	return ""
}
