package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goliatone/go-menu-editor/internal/editor"
)

// Run opens the console full screen with mouse tracking and blocks until the
// user quits or ctx is cancelled.
func Run(ctx context.Context, session *editor.Session, opts ...Option) error {
	opts = append([]Option{WithContext(ctx)}, opts...)
	program := tea.NewProgram(
		New(session, opts...),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := program.Run()
	return err
}
