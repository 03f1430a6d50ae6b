// Package tui is the terminal console of the menu editor. Wide terminals
// with a mouse get drag and drop; narrow ones fall back to K/J moves.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/goliatone/go-menu-editor/internal/editor"
	"github.com/goliatone/go-menu-editor/internal/interaction"
	"github.com/goliatone/go-menu-editor/internal/logging"
	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/goliatone/go-menu-editor/pkg/interfaces"
	"github.com/google/uuid"
)

// headerHeight is the number of lines above the first row. The line right
// above the rows is the promote-to-root drop zone.
const headerHeight = 2

// nestColumn is the offset from a row's indent at which a drop nests under
// the row: past the expand marker and the glyph, over the label.
const nestColumn = 4

// footerHeight reserves lines for the status line and help.
const footerHeight = 3

// savedMsg reports the outcome of an asynchronous save.
type savedMsg struct {
	err error
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap overrides the default bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

// WithStyles overrides the default styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) { m.styles = styles }
}

// WithLogger sets the logger used by the console.
func WithLogger(logger interfaces.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithPointer reports whether the terminal delivers mouse events.
func WithPointer(fine bool) Option {
	return func(m *Model) { m.finePointer = fine }
}

// WithContext sets the context used for saves.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// Model is the bubbletea model over one editing session.
type Model struct {
	session *editor.Session
	ctx     context.Context //nolint:containedctx // saves run from tea commands
	keys    KeyMap
	styles  Styles
	help    help.Model
	input   textinput.Model
	logger  interfaces.Logger

	finePointer bool
	width       int
	height      int
	cursor      int
	offset      int
	dragging    bool
	saving      bool
	status      string
	notice      *editor.Notice
	quitting    bool
}

// New builds a console model for session.
func New(session *editor.Session, opts ...Option) Model {
	input := textinput.New()
	input.Placeholder = "Name"
	input.CharLimit = 120
	input.Width = 40

	m := Model{
		session:     session,
		ctx:         context.Background(),
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		help:        help.New(),
		input:       input,
		logger:      logging.NoOp(),
		finePointer: true,
		width:       editor.DesktopCapabilities.ViewportWidth,
		height:      24,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	m.syncCursor()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Session returns the session driven by the console.
func (m Model) Session() *editor.Session {
	return m.session
}

// Cursor returns the index of the highlighted row.
func (m Model) Cursor() int {
	return m.cursor
}

// Status returns the current status line text.
func (m Model) Status() string {
	if m.notice != nil {
		return m.notice.Message
	}
	return m.status
}

// Quitting reports whether the console asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		mode := m.session.SetCapabilities(interaction.Capabilities{
			ViewportWidth: msg.Width,
			FinePointer:   m.finePointer,
		})
		if mode != interaction.ModeDrag {
			m.dragging = false
		}
	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.status = "save failed: " + msg.err.Error()
		} else {
			m.status = "saved"
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if m.session.Dialog().Kind != editor.DialogNone {
			cmd = m.handleDialogKey(msg)
		} else {
			cmd = m.handleKey(msg)
		}
	}
	m.pullNotice()
	m.syncCursor()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	rows := m.session.Rows()
	current := m.currentRow(rows)
	m.status = ""
	m.notice = nil

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.selectCursor(rows)
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
		m.selectCursor(rows)
	case key.Matches(msg, m.keys.MoveUp):
		if current != nil {
			m.report(m.session.MoveUp(current.Node.ID))
		}
	case key.Matches(msg, m.keys.MoveDown):
		if current != nil {
			m.report(m.session.MoveDown(current.Node.ID))
		}
	case key.Matches(msg, m.keys.Promote):
		if current != nil {
			_, err := m.session.Move(current.Node.ID, menutree.RootTarget)
			m.report(err)
		}
	case key.Matches(msg, m.keys.Toggle):
		if current != nil && current.HasChildren {
			m.session.ToggleCollapsed(current.Node.ID)
		}
	case key.Matches(msg, m.keys.AddRoot):
		m.session.OpenDialog(editor.DialogAdd, uuid.Nil)
		return m.focusInput("")
	case key.Matches(msg, m.keys.AddChild):
		if current != nil {
			m.session.OpenDialog(editor.DialogAdd, current.Node.ID)
			return m.focusInput("")
		}
	case key.Matches(msg, m.keys.Edit):
		if current != nil {
			m.session.OpenDialog(editor.DialogEdit, current.Node.ID)
			return m.focusInput(current.Node.Name)
		}
	case key.Matches(msg, m.keys.Delete):
		if current != nil {
			err := m.session.Delete(current.Node.ID, false)
			if !errors.Is(err, editor.ErrConfirmationRequired) {
				m.report(err)
			}
		}
	case key.Matches(msg, m.keys.Undo):
		m.report(m.session.Undo())
	case key.Matches(msg, m.keys.Save):
		if m.saving {
			return nil
		}
		m.saving = true
		m.status = "saving..."
		return m.saveCmd()
	}
	return nil
}

func (m *Model) handleDialogKey(msg tea.KeyMsg) tea.Cmd {
	dialog := m.session.Dialog()
	if dialog.Kind == editor.DialogConfirmDelete {
		switch {
		case key.Matches(msg, m.keys.AcceptYes), key.Matches(msg, m.keys.Confirm):
			m.report(m.session.ConfirmDelete())
		default:
			m.session.CloseDialog()
			m.status = "delete cancelled"
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.session.CloseDialog()
		m.input.Blur()
		return nil
	case key.Matches(msg, m.keys.Confirm):
		value := strings.TrimSpace(m.input.Value())
		m.input.Blur()
		var err error
		switch dialog.Kind {
		case editor.DialogAdd:
			input := editor.NodeInput{Name: value}
			if dialog.NodeID == uuid.Nil {
				_, err = m.session.AddRoot(input)
			} else {
				_, err = m.session.AddChild(dialog.NodeID, input)
			}
		case editor.DialogEdit:
			err = m.session.Edit(dialog.NodeID, editor.NodeUpdate{Name: &value})
		}
		m.session.CloseDialog()
		m.report(err)
		if err == nil {
			m.cursorTo(m.session.Selected())
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// handleMouse maps pointer gestures onto the drag session. Pressing a row
// picks it up, motion hovers, release drops.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.session.Mode() != interaction.ModeDrag {
		return
	}
	rows := m.session.Rows()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		idx, ok := m.rowAt(msg.Y, rows)
		if !ok {
			return
		}
		m.cursor = idx
		m.session.Select(rows[idx].Node.ID)
		if err := m.session.BeginDrag(rows[idx].Node.ID); err == nil {
			m.dragging = true
		}
	case tea.MouseActionMotion:
		if !m.dragging {
			return
		}
		if target, ok := m.targetAt(msg.X, msg.Y, rows); ok {
			_, _ = m.session.HoverDrag(target)
		}
	case tea.MouseActionRelease:
		if !m.dragging {
			return
		}
		m.dragging = false
		if target, ok := m.targetAt(msg.X, msg.Y, rows); ok {
			_, _ = m.session.HoverDrag(target)
		}
		result, err := m.session.EndDrag()
		if err != nil {
			m.report(err)
			return
		}
		m.cursorTo(result.NodeID)
	}
}

func (m Model) rowAt(y int, rows []editor.Row) (int, bool) {
	idx := y - headerHeight + m.offset
	if y < headerHeight || idx < 0 || idx >= len(rows) {
		return 0, false
	}
	return idx, true
}

// targetAt resolves the drop target under the pointer. The line above the
// rows is the root zone. Over a row, the gutter left of the label places the
// node next to the row and the label itself nests it inside.
func (m Model) targetAt(x, y int, rows []editor.Row) (menutree.Target, bool) {
	if y == headerHeight-1 {
		return menutree.RootTarget, true
	}
	idx, ok := m.rowAt(y, rows)
	if !ok {
		return menutree.Target{}, false
	}
	row := rows[idx]
	if x >= 2*row.Depth+nestColumn {
		return menutree.InsideTarget(row.Node.ID), true
	}
	return menutree.NodeTarget(row.Node.ID), true
}

func (m Model) saveCmd() tea.Cmd {
	session := m.session
	ctx := m.ctx
	logger := m.logger
	return func() tea.Msg {
		err := session.Save(ctx)
		if err != nil {
			logger.Error("tui.save.failed", "menu", session.MenuCode(), "error", err)
		}
		return savedMsg{err: err}
	}
}

func (m *Model) focusInput(value string) tea.Cmd {
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

// report surfaces errors that do not already produce a session notice.
func (m *Model) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, editor.ErrModeUnavailable):
		m.status = "not available in this mode"
	case errors.Is(err, editor.ErrNameRequired):
		m.status = "name is required"
	case errors.Is(err, editor.ErrNothingToUndo):
		m.status = "nothing to undo"
	case errors.Is(err, editor.ErrNothingToConfirm):
	default:
		m.logger.Debug("tui.action.failed", "error", err)
	}
}

func (m *Model) pullNotice() {
	notices := m.session.DrainNotices()
	if len(notices) == 0 {
		return
	}
	last := notices[len(notices)-1]
	m.notice = &last
}

func (m *Model) selectCursor(rows []editor.Row) {
	if m.cursor >= 0 && m.cursor < len(rows) {
		m.session.Select(rows[m.cursor].Node.ID)
	}
}

func (m *Model) cursorTo(id uuid.UUID) {
	for idx, row := range m.session.Rows() {
		if row.Node.ID == id {
			m.cursor = idx
			return
		}
	}
}

// syncCursor follows the session selection and keeps the cursor on screen.
func (m *Model) syncCursor() {
	rows := m.session.Rows()
	if selected := m.session.Selected(); selected != uuid.Nil {
		for idx, row := range rows {
			if row.Node.ID == selected {
				m.cursor = idx
				break
			}
		}
	}
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	visible := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) listHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 1 {
		return 1
	}
	return h
}

func (m Model) currentRow(rows []editor.Row) *editor.Row {
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	return &rows[m.cursor]
}
