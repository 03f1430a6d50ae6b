package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goliatone/go-menu-editor/internal/dragsession"
	"github.com/goliatone/go-menu-editor/internal/editor"
	"github.com/goliatone/go-menu-editor/internal/menutree"
	"github.com/goliatone/go-menu-editor/internal/reorder"
	"github.com/google/uuid"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.rootZoneView())
	b.WriteString("\n")

	rows := m.session.Rows()
	if len(rows) == 0 {
		b.WriteString(m.styles.Mode.Render("  (empty menu, press a to add an item)"))
		b.WriteString("\n")
	}
	end := m.offset + m.listHeight()
	if end > len(rows) {
		end = len(rows)
	}
	for idx := m.offset; idx < end; idx++ {
		b.WriteString(m.rowView(idx, rows[idx]))
		b.WriteString("\n")
	}

	if dialog := m.dialogView(); dialog != "" {
		b.WriteString(dialog)
		b.WriteString("\n")
	}
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.helpKeys()))
	return b.String()
}

// helpKeys hides the move hints that would run past the ends of the
// selected row's sibling list.
func (m Model) helpKeys() KeyMap {
	keys := m.keys
	up, down := false, false
	if row := m.currentRow(m.session.Rows()); row != nil {
		up = m.session.CanMove(row.Node.ID, reorder.Up)
		down = m.session.CanMove(row.Node.ID, reorder.Down)
	}
	keys.MoveUp.SetEnabled(up)
	keys.MoveDown.SetEnabled(down)
	return keys
}

func (m Model) headerView() string {
	title := m.styles.Title.Render("menu: " + m.session.MenuCode())
	mode := m.styles.Mode.Render(fmt.Sprintf("[%s]", m.session.Mode()))
	parts := []string{title, mode}
	if m.session.Dirty() {
		parts = append(parts, m.styles.Dirty.Render("● unsaved"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, " "))
}

// rootZoneView draws the promote-to-root drop zone, highlighted while a
// drag hovers it.
func (m Model) rootZoneView() string {
	state, _, over := m.session.DragState()
	if state == dragsession.StateIdle {
		return ""
	}
	label := "↑ drop here to move to top level"
	if over.Root {
		return m.styles.DropLine.Render(label)
	}
	return m.styles.Mode.Render(label)
}

func (m Model) rowView(idx int, row editor.Row) string {
	indent := strings.Repeat("  ", row.Depth)
	marker := "  "
	if row.HasChildren {
		marker = "▾ "
		if row.Collapsed {
			marker = "▸ "
		}
	}
	label := fmt.Sprintf("%s%s%s %s", indent, marker, row.Glyph, row.Node.Name)
	if row.Node.Path != "" {
		label += " " + m.styles.Path.Render(row.Node.Path)
	}

	state, active, over := m.session.DragState()
	if state != dragsession.StateIdle {
		if row.Node.ID == active {
			return m.styles.Dragged.Render(label)
		}
		if !over.Root && over.ID == row.Node.ID {
			switch menutree.DropPositionFor(m.session.Tree(), active, over) {
			case menutree.PositionInside:
				return m.styles.DropInto.Render(label + "  ⤷")
			case menutree.PositionBefore:
				return m.styles.DropLine.Render("────") + "\n" + label
			case menutree.PositionAfter:
				return label + "\n" + m.styles.DropLine.Render("────")
			}
		}
	}

	if idx == m.cursor {
		return m.styles.Cursor.Render(label)
	}
	return m.styles.Row.Render(label)
}

func (m Model) dialogView() string {
	dialog := m.session.Dialog()
	switch dialog.Kind {
	case editor.DialogAdd:
		title := "New top-level item"
		if dialog.NodeID != uuid.Nil {
			title = "New child item"
		}
		return m.styles.Dialog.Render(title + "\n" + m.input.View())
	case editor.DialogEdit:
		return m.styles.Dialog.Render("Rename\n" + m.input.View())
	case editor.DialogConfirmDelete:
		return m.styles.Dialog.Render("Delete this item and everything under it? (y/n)")
	default:
		return ""
	}
}

func (m Model) statusView() string {
	if m.notice != nil {
		switch m.notice.Level {
		case editor.NoticeError:
			return m.styles.Error.Render(m.notice.Message)
		case editor.NoticeWarning:
			return m.styles.Warning.Render(m.notice.Message)
		default:
			return m.styles.Info.Render(m.notice.Message)
		}
	}
	return m.styles.Info.Render(m.status)
}
