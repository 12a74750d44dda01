package tui

import (
	"strings"

	"leaderkey-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	header := lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true).
		Padding(0, 1).
		Render(m.breadcrumb())

	body := m.rows.View()

	footer := m.renderFooter()

	screen := header + "\n\n" + body + "\n" + footer

	if m.modal != modalNone {
		return m.overlayModal(screen)
	}
	return screen
}

func (m appModel) renderFooter() string {
	if m.flash != "" {
		st := styleMuted()
		if m.flashErr {
			st = styleError()
		}
		return st.Padding(0, 1).Render(m.flash)
	}
	return styleMuted().Padding(0, 1).Render(
		"a: action  g: group  e: key  v: value  d: dup  x: del  /: jump  ?: help  q: quit")
}

func (m appModel) overlayModal(background string) string {
	var modal string
	switch m.modal {
	case modalEditKey:
		modal = renderInputModal(m.width, "Key", m.input, m.inputErr)
	case modalEditLabel:
		modal = renderInputModal(m.width, "Label", m.input, m.inputErr)
	case modalEditValue:
		modal = renderInputModal(m.width, "Value", m.input, m.inputErr)
	case modalPickType:
		cur := m.currentTypeForModal()
		modal = renderTypePickModal(m.width, cur, m.typeCursor)
	case modalConfirmDelete:
		body := "Delete " + m.confirmName + "? Nested entries are removed with it."
		modal = renderConfirmModal(m.width, "Delete entry", body, "Delete", "Cancel", m.confirmFocus)
	case modalPickFile:
		modal = renderModalBox(m.width, "Browse", m.picker.View()+"\n"+styleMuted().Render("enter: select   esc: cancel"))
	case modalJump:
		modal = m.renderJumpModal()
	case modalHelp:
		modal = renderHelpModal(m.width)
	default:
		return background
	}

	if m.width <= 0 || m.height <= 0 {
		return modal
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m appModel) currentTypeForModal() model.ActionType {
	g := m.currentGroup()
	if m.editIdx < 0 || m.editIdx >= len(g.Actions) || g.Actions[m.editIdx].Action == nil {
		return model.ActionTypeApplication
	}
	return g.Actions[m.editIdx].Action.Type
}

func (m appModel) renderJumpModal() string {
	var b strings.Builder
	b.WriteString(m.jumpInput.View())
	b.WriteString("\n\n")
	if len(m.jumpMatches) == 0 {
		b.WriteString(styleMuted().Render("no matches"))
	}
	for i, c := range m.jumpMatches {
		line := c.display
		if c.isGroup {
			line += "/"
		}
		if i == m.jumpCursor {
			b.WriteString(lipgloss.NewStyle().
				Foreground(colorSelectedFg).
				Background(colorSelectedBg).
				Bold(true).
				Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("enter: go   esc: cancel"))
	return renderModalBox(m.width, "Jump", b.String())
}
