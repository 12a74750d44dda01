package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"leaderkey-cli/internal/model"
)

type entryDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	addRow   lipgloss.Style
	keyCell  lipgloss.Style
	group    lipgloss.Style
}

func newEntryDelegate() entryDelegate {
	return entryDelegate{
		normal: lipgloss.NewStyle().Foreground(colorSurfaceFg),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
		addRow: lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		keyCell: lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true),
		group: lipgloss.NewStyle().
			Foreground(colorSurfaceFg).
			Bold(true),
	}
}

func (d entryDelegate) Height() int  { return 1 }
func (d entryDelegate) Spacing() int { return 0 }
func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}
	focused := index == m.Index()

	switch it := item.(type) {
	case entryRow:
		fmt.Fprint(w, d.renderEntryRow(contentW, it, focused))
	case addActionRow, addGroupRow:
		// Indent to align with the key column.
		line := "    " + item.(interface{ Title() string }).Title()
		if focused {
			fmt.Fprint(w, d.renderFocused(contentW, line))
			return
		}
		fmt.Fprint(w, d.addRow.Render(xansi.Truncate(line, contentW, "…")))
	default:
		fmt.Fprint(w, fmt.Sprint(item))
	}
}

func (d entryDelegate) renderEntryRow(contentW int, r entryRow, focused bool) string {
	key := r.key
	if key == "" {
		key = "·"
	}
	key = fmt.Sprintf("%-3s", key)

	name := r.name
	if r.kind == model.KindGroup {
		name += "/"
	}

	if focused {
		line := fmt.Sprintf(" %s %s  %s", key, name, r.detail)
		return d.renderFocused(contentW, line)
	}

	nameStyle := d.normal
	if r.kind == model.KindGroup {
		nameStyle = d.group
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top,
		" ",
		d.keyCell.Render(key),
		" ",
		nameStyle.Render(name),
		"  ",
		styleMuted().Render(r.detail),
	)
	return xansi.Truncate(line, contentW, "…")
}

func (d entryDelegate) renderFocused(contentW int, line string) string {
	line = xansi.Truncate(line, contentW, "…")
	// Full-row background highlight; keep the left edge stable.
	return d.selected.Width(contentW).Render(line)
}
