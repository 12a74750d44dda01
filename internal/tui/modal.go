package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"leaderkey-cli/internal/model"
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

const modalMaxWidth = 64

func modalBodyWidth(width int) int {
	// Border plus horizontal padding on both sides.
	w := width - 6
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)

	titleLine := lipgloss.NewStyle().
		Foreground(colorSurfaceFg).
		Bold(true).
		Width(bodyW).
		Render(title)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Width(bodyW + 4)

	return box.Render(titleLine + "\n\n" + content)
}

func renderConfirmModal(width int, title string, body string, confirmLabel string, cancelLabel string, focus confirmModalFocus) string {
	// Avoid borders here: some terminals show background artifacts when nesting bordered
	// components inside a modal with a background color.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render(confirmLabel)
	cancel := btnBase.Render(cancelLabel)
	if focus == confirmFocusConfirm {
		confirm = btnActive.Render(confirmLabel)
	}
	if focus == confirmFocusCancel {
		cancel = btnActive.Render(cancelLabel)
	}

	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, sep, cancel)

	bodyW := modalBodyWidth(width)
	help := styleMuted().Width(bodyW).Render("tab: focus   enter: select   esc/ctrl+g: cancel")

	content := strings.Join([]string{
		body,
		"",
		controls,
		"",
		help,
	}, "\n")
	return renderModalBox(width, title, content)
}

func renderInputModal(width int, title string, input textinput.Model, errText string) string {
	bodyW := modalBodyWidth(width)

	lines := []string{input.View()}
	if errText != "" {
		lines = append(lines, "", styleError().Width(bodyW).Render(errText))
	}
	lines = append(lines, "", styleMuted().Width(bodyW).Render("enter: apply   esc/ctrl+g: cancel"))

	return renderModalBox(width, title, strings.Join(lines, "\n"))
}

// renderTypePickModal lists the action types with the current one marked.
func renderTypePickModal(width int, current model.ActionType, cursor int) string {
	bodyW := modalBodyWidth(width)

	var b strings.Builder
	for i, t := range model.ActionTypes() {
		marker := "  "
		if t == current {
			marker = "* "
		}
		line := marker + string(t)
		st := lipgloss.NewStyle().Foreground(typeColor(string(t)))
		if i == cursor {
			st = lipgloss.NewStyle().
				Foreground(colorSelectedFg).
				Background(colorSelectedBg).
				Bold(true)
		}
		b.WriteString(st.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleMuted().Width(bodyW).Render("j/k: move   enter: select   esc/ctrl+g: cancel"))

	return renderModalBox(width, "Action type", b.String())
}
