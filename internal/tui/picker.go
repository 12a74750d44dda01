package tui

import (
	"os"

	"leaderkey-cli/internal/lens"
	"leaderkey-cli/internal/model"
	"leaderkey-cli/internal/mutate"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// openFilePicker opens a browse modal for the selected action's value.
// Application actions pick a file, folder actions pick a directory.
func (m appModel) openFilePicker() (tea.Model, tea.Cmd) {
	row, ok := m.rows.SelectedItem().(entryRow)
	if !ok || row.kind != model.KindAction {
		return m, nil
	}
	a := row.lens.Action()
	if a.Type != model.ActionTypeApplication && a.Type != model.ActionTypeFolder {
		return m, m.setFlash("Browse applies to application and folder actions", true)
	}

	fp := filepicker.New()
	fp.AllowedTypes = nil
	fp.FileAllowed = a.Type == model.ActionTypeApplication
	fp.DirAllowed = a.Type == model.ActionTypeFolder
	fp.ShowHidden = false
	fp.ShowPermissions = false
	fp.ShowSize = false
	fp.AutoHeight = false
	fp.Height = pickerHeight(m.height)
	fp.Cursor = "›"
	fp.KeyMap.Back = key.NewBinding(
		key.WithKeys("h", "backspace", "left"),
		key.WithHelp("h", "up"),
	)

	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(colorAccent)
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(colorAccent)
	fp.Styles.Symlink = lipgloss.NewStyle().Foreground(colorAccent)
	fp.Styles.DisabledFile = styleMuted()
	fp.Styles.DisabledSelected = styleMuted()
	fp.Styles.Permission = styleMuted()

	startDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		startDir = home
	}
	if a.Type == model.ActionTypeApplication {
		if _, err := os.Stat("/Applications"); err == nil {
			startDir = "/Applications"
		}
	}
	if startDir == "" {
		startDir = "."
	}
	fp.CurrentDirectory = startDir

	m.picker = fp
	m.pickerIdx = row.index
	m.modal = modalPickFile
	return m, fp.Init()
}

func pickerHeight(totalH int) int {
	h := totalH - 10
	if h < 5 {
		h = 5
	}
	if h > 20 {
		h = 20
	}
	return h
}

func (m appModel) updateFilePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+g", "q":
			m.modal = modalNone
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.modal = modalNone
		l := lens.Index(m.currentSeq(), m.pickerIdx)
		a := l.Action()
		a.Value = path
		l.SetAction(a)
		m.refreshRows(m.pickerIdx)
		res := mutate.Result{
			EventType: "entry.edit",
			EventPayload: map[string]any{
				"field": "value",
				"index": m.pickerIdx,
			},
		}
		if err := m.persist(res); err != nil {
			return m, m.setFlash("Save failed: "+err.Error(), true)
		}
		return m, nil
	}
	return m, cmd
}
