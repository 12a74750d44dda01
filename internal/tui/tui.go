package tui

import (
	"leaderkey-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive editor on the given store. A missing config
// starts from the built-in starter tree; the first edit writes it out.
func Run(s store.Store) error {
	applyColorProfilePreference()
	applyThemePreference()

	root, err := s.LoadOrStarter()
	if err != nil {
		return err
	}

	m := newAppModel(s, root)
	if err := s.Ensure(); err == nil {
		if w, err := newConfigWatch(s); err == nil {
			m.watch = w
		}
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	if m.watch != nil {
		m.watch.close()
	}
	return err
}
