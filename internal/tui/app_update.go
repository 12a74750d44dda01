package tui

import (
	"strings"
	"time"

	"leaderkey-cli/internal/lens"
	"leaderkey-cli/internal/model"
	"leaderkey-cli/internal/mutate"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type configChangedMsg struct{}

type watchErrMsg struct{ err error }

type flashClearMsg struct{ id int }

func flashClearAfter(id int) tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return flashClearMsg{id: id}
	})
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case flashClearMsg:
		if msg.id == m.flashID {
			m.flash = ""
			m.flashErr = false
		}
		return m, nil

	case configChangedMsg:
		var cmd tea.Cmd
		if m.watch != nil {
			cmd = m.watch.wait()
		}
		if m.suppressReload > 0 {
			m.suppressReload--
			return m, cmd
		}
		root, err := m.store.Load()
		if err != nil {
			return m, tea.Batch(cmd, m.setFlash("Reload failed: "+err.Error(), true))
		}
		m.root = root
		m.closeStaleModals()
		m.refreshRows(m.rows.Index())
		return m, tea.Batch(cmd, m.setFlash("Config changed on disk, reloaded", false))

	case watchErrMsg:
		var cmd tea.Cmd
		if m.watch != nil {
			cmd = m.watch.wait()
		}
		return m, tea.Batch(cmd, m.setFlash("Watcher: "+msg.err.Error(), true))
	}

	if m.modal != modalNone {
		return m.updateModal(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		if handled, mm, cmd := m.handleListKey(key); handled {
			return mm, cmd
		}
	}

	var cmd tea.Cmd
	m.rows, cmd = m.rows.Update(msg)
	return m, cmd
}

// closeStaleModals drops any modal whose captured child index may no
// longer exist after the tree was replaced under it. The jump modal holds
// tree positions too, but can be re-ranked against the new tree instead.
func (m *appModel) closeStaleModals() {
	switch m.modal {
	case modalEditKey, modalEditLabel, modalEditValue, modalPickType, modalConfirmDelete, modalPickFile:
		m.modal = modalNone
	case modalJump:
		m.jumpMatches = rankJumpMatches(m.root, m.jumpInput.Value())
		if m.jumpCursor >= len(m.jumpMatches) {
			m.jumpCursor = 0
		}
	}
}

func (m *appModel) resize() {
	headerH := 2
	footerH := 2
	h := m.height - headerH - footerH
	if h < 1 {
		h = 1
	}
	m.rows.SetSize(m.width, h)
}

func (m appModel) handleListKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		if m.watch != nil {
			m.watch.close()
		}
		return true, m, tea.Quit

	case "enter", "l", "right":
		mm, cmd := m.activateSelection()
		return true, mm, cmd

	case "esc", "h", "left", "backspace":
		if len(m.path) == 0 {
			return true, m, nil
		}
		up := m.path[len(m.path)-1]
		m.path = m.path[:len(m.path)-1]
		m.refreshRows(up)
		return true, m, nil

	case "a":
		mm, cmd := m.addEntry(false)
		return true, mm, cmd

	case "g":
		mm, cmd := m.addEntry(true)
		return true, mm, cmd

	case "e":
		mm, cmd := m.openFieldModal(modalEditKey)
		return true, mm, cmd

	case "n":
		mm, cmd := m.openFieldModal(modalEditLabel)
		return true, mm, cmd

	case "v":
		mm, cmd := m.openFieldModal(modalEditValue)
		return true, mm, cmd

	case "t":
		mm, cmd := m.openTypeModal()
		return true, mm, cmd

	case "x", "delete":
		mm, cmd := m.openDeleteConfirm()
		return true, mm, cmd

	case "d":
		mm, cmd := m.duplicateSelection()
		return true, mm, cmd

	case "o":
		mm, cmd := m.openFilePicker()
		return true, mm, cmd

	case "/":
		mm, cmd := m.openJumpModal()
		return true, mm, cmd

	case "?":
		m.modal = modalHelp
		return true, m, nil

	case "r":
		root, err := m.store.Load()
		if err != nil {
			return true, m, m.setFlash("Reload failed: "+err.Error(), true)
		}
		m.root = root
		m.refreshRows(m.rows.Index())
		return true, m, m.setFlash("Reloaded from disk", false)
	}
	return false, m, nil
}

// activateSelection descends into the selected group, opens the value
// editor for an action, or runs one of the trailing add rows.
func (m appModel) activateSelection() (tea.Model, tea.Cmd) {
	switch it := m.rows.SelectedItem().(type) {
	case entryRow:
		if it.kind == model.KindGroup {
			m.path = append(m.path, it.index)
			m.refreshRows(0)
			return m, nil
		}
		return m.openFieldModal(modalEditValue)
	case addActionRow:
		return m.addEntry(false)
	case addGroupRow:
		return m.addEntry(true)
	}
	return m, nil
}

func (m appModel) addEntry(asGroup bool) (tea.Model, tea.Cmd) {
	g := m.currentGroup()
	var res mutate.Result
	if asGroup {
		res = mutate.AddGroup(g)
	} else {
		res = mutate.AddAction(g)
	}
	newIdx := len(g.Actions) - 1
	m.refreshRows(newIdx)
	if err := m.persist(res); err != nil {
		return m, m.setFlash("Save failed: "+err.Error(), true)
	}
	// Drop straight into the key editor so the new entry gets a binding.
	return m.openFieldModal(modalEditKey)
}

func (m appModel) openFieldModal(kind modalKind) (tea.Model, tea.Cmd) {
	row, ok := m.rows.SelectedItem().(entryRow)
	if !ok {
		return m, nil
	}
	if kind == modalEditValue && row.kind == model.KindGroup {
		return m, m.setFlash("Groups have no value", true)
	}

	in := textinput.New()
	in.CharLimit = 0
	in.Width = modalBodyWidth(m.width) - 2
	switch kind {
	case modalEditKey:
		in.Placeholder = "single key, e.g. t"
		if row.kind == model.KindGroup {
			in.SetValue(row.lens.Group().Key)
		} else {
			in.SetValue(row.lens.Action().Key)
		}
	case modalEditLabel:
		in.Placeholder = "display label (empty uses a derived name)"
		if row.kind == model.KindGroup {
			in.SetValue(row.lens.Group().Label)
		} else {
			in.SetValue(row.lens.Action().Label)
		}
	case modalEditValue:
		a := row.lens.Action()
		in.Placeholder = valuePlaceholder(a.Type)
		in.SetValue(a.Value)
	}
	in.CursorEnd()
	in.Focus()

	m.modal = kind
	m.input = in
	m.editIdx = row.index
	m.inputErr = ""
	return m, textinput.Blink
}

func valuePlaceholder(t model.ActionType) string {
	switch t {
	case model.ActionTypeApplication:
		return "/Applications/Safari.app"
	case model.ActionTypeURL:
		return "https://example.com"
	case model.ActionTypeCommand:
		return "open -a Terminal"
	case model.ActionTypeFolder:
		return "~/Downloads"
	}
	return ""
}

func (m appModel) openTypeModal() (tea.Model, tea.Cmd) {
	row, ok := m.rows.SelectedItem().(entryRow)
	if !ok || row.kind != model.KindAction {
		return m, nil
	}
	cur := row.lens.Action().Type
	m.typeCursor = 0
	for i, t := range model.ActionTypes() {
		if t == cur {
			m.typeCursor = i
		}
	}
	m.editIdx = row.index
	m.modal = modalPickType
	return m, nil
}

func (m appModel) openDeleteConfirm() (tea.Model, tea.Cmd) {
	row, ok := m.rows.SelectedItem().(entryRow)
	if !ok {
		return m, nil
	}
	m.confirmIdx = row.index
	m.confirmName = row.name
	m.confirmFocus = confirmFocusCancel
	m.modal = modalConfirmDelete
	return m, nil
}

func (m appModel) duplicateSelection() (tea.Model, tea.Cmd) {
	row, ok := m.rows.SelectedItem().(entryRow)
	if !ok {
		return m, nil
	}
	res, err := row.dup()
	if err != nil {
		return m, m.setFlash(err.Error(), true)
	}
	// The copy sits directly after the original.
	m.refreshRows(row.index + 1)
	if err := m.persist(res); err != nil {
		return m, m.setFlash("Save failed: "+err.Error(), true)
	}
	return m, m.setFlash("Duplicated "+row.name, false)
}

// updateModal routes input while any modal is open.
func (m appModel) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalEditKey, modalEditLabel, modalEditValue:
		return m.updateFieldModal(msg)
	case modalPickType:
		return m.updateTypeModal(msg)
	case modalConfirmDelete:
		return m.updateConfirmModal(msg)
	case modalPickFile:
		return m.updateFilePicker(msg)
	case modalJump:
		return m.updateJumpModal(msg)
	case modalHelp:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "esc", "ctrl+g", "q", "?", "enter":
				m.modal = modalNone
			}
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateFieldModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+g":
			m.modal = modalNone
			return m, nil
		case "enter":
			return m.applyFieldEdit()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) applyFieldEdit() (tea.Model, tea.Cmd) {
	val := m.input.Value()
	if m.modal == modalEditKey {
		val = strings.TrimSpace(val)
		if len([]rune(val)) > 1 {
			m.inputErr = "key must be a single character (or empty)"
			return m, nil
		}
	}

	l := lens.Index(m.currentSeq(), m.editIdx)
	e := l.Get()

	var field string
	switch m.modal {
	case modalEditKey:
		field = "key"
		if e.Kind() == model.KindGroup {
			g := l.Group()
			g.Key = val
			l.SetGroup(g)
		} else {
			a := l.Action()
			a.Key = val
			l.SetAction(a)
		}
	case modalEditLabel:
		field = "label"
		if e.Kind() == model.KindGroup {
			g := l.Group()
			g.Label = val
			l.SetGroup(g)
		} else {
			a := l.Action()
			a.Label = val
			l.SetAction(a)
		}
	case modalEditValue:
		field = "value"
		a := l.Action()
		a.Value = val
		l.SetAction(a)
	}

	m.modal = modalNone
	m.refreshRows(m.editIdx)
	res := mutate.Result{
		EventType: "entry.edit",
		EventPayload: map[string]any{
			"field": field,
			"index": m.editIdx,
		},
	}
	if err := m.persist(res); err != nil {
		return m, m.setFlash("Save failed: "+err.Error(), true)
	}
	return m, nil
}

func (m appModel) updateTypeModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	types := model.ActionTypes()
	switch key.String() {
	case "esc", "ctrl+g":
		m.modal = modalNone
		return m, nil
	case "j", "down", "ctrl+n":
		if m.typeCursor < len(types)-1 {
			m.typeCursor++
		}
		return m, nil
	case "k", "up", "ctrl+p":
		if m.typeCursor > 0 {
			m.typeCursor--
		}
		return m, nil
	case "enter":
		l := lens.Index(m.currentSeq(), m.editIdx)
		a := l.Action()
		// Changing the type keeps value and label; nothing is cleared.
		a.Type = types[m.typeCursor]
		l.SetAction(a)
		m.modal = modalNone
		m.refreshRows(m.editIdx)
		res := mutate.Result{
			EventType: "entry.edit",
			EventPayload: map[string]any{
				"field": "type",
				"index": m.editIdx,
			},
		}
		if err := m.persist(res); err != nil {
			return m, m.setFlash("Save failed: "+err.Error(), true)
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "esc", "ctrl+g", "n":
		m.modal = modalNone
		return m, nil
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "y":
		return m.deleteConfirmed()
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.deleteConfirmed()
		}
		m.modal = modalNone
		return m, nil
	}
	return m, nil
}

func (m appModel) deleteConfirmed() (tea.Model, tea.Cmd) {
	m.modal = modalNone
	g := m.currentGroup()
	res, err := mutate.DeleteAt(g, m.confirmIdx)
	if err != nil {
		return m, m.setFlash(err.Error(), true)
	}
	m.refreshRows(m.confirmIdx)
	if err := m.persist(res); err != nil {
		return m, m.setFlash("Save failed: "+err.Error(), true)
	}
	return m, m.setFlash("Deleted "+m.confirmName, false)
}
