package tui

import (
	"context"
	"fmt"
	"strings"

	"leaderkey-cli/internal/lens"
	"leaderkey-cli/internal/model"
	"leaderkey-cli/internal/mutate"
	"leaderkey-cli/internal/store"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalEditKey
	modalEditLabel
	modalEditValue
	modalPickType
	modalConfirmDelete
	modalPickFile
	modalJump
	modalHelp
)

type appModel struct {
	store store.Store
	root  *model.Group

	// path holds the child indices from the root down to the group the
	// list currently shows. Empty path means the root group.
	path []int

	width  int
	height int

	rows  list.Model
	modal modalKind

	// Field-edit modal state. editIdx is the child index the modal was
	// opened for; rows are rebuilt after every edit so it is re-resolved
	// against the live tree on apply.
	input    textinput.Model
	editIdx  int
	inputErr string

	typeCursor int

	confirmFocus confirmModalFocus
	confirmIdx   int
	confirmName  string

	picker    filepicker.Model
	pickerIdx int

	jumpInput   textinput.Model
	jumpMatches []jumpMatch
	jumpCursor  int

	flash    string
	flashErr bool
	flashID  int

	watch *configWatch
	// Saves we perform ourselves also fire the file watcher; each save
	// bumps this counter and the next change event for it is swallowed.
	suppressReload int

	quitting bool
}

func newAppModel(s store.Store, root *model.Group) appModel {
	m := appModel{
		store: s,
		root:  root,
	}
	m.rows = newRowList()
	m.refreshRows(0)
	return m
}

func newRowList() list.Model {
	l := list.New([]list.Item{}, newEntryDelegate(), 0, 0)
	// We render our own breadcrumb header and status footer, so keep the
	// list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}

func (m appModel) Init() tea.Cmd {
	if m.watch != nil {
		return m.watch.wait()
	}
	return nil
}

// currentGroup walks the breadcrumb path to the group the list shows.
// A stale path segment (after an external reload shrank the tree) stops
// the walk at the last valid group.
func (m *appModel) currentGroup() *model.Group {
	g := m.root
	for i, idx := range m.path {
		if idx < 0 || idx >= len(g.Actions) || !g.Actions[idx].IsGroup() {
			m.path = m.path[:i]
			return g
		}
		g = g.Actions[idx].Group
	}
	return g
}

// currentSeq builds the lens chain for the current group, so edits made
// through row lenses propagate copy-on-write back to the root sequence.
func (m *appModel) currentSeq() lens.Seq {
	seq := lens.ForGroup(m.root)
	for _, idx := range m.path {
		seq = lens.Index(seq, idx).Actions()
	}
	return seq
}

// refreshRows rebuilds the row set from the live tree and places the
// cursor on the given child index.
func (m *appModel) refreshRows(cursor int) {
	g := m.currentGroup()
	items := buildRows(g, m.currentSeq())
	m.rows.SetItems(items)
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(items) {
		cursor = len(items) - 1
	}
	m.rows.Select(cursor)
}

func (m *appModel) breadcrumb() string {
	parts := []string{"leaderkey"}
	g := m.root
	for _, idx := range m.path {
		if idx < 0 || idx >= len(g.Actions) || !g.Actions[idx].IsGroup() {
			break
		}
		g = g.Actions[idx].Group
		parts = append(parts, g.DisplayName())
	}
	return strings.Join(parts, " › ")
}

func (m *appModel) setFlash(text string, isErr bool) tea.Cmd {
	m.flash = text
	m.flashErr = isErr
	m.flashID++
	id := m.flashID
	return flashClearAfter(id)
}

// persist writes the tree to disk and appends a history event. The
// watcher suppression counter is bumped first so our own write does not
// bounce back as an external-change reload.
func (m *appModel) persist(res mutate.Result) error {
	m.suppressReload++
	if err := m.store.Save(m.root); err != nil {
		m.suppressReload--
		return err
	}
	if res.EventType != "" {
		if err := m.store.AppendHistory(context.Background(), res.EventType, m.pathString(), res.EventPayload); err != nil {
			// History is advisory; the config itself saved fine.
			return fmt.Errorf("history: %w", err)
		}
	}
	return nil
}

func (m *appModel) pathString() string {
	keys := make([]string, 0, len(m.path))
	g := m.root
	for _, idx := range m.path {
		if idx < 0 || idx >= len(g.Actions) || !g.Actions[idx].IsGroup() {
			break
		}
		g = g.Actions[idx].Group
		keys = append(keys, g.Key)
	}
	return strings.Join(keys, ".")
}
