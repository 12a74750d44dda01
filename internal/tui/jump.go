package tui

import (
	"sort"
	"strings"

	"leaderkey-cli/internal/model"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// jumpMatch is one candidate in the fuzzy jump modal. parent is the
// breadcrumb path to the group holding the entry; index is the entry's
// position inside it.
type jumpMatch struct {
	parent  []int
	index   int
	name    string
	display string
	isGroup bool
	score   int
}

const maxJumpMatches = 12

func (m appModel) openJumpModal() (tea.Model, tea.Cmd) {
	in := textinput.New()
	in.Placeholder = "jump to entry"
	in.Width = modalBodyWidth(m.width) - 2
	in.Focus()

	m.jumpInput = in
	m.jumpMatches = rankJumpMatches(m.root, "")
	m.jumpCursor = 0
	m.modal = modalJump
	return m, textinput.Blink
}

func (m appModel) updateJumpModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "ctrl+g":
			m.modal = modalNone
			return m, nil
		case "down", "ctrl+n":
			if m.jumpCursor < len(m.jumpMatches)-1 {
				m.jumpCursor++
			}
			return m, nil
		case "up", "ctrl+p":
			if m.jumpCursor > 0 {
				m.jumpCursor--
			}
			return m, nil
		case "enter":
			if m.jumpCursor >= len(m.jumpMatches) {
				m.modal = modalNone
				return m, nil
			}
			sel := m.jumpMatches[m.jumpCursor]
			m.modal = modalNone
			if sel.isGroup {
				m.path = append(append([]int{}, sel.parent...), sel.index)
				m.refreshRows(0)
			} else {
				m.path = append([]int{}, sel.parent...)
				m.refreshRows(sel.index)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	m.jumpMatches = rankJumpMatches(m.root, m.jumpInput.Value())
	if m.jumpCursor >= len(m.jumpMatches) {
		m.jumpCursor = 0
	}
	return m, cmd
}

// rankJumpMatches flattens the tree and orders entries by how well their
// display name matches the query. Substring hits rank ahead of pure
// edit-distance matches so short queries behave like a filter.
func rankJumpMatches(root *model.Group, query string) []jumpMatch {
	var all []jumpMatch
	collectJumpMatches(root, nil, "", &all)

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		if len(all) > maxJumpMatches {
			all = all[:maxJumpMatches]
		}
		return all
	}

	scored := all[:0]
	for _, c := range all {
		name := strings.ToLower(c.name)
		switch {
		case strings.HasPrefix(name, q):
			c.score = 0
		case strings.Contains(name, q):
			c.score = 1
		default:
			d := levenshtein.ComputeDistance(q, name)
			if d > len(q) {
				continue
			}
			c.score = 2 + d
		}
		scored = append(scored, c)
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score < scored[j].score })
	if len(scored) > maxJumpMatches {
		scored = scored[:maxJumpMatches]
	}
	return scored
}

func collectJumpMatches(g *model.Group, parent []int, crumb string, out *[]jumpMatch) {
	for i, e := range g.Actions {
		name := e.DisplayName()
		display := name
		if crumb != "" {
			display = crumb + " › " + name
		}
		here := append(append([]int{}, parent...), i)
		c := jumpMatch{
			parent:  here[:len(here)-1],
			index:   i,
			name:    name,
			display: display,
			isGroup: e.IsGroup(),
		}
		*out = append(*out, c)
		if e.IsGroup() {
			collectJumpMatches(e.Group, here, display, out)
		}
	}
}
