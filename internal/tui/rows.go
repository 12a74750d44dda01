package tui

import (
	"fmt"

	"leaderkey-cli/internal/lens"
	"leaderkey-cli/internal/model"
	"leaderkey-cli/internal/mutate"

	"github.com/charmbracelet/bubbles/list"
)

// Row construction and dispatch.
//
// Rows are rebuilt from the live tree on every refresh. Each row carries a
// lens onto its element plus delete/duplicate callbacks bound to the
// element's index at build time; after any structural edit the whole row
// set is rebuilt, so a stale binding can never be invoked.

type entryRow struct {
	index int
	kind  model.Kind

	key    string
	name   string
	detail string

	lens lens.Lens
	del  func() (mutate.Result, error)
	dup  func() (mutate.Result, error)
}

func (r entryRow) Title() string       { return r.name }
func (r entryRow) FilterValue() string { return r.key + " " + r.name }

// Trailing pseudo-rows that append new entries.
type addActionRow struct{}
type addGroupRow struct{}

func (addActionRow) Title() string       { return "+ Add action" }
func (addActionRow) FilterValue() string { return "" }
func (addGroupRow) Title() string        { return "+ Add group" }
func (addGroupRow) FilterValue() string  { return "" }

// buildRows projects a group's children into list rows, dispatching each
// element on its variant tag, and appends the two add rows.
func buildRows(g *model.Group, seq lens.Seq) []list.Item {
	items := make([]list.Item, 0, len(g.Actions)+2)
	for i := range g.Actions {
		items = append(items, dispatchRow(g, seq, i))
	}
	items = append(items, addActionRow{}, addGroupRow{})
	return items
}

// dispatchRow is total over the union: the element's tag alone decides
// whether the row edits action fields or recurses into a nested group.
// Both branches get the same lens and index-bound callbacks.
func dispatchRow(g *model.Group, seq lens.Seq, i int) entryRow {
	l := lens.Index(seq, i)
	e := l.Get()

	r := entryRow{
		index: i,
		kind:  e.Kind(),
		lens:  l,
		del:   func() (mutate.Result, error) { return mutate.DeleteAt(g, i) },
		dup:   func() (mutate.Result, error) { return mutate.DuplicateAt(g, i) },
	}

	switch e.Kind() {
	case model.KindGroup:
		grp := e.Group
		r.key = grp.Key
		r.name = grp.DisplayName()
		n := len(grp.Actions)
		if n == 1 {
			r.detail = "1 entry"
		} else {
			r.detail = fmt.Sprintf("%d entries", n)
		}
	default:
		a := e.Action
		r.key = a.Key
		r.name = a.BestGuessDisplayName()
		r.detail = string(a.Type) + " · " + a.Value
	}
	return r
}
