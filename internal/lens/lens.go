// Package lens provides composable read/write accessors into a group tree.
//
// Edits made deep inside the tree write back through the chain of lenses to
// the owning root, replacing exactly one element per level and leaving all
// siblings untouched. Lenses are index-bound: they must be re-derived after
// any structural edit (add/delete/duplicate) of the sequence they point into.
package lens

import (
	"fmt"

	"leaderkey-cli/internal/model"
)

// Seq is read/write access to an ordered sequence of tree elements,
// typically a group's children.
type Seq struct {
	Get func() []model.ActionOrGroup
	Set func([]model.ActionOrGroup)
}

// ForGroup returns a Seq over a group's children. The group must outlive
// the Seq; this is the root anchor of a lens chain.
func ForGroup(g *model.Group) Seq {
	return Seq{
		Get: func() []model.ActionOrGroup { return g.Actions },
		Set: func(actions []model.ActionOrGroup) { g.Actions = actions },
	}
}

// Lens is a read/write accessor onto one element of a Seq.
type Lens struct {
	seq Seq
	idx int
}

// Index returns a lens onto position i of s. Constructing a lens for an
// out-of-range position is a programming error and panics: callers only
// ever build lenses for positions they know are currently valid.
func Index(s Seq, i int) Lens {
	n := len(s.Get())
	if i < 0 || i >= n {
		panic(fmt.Sprintf("lens: index %d out of range [0,%d)", i, n))
	}
	return Lens{seq: s, idx: i}
}

func (l Lens) Get() model.ActionOrGroup { return l.seq.Get()[l.idx] }

// Set replaces exactly position idx in the owning sequence. All other
// positions keep their identity and the length is unchanged. The write is
// copy-on-write so a parent lens observing the old slice never sees a
// half-applied edit.
func (l Lens) Set(v model.ActionOrGroup) {
	cur := l.seq.Get()
	next := make([]model.ActionOrGroup, len(cur))
	copy(next, cur)
	next[l.idx] = v
	l.seq.Set(next)
}

// VariantError reports an attempt to read or write an element through the
// wrong half of the ActionOrGroup union. This is a logic error in the
// caller and is raised as a panic rather than coerced.
type VariantError struct {
	Want model.Kind
	Got  model.Kind
}

func (e VariantError) Error() string {
	return fmt.Sprintf("lens: element is %s, not %s", e.Got, e.Want)
}

// Action returns a copy of the action variant. Panics with VariantError if
// the element is a group.
func (l Lens) Action() model.Action {
	e := l.Get()
	if e.Action == nil {
		panic(VariantError{Want: model.KindAction, Got: e.Kind()})
	}
	return *e.Action
}

// Group returns a copy of the group variant. Panics with VariantError if
// the element is an action.
func (l Lens) Group() model.Group {
	e := l.Get()
	if e.Group == nil {
		panic(VariantError{Want: model.KindGroup, Got: e.Kind()})
	}
	return *e.Group
}

// SetAction writes an action back through the lens. The current element
// must already be an action: field edits never change the variant tag.
func (l Lens) SetAction(a model.Action) {
	if e := l.Get(); e.Action == nil {
		panic(VariantError{Want: model.KindAction, Got: e.Kind()})
	}
	l.Set(model.ActionOrGroup{Action: &a})
}

// SetGroup writes a group back through the lens, keeping the variant tag.
func (l Lens) SetGroup(g model.Group) {
	if e := l.Get(); e.Group == nil {
		panic(VariantError{Want: model.KindGroup, Got: e.Kind()})
	}
	l.Set(model.ActionOrGroup{Group: &g})
}

// Actions composes one level deeper: it returns a Seq over a group-tagged
// element's children. Writes rebuild this element and propagate through the
// parent lens, so a chain of Actions() calls carries nested edits all the
// way to the root with no shared mutable state.
func (l Lens) Actions() Seq {
	return Seq{
		Get: func() []model.ActionOrGroup {
			return l.Group().Actions
		},
		Set: func(children []model.ActionOrGroup) {
			g := l.Group()
			g.Actions = children
			l.SetGroup(g)
		},
	}
}
