// Package mutate implements the structural edit operations on a group's
// children. These four operations are the only way a sequence's length
// changes; field-level edits go through internal/lens and never touch
// sibling count or order.
package mutate

import "leaderkey-cli/internal/model"

// Result describes a completed structural edit. Callers are responsible
// for saving the tree and appending the history event.
type Result struct {
	EventType    string
	EventPayload map[string]any
}

// AddAction appends a blank action (type application) to g's children.
// All prior elements keep their positions and identities.
func AddAction(g *model.Group) Result {
	g.Actions = append(g.Actions, model.WrapAction(model.Action{
		Type: model.ActionTypeApplication,
	}))
	return Result{
		EventType: "entry.add",
		EventPayload: map[string]any{
			"kind":  string(model.KindAction),
			"index": len(g.Actions) - 1,
		},
	}
}

// AddGroup appends an empty nested group to g's children.
func AddGroup(g *model.Group) Result {
	g.Actions = append(g.Actions, model.WrapGroup(model.Group{
		Actions: []model.ActionOrGroup{},
	}))
	return Result{
		EventType: "entry.add",
		EventPayload: map[string]any{
			"kind":  string(model.KindGroup),
			"index": len(g.Actions) - 1,
		},
	}
}

// DeleteAt removes the element at position i. Elements after i shift left
// by one; any lens or callback bound to a position >= i is stale afterwards
// and must be re-derived.
func DeleteAt(g *model.Group, i int) (Result, error) {
	if i < 0 || i >= len(g.Actions) {
		return Result{}, IndexError{Op: "delete", Index: i, Len: len(g.Actions)}
	}
	removed := g.Actions[i]
	g.Actions = append(g.Actions[:i], g.Actions[i+1:]...)
	return Result{
		EventType: "entry.delete",
		EventPayload: map[string]any{
			"kind":  string(removed.Kind()),
			"index": i,
			"name":  removed.DisplayName(),
		},
	}, nil
}

// DuplicateAt inserts a deep copy of the element at position i immediately
// after it. The copy shares no mutable storage with the original: editing
// one never affects the other.
func DuplicateAt(g *model.Group, i int) (Result, error) {
	if i < 0 || i >= len(g.Actions) {
		return Result{}, IndexError{Op: "duplicate", Index: i, Len: len(g.Actions)}
	}
	dup := g.Actions[i].Clone()
	g.Actions = append(g.Actions, model.ActionOrGroup{})
	copy(g.Actions[i+2:], g.Actions[i+1:])
	g.Actions[i+1] = dup
	return Result{
		EventType: "entry.duplicate",
		EventPayload: map[string]any{
			"kind":  string(dup.Kind()),
			"index": i,
			"name":  dup.DisplayName(),
		},
	}, nil
}
