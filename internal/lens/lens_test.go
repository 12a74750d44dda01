package lens

import (
	"reflect"
	"testing"

	"leaderkey-cli/internal/model"
)

func testRoot() *model.Group {
	return &model.Group{
		Key: "leader",
		Actions: []model.ActionOrGroup{
			model.WrapAction(model.Action{Key: "t", Type: model.ActionTypeApplication, Value: "/Applications/Foo.app"}),
			model.WrapGroup(model.Group{
				Key: "o",
				Actions: []model.ActionOrGroup{
					model.WrapAction(model.Action{Key: "u", Type: model.ActionTypeURL, Value: "https://example.com"}),
					model.WrapAction(model.Action{Key: "c", Type: model.ActionTypeCommand, Value: "ls"}),
				},
			}),
			model.WrapAction(model.Action{Key: "x", Type: model.ActionTypeCommand, Value: "true"}),
		},
	}
}

func TestIndexGetMatchesSequence(t *testing.T) {
	root := testRoot()
	seq := ForGroup(root)
	for i := range root.Actions {
		got := Index(seq, i).Get()
		if !reflect.DeepEqual(got, root.Actions[i]) {
			t.Fatalf("Get() at %d does not match sequence element", i)
		}
	}
}

func TestSetReplacesExactlyOnePosition(t *testing.T) {
	root := testRoot()
	seq := ForGroup(root)

	before := make([]model.ActionOrGroup, len(root.Actions))
	copy(before, root.Actions)

	l := Index(seq, 0)
	l.SetAction(model.Action{Key: "T", Type: model.ActionTypeApplication, Value: "/Applications/Bar.app"})

	if len(root.Actions) != len(before) {
		t.Fatalf("Set changed sequence length: %d -> %d", len(before), len(root.Actions))
	}
	if root.Actions[0].Action.Key != "T" {
		t.Fatalf("position 0 not replaced: %q", root.Actions[0].Action.Key)
	}
	for i := 1; i < len(before); i++ {
		if !reflect.DeepEqual(root.Actions[i], before[i]) {
			t.Fatalf("position %d disturbed by Set at 0", i)
		}
	}
}

func TestIndexOutOfRangePanics(t *testing.T) {
	root := testRoot()
	seq := ForGroup(root)
	for _, i := range []int{-1, len(root.Actions)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Index(%d) should panic", i)
				}
			}()
			Index(seq, i)
		}()
	}
}

func TestComposedWritePropagatesToRoot(t *testing.T) {
	root := testRoot()

	// root.actions[1] is a group; descend into its children.
	groupLens := Index(ForGroup(root), 1)
	childLens := Index(groupLens.Actions(), 1)

	a := childLens.Action()
	a.Value = "ls -la"
	childLens.SetAction(a)

	got := root.Actions[1].Group.Actions[1].Action.Value
	if got != "ls -la" {
		t.Fatalf("nested write did not reach root: %q", got)
	}
	// Sibling inside the nested group is untouched.
	if root.Actions[1].Group.Actions[0].Action.Value != "https://example.com" {
		t.Fatalf("nested sibling disturbed")
	}
	// Siblings of the group at the top level are untouched.
	if root.Actions[0].Action.Key != "t" || root.Actions[2].Action.Key != "x" {
		t.Fatalf("top-level siblings disturbed")
	}
}

func TestVariantMismatchPanics(t *testing.T) {
	root := testRoot()
	seq := ForGroup(root)

	assertVariantPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("%s should panic", name)
			}
			if _, ok := r.(VariantError); !ok {
				t.Fatalf("%s panicked with %T, want VariantError", name, r)
			}
		}()
		fn()
	}

	actionLens := Index(seq, 0)
	groupLens := Index(seq, 1)

	assertVariantPanic("Group() on action", func() { actionLens.Group() })
	assertVariantPanic("Action() on group", func() { groupLens.Action() })
	assertVariantPanic("Actions() on action", func() { actionLens.Actions().Get() })
	assertVariantPanic("SetGroup on action", func() { actionLens.SetGroup(model.Group{}) })
	assertVariantPanic("SetAction on group", func() { groupLens.SetAction(model.Action{}) })
}

func TestVariantStableAcrossFieldEdits(t *testing.T) {
	root := testRoot()
	l := Index(ForGroup(root), 0)

	for _, edit := range []func(a *model.Action){
		func(a *model.Action) { a.Key = "y" },
		func(a *model.Action) { a.Label = "Foo" },
		func(a *model.Action) { a.Type = model.ActionTypeCommand },
		func(a *model.Action) { a.Value = "/somewhere/else" },
	} {
		a := l.Action()
		edit(&a)
		l.SetAction(a)
		if root.Actions[0].Kind() != model.KindAction {
			t.Fatalf("field edit changed variant tag")
		}
	}

	// Type change is non-destructive: key and value survive verbatim.
	got := l.Action()
	if got.Key != "y" || got.Value != "/somewhere/else" {
		t.Fatalf("field edits lost state: %+v", got)
	}
}
