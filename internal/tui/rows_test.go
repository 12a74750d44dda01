package tui

import (
	"testing"

	"leaderkey-cli/internal/lens"
	"leaderkey-cli/internal/model"
)

func sampleGroup() *model.Group {
	return &model.Group{
		Actions: []model.ActionOrGroup{
			model.WrapAction(model.Action{Key: "s", Type: model.ActionTypeApplication, Value: "/Applications/Safari.app"}),
			model.WrapGroup(model.Group{Key: "b", Label: "Browsers", Actions: []model.ActionOrGroup{
				model.WrapAction(model.Action{Key: "f", Type: model.ActionTypeApplication, Value: "/Applications/Firefox.app"}),
			}}),
			model.WrapAction(model.Action{Key: "d", Type: model.ActionTypeFolder, Value: "~/Downloads"}),
		},
	}
}

func TestBuildRowsProjectsEveryChildPlusAddRows(t *testing.T) {
	g := sampleGroup()
	items := buildRows(g, lens.ForGroup(g))

	if len(items) != len(g.Actions)+2 {
		t.Fatalf("expected %d rows; got %d", len(g.Actions)+2, len(items))
	}
	if _, ok := items[len(items)-2].(addActionRow); !ok {
		t.Fatalf("expected addActionRow at %d", len(items)-2)
	}
	if _, ok := items[len(items)-1].(addGroupRow); !ok {
		t.Fatalf("expected addGroupRow at %d", len(items)-1)
	}
}

func TestDispatchRowActionFields(t *testing.T) {
	g := sampleGroup()
	r := dispatchRow(g, lens.ForGroup(g), 0)

	if r.kind != model.KindAction {
		t.Fatalf("expected action row; got %v", r.kind)
	}
	if r.key != "s" {
		t.Fatalf("key = %q", r.key)
	}
	if r.name != "Safari" {
		t.Fatalf("name = %q", r.name)
	}
	if r.detail != "application · /Applications/Safari.app" {
		t.Fatalf("detail = %q", r.detail)
	}
}

func TestDispatchRowGroupFields(t *testing.T) {
	g := sampleGroup()
	r := dispatchRow(g, lens.ForGroup(g), 1)

	if r.kind != model.KindGroup {
		t.Fatalf("expected group row; got %v", r.kind)
	}
	if r.name != "Browsers" {
		t.Fatalf("name = %q", r.name)
	}
	if r.detail != "1 entry" {
		t.Fatalf("detail = %q", r.detail)
	}
}

func TestRowDeleteCallbackBindsIndex(t *testing.T) {
	g := sampleGroup()
	r := dispatchRow(g, lens.ForGroup(g), 1)

	if _, err := r.del(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(g.Actions) != 2 {
		t.Fatalf("expected 2 children after delete; got %d", len(g.Actions))
	}
	if g.Actions[1].Action == nil || g.Actions[1].Action.Key != "d" {
		t.Fatalf("wrong element deleted")
	}
}

func TestRowDuplicateCallbackInsertsAfter(t *testing.T) {
	g := sampleGroup()
	r := dispatchRow(g, lens.ForGroup(g), 0)

	if _, err := r.dup(); err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if len(g.Actions) != 4 {
		t.Fatalf("expected 4 children; got %d", len(g.Actions))
	}
	if g.Actions[1].Action == nil || g.Actions[1].Action.Value != "/Applications/Safari.app" {
		t.Fatalf("copy not adjacent to original")
	}
}

func TestRowLensEditPropagatesToTree(t *testing.T) {
	g := sampleGroup()
	r := dispatchRow(g, lens.ForGroup(g), 0)

	a := r.lens.Action()
	a.Label = "Browser"
	r.lens.SetAction(a)

	if g.Actions[0].Action.Label != "Browser" {
		t.Fatalf("edit did not reach the tree: %+v", g.Actions[0].Action)
	}
}
