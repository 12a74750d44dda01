package mutate

import (
	"errors"
	"reflect"
	"testing"

	"leaderkey-cli/internal/model"
)

func sampleGroup() *model.Group {
	return &model.Group{
		Key: "leader",
		Actions: []model.ActionOrGroup{
			model.WrapAction(model.Action{Key: "t", Type: model.ActionTypeApplication, Value: "/Applications/Foo.app"}),
			model.WrapGroup(model.Group{
				Key: "o",
				Actions: []model.ActionOrGroup{
					model.WrapAction(model.Action{Key: "u", Type: model.ActionTypeURL, Value: "https://example.com"}),
				},
			}),
		},
	}
}

func TestAddActionAppends(t *testing.T) {
	g := sampleGroup()
	before := len(g.Actions)

	res := AddAction(g)

	if len(g.Actions) != before+1 {
		t.Fatalf("length %d, want %d", len(g.Actions), before+1)
	}
	added := g.Actions[len(g.Actions)-1]
	if added.Kind() != model.KindAction {
		t.Fatalf("appended element is %s", added.Kind())
	}
	if added.Action.Key != "" || added.Action.Value != "" {
		t.Fatalf("new action should be blank: %+v", added.Action)
	}
	if added.Action.Type != model.ActionTypeApplication {
		t.Fatalf("new action type %q, want application", added.Action.Type)
	}
	if g.Actions[0].Action.Key != "t" {
		t.Fatalf("prior element disturbed")
	}
	if res.EventType != "entry.add" {
		t.Fatalf("event type %q", res.EventType)
	}
}

func TestAddGroupAppends(t *testing.T) {
	g := sampleGroup()
	before := len(g.Actions)

	AddGroup(g)

	if len(g.Actions) != before+1 {
		t.Fatalf("length %d, want %d", len(g.Actions), before+1)
	}
	added := g.Actions[len(g.Actions)-1]
	if added.Kind() != model.KindGroup {
		t.Fatalf("appended element is %s", added.Kind())
	}
	if added.Group.Key != "" || len(added.Group.Actions) != 0 {
		t.Fatalf("new group should be empty: %+v", added.Group)
	}
}

func TestDeleteAt(t *testing.T) {
	g := sampleGroup()

	res, err := DeleteAt(g, 0)
	if err != nil {
		t.Fatalf("DeleteAt: %v", err)
	}
	if len(g.Actions) != 1 {
		t.Fatalf("length %d, want 1", len(g.Actions))
	}
	if g.Actions[0].Kind() != model.KindGroup {
		t.Fatalf("wrong element removed")
	}
	if res.EventPayload["index"] != 0 {
		t.Fatalf("payload index %v", res.EventPayload["index"])
	}
}

func TestDeleteAtOutOfRange(t *testing.T) {
	g := sampleGroup()
	for _, i := range []int{-1, 2, 99} {
		_, err := DeleteAt(g, i)
		var ie IndexError
		if !errors.As(err, &ie) {
			t.Fatalf("DeleteAt(%d): got %v, want IndexError", i, err)
		}
		if ie.Index != i || ie.Len != 2 {
			t.Fatalf("IndexError fields: %+v", ie)
		}
	}
	if len(g.Actions) != 2 {
		t.Fatalf("failed delete must not change length")
	}
}

func TestDuplicateAtInsertsCopyAfterOriginal(t *testing.T) {
	g := sampleGroup()

	_, err := DuplicateAt(g, 0)
	if err != nil {
		t.Fatalf("DuplicateAt: %v", err)
	}
	if len(g.Actions) != 3 {
		t.Fatalf("length %d, want 3", len(g.Actions))
	}
	if !reflect.DeepEqual(g.Actions[0], g.Actions[1]) {
		// Deep equality of values, not pointers.
		if !reflect.DeepEqual(*g.Actions[0].Action, *g.Actions[1].Action) {
			t.Fatalf("copy not deep-equal to original")
		}
	}
	// Subsequent siblings shifted right by one.
	if g.Actions[2].Kind() != model.KindGroup {
		t.Fatalf("trailing sibling lost")
	}
}

func TestDuplicateIndependence(t *testing.T) {
	g := sampleGroup()
	if _, err := DuplicateAt(g, 0); err != nil {
		t.Fatalf("DuplicateAt: %v", err)
	}

	g.Actions[1].Action.Key = "f"
	if g.Actions[0].Action.Key != "t" {
		t.Fatalf("editing the copy touched the original")
	}
	g.Actions[0].Action.Value = "/elsewhere"
	if g.Actions[1].Action.Value != "/Applications/Foo.app" {
		t.Fatalf("editing the original touched the copy")
	}
}

func TestDuplicateGroupIsDeep(t *testing.T) {
	g := sampleGroup()
	if _, err := DuplicateAt(g, 1); err != nil {
		t.Fatalf("DuplicateAt: %v", err)
	}

	g.Actions[2].Group.Actions[0].Action.Value = "https://other.com"
	if g.Actions[1].Group.Actions[0].Action.Value != "https://example.com" {
		t.Fatalf("nested children aliased between original and copy")
	}
}

func TestDuplicateAtOutOfRange(t *testing.T) {
	g := sampleGroup()
	_, err := DuplicateAt(g, 2)
	var ie IndexError
	if !errors.As(err, &ie) {
		t.Fatalf("got %v, want IndexError", err)
	}
	if len(g.Actions) != 2 {
		t.Fatalf("failed duplicate must not change length")
	}
}

// The worked example from the editor's contract: duplicate, edit the copy,
// delete the original.
func TestDuplicateEditDeleteScenario(t *testing.T) {
	g := &model.Group{
		Actions: []model.ActionOrGroup{
			model.WrapAction(model.Action{Key: "t", Type: model.ActionTypeApplication, Value: "/Applications/Foo.app"}),
		},
	}

	if _, err := DuplicateAt(g, 0); err != nil {
		t.Fatalf("DuplicateAt: %v", err)
	}
	if len(g.Actions) != 2 {
		t.Fatalf("length %d, want 2", len(g.Actions))
	}
	if !reflect.DeepEqual(*g.Actions[0].Action, *g.Actions[1].Action) {
		t.Fatalf("copy differs from original")
	}

	g.Actions[1].Action.Key = "f"
	if g.Actions[0].Action.Key != "t" {
		t.Fatalf("original key changed")
	}

	if _, err := DeleteAt(g, 0); err != nil {
		t.Fatalf("DeleteAt: %v", err)
	}
	if len(g.Actions) != 1 || g.Actions[0].Action.Key != "f" {
		t.Fatalf("expected single remaining element with key f, got %+v", g.Actions)
	}
}
