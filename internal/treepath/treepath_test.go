package treepath

import (
	"errors"
	"testing"

	"leaderkey-cli/internal/model"
)

func testRoot() *model.Group {
	return &model.Group{
		Actions: []model.ActionOrGroup{
			model.WrapAction(model.Action{Key: "t", Type: model.ActionTypeApplication, Value: "/Applications/Foo.app"}),
			model.WrapGroup(model.Group{
				Key: "o",
				Actions: []model.ActionOrGroup{
					model.WrapAction(model.Action{Key: "u", Type: model.ActionTypeURL, Value: "https://example.com"}),
					model.WrapGroup(model.Group{Key: "w", Actions: []model.ActionOrGroup{}}),
				},
			}),
		},
	}
}

func TestResolveGroupRoot(t *testing.T) {
	root := testRoot()
	g, err := ResolveGroup(root, "")
	if err != nil {
		t.Fatalf("ResolveGroup: %v", err)
	}
	if g != root {
		t.Fatalf("empty path should return the root group")
	}
}

func TestResolveGroupNested(t *testing.T) {
	root := testRoot()
	g, err := ResolveGroup(root, "o.w")
	if err != nil {
		t.Fatalf("ResolveGroup: %v", err)
	}
	if g.Key != "w" {
		t.Fatalf("resolved wrong group: %q", g.Key)
	}
	// Resolution returns the live subtree, not a copy.
	if g != root.Actions[1].Group.Actions[1].Group {
		t.Fatalf("expected pointer into the live tree")
	}
}

func TestResolveGroupThroughAction(t *testing.T) {
	root := testRoot()
	if _, err := ResolveGroup(root, "t"); err == nil {
		t.Fatalf("expected error resolving a group path through an action")
	}
}

func TestResolveGroupNotFound(t *testing.T) {
	root := testRoot()
	_, err := ResolveGroup(root, "o.zzz")
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
	if nf.Segment != "zzz" || nf.Path != "o" {
		t.Fatalf("NotFoundError fields: %+v", nf)
	}
}

func TestResolveParent(t *testing.T) {
	root := testRoot()
	parent, i, err := ResolveParent(root, "o.u")
	if err != nil {
		t.Fatalf("ResolveParent: %v", err)
	}
	if parent.Key != "o" || i != 0 {
		t.Fatalf("got parent %q index %d", parent.Key, i)
	}
}

func TestResolveParentRejectsEmptyPath(t *testing.T) {
	root := testRoot()
	if _, _, err := ResolveParent(root, ""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestFirstMatchWinsForDuplicateKeys(t *testing.T) {
	root := &model.Group{
		Actions: []model.ActionOrGroup{
			model.WrapAction(model.Action{Key: "d", Type: model.ActionTypeCommand, Value: "first"}),
			model.WrapAction(model.Action{Key: "d", Type: model.ActionTypeCommand, Value: "second"}),
		},
	}
	_, i, err := ResolveParent(root, "d")
	if err != nil {
		t.Fatalf("ResolveParent: %v", err)
	}
	if i != 0 {
		t.Fatalf("expected first match, got index %d", i)
	}
}
