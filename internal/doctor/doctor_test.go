package doctor

import (
	"testing"

	"leaderkey-cli/internal/model"
)

func countKind(issues []Issue, kind IssueKind) int {
	n := 0
	for _, is := range issues {
		if is.Kind == kind {
			n++
		}
	}
	return n
}

func TestCheckCleanTree(t *testing.T) {
	root := &model.Group{
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
	if issues := Check(root); len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}

func TestCheckEmptyKey(t *testing.T) {
	root := &model.Group{
		Actions: []model.ActionOrGroup{
			model.WrapAction(model.Action{Type: model.ActionTypeCommand, Value: "ls"}),
		},
	}
	issues := Check(root)
	if countKind(issues, IssueEmptyKey) != 1 {
		t.Fatalf("expected one empty-key issue, got %+v", issues)
	}
}

func TestCheckDuplicateSiblingKeys(t *testing.T) {
	root := &model.Group{
		Actions: []model.ActionOrGroup{
			model.WrapAction(model.Action{Key: "d", Type: model.ActionTypeCommand, Value: "a"}),
			model.WrapAction(model.Action{Key: "d", Type: model.ActionTypeCommand, Value: "b"}),
			// Same key in a different group is fine.
			model.WrapGroup(model.Group{
				Key: "g",
				Actions: []model.ActionOrGroup{
					model.WrapAction(model.Action{Key: "d", Type: model.ActionTypeCommand, Value: "c"}),
				},
			}),
		},
	}
	issues := Check(root)
	if countKind(issues, IssueDuplicateKey) != 1 {
		t.Fatalf("expected one duplicate-key issue, got %+v", issues)
	}
}

func TestCheckEmptyValueAndNestedPath(t *testing.T) {
	root := &model.Group{
		Actions: []model.ActionOrGroup{
			model.WrapGroup(model.Group{
				Key: "o",
				Actions: []model.ActionOrGroup{
					model.WrapAction(model.Action{Key: "n", Type: model.ActionTypeApplication}),
				},
			}),
		},
	}
	issues := Check(root)
	if countKind(issues, IssueEmptyValue) != 1 {
		t.Fatalf("expected one empty-value issue, got %+v", issues)
	}
	found := false
	for _, is := range issues {
		if is.Kind == IssueEmptyValue && is.Path == "o" {
			found = true
		}
	}
	if !found {
		t.Fatalf("empty-value issue should carry nested path, got %+v", issues)
	}
}
