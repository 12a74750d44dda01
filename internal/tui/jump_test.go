package tui

import (
	"testing"

	"leaderkey-cli/internal/model"
)

func jumpTree() *model.Group {
	return &model.Group{
		Actions: []model.ActionOrGroup{
			model.WrapAction(model.Action{Key: "s", Type: model.ActionTypeApplication, Value: "/Applications/Safari.app"}),
			model.WrapGroup(model.Group{Key: "b", Label: "Browsers", Actions: []model.ActionOrGroup{
				model.WrapAction(model.Action{Key: "f", Type: model.ActionTypeApplication, Value: "/Applications/Firefox.app"}),
				model.WrapAction(model.Action{Key: "c", Type: model.ActionTypeApplication, Value: "/Applications/Chromium.app"}),
			}}),
			model.WrapAction(model.Action{Key: "t", Type: model.ActionTypeCommand, Value: "open -a Terminal", Label: "Terminal"}),
		},
	}
}

func TestRankJumpMatchesEmptyQueryListsEverything(t *testing.T) {
	got := rankJumpMatches(jumpTree(), "")
	// 3 top-level entries plus 2 nested actions.
	if len(got) != 5 {
		t.Fatalf("expected 5 candidates; got %d", len(got))
	}
}

func TestRankJumpMatchesPrefixBeatsSubstring(t *testing.T) {
	got := rankJumpMatches(jumpTree(), "fire")
	if len(got) == 0 {
		t.Fatalf("no matches")
	}
	if got[0].display != "Browsers › Firefox" {
		t.Fatalf("top match = %q", got[0].display)
	}
}

func TestRankJumpMatchesToleratesTypos(t *testing.T) {
	got := rankJumpMatches(jumpTree(), "termnal")
	found := false
	for _, c := range got {
		if c.display == "Terminal" {
			found = true
		}
	}
	if !found {
		t.Fatalf("typo query should still find Terminal; got %+v", got)
	}
}

func TestRankJumpMatchesNestedCandidateCarriesParentPath(t *testing.T) {
	got := rankJumpMatches(jumpTree(), "chromium")
	if len(got) == 0 {
		t.Fatalf("no matches")
	}
	c := got[0]
	if len(c.parent) != 1 || c.parent[0] != 1 || c.index != 1 {
		t.Fatalf("parent/index = %v/%d", c.parent, c.index)
	}
	if c.isGroup {
		t.Fatalf("Chromium is an action")
	}
}
