package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

type ActionType string

const (
	ActionTypeApplication ActionType = "application"
	ActionTypeURL         ActionType = "url"
	ActionTypeCommand     ActionType = "command"
	ActionTypeFolder      ActionType = "folder"
)

// ActionTypes returns every action type in display order.
func ActionTypes() []ActionType {
	return []ActionType{ActionTypeApplication, ActionTypeURL, ActionTypeCommand, ActionTypeFolder}
}

// ParseActionType normalizes user-supplied type strings.
func ParseActionType(s string) (ActionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "application", "app":
		return ActionTypeApplication, nil
	case "url":
		return ActionTypeURL, nil
	case "command", "cmd":
		return ActionTypeCommand, nil
	case "folder":
		return ActionTypeFolder, nil
	default:
		return "", fmt.Errorf("invalid action type: %q (expected application|url|command|folder)", s)
	}
}

// Action is a terminal mapping: a key bound to a typed command.
// Value semantics depend on Type (path, URL, or shell command); the model
// does not validate Value content.
type Action struct {
	Key   string     `json:"key,omitempty"`
	Type  ActionType `json:"type"`
	Value string     `json:"value"`
	Label string     `json:"label,omitempty"`
}

// Group is a keyed, ordered container of actions and nested groups.
// Actions order is insertion order and is significant.
type Group struct {
	Key     string          `json:"key,omitempty"`
	Label   string          `json:"label,omitempty"`
	Actions []ActionOrGroup `json:"actions"`
}

type Kind string

const (
	KindAction Kind = "action"
	KindGroup  Kind = "group"
)

// ActionOrGroup is a tagged union: exactly one of Action/Group is set.
// The tag never changes for a live element; field edits keep the variant.
type ActionOrGroup struct {
	Action *Action
	Group  *Group
}

func WrapAction(a Action) ActionOrGroup { return ActionOrGroup{Action: &a} }
func WrapGroup(g Group) ActionOrGroup   { return ActionOrGroup{Group: &g} }

func (e ActionOrGroup) Kind() Kind {
	if e.Group != nil {
		return KindGroup
	}
	return KindAction
}

func (e ActionOrGroup) IsGroup() bool { return e.Group != nil }

// Clone returns a deep copy sharing no mutable storage with the original.
func (g Group) Clone() Group {
	out := g
	if g.Actions != nil {
		out.Actions = make([]ActionOrGroup, len(g.Actions))
		for i := range g.Actions {
			out.Actions[i] = g.Actions[i].Clone()
		}
	}
	return out
}

func (e ActionOrGroup) Clone() ActionOrGroup {
	switch {
	case e.Action != nil:
		a := *e.Action
		return ActionOrGroup{Action: &a}
	case e.Group != nil:
		g := e.Group.Clone()
		return ActionOrGroup{Group: &g}
	}
	return ActionOrGroup{}
}

// groupJSON is the on-disk shape of a group. The launcher config stores
// groups as objects with "type":"group"; everything else is an action.
type groupJSON struct {
	Key     string          `json:"key,omitempty"`
	Type    string          `json:"type"`
	Label   string          `json:"label,omitempty"`
	Actions []ActionOrGroup `json:"actions"`
}

func (e ActionOrGroup) MarshalJSON() ([]byte, error) {
	switch {
	case e.Action != nil:
		return json.Marshal(e.Action)
	case e.Group != nil:
		return json.Marshal(groupJSON{
			Key:     e.Group.Key,
			Type:    "group",
			Label:   e.Group.Label,
			Actions: e.Group.Actions,
		})
	}
	return nil, errors.New("empty ActionOrGroup")
}

func (e *ActionOrGroup) UnmarshalJSON(b []byte) error {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}
	if probe.Type == "group" {
		var gj groupJSON
		if err := json.Unmarshal(b, &gj); err != nil {
			return err
		}
		g := Group{Key: gj.Key, Label: gj.Label, Actions: gj.Actions}
		*e = ActionOrGroup{Group: &g}
		return nil
	}
	var a Action
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*e = ActionOrGroup{Action: &a}
	return nil
}

// untitledLabel is shown when no label can be derived at all.
const untitledLabel = "Untitled"

// commandLabelMax caps derived labels for shell commands.
const commandLabelMax = 40

// BestGuessDisplayName returns Label when set, otherwise a human-readable
// name derived from Value according to Type. Pure and display-only: it
// never writes back to Label.
func (a Action) BestGuessDisplayName() string {
	if strings.TrimSpace(a.Label) != "" {
		return a.Label
	}
	value := strings.TrimSpace(a.Value)
	if value == "" {
		return untitledLabel
	}

	switch a.Type {
	case ActionTypeApplication, ActionTypeFolder:
		base := path.Base(strings.TrimSuffix(value, "/"))
		name := strings.TrimSuffix(base, path.Ext(base))
		if name == "" || name == "/" || name == "." {
			return untitledLabel
		}
		return name

	case ActionTypeURL:
		u, err := url.Parse(value)
		if err != nil {
			return value
		}
		if seg := lastPathSegment(u.Path); seg != "" {
			return seg
		}
		if u.Host != "" {
			return u.Host
		}
		return value

	default:
		// Commands: show the raw text, truncated for row rendering.
		if len([]rune(value)) > commandLabelMax {
			return string([]rune(value)[:commandLabelMax]) + "…"
		}
		return value
	}
}

func lastPathSegment(p string) string {
	parts := strings.Split(strings.Trim(p, "/"), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}

// DisplayName falls back label -> key -> generic placeholder.
func (g Group) DisplayName() string {
	if strings.TrimSpace(g.Label) != "" {
		return g.Label
	}
	if strings.TrimSpace(g.Key) != "" {
		return g.Key
	}
	return "Group"
}

// DisplayName dispatches to the variant's display-name rule.
func (e ActionOrGroup) DisplayName() string {
	if e.Group != nil {
		return e.Group.DisplayName()
	}
	if e.Action != nil {
		return e.Action.BestGuessDisplayName()
	}
	return untitledLabel
}
