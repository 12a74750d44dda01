// Package treepath resolves dot-separated key paths ("o.g") to locations
// in the config tree, for scriptable edits from the CLI. Keys are not
// required to be unique; resolution takes the first match in display order.
package treepath

import (
	"fmt"
	"strings"

	"leaderkey-cli/internal/model"
)

type NotFoundError struct {
	Path    string
	Segment string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no entry with key %q under %q", e.Segment, e.Path)
}

// Split breaks a path into key segments. The empty path addresses the root.
func Split(path string) []string {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// ResolveGroup walks a key path from root and returns the group it names.
// Every segment must resolve to a group-tagged child.
func ResolveGroup(root *model.Group, path string) (*model.Group, error) {
	g := root
	walked := []string{}
	for _, seg := range Split(path) {
		i, ok := childIndexByKey(g, seg)
		if !ok {
			return nil, NotFoundError{Path: strings.Join(walked, "."), Segment: seg}
		}
		child := g.Actions[i]
		if !child.IsGroup() {
			return nil, fmt.Errorf("entry %q under %q is an action, not a group", seg, strings.Join(walked, "."))
		}
		g = child.Group
		walked = append(walked, seg)
	}
	return g, nil
}

// ResolveParent resolves a non-empty path to its parent group plus the
// index of the final segment's element within it. Used by delete/duplicate,
// which address an element rather than a group.
func ResolveParent(root *model.Group, path string) (*model.Group, int, error) {
	segs := Split(path)
	if len(segs) == 0 {
		return nil, 0, fmt.Errorf("empty path: the root group itself cannot be deleted or duplicated")
	}
	parentPath := strings.Join(segs[:len(segs)-1], ".")
	parent, err := ResolveGroup(root, parentPath)
	if err != nil {
		return nil, 0, err
	}
	last := segs[len(segs)-1]
	i, ok := childIndexByKey(parent, last)
	if !ok {
		return nil, 0, NotFoundError{Path: parentPath, Segment: last}
	}
	return parent, i, nil
}

func childIndexByKey(g *model.Group, key string) (int, bool) {
	for i, e := range g.Actions {
		k := ""
		switch {
		case e.Action != nil:
			k = e.Action.Key
		case e.Group != nil:
			k = e.Group.Key
		}
		if k == key {
			return i, true
		}
	}
	return 0, false
}
