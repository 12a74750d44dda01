package format

import (
	"fmt"
	"io"
	"strings"

	"leaderkey-cli/internal/model"
)

// WriteTree renders the config as an indented text tree for humans,
// one entry per line: key, display name, and (for actions) type + value.
func WriteTree(w io.Writer, root *model.Group) error {
	if _, err := fmt.Fprintf(w, "%s\n", root.DisplayName()); err != nil {
		return err
	}
	return writeChildren(w, root.Actions, "")
}

func writeChildren(w io.Writer, children []model.ActionOrGroup, indent string) error {
	for i, e := range children {
		connector := "├─"
		childIndent := indent + "│  "
		if i == len(children)-1 {
			connector = "└─"
			childIndent = indent + "   "
		}

		key := "·"
		if k := entryKey(e); strings.TrimSpace(k) != "" {
			key = k
		}

		if e.IsGroup() {
			if _, err := fmt.Fprintf(w, "%s%s %s  %s/\n", indent, connector, key, e.Group.DisplayName()); err != nil {
				return err
			}
			if err := writeChildren(w, e.Group.Actions, childIndent); err != nil {
				return err
			}
			continue
		}
		a := e.Action
		if _, err := fmt.Fprintf(w, "%s%s %s  %s  (%s: %s)\n", indent, connector, key, a.BestGuessDisplayName(), a.Type, a.Value); err != nil {
			return err
		}
	}
	return nil
}

func entryKey(e model.ActionOrGroup) string {
	if e.Group != nil {
		return e.Group.Key
	}
	if e.Action != nil {
		return e.Action.Key
	}
	return ""
}
