package cli

import (
	"context"
	"strings"

	"leaderkey-cli/internal/lens"
	"leaderkey-cli/internal/model"
	"leaderkey-cli/internal/mutate"
	"leaderkey-cli/internal/treepath"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append an entry to a group",
	}
	cmd.AddCommand(newAddActionCmd(app))
	cmd.AddCommand(newAddGroupCmd(app))
	return cmd
}

func newAddActionCmd(app *App) *cobra.Command {
	var to, key, label, typ, value string
	cmd := &cobra.Command{
		Use:   "action",
		Short: "Append an action to a group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, s, err := loadRoot(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			at, err := model.ParseActionType(typ)
			if err != nil {
				return writeErr(cmd, err)
			}
			g, err := treepath.ResolveGroup(root, to)
			if err != nil {
				return writeErr(cmd, err)
			}

			res := mutate.AddAction(g)
			// Field edits go through the projection, same as the TUI.
			l := lens.Index(lens.ForGroup(g), len(g.Actions)-1)
			a := l.Action()
			a.Key = key
			a.Label = label
			a.Type = at
			a.Value = value
			l.SetAction(a)

			if err := s.Save(root); err != nil {
				return writeErr(cmd, err)
			}
			if err := s.AppendHistory(context.Background(), res.EventType, to, res.EventPayload); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, l.Get())
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Key path of the group to append to (default: root)")
	cmd.Flags().StringVar(&key, "key", "", "Keystroke that triggers the action")
	cmd.Flags().StringVar(&label, "label", "", "Display label (default: derived from value)")
	cmd.Flags().StringVar(&typ, "type", "application", "Action type (application|url|command|folder)")
	cmd.Flags().StringVar(&value, "value", "", "Path, URL, or shell command, per --type")
	return cmd
}

func newAddGroupCmd(app *App) *cobra.Command {
	var to, key, label string
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Append a nested group to a group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, s, err := loadRoot(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			g, err := treepath.ResolveGroup(root, to)
			if err != nil {
				return writeErr(cmd, err)
			}

			res := mutate.AddGroup(g)
			l := lens.Index(lens.ForGroup(g), len(g.Actions)-1)
			ng := l.Group()
			ng.Key = key
			ng.Label = label
			l.SetGroup(ng)

			if err := s.Save(root); err != nil {
				return writeErr(cmd, err)
			}
			if err := s.AppendHistory(context.Background(), res.EventType, to, res.EventPayload); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, l.Get())
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Key path of the group to append to (default: root)")
	cmd.Flags().StringVar(&key, "key", "", "Keystroke that enters the group")
	cmd.Flags().StringVar(&label, "label", "", "Display label (default: the key)")
	return cmd
}

func newRmCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <key-path>",
		Short: "Delete the entry at a key path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, s, err := loadRoot(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			parent, i, err := treepath.ResolveParent(root, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := mutate.DeleteAt(parent, i)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Save(root); err != nil {
				return writeErr(cmd, err)
			}
			if err := s.AppendHistory(context.Background(), res.EventType, parentPath(args[0]), res.EventPayload); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": res.EventPayload})
		},
	}
	return cmd
}

func newDupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dup <key-path>",
		Short: "Duplicate the entry at a key path (copy lands right after the original)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, s, err := loadRoot(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			parent, i, err := treepath.ResolveParent(root, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			res, err := mutate.DuplicateAt(parent, i)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := s.Save(root); err != nil {
				return writeErr(cmd, err)
			}
			if err := s.AppendHistory(context.Background(), res.EventType, parentPath(args[0]), res.EventPayload); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, parent.Actions[i+1])
		},
	}
	return cmd
}

func parentPath(path string) string {
	segs := treepath.Split(path)
	if len(segs) <= 1 {
		return ""
	}
	return strings.Join(segs[:len(segs)-1], ".")
}
