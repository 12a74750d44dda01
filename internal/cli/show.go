package cli

import (
	"leaderkey-cli/internal/format"
	"leaderkey-cli/internal/model"
	"leaderkey-cli/internal/treepath"

	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var tree bool
	var at string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the config tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _, err := loadRoot(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			g := root
			if at != "" {
				g, err = treepath.ResolveGroup(root, at)
				if err != nil {
					return writeErr(cmd, err)
				}
			}
			if tree {
				return format.WriteTree(cmd.OutOrStdout(), g)
			}
			return writeOut(cmd, app, model.WrapGroup(*g))
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "Render as an indented text tree instead of JSON")
	cmd.Flags().StringVar(&at, "at", "", "Show only the group at this key path (e.g. o.w)")
	return cmd
}
