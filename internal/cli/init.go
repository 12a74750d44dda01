package cli

import (
	"errors"
	"fmt"

	"leaderkey-cli/internal/store"

	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := configStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if s.Exists() && !force {
				return writeErr(cmd, errors.New("config already exists at "+s.Path+" (use --force to overwrite)"))
			}
			root := store.StarterConfig()
			if err := s.Save(&root); err != nil {
				return writeErr(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", s.Path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config (a backup is taken first)")
	return cmd
}
