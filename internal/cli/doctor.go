package cli

import (
	"fmt"

	"leaderkey-cli/internal/doctor"

	"github.com/spf13/cobra"
)

func newDoctorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Audit the config for empty keys and duplicate sibling keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _, err := loadRoot(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			issues := doctor.Check(root)
			if err := writeOut(cmd, app, map[string]any{
				"issues": issues,
				"count":  len(issues),
			}); err != nil {
				return err
			}
			if len(issues) > 0 {
				// Nothing is rewritten; the non-zero exit is for scripts.
				return fmt.Errorf("%d issue(s) found", len(issues))
			}
			return nil
		},
	}
	return cmd
}
