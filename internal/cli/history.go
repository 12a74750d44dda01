package cli

import (
	"context"

	"leaderkey-cli/internal/store"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent structural edits (newest first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := configStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			entries, err := s.ReadHistory(context.Background(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			if entries == nil {
				// Empty log prints as [] rather than null.
				entries = []store.HistoryEntry{}
			}
			return writeOut(cmd, app, entries)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Max entries to show (0 = all)")
	return cmd
}
