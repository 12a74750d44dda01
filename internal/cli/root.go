package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"leaderkey-cli/internal/format"
	"leaderkey-cli/internal/model"
	"leaderkey-cli/internal/store"
	"leaderkey-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "leaderkey",
		Short:        "Editor for leader-key launcher configs (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive editor
  leaderkey

  # Scriptable commands
  leaderkey show --tree
  leaderkey add action --to o --key g --type url --value https://github.com
  leaderkey dup o.g
  leaderkey rm o.g

  # Audit keys (empty keys, duplicate siblings)
  leaderkey doctor
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("LEADERKEY_CONFIG", ""), "Path to config.json (default: <user config dir>/leaderkey/config.json)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("LEADERKEY_FORMAT", "json"), "Output format (json)")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newDoctorCmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newRmCmd(app))
	cmd.AddCommand(newDupCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	s, err := configStore(app)
	if err != nil {
		return err
	}
	return tui.Run(s)
}

func configStore(app *App) (store.Store, error) {
	if app.ConfigPath == "" {
		p, err := store.DefaultPath()
		if err != nil {
			return store.Store{}, err
		}
		app.ConfigPath = p
	}
	return store.Store{Path: app.ConfigPath}, nil
}

// loadRoot loads the config tree, translating a missing file into a hint
// to run `leaderkey init`.
func loadRoot(app *App) (*model.Group, store.Store, error) {
	s, err := configStore(app)
	if err != nil {
		return nil, store.Store{}, err
	}
	root, err := s.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, s, fmt.Errorf("no config at %s (run `leaderkey init` first)", s.Path)
		}
		return nil, s, err
	}
	return root, s, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
