// Package store owns everything on disk: the launcher config file the tree
// is persisted to, rolling backups of it, and the SQLite history log of
// structural edits. The in-memory tree itself knows nothing about any of
// this (the core is persistence-agnostic).
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"leaderkey-cli/internal/model"
)

const configFileName = "config.json"

// Store is a value handle on one config file. Path is the config file
// itself, not its directory.
type Store struct {
	Path string
}

// DefaultPath resolves the standard config location,
// e.g. ~/.config/leaderkey/config.json on Linux.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "leaderkey", configFileName), nil
}

func (s Store) Dir() string { return filepath.Dir(filepath.Clean(s.Path)) }

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir(), 0o755)
}

// Exists reports whether the config file is present on disk.
func (s Store) Exists() bool {
	st, err := os.Stat(s.Path)
	return err == nil && !st.IsDir()
}

// Load reads and decodes the config tree. A missing file is returned as
// os.ErrNotExist so callers can distinguish "not initialized" from a
// corrupt file.
func (s Store) Load() (*model.Group, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	var root model.ActionOrGroup
	if err := json.Unmarshal(b, &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}
	if !root.IsGroup() {
		return nil, fmt.Errorf("parse %s: top-level entry must be a group", s.Path)
	}
	g := root.Group.Clone()
	if g.Actions == nil {
		g.Actions = []model.ActionOrGroup{}
	}
	return &g, nil
}

// LoadOrStarter loads the config, falling back to the starter tree when the
// file does not exist yet. Used by the TUI so first launch lands in a
// usable editor.
func (s Store) LoadOrStarter() (*model.Group, error) {
	root, err := s.Load()
	if err == nil {
		return root, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		g := StarterConfig()
		return &g, nil
	}
	return nil, err
}

// Save writes the tree back atomically (temp file + rename), taking a
// rolling backup of the previous contents first.
func (s Store) Save(root *model.Group) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	if err := s.backupExisting(); err != nil {
		return err
	}

	b, err := json.MarshalIndent(model.WrapGroup(*root), "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}

// StarterConfig is the tree written by `leaderkey init`: one example of
// each action type so the editing surface is self-explanatory.
func StarterConfig() model.Group {
	return model.Group{
		Actions: []model.ActionOrGroup{
			model.WrapAction(model.Action{Key: "t", Type: model.ActionTypeApplication, Value: "/Applications/Terminal.app"}),
			model.WrapGroup(model.Group{
				Key:   "o",
				Label: "Open",
				Actions: []model.ActionOrGroup{
					model.WrapAction(model.Action{Key: "g", Type: model.ActionTypeURL, Value: "https://github.com"}),
					model.WrapAction(model.Action{Key: "d", Type: model.ActionTypeFolder, Value: "~/Downloads"}),
				},
			}),
			model.WrapGroup(model.Group{
				Key:   "c",
				Label: "Commands",
				Actions: []model.ActionOrGroup{
					model.WrapAction(model.Action{Key: "u", Type: model.ActionTypeCommand, Value: "uptime"}),
				},
			}),
		},
	}
}
