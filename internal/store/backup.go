package store

import (
	"os"
	"path/filepath"
	"sort"
	"time"
)

// maxBackups bounds the rolling backup set kept under <dir>/backups.
const maxBackups = 10

func (s Store) backupsDir() string {
	return filepath.Join(s.Dir(), "backups")
}

// backupExisting copies the current config file aside before it is
// overwritten. Missing config (first save) is not an error.
func (s Store) backupExisting() error {
	if _, err := os.Stat(s.Path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	name := "config-" + time.Now().UTC().Format("20060102-150405") + ".json"
	if err := CopyFile(s.Path, filepath.Join(s.backupsDir(), name)); err != nil {
		return err
	}
	return s.pruneBackups()
}

func (s Store) pruneBackups() error {
	entries, err := os.ReadDir(s.backupsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) <= maxBackups {
		return nil
	}

	// Timestamped names sort chronologically.
	sort.Strings(names)
	for _, n := range names[:len(names)-maxBackups] {
		if err := os.Remove(filepath.Join(s.backupsDir(), n)); err != nil {
			return err
		}
	}
	return nil
}

// Backups lists backup file paths, oldest first.
func (s Store) Backups() ([]string, error) {
	entries, err := os.ReadDir(s.backupsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out = append(out, filepath.Join(s.backupsDir(), e.Name()))
	}
	sort.Strings(out)
	return out, nil
}
