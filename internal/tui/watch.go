package tui

import (
	"path/filepath"

	"leaderkey-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// configWatch forwards filesystem changes to the config file as tea
// messages. The watch is on the directory, not the file: editors and our
// own atomic save replace the file, which drops a direct file watch.
type configWatch struct {
	watcher *fsnotify.Watcher
	msgs    chan tea.Msg
}

func newConfigWatch(s store.Store) (*configWatch, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(s.Dir()); err != nil {
		w.Close()
		return nil, err
	}

	cw := &configWatch{
		watcher: w,
		msgs:    make(chan tea.Msg, 8),
	}
	target := filepath.Clean(s.Path)

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case cw.msgs <- configChangedMsg{}:
				default:
					// A reload is already queued.
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				select {
				case cw.msgs <- watchErrMsg{err: err}:
				default:
				}
			}
		}
	}()
	return cw, nil
}

func (c *configWatch) wait() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-c.msgs
		if !ok {
			return nil
		}
		return msg
	}
}

func (c *configWatch) close() {
	if c.watcher != nil {
		_ = c.watcher.Close()
	}
}
