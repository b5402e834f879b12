package backupmgr

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"
)

/*
The Manager is the change-detection and backup-decision engine. It runs
BackupOnce at startup to catch up on saves written while the process was
down, then Watch blocks on the save-tree notification stream until Unwatch
releases the watch from another goroutine. The watcher handle is the only
state those two goroutines share and it lives behind a mutex with take
semantics, so a double release is impossible.
*/

// ErrAlreadyWatching is returned by Watch when a watch is already active on
// this manager.
var ErrAlreadyWatching = errors.New("a watch is already active")

// NewManager wires a manager for an already-validated game root. A nil
// logger falls back to slog.Default.
func NewManager(cfg Config, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		config: cfg,
		writer: NewWriter(cfg.BackupRoot, log),
		log:    log,
	}
}

// GameRoot returns the installation directory this manager watches.
func (m *Manager) GameRoot() string { return m.config.GameRoot }

// BackupRoot returns the directory artifacts are written under.
func (m *Manager) BackupRoot() string { return m.config.BackupRoot }

// BackupOnce backs up every world save that currently exists. Worlds without
// a save file are skipped silently; the first failed copy aborts the rest.
func (m *Manager) BackupOnce() error {
	m.log.Debug("running catch-up backup pass")
	for world := 1; world <= MaxWorlds; world++ {
		save := SaveFilePath(m.config.GameRoot, world)
		stat, err := os.Stat(save)
		if err != nil || !stat.Mode().IsRegular() {
			continue
		}
		if _, err := m.writer.Backup(save); err != nil {
			return err
		}
	}
	return nil
}

// Watch registers the save-tree watch and drains notifications until Unwatch
// closes the watcher or a backup fails. Delivery errors from the watch
// primitive are logged and skipped; a failed backup copy ends the session
// and its error is returned.
func (m *Manager) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	saveRoot := SaveRoot(m.config.GameRoot)
	if err := watcher.Add(saveRoot); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", saveRoot, err)
	}

	// fsnotify does not recurse. World folders that already exist are
	// watched up front; ones the game creates later are picked up in the
	// event loop.
	for world := 1; world <= MaxWorlds; world++ {
		dir := worldDirPath(m.config.GameRoot, world)
		if stat, err := os.Stat(dir); err == nil && stat.IsDir() {
			if err := watcher.Add(dir); err != nil {
				watcher.Close()
				return fmt.Errorf("watch %s: %w", dir, err)
			}
		}
	}

	m.mu.Lock()
	if m.watcher != nil {
		m.mu.Unlock()
		watcher.Close()
		return ErrAlreadyWatching
	}
	m.watcher = watcher
	m.mu.Unlock()

	m.log.Info("watching save folder", "path", saveRoot, "backup_root", m.config.BackupRoot)

	err = m.drain(watcher)

	// Take the handle back so a late Unwatch is a no-op. Unwatch may have
	// taken it first; closing twice is safe.
	m.mu.Lock()
	m.watcher = nil
	m.mu.Unlock()
	watcher.Close()

	m.log.Info("watch ended")
	return err
}

// drain consumes the notification stream in delivery order, one event at a
// time, until both channels close.
func (m *Manager) drain(watcher *fsnotify.Watcher) error {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if err := m.handleEvent(watcher, event); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			m.log.Error("watch delivery error", "error", err)
		}
	}
}

func (m *Manager) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) error {
	m.log.Debug("notification", "op", event.Op.String(), "path", event.Name)

	m.maintainWatches(watcher, event)

	switch Classify(event.Op, event.Name, m.config.GameRoot) {
	case ActionBackup:
		if _, err := m.writer.Backup(event.Name); err != nil {
			return err
		}
	case ActionSkipRename:
		m.log.Debug("tracked save renamed away, ignoring", "path", event.Name)
	case ActionSkipUnexpected:
		m.log.Warn("unexpected event kind on tracked save, ignoring",
			"op", event.Op.String(), "path", event.Name)
	case ActionSkipUntracked:
		// Churn on untracked files is normal, stay quiet.
	}
	return nil
}

// maintainWatches adds a world folder to the watch set the moment the game
// creates it, so the save file inside becomes observable.
func (m *Manager) maintainWatches(watcher *fsnotify.Watcher, event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) {
		return
	}
	for world := 1; world <= MaxWorlds; world++ {
		if event.Name != worldDirPath(m.config.GameRoot, world) {
			continue
		}
		if err := watcher.Add(event.Name); err != nil {
			m.log.Error("could not watch new world folder", "path", event.Name, "error", err)
		} else {
			m.log.Info("watching new world folder", "path", event.Name)
		}
		return
	}
}

// Unwatch releases the active watch, if any. Closing the watcher ends the
// notification stream, which makes Watch return nil. Safe to call from any
// goroutine and a no-op when nothing is being watched.
func (m *Manager) Unwatch() {
	m.mu.Lock()
	watcher := m.watcher
	m.watcher = nil
	m.mu.Unlock()

	if watcher != nil {
		watcher.Close()
		m.log.Debug("watch handle released")
	}
}
