package backupmgr

import (
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
)

const (
	// Fixed, game-defined save layout under the installation directory.
	SaveDirName  = "Save"
	SaveFileName = "local.sav"

	// MaxWorlds is the highest numbered save slot the game creates. The game
	// engine treats this as fixed; a future game update could raise it.
	MaxWorlds = 5
)

// Config holds the two directories a Manager operates on. GameRoot must be a
// validated installation directory; BackupRoot may not exist yet and is
// created on the first successful backup.
type Config struct {
	GameRoot   string
	BackupRoot string
}

// Manager mirrors save-file changes under GameRoot into timestamped artifacts
// under BackupRoot.
type Manager struct {
	config Config
	writer *Writer
	log    *slog.Logger

	// watcher is the only state shared between the goroutine driving Watch
	// and whoever calls Unwatch. Both take it out under mu before closing.
	mu      sync.Mutex
	watcher *fsnotify.Watcher
}
