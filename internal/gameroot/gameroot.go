// Package gameroot locates the installation directory of The Scroll of
// Taiwu, either from an explicit override path or by searching the local
// Steam libraries.
package gameroot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// SteamAppID is the Steam store id of The Scroll of Taiwu.
const SteamAppID = 838350

// ErrGameRootNotFound means no valid installation directory could be
// resolved. The process cannot do anything useful without one.
var ErrGameRootNotFound = errors.New("game root path not found")

// Resolve returns the absolute game installation directory. A non-empty
// override wins; otherwise the Steam library manifests are searched for the
// game.
func Resolve(override string) (string, error) {
	if override != "" {
		return fromPath(override)
	}
	root, err := locateSteamApp(SteamAppID, steamRootCandidates())
	if err != nil {
		return "", err
	}
	return root, nil
}

func fromPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrGameRootNotFound, path)
	}
	stat, err := os.Stat(abs)
	if err != nil || !stat.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrGameRootNotFound, path)
	}
	return abs, nil
}
