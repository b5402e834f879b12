package backupmgr

import (
	"fmt"
	"path/filepath"
)

// SaveRoot returns the directory the game writes all world saves under.
func SaveRoot(gameRoot string) string {
	return filepath.Join(gameRoot, SaveDirName)
}

// SaveFilePath returns the save file location for one numbered world. Pure
// function of its inputs; callers keep world within [1, MaxWorlds].
func SaveFilePath(gameRoot string, world int) string {
	return filepath.Join(SaveRoot(gameRoot), worldDirName(world), SaveFileName)
}

// TrackedPaths returns the fixed set of save files watched for gameRoot, one
// per world slot.
func TrackedPaths(gameRoot string) []string {
	paths := make([]string, 0, MaxWorlds)
	for world := 1; world <= MaxWorlds; world++ {
		paths = append(paths, SaveFilePath(gameRoot, world))
	}
	return paths
}

// IsTrackedPath reports whether path is one of the tracked save files.
func IsTrackedPath(gameRoot, path string) bool {
	for world := 1; world <= MaxWorlds; world++ {
		if path == SaveFilePath(gameRoot, world) {
			return true
		}
	}
	return false
}

func worldDirName(world int) string {
	return fmt.Sprintf("world_%d", world)
}

func worldDirPath(gameRoot string, world int) string {
	return filepath.Join(SaveRoot(gameRoot), worldDirName(world))
}
