package gameroot

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/andygrunwald/vdf"
)

// steamRootCandidates returns the places a Steam install usually lives on
// this platform.
func steamRootCandidates() []string {
	var candidates []string
	switch runtime.GOOS {
	case "windows":
		for _, envVar := range []string{"ProgramFiles(x86)", "ProgramFiles"} {
			if dir := os.Getenv(envVar); dir != "" {
				candidates = append(candidates, filepath.Join(dir, "Steam"))
			}
		}
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates, filepath.Join(home, "Library", "Application Support", "Steam"))
		}
	default:
		if home, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates,
				filepath.Join(home, ".steam", "steam"),
				filepath.Join(home, ".local", "share", "Steam"),
			)
		}
	}
	return candidates
}

// locateSteamApp scans every Steam library reachable from the given Steam
// roots for the app's manifest and returns its install folder.
func locateSteamApp(appID int, steamRoots []string) (string, error) {
	seen := make(map[string]bool)
	for _, steamRoot := range steamRoots {
		for _, library := range libraryPaths(steamRoot) {
			if seen[library] {
				continue
			}
			seen[library] = true

			manifest := filepath.Join(library, "steamapps", fmt.Sprintf("appmanifest_%d.acf", appID))
			installDir, ok := installDirFromManifest(manifest)
			if !ok {
				continue
			}
			root := filepath.Join(library, "steamapps", "common", installDir)
			if stat, err := os.Stat(root); err == nil && stat.IsDir() {
				return root, nil
			}
		}
	}
	return "", ErrGameRootNotFound
}

// libraryPaths lists the library roots Steam knows about, always including
// steamRoot itself. libraryfolders.vdf is Valve's KeyValues text format.
func libraryPaths(steamRoot string) []string {
	paths := []string{steamRoot}

	f, err := os.Open(filepath.Join(steamRoot, "steamapps", "libraryfolders.vdf"))
	if err != nil {
		return paths
	}
	defer f.Close()

	doc, err := vdf.NewParser(f).Parse()
	if err != nil {
		return paths
	}
	folders, ok := doc["libraryfolders"].(map[string]interface{})
	if !ok {
		return paths
	}
	for _, entry := range folders {
		fields, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if path, ok := fields["path"].(string); ok && path != "" {
			paths = append(paths, path)
		}
	}
	return paths
}

func installDirFromManifest(manifest string) (string, bool) {
	f, err := os.Open(manifest)
	if err != nil {
		return "", false
	}
	defer f.Close()

	doc, err := vdf.NewParser(f).Parse()
	if err != nil {
		return "", false
	}
	state, ok := doc["AppState"].(map[string]interface{})
	if !ok {
		return "", false
	}
	installDir, ok := state["installdir"].(string)
	if !ok || installDir == "" {
		return "", false
	}
	return installDir, true
}
