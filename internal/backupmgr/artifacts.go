package backupmgr

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Artifact is one timestamped backup copy of a save file.
type Artifact struct {
	World   string // world folder name, e.g. "world_2"
	Path    string // absolute artifact path
	Stamp   int64  // nanosecond timestamp parsed from the name
	ModTime time.Time
}

// ListArtifacts collects the artifacts under the backup root, newest first.
// limit > 0 caps the result. A backup root that does not exist yet simply
// has no artifacts.
func (m *Manager) ListArtifacts(limit int) ([]Artifact, error) {
	var artifacts []Artifact
	err := filepath.WalkDir(m.config.BackupRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		stamp, ok := parseArtifactStamp(d.Name())
		if !ok {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		artifacts = append(artifacts, Artifact{
			World:   filepath.Base(filepath.Dir(path)),
			Path:    path,
			Stamp:   stamp,
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("walk backup root: %w", err)
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Stamp > artifacts[j].Stamp
	})

	if limit > 0 && limit < len(artifacts) {
		artifacts = artifacts[:limit]
	}

	return artifacts, nil
}

// parseArtifactStamp extracts the nanosecond suffix from an artifact name
// like "local.sav.1726040000123456789". Anything else is not an artifact.
func parseArtifactStamp(name string) (int64, bool) {
	rest, ok := strings.CutPrefix(name, SaveFileName+".")
	if !ok {
		return 0, false
	}
	stamp, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, false
	}
	return stamp, true
}
