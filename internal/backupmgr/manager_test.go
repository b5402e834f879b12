package backupmgr

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	gameRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(SaveRoot(gameRoot), 0o755))
	return NewManager(Config{
		GameRoot:   gameRoot,
		BackupRoot: filepath.Join(t.TempDir(), "BackupData"),
	}, discardLogger())
}

// watchInBackground starts Watch on its own goroutine, the way the process
// host runs it, and gives fsnotify a moment to register before returning.
func watchInBackground(m *Manager) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- m.Watch()
	}()
	time.Sleep(250 * time.Millisecond)
	return done
}

func waitForWatchEnd(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return in time")
		return nil
	}
}

func TestBackupOnceSkipsAbsentWorlds(t *testing.T) {
	m := newTestManager(t)
	writeSave(t, m.GameRoot(), 1, "world one")
	writeSave(t, m.GameRoot(), 3, "world three")

	require.NoError(t, m.BackupOnce())

	artifacts, err := m.ListArtifacts(0)
	require.NoError(t, err)
	require.Len(t, artifacts, 2)

	worlds := map[string]bool{}
	for _, a := range artifacts {
		worlds[a.World] = true
	}
	assert.True(t, worlds["world_1"])
	assert.True(t, worlds["world_3"])
	assert.NoDirExists(t, filepath.Join(m.BackupRoot(), "world_2"))
}

func TestBackupOnceTwiceNeverOverwrites(t *testing.T) {
	m := newTestManager(t)
	writeSave(t, m.GameRoot(), 1, "save")

	require.NoError(t, m.BackupOnce())
	require.NoError(t, m.BackupOnce())

	artifacts, err := m.ListArtifacts(0)
	require.NoError(t, err)
	require.Len(t, artifacts, 2)
	assert.NotEqual(t, artifacts[0].Path, artifacts[1].Path)
}

func TestWatchBacksUpModifiedSave(t *testing.T) {
	m := newTestManager(t)
	save := writeSave(t, m.GameRoot(), 1, "initial")

	done := watchInBackground(m)

	require.NoError(t, os.WriteFile(save, []byte("after a day in game"), 0o644))

	require.Eventually(t, func() bool {
		artifacts, err := m.ListArtifacts(0)
		return err == nil && len(artifacts) >= 1
	}, 5*time.Second, 50*time.Millisecond, "modify on a tracked save must produce an artifact")

	artifacts, err := m.ListArtifacts(0)
	require.NoError(t, err)
	assert.Equal(t, "world_1", artifacts[0].World)

	m.Unwatch()
	assert.NoError(t, waitForWatchEnd(t, done))
}

func TestWatchIgnoresRenameAway(t *testing.T) {
	m := newTestManager(t)
	save := writeSave(t, m.GameRoot(), 1, "save")

	done := watchInBackground(m)

	require.NoError(t, os.Rename(save, save+".old"))
	time.Sleep(500 * time.Millisecond)

	artifacts, err := m.ListArtifacts(0)
	require.NoError(t, err)
	assert.Empty(t, artifacts, "a rename-away must not trigger a backup")

	// The loop is still alive and keeps processing further events.
	require.NoError(t, os.Rename(save+".old", save))
	require.NoError(t, os.WriteFile(save, []byte("changed"), 0o644))
	require.Eventually(t, func() bool {
		artifacts, err := m.ListArtifacts(0)
		return err == nil && len(artifacts) >= 1
	}, 5*time.Second, 50*time.Millisecond)

	m.Unwatch()
	assert.NoError(t, waitForWatchEnd(t, done))
}

func TestWatchPicksUpNewWorldFolder(t *testing.T) {
	m := newTestManager(t)

	done := watchInBackground(m)

	// The game creates the world folder and saves into it after the watch
	// already started.
	require.NoError(t, os.MkdirAll(worldDirPath(m.GameRoot(), 2), 0o755))
	time.Sleep(250 * time.Millisecond)
	save := SaveFilePath(m.GameRoot(), 2)
	require.NoError(t, os.WriteFile(save, []byte("fresh world"), 0o644))

	require.Eventually(t, func() bool {
		artifacts, err := m.ListArtifacts(0)
		return err == nil && len(artifacts) >= 1
	}, 5*time.Second, 50*time.Millisecond)

	m.Unwatch()
	assert.NoError(t, waitForWatchEnd(t, done))
}

func TestUnwatchUnblocksWatchAndIsIdempotent(t *testing.T) {
	m := newTestManager(t)

	done := watchInBackground(m)

	m.Unwatch()
	assert.NoError(t, waitForWatchEnd(t, done))

	// Already idle: further calls are no-ops.
	m.Unwatch()
	m.Unwatch()
}

func TestUnwatchBeforeWatchIsNoOp(t *testing.T) {
	m := newTestManager(t)
	m.Unwatch()
}

func TestWatchFailsWhenBackupFails(t *testing.T) {
	gameRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(SaveRoot(gameRoot), 0o755))

	// A regular file in place of the backup root makes every copy fail.
	backupRoot := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(backupRoot, []byte("in the way"), 0o644))

	m := NewManager(Config{GameRoot: gameRoot, BackupRoot: backupRoot}, discardLogger())
	save := writeSave(t, gameRoot, 1, "save")

	done := watchInBackground(m)

	require.NoError(t, os.WriteFile(save, []byte("changed"), 0o644))

	err := waitForWatchEnd(t, done)
	assert.Error(t, err, "a failed backup copy must end the watch session")
	m.Unwatch()
}

func TestSecondWatchRejected(t *testing.T) {
	m := newTestManager(t)

	done := watchInBackground(m)

	err := m.Watch()
	assert.ErrorIs(t, err, ErrAlreadyWatching)

	m.Unwatch()
	assert.NoError(t, waitForWatchEnd(t, done))
}
