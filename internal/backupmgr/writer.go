package backupmgr

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// Writer copies save files into timestamped artifacts under the backup root.
type Writer struct {
	backupRoot string
	log        *slog.Logger
}

// NewWriter returns a writer that stores artifacts under backupRoot.
func NewWriter(backupRoot string, log *slog.Logger) *Writer {
	return &Writer{backupRoot: backupRoot, log: log}
}

// lastStamp is the floor for artifact timestamps. Wall clocks can step
// backwards; artifact names must keep sorting chronologically within a run.
var lastStamp atomic.Int64

func nextStamp() int64 {
	for {
		now := time.Now().UnixNano()
		last := lastStamp.Load()
		if now <= last {
			now = last + 1
		}
		if lastStamp.CompareAndSwap(last, now) {
			return now
		}
	}
}

// Backup copies src into a folder named after src's parent directory, e.g.
// world_2/local.sav.1726040000123456789. The timestamp suffix keeps a plain
// name sort chronological and no artifact is ever overwritten. The copy is a
// single whole-file write, not a rename; a crash mid-copy can leave a
// truncated artifact behind, and no cleanup is attempted here. Callers check
// that src exists right before calling; a file vanishing in between surfaces
// as the copy error.
func (w *Writer) Backup(src string) (string, error) {
	folder := filepath.Base(filepath.Dir(src))
	name := fmt.Sprintf("%s.%d", filepath.Base(src), nextStamp())
	dst := filepath.Join(w.backupRoot, folder, name)

	w.log.Debug("backing up save", "src", src, "dst", dst)

	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return "", fmt.Errorf("create backup folder for %s: %w", src, err)
	}
	if err := copyFile(src, dst); err != nil {
		return "", fmt.Errorf("copy %s: %w", src, err)
	}

	w.log.Info("save backed up", "src", src, "artifact", dst)
	return dst, nil
}

// copyFile copies src to dst as one whole-file operation and flushes it to
// disk before returning.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
