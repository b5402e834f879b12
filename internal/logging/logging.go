// Package logging sets up the process logger: structured records mirrored to
// stderr and to a size-rotated log file, with a short per-run id on every
// record so interleaved runs can be told apart.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "taiwubackup.log"

// Setup builds the process logger and installs it as the slog default.
func Setup(level, logDir string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create log folder %s: %w", logDir, err)
	}

	rotated := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, logFileName),
		MaxSize:    10, // megabytes
		MaxBackups: 5,
	}

	handler := slog.NewJSONHandler(io.MultiWriter(os.Stderr, rotated), &slog.HandlerOptions{
		Level: lvl,
	})
	logger := slog.New(handler).With("run_id", uuid.NewString()[:8])
	slog.SetDefault(logger)
	return logger, nil
}
